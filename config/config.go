package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/lixenwraith/starfield/constants"
)

// Environment variable names
const (
	EnvFramesPath = "FRAMES_PATH"
	EnvTick       = "STARFIELD_TICK"
	EnvStars      = "STARFIELD_STARS"
	EnvLogFile    = "STARFIELD_LOG"
	EnvDebug      = "STARFIELD_DEBUG"
	EnvMute       = "STARFIELD_MUTE"
)

// LogDisabled as the log file turns logging off
const LogDisabled = "-"

// Config is the runtime configuration
type Config struct {
	// FramesPath is prepended verbatim to the sprite file names
	FramesPath string
	Tick       time.Duration
	// Stars is the star count, 0 picks a random count
	Stars   int
	LogFile string
	Debug   bool
	Mute    bool
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Tick:    constants.TickInterval,
		LogFile: "starfield.log",
	}
}

// Load reads the optional .env files, then the environment, over Default
// Variables already set in the environment take precedence over .env values
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, name := range envFiles {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: read %s: %w", name, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a config from a lookup function
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvFramesPath); ok {
		cfg.FramesPath = v
	}
	if v, ok := lookup(EnvLogFile); ok && v != "" {
		cfg.LogFile = v
	}

	if v, ok := lookup(EnvTick); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid %s: %w", EnvTick, err)
		}
		cfg.Tick = d
	}
	if v, ok := lookup(EnvStars); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid %s: %w", EnvStars, err)
		}
		cfg.Stars = n
	}

	var err error
	if cfg.Debug, err = lookupBool(lookup, EnvDebug); err != nil {
		return Config{}, err
	}
	if cfg.Mute, err = lookupBool(lookup, EnvMute); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

func lookupBool(lookup func(string) (string, bool), key string) (bool, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: invalid %s: %w", key, err)
	}
	return b, nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	if c.Tick <= 0 {
		return fmt.Errorf("config: tick must be positive, got %v", c.Tick)
	}
	if c.Stars < 0 {
		return fmt.Errorf("config: star count must not be negative, got %d", c.Stars)
	}
	return nil
}

// LoggingEnabled reports whether a log file is configured
func (c Config) LoggingEnabled() bool {
	return c.LogFile != "" && c.LogFile != LogDisabled
}
