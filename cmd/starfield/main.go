package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/starfield/asset"
	"github.com/lixenwraith/starfield/audio"
	"github.com/lixenwraith/starfield/config"
	"github.com/lixenwraith/starfield/constants"
	"github.com/lixenwraith/starfield/core"
	"github.com/lixenwraith/starfield/game"
	"github.com/lixenwraith/starfield/input"
	"github.com/lixenwraith/starfield/render"
	"github.com/sirupsen/logrus"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "starfield: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Flags override environment
	flag.StringVar(&cfg.FramesPath, "frames", cfg.FramesPath, "Path prefix of the rocket sprite files")
	flag.DurationVar(&cfg.Tick, "tick", cfg.Tick, "Scheduler tick period")
	flag.IntVar(&cfg.Stars, "stars", cfg.Stars, "Number of stars, 0 for random")
	flag.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Log file, '-' disables logging")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug logging")
	flag.BoolVar(&cfg.Mute, "mute", cfg.Mute, "Disable the shot sound")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	// Sprites are loaded before the terminal is taken over so errors stay readable
	frames, err := asset.LoadFrames(cfg.FramesPath)
	if err != nil {
		logger.WithError(err).Error("sprite load failed")
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	core.SetCrashScreen(screen)
	// Normal exit terminal cleanup
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	renderer := render.NewRenderer(screen, constants.BorderMargin)

	sound := audio.NewSoundManager(renderer.Beep)
	sound.SetMuted(cfg.Mute)
	if !cfg.Mute {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, the terminal bell stands in
			logger.WithError(err).Warn("audio initialization failed")
		}
	}
	defer sound.Cleanup()

	poller := input.NewEventPoller(screen, cancel)

	g, err := game.New(game.Options{
		Renderer: renderer,
		Poller:   poller,
		Beeper:   sound,
		Frames:   frames,
		Tick:     cfg.Tick,
		Stars:    cfg.Stars,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	return g.Run(ctx)
}

// newLogger writes to the configured file; the terminal belongs to tcell
func newLogger(cfg config.Config) (*logrus.Logger, func(), error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	if cfg.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	if !cfg.LoggingEnabled() {
		logger.SetOutput(io.Discard)
		return logger, func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger.SetOutput(f)
	return logger, func() { _ = f.Close() }, nil
}
