package constants

import "time"

// Scheduler Timing
const (
	// TickInterval is the fixed scheduler period (one animation tick)
	TickInterval = 100 * time.Millisecond

	// BorderMargin is the width of the border drawn around the surface
	BorderMargin = 1
)

// Star Field
const (
	// StarCountMin and StarCountMax bound the random star count when none is configured
	StarCountMin = 1
	StarCountMax = 100

	// StarOffsetMaxTicks bounds the random startup offset added to a star's first phase
	StarOffsetMaxTicks = 30
)

// StarSymbols are the glyphs a star may be drawn with
var StarSymbols = []rune{'*', '+', '.', ':'}

// Blink Phase Durations
const (
	BlinkDimDuration    = 2 * time.Second
	BlinkNormalDuration = 300 * time.Millisecond
	BlinkBoldDuration   = 500 * time.Millisecond
)

// Projectile
const (
	// ProjectileRowSpeed and ProjectileColSpeed are the default shot velocity in cells per tick
	ProjectileRowSpeed = -0.3
	ProjectileColSpeed = 0.0

	GlyphMuzzleFlash     = '*'
	GlyphLoaded          = 'O'
	GlyphTrailHorizontal = '-'
	GlyphTrailVertical   = '|'
)

// Sprite Files, appended to the configured path prefix
const (
	SpriteFrame1 = "rocket_frame_1.txt"
	SpriteFrame2 = "rocket_frame_2.txt"
)

// FireQueueSize is the capacity of the spaceship to launcher channel
const FireQueueSize = 4
