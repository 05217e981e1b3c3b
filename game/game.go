// Package game seeds the scheduler with the scene and runs it
package game

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/lixenwraith/starfield/constants"
	"github.com/lixenwraith/starfield/core"
	"github.com/lixenwraith/starfield/engine"
	"github.com/lixenwraith/starfield/input"
	"github.com/lixenwraith/starfield/render"
	"github.com/lixenwraith/starfield/status"
	"github.com/lixenwraith/starfield/systems"
	"github.com/sirupsen/logrus"
)

// Options configures a scene
type Options struct {
	Renderer *render.Renderer
	Poller   input.Poller
	Beeper   systems.Beeper
	Frames   []*core.Frame
	Tick     time.Duration
	// Stars is the star count, 0 picks a random count
	Stars  int
	Rand   *rand.Rand
	Logger logrus.FieldLogger
}

// Game owns the scheduler and the long-lived tasks of the scene
type Game struct {
	renderer  *render.Renderer
	scheduler *engine.Scheduler
	status    *status.Registry
	tick      time.Duration
	log       logrus.FieldLogger

	Spaceship *systems.SpaceshipTask
	Launcher  *systems.LauncherTask
	Stars     []*systems.BlinkTask
}

// New builds the scene: launcher, spaceship at the centre, then the star field
func New(opts Options) (*Game, error) {
	if opts.Renderer == nil {
		return nil, errors.New("game: renderer required")
	}
	if len(opts.Frames) == 0 {
		return nil, errors.New("game: at least one spaceship frame required")
	}
	if opts.Tick <= 0 {
		opts.Tick = constants.TickInterval
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	g := &Game{
		renderer:  opts.Renderer,
		scheduler: engine.NewScheduler(opts.Renderer, opts.Logger),
		status:    status.NewRegistry(),
		tick:      opts.Tick,
		log:       opts.Logger,
	}
	g.scheduler.SetStatus(g.status)

	fire := make(chan systems.FireRequest, constants.FireQueueSize)
	velocity := core.Vector{DRow: constants.ProjectileRowSpeed, DCol: constants.ProjectileColSpeed}
	g.Launcher = systems.NewLauncherTask(g.scheduler, opts.Renderer, opts.Beeper, fire, velocity, opts.Logger)
	g.Launcher.SetStatus(g.status)
	g.scheduler.Register(g.Launcher)

	boundary := opts.Renderer.Boundary()
	first := opts.Frames[0]
	start := boundary.Center(first.Height(), first.Width())
	g.Spaceship = systems.NewSpaceshipTask(opts.Renderer, opts.Poller, opts.Frames, start, fire)
	g.scheduler.Register(g.Spaceship)

	count := opts.Stars
	if count <= 0 {
		count = constants.StarCountMin + opts.Rand.Intn(constants.StarCountMax-constants.StarCountMin+1)
	}
	g.Stars = make([]*systems.BlinkTask, 0, count)
	for i := 0; i < count; i++ {
		star := systems.NewBlinkTask(opts.Renderer, randomStar(opts.Rand, boundary, opts.Tick))
		g.Stars = append(g.Stars, star)
		g.scheduler.Register(star)
	}

	return g, nil
}

// randomStar places a star on a playable cell with a random symbol and phase
func randomStar(rng *rand.Rand, b core.Boundary, tick time.Duration) systems.BlinkConfig {
	return systems.BlinkConfig{
		Row:    b.Top + 1 + rng.Intn(max(b.Height(), 1)),
		Col:    b.Left + 1 + rng.Intn(max(b.Width(), 1)),
		Symbol: constants.StarSymbols[rng.Intn(len(constants.StarSymbols))],
		Start:  systems.BlinkPhase(rng.Intn(4)),
		Offset: rng.Intn(constants.StarOffsetMaxTicks),
		Period: tick,
	}
}

// Scheduler exposes the scheduler, mainly for tests
func (g *Game) Scheduler() *engine.Scheduler {
	return g.scheduler
}

// Status exposes the scene metrics
func (g *Game) Status() *status.Registry {
	return g.status
}

// Run prepares the surface and ticks until ctx is cancelled
func (g *Game) Run(ctx context.Context) error {
	g.renderer.SetCursorVisible(false)
	g.renderer.DrawBorder()

	rows, cols := g.renderer.Size()
	g.log.WithFields(logrus.Fields{
		"rows":  rows,
		"cols":  cols,
		"tasks": g.scheduler.Len(),
		"tick":  g.tick,
	}).Info("scene started")

	err := g.scheduler.Run(ctx, g.tick)
	g.renderer.SetCursorVisible(true)
	g.renderer.Refresh()

	g.log.WithFields(logrus.Fields(g.status.Snapshot())).Info("scene stopped")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
