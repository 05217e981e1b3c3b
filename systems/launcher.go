package systems

import (
	"sync/atomic"

	"github.com/lixenwraith/starfield/core"
	"github.com/lixenwraith/starfield/engine"
	"github.com/lixenwraith/starfield/status"
	"github.com/sirupsen/logrus"
)

// LauncherTask owns the projectile spawn policy
// At most one projectile is live; requests arriving while one flies are dropped
type LauncherTask struct {
	sched    Registrar
	canvas   Canvas
	beeper   Beeper
	requests <-chan FireRequest
	velocity core.Vector
	log      logrus.FieldLogger

	live *ProjectileTask

	statShots   *atomic.Int64
	statDropped *atomic.Int64
}

// NewLauncherTask creates a launcher reading requests; logger may be nil
func NewLauncherTask(sched Registrar, canvas Canvas, beeper Beeper, requests <-chan FireRequest, velocity core.Vector, logger logrus.FieldLogger) *LauncherTask {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LauncherTask{
		sched:    sched,
		canvas:   canvas,
		beeper:   beeper,
		requests: requests,
		velocity: velocity,
		log:      logger,
	}
}

// SetStatus publishes shot counters to reg
func (l *LauncherTask) SetStatus(reg *status.Registry) {
	l.statShots = reg.Ints.Get(status.LauncherShots)
	l.statDropped = reg.Ints.Get(status.LauncherDropped)
}

// Step drains pending requests; never completes
func (l *LauncherTask) Step() engine.Status {
	for {
		select {
		case req := <-l.requests:
			l.launch(req)
		default:
			return engine.Continue
		}
	}
}

func (l *LauncherTask) launch(req FireRequest) {
	if l.Live() {
		if l.statDropped != nil {
			l.statDropped.Add(1)
		}
		return
	}

	l.live = NewProjectileTask(l.canvas, l.beeper, req.Origin, l.velocity)
	l.sched.Register(l.live)
	if l.statShots != nil {
		l.statShots.Add(1)
	}
	l.log.WithFields(logrus.Fields{
		"row": req.Origin.Row,
		"col": req.Origin.Col,
	}).Debug("projectile launched")
}

// Live reports whether a projectile is still in the scheduler
func (l *LauncherTask) Live() bool {
	if l.live == nil {
		return false
	}
	if l.live.Done() || !l.sched.Contains(l.live) {
		l.live = nil
		return false
	}
	return true
}
