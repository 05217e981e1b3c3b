package engine

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/starfield/status"
	"github.com/sirupsen/logrus"
)

// Scheduler advances a live set of tasks in lockstep on a single goroutine
// Not safe for concurrent use; Register is meant to be called from tasks or before Run
type Scheduler struct {
	tasks     []Task
	refresher Refresher
	log       logrus.FieldLogger
	ticks     uint64

	// Cached metric pointers, nil until SetStatus
	statTicks  *atomic.Int64
	statTasks  *atomic.Int64
	statFaults *atomic.Int64
	statTickMs *status.AtomicFloat
}

// NewScheduler creates a scheduler; refresher may be nil, logger nil discards
func NewScheduler(refresher Refresher, logger logrus.FieldLogger) *Scheduler {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &Scheduler{
		refresher: refresher,
		log:       logger,
	}
}

// SetStatus publishes scheduler metrics to reg
func (s *Scheduler) SetStatus(reg *status.Registry) {
	s.statTicks = reg.Ints.Get(status.SchedulerTicks)
	s.statTasks = reg.Ints.Get(status.SchedulerTasks)
	s.statFaults = reg.Ints.Get(status.SchedulerFaults)
	s.statTickMs = reg.Floats.Get(status.SchedulerTickMs)
}

// Register adds a task; one registered mid-tick first runs on the next tick
func (s *Scheduler) Register(task Task) {
	if task == nil {
		return
	}
	s.tasks = append(s.tasks, task)
}

// Len returns the number of live tasks
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Contains reports whether task is in the live set
// Comparing two func-typed tasks panics, so callers pass pointer tasks
func (s *Scheduler) Contains(task Task) bool {
	for _, t := range s.tasks {
		if t == task {
			return true
		}
	}
	return false
}

// Ticks returns the number of completed ticks
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// Tick steps every task registered before the call once, prunes finished ones, then refreshes
func (s *Scheduler) Tick() {
	start := time.Now()
	pass := len(s.tasks)
	live := make([]Task, 0, pass)

	for i := 0; i < pass; i++ {
		task := s.tasks[i]
		if s.step(task) == Continue {
			live = append(live, task)
		}
	}

	// Tasks appended during the pass sit after index pass
	live = append(live, s.tasks[pass:]...)
	clear(s.tasks)
	s.tasks = live
	s.ticks++

	if s.refresher != nil {
		s.refresher.Refresh()
	}

	if s.statTicks != nil {
		s.statTicks.Add(1)
		s.statTasks.Store(int64(len(s.tasks)))
		s.statTickMs.Set(float64(time.Since(start).Microseconds()) / 1000)
	}
}

// step runs one task, a panic counts as completion
func (s *Scheduler) step(task Task) (result Status) {
	defer func() {
		if r := recover(); r != nil {
			s.log.WithFields(logrus.Fields{
				"task":  fmt.Sprintf("%T", task),
				"tick":  s.ticks,
				"panic": r,
			}).Error("task failed, removing")
			if s.statFaults != nil {
				s.statFaults.Add(1)
			}
			result = Done
		}
	}()
	return task.Step()
}

// Run ticks every period until ctx is cancelled
func (s *Scheduler) Run(ctx context.Context, period time.Duration) error {
	if period <= 0 {
		return fmt.Errorf("scheduler: invalid tick period %v", period)
	}

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Tick()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
