package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/starfield/status"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// countingRefresher records refresh calls
type countingRefresher struct {
	calls int
}

func (c *countingRefresher) Refresh() { c.calls++ }

// countdownTask finishes after a fixed number of steps
type countdownTask struct {
	name      string
	remaining int
	steps     int
	trace     *[]string
}

func (c *countdownTask) Step() Status {
	c.steps++
	if c.trace != nil {
		*c.trace = append(*c.trace, c.name)
	}
	c.remaining--
	if c.remaining <= 0 {
		return Done
	}
	return Continue
}

func TestTickStepsInRegistrationOrder(t *testing.T) {
	var trace []string
	s := NewScheduler(nil, nil)
	for _, name := range []string{"a", "b", "c"} {
		s.Register(&countdownTask{name: name, remaining: 10, trace: &trace})
	}

	s.Tick()
	s.Tick()

	want := []string{"a", "b", "c", "a", "b", "c"}
	if len(trace) != len(want) {
		t.Fatalf("Expected %d steps, got %d", len(want), len(trace))
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Errorf("Step %d: expected %s, got %s", i, want[i], trace[i])
		}
	}
}

func TestTickPrunesDoneTasks(t *testing.T) {
	s := NewScheduler(nil, nil)
	short := &countdownTask{remaining: 1}
	long := &countdownTask{remaining: 3}
	s.Register(short)
	s.Register(long)

	s.Tick()
	if s.Len() != 1 {
		t.Fatalf("Expected 1 live task after first tick, got %d", s.Len())
	}

	for i := 0; i < 5; i++ {
		s.Tick()
	}

	if short.steps != 1 {
		t.Errorf("Done task was stepped again: %d steps", short.steps)
	}
	if long.steps != 3 {
		t.Errorf("Expected 3 steps for long task, got %d", long.steps)
	}
	if s.Len() != 0 {
		t.Errorf("Expected empty live set, got %d", s.Len())
	}
	if s.Ticks() != 6 {
		t.Errorf("Expected 6 ticks, got %d", s.Ticks())
	}
}

func TestRegisterDuringTickRunsNextTick(t *testing.T) {
	s := NewScheduler(nil, nil)
	child := &countdownTask{remaining: 5}
	spawned := false

	s.Register(TaskFunc(func() Status {
		if !spawned {
			s.Register(child)
			spawned = true
		}
		return Continue
	}))

	s.Tick()
	if child.steps != 0 {
		t.Fatalf("Task registered mid-tick ran in the same tick")
	}
	if s.Len() != 2 {
		t.Fatalf("Expected 2 live tasks, got %d", s.Len())
	}

	s.Tick()
	if child.steps != 1 {
		t.Errorf("Expected child stepped once on next tick, got %d", child.steps)
	}
}

func TestRegisterDuringTickByFinishingTask(t *testing.T) {
	s := NewScheduler(nil, nil)
	child := &countdownTask{remaining: 5}

	s.Register(TaskFunc(func() Status {
		s.Register(child)
		return Done
	}))

	s.Tick()
	if s.Len() != 1 {
		t.Fatalf("Expected only the child to survive, got %d tasks", s.Len())
	}
	s.Tick()
	if child.steps != 1 {
		t.Errorf("Expected child to run once, got %d", child.steps)
	}
}

func TestRefreshOncePerTick(t *testing.T) {
	ref := &countingRefresher{}
	s := NewScheduler(ref, nil)
	for i := 0; i < 4; i++ {
		s.Register(&countdownTask{remaining: 100})
	}

	s.Tick()
	s.Tick()
	s.Tick()

	if ref.calls != 3 {
		t.Errorf("Expected 3 refreshes, got %d", ref.calls)
	}

	// Empty live set still refreshes
	empty := NewScheduler(ref, nil)
	empty.Tick()
	if ref.calls != 4 {
		t.Errorf("Expected refresh on empty tick, got %d calls", ref.calls)
	}
}

func TestPanickingTaskLoggedAndRemoved(t *testing.T) {
	logger, hook := test.NewNullLogger()
	s := NewScheduler(nil, logger)

	bad := 0
	s.Register(TaskFunc(func() Status {
		bad++
		panic("boom")
	}))
	healthy := &countdownTask{remaining: 10}
	s.Register(healthy)

	s.Tick()
	s.Tick()

	if bad != 1 {
		t.Errorf("Expected panicking task to run once, ran %d times", bad)
	}
	if healthy.steps != 2 {
		t.Errorf("Expected healthy task to keep running, got %d steps", healthy.steps)
	}

	entries := hook.AllEntries()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 log entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Level != logrus.ErrorLevel {
		t.Errorf("Expected error level, got %v", entry.Level)
	}
	if entry.Data["panic"] != "boom" {
		t.Errorf("Expected panic value in log fields, got %v", entry.Data["panic"])
	}
	if entry.Data["task"] != "engine.TaskFunc" {
		t.Errorf("Expected task type in log fields, got %v", entry.Data["task"])
	}
}

func TestRegisterNilIgnored(t *testing.T) {
	s := NewScheduler(nil, nil)
	s.Register(nil)
	if s.Len() != 0 {
		t.Errorf("Expected nil task to be ignored, got %d", s.Len())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ref := &countingRefresher{}
	s := NewScheduler(ref, nil)
	s.Register(&countdownTask{remaining: 1 << 30})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, time.Millisecond)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	if s.Ticks() == 0 {
		t.Error("Expected at least one tick before cancel")
	}
}

func TestRunRejectsInvalidPeriod(t *testing.T) {
	s := NewScheduler(nil, nil)
	if err := s.Run(context.Background(), 0); err == nil {
		t.Error("Expected error for zero period")
	}
}

func TestStatusString(t *testing.T) {
	if Continue.String() != "continue" || Done.String() != "done" {
		t.Errorf("Unexpected status strings: %s, %s", Continue, Done)
	}
}

func TestSchedulerStatus(t *testing.T) {
	reg := status.NewRegistry()
	s := NewScheduler(nil, nil)
	s.SetStatus(reg)

	s.Register(&countdownTask{remaining: 2})
	s.Register(&countdownTask{remaining: 10})
	s.Register(TaskFunc(func() Status { panic("fault") }))

	s.Tick()
	s.Tick()

	if got := reg.Ints.Get(status.SchedulerTicks).Load(); got != 2 {
		t.Errorf("Expected 2 ticks, got %d", got)
	}
	if got := reg.Ints.Get(status.SchedulerTasks).Load(); got != 1 {
		t.Errorf("Expected 1 live task, got %d", got)
	}
	if got := reg.Ints.Get(status.SchedulerFaults).Load(); got != 1 {
		t.Errorf("Expected 1 fault, got %d", got)
	}
	if got := reg.Floats.Get(status.SchedulerTickMs).Get(); got < 0 {
		t.Errorf("Expected non-negative tick duration, got %v", got)
	}
}
