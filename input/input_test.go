package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

// scriptedPoller replays a fixed key sequence
type scriptedPoller struct {
	keys []KeyCode
}

func (s *scriptedPoller) Poll() KeyCode {
	if len(s.keys) == 0 {
		return KeyNone
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want KeyCode
	}{
		{tcell.KeyUp, 0, KeyUp},
		{tcell.KeyDown, 0, KeyDown},
		{tcell.KeyLeft, 0, KeyLeft},
		{tcell.KeyRight, 0, KeyRight},
		{tcell.KeyRune, ' ', KeyFire},
		{tcell.KeyRune, 'q', KeyQuit},
		{tcell.KeyRune, 'x', KeyOther},
		{tcell.KeyEscape, 0, KeyQuit},
		{tcell.KeyCtrlC, 0, KeyQuit},
		{tcell.KeyF1, 0, KeyOther},
	}

	for _, tt := range tests {
		if got := MapKey(tt.key, tt.r); got != tt.want {
			t.Errorf("MapKey(%v, %q) = %v, want %v", tt.key, tt.r, got, tt.want)
		}
	}
}

func TestReadIntentLastWinsPerAxis(t *testing.T) {
	p := &scriptedPoller{keys: []KeyCode{KeyUp, KeyLeft, KeyDown, KeyOther, KeyRight, KeyLeft}}
	intent := ReadIntent(p)

	if intent.DRow != 1 {
		t.Errorf("Expected row direction 1, got %d", intent.DRow)
	}
	if intent.DCol != -1 {
		t.Errorf("Expected column direction -1, got %d", intent.DCol)
	}
	if intent.Fire {
		t.Errorf("Unexpected flags: %+v", intent)
	}
	if p.Poll() != KeyNone {
		t.Error("Expected poller to be drained")
	}
}

func TestReadIntentFire(t *testing.T) {
	intent := ReadIntent(&scriptedPoller{keys: []KeyCode{KeyFire, KeyUp}})
	if !intent.Fire || intent.DRow != -1 || intent.DCol != 0 {
		t.Errorf("Unexpected intent: %+v", intent)
	}

	if got := ReadIntent(&scriptedPoller{}); got != (Intent{}) {
		t.Errorf("Expected zero intent with no keys, got %+v", got)
	}
}

// floodPoller never runs dry
type floodPoller struct{ polls int }

func (f *floodPoller) Poll() KeyCode {
	f.polls++
	return KeyRight
}

func TestReadIntentBounded(t *testing.T) {
	f := &floodPoller{}
	intent := ReadIntent(f)

	if f.polls != maxKeysPerRead {
		t.Errorf("Expected %d polls, got %d", maxKeysPerRead, f.polls)
	}
	if intent.DCol != 1 {
		t.Errorf("Expected right direction, got %d", intent.DCol)
	}
}

// chanSource feeds events to the poller goroutine; nil ends it
type chanSource chan tcell.Event

func (c chanSource) PollEvent() tcell.Event {
	return <-c
}

func TestEventPollerNonBlocking(t *testing.T) {
	src := make(chanSource)
	defer close(src)

	quit := make(chan struct{}, 1)
	p := NewEventPoller(src, func() { quit <- struct{}{} })

	if got := p.Poll(); got != KeyNone {
		t.Fatalf("Expected KeyNone on empty queue, got %v", got)
	}

	src <- tcell.NewEventResize(80, 24)
	p.Push(KeyUp)
	if got := p.Poll(); got != KeyUp {
		t.Errorf("Expected pushed KeyUp, got %v", got)
	}

	done := make(chan struct{})
	go func() {
		src <- nil
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Poller goroutine did not consume the terminating event")
	}

	select {
	case <-quit:
		t.Error("Unexpected quit signal")
	default:
	}
}

func TestEventPollerQueueFull(t *testing.T) {
	p := &EventPoller{events: make(chan KeyCode, 2)}
	p.Push(KeyUp)
	p.Push(KeyDown)
	p.Push(KeyLeft)

	if p.Poll() != KeyUp || p.Poll() != KeyDown || p.Poll() != KeyNone {
		t.Error("Expected overflow key to be dropped")
	}
}

func TestEventPollerQuitBypassesQueue(t *testing.T) {
	src := make(chanSource)
	quit := make(chan struct{}, 1)
	p := NewEventPoller(src, func() { quit <- struct{}{} })

	src <- tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)
	src <- tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)
	// The unbuffered send of nil returns only after both keys were handled
	src <- nil

	select {
	case <-quit:
	case <-time.After(time.Second):
		t.Fatal("Expected quit callback")
	}

	if got := p.Poll(); got != KeyFire {
		t.Errorf("Expected only the fire key queued, got %v", got)
	}
	if got := p.Poll(); got != KeyNone {
		t.Errorf("Expected quit key kept out of the queue, got %v", got)
	}
}
