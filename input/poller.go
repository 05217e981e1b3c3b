package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/starfield/core"
)

// eventQueueSize bounds keys buffered between polls
const eventQueueSize = 100

// EventSource is the subset of tcell.Screen the poller reads from
type EventSource interface {
	PollEvent() tcell.Event
}

// EventPoller turns the blocking tcell event stream into a non-blocking key poll
// Quit keys are reported to onQuit as they arrive, so exit works even between ticks
type EventPoller struct {
	events chan KeyCode
	onQuit func()
}

// NewEventPoller starts the reader goroutine; onQuit may be nil
func NewEventPoller(source EventSource, onQuit func()) *EventPoller {
	p := &EventPoller{
		events: make(chan KeyCode, eventQueueSize),
		onQuit: onQuit,
	}
	core.Go(func() { p.read(source) })
	return p
}

// read forwards key events until the source is finalized (nil event)
func (p *EventPoller) read(source EventSource) {
	for {
		ev := source.PollEvent()
		if ev == nil {
			return
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}

		code := MapKey(key.Key(), key.Rune())
		if code == KeyQuit {
			// Quit bypasses the queue, the scene never sees it
			if p.onQuit != nil {
				p.onQuit()
			}
			continue
		}
		p.Push(code)
	}
}

// Push enqueues a key, dropping it when the queue is full
func (p *EventPoller) Push(code KeyCode) {
	select {
	case p.events <- code:
	default:
	}
}

// Poll returns the next pending key or KeyNone
func (p *EventPoller) Poll() KeyCode {
	select {
	case code := <-p.events:
		return code
	default:
		return KeyNone
	}
}
