// Package systems holds the animated entities of the scene, each an engine.Task state machine
package systems

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/starfield/core"
	"github.com/lixenwraith/starfield/engine"
)

// Canvas is the drawing surface tasks write to; render.Renderer implements it
type Canvas interface {
	Draw(pos core.Position, frame *core.Frame, erase bool)
	PutGlyph(row, col int, glyph rune, style tcell.Style)
	EraseGlyph(row, col int)
	Boundary() core.Boundary
}

// Beeper emits the one-shot audible signal
type Beeper interface {
	Beep()
}

// Registrar is the part of the scheduler the launcher needs
type Registrar interface {
	Register(task engine.Task)
	Contains(task engine.Task) bool
}

// TicksFor converts a duration to a whole number of ticks, at least one
func TicksFor(d, period time.Duration) int {
	if period <= 0 {
		return 1
	}
	return max(int(d/period), 1)
}
