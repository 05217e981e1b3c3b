package systems

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/starfield/constants"
	"github.com/lixenwraith/starfield/engine"
	"github.com/lixenwraith/starfield/render"
)

// BlinkPhase is one step of a star's twinkle cycle
type BlinkPhase uint8

const (
	PhaseDim BlinkPhase = iota
	PhaseRising
	PhaseBold
	PhaseFalling
	phaseCount
)

func (p BlinkPhase) String() string {
	switch p {
	case PhaseDim:
		return "dim"
	case PhaseRising:
		return "rising"
	case PhaseBold:
		return "bold"
	case PhaseFalling:
		return "falling"
	default:
		return "unknown"
	}
}

// Style returns the intensity attribute drawn on entry to the phase
func (p BlinkPhase) Style() tcell.Style {
	switch p {
	case PhaseDim:
		return render.StyleDim
	case PhaseBold:
		return render.StyleBold
	default:
		return render.StyleNormal
	}
}

// BlinkConfig places one star
type BlinkConfig struct {
	Row, Col int
	Symbol   rune
	// Start is the first phase drawn
	Start BlinkPhase
	// Offset extra ticks are added to the first phase only, desynchronizing the field
	Offset int
	// Period is the scheduler tick, used to convert phase durations
	Period time.Duration
}

// BlinkTask twinkles a single star forever
type BlinkTask struct {
	canvas Canvas
	row    int
	col    int
	symbol rune

	next    BlinkPhase // Phase drawn when wait reaches zero
	shown   BlinkPhase // Phase currently on screen
	started bool
	wait    int
	offset  int
	ticks   [phaseCount]int
}

// NewBlinkTask creates a star; zero Period uses the default tick
func NewBlinkTask(canvas Canvas, cfg BlinkConfig) *BlinkTask {
	period := cfg.Period
	if period <= 0 {
		period = constants.TickInterval
	}
	symbol := cfg.Symbol
	if symbol == 0 {
		symbol = '*'
	}

	normal := TicksFor(constants.BlinkNormalDuration, period)
	return &BlinkTask{
		canvas: canvas,
		row:    cfg.Row,
		col:    cfg.Col,
		symbol: symbol,
		next:   cfg.Start % phaseCount,
		shown:  cfg.Start % phaseCount,
		offset: max(cfg.Offset, 0),
		ticks: [phaseCount]int{
			PhaseDim:     TicksFor(constants.BlinkDimDuration, period),
			PhaseRising:  normal,
			PhaseBold:    TicksFor(constants.BlinkBoldDuration, period),
			PhaseFalling: normal,
		},
	}
}

// Step draws the star on phase entry and otherwise counts down the phase
// The drawing tick is the first tick of the phase
func (b *BlinkTask) Step() engine.Status {
	if b.wait > 0 {
		b.wait--
		return engine.Continue
	}

	phase := b.next
	b.canvas.PutGlyph(b.row, b.col, b.symbol, phase.Style())
	b.shown = phase
	b.wait = b.ticks[phase] - 1
	if !b.started {
		b.wait += b.offset
		b.started = true
	}
	b.next = (phase + 1) % phaseCount

	return engine.Continue
}

// Phase returns the phase currently on screen
func (b *BlinkTask) Phase() BlinkPhase {
	return b.shown
}

// Position returns the star's cell
func (b *BlinkTask) Position() (row, col int) {
	return b.row, b.col
}
