package systems

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/starfield/core"
	"github.com/lixenwraith/starfield/input"
)

type cell struct {
	row, col int
}

type glyphWrite struct {
	row, col int
	glyph    rune
	style    tcell.Style
}

// recordingCanvas keeps a sparse grid of visible glyphs plus the write log
type recordingCanvas struct {
	boundary core.Boundary
	grid     map[cell]rune
	writes   []glyphWrite
	frames   int
}

func newRecordingCanvas(rows, cols int) *recordingCanvas {
	return &recordingCanvas{
		boundary: core.NewBoundary(rows, cols, 1),
		grid:     make(map[cell]rune),
	}
}

func (c *recordingCanvas) Draw(pos core.Position, frame *core.Frame, erase bool) {
	c.frames++
	row, col := pos.Rounded()
	frame.Each(func(dy, dx int, r rune) {
		if r == ' ' {
			return
		}
		if erase {
			delete(c.grid, cell{row + dy, col + dx})
			return
		}
		c.grid[cell{row + dy, col + dx}] = r
	})
}

func (c *recordingCanvas) PutGlyph(row, col int, glyph rune, style tcell.Style) {
	c.writes = append(c.writes, glyphWrite{row, col, glyph, style})
	c.grid[cell{row, col}] = glyph
}

func (c *recordingCanvas) EraseGlyph(row, col int) {
	c.writes = append(c.writes, glyphWrite{row, col, ' ', tcell.StyleDefault})
	delete(c.grid, cell{row, col})
}

func (c *recordingCanvas) Boundary() core.Boundary {
	return c.boundary
}

// countingBeeper counts signals
type countingBeeper struct {
	beeps int
}

func (b *countingBeeper) Beep() { b.beeps++ }

// queuePoller hands out one batch of keys per tick
type queuePoller struct {
	batches [][]input.KeyCode
	current []input.KeyCode
	started bool
}

// Poll returns keys of the current batch, KeyNone ends the batch and loads the next
func (q *queuePoller) Poll() input.KeyCode {
	if !q.started {
		q.load()
		q.started = true
	}
	if len(q.current) == 0 {
		q.started = false
		return input.KeyNone
	}
	k := q.current[0]
	q.current = q.current[1:]
	return k
}

func (q *queuePoller) load() {
	if len(q.batches) == 0 {
		q.current = nil
		return
	}
	q.current = q.batches[0]
	q.batches = q.batches[1:]
}
