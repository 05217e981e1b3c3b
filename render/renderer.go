package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/starfield/core"
)

// Renderer draws frames and glyphs onto a tcell screen
// Surface extent is read once at construction; resizes are not tracked
type Renderer struct {
	screen   tcell.Screen
	rows     int
	cols     int
	boundary core.Boundary
}

// NewRenderer wraps screen, reserving margin cells on every side for the border
func NewRenderer(screen tcell.Screen, margin int) *Renderer {
	cols, rows := screen.Size()
	return &Renderer{
		screen:   screen,
		rows:     rows,
		cols:     cols,
		boundary: core.NewBoundary(rows, cols, margin),
	}
}

// Size returns the surface extent as rows, columns
func (r *Renderer) Size() (rows, cols int) {
	return r.rows, r.cols
}

// Boundary returns the playfield
func (r *Renderer) Boundary() core.Boundary {
	return r.boundary
}

// Draw overlays frame at pos, or blanks the frame's footprint when erase is set
// Cells outside the surface are clipped, blank glyphs are transparent
func (r *Renderer) Draw(pos core.Position, frame *core.Frame, erase bool) {
	if frame == nil {
		return
	}
	startRow, startCol := pos.Rounded()

	frame.Each(func(dy, dx int, glyph rune) {
		if glyph == ' ' {
			return
		}
		if erase {
			glyph = ' '
		}
		r.put(startRow+dy, startCol+dx, glyph, StyleNormal)
	})
}

// PutGlyph writes a single glyph with the same clipping rules as Draw
func (r *Renderer) PutGlyph(row, col int, glyph rune, style tcell.Style) {
	r.put(row, col, glyph, style)
}

// EraseGlyph blanks a single cell
func (r *Renderer) EraseGlyph(row, col int) {
	r.put(row, col, ' ', StyleNormal)
}

// put is the single write path; the bottom-right surface cell is never written
func (r *Renderer) put(row, col int, glyph rune, style tcell.Style) {
	if row < 0 || row >= r.rows || col < 0 || col >= r.cols {
		return
	}
	if row == r.rows-1 && col == r.cols-1 {
		return
	}
	r.screen.SetContent(col, row, glyph, nil, style)
}

// DrawBorder draws a box on the boundary lines
func (r *Renderer) DrawBorder() {
	b := r.boundary
	if b.Bottom <= b.Top || b.Right <= b.Left {
		return
	}

	for col := b.Left + 1; col < b.Right; col++ {
		r.put(b.Top, col, borderHorizontal, StyleBorder)
		r.put(b.Bottom, col, borderHorizontal, StyleBorder)
	}
	for row := b.Top + 1; row < b.Bottom; row++ {
		r.put(row, b.Left, borderVertical, StyleBorder)
		r.put(row, b.Right, borderVertical, StyleBorder)
	}
	r.put(b.Top, b.Left, borderTopLeft, StyleBorder)
	r.put(b.Top, b.Right, borderTopRight, StyleBorder)
	r.put(b.Bottom, b.Left, borderBottomLeft, StyleBorder)
	// Writes the corner unless it is the restricted bottom-right surface cell
	r.put(b.Bottom, b.Right, borderBottomRight, StyleBorder)
}

// SetCursorVisible hides the cursor, or parks it on the first playable cell
func (r *Renderer) SetCursorVisible(visible bool) {
	if !visible {
		r.screen.HideCursor()
		return
	}
	r.screen.ShowCursor(r.boundary.Left+1, r.boundary.Top+1)
}

// Beep rings the terminal bell
func (r *Renderer) Beep() {
	_ = r.screen.Beep()
}

// Refresh redraws the border and flushes pending cells to the terminal
func (r *Renderer) Refresh() {
	r.DrawBorder()
	r.screen.Show()
}
