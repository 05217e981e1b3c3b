package core

// Boundary holds the border lines of the playfield
// Playable cells are strictly between them: Top < row < Bottom, Left < col < Right
type Boundary struct {
	Top, Left     int
	Bottom, Right int
}

// NewBoundary returns the boundary of a rows x cols surface shrunk by margin
// margin 1 places the border on the outermost surface cells
func NewBoundary(rows, cols, margin int) Boundary {
	return Boundary{
		Top:    margin - 1,
		Left:   margin - 1,
		Bottom: rows - margin,
		Right:  cols - margin,
	}
}

// Height returns the number of playable rows
func (b Boundary) Height() int {
	return max(b.Bottom-b.Top-1, 0)
}

// Width returns the number of playable columns
func (b Boundary) Width() int {
	return max(b.Right-b.Left-1, 0)
}

// Inside reports whether p lies strictly within the border lines
func (b Boundary) Inside(p Position) bool {
	return float64(b.Top) < p.Row && p.Row < float64(b.Bottom) &&
		float64(b.Left) < p.Col && p.Col < float64(b.Right)
}

// ContainsCell reports whether the integer cell is playable
func (b Boundary) ContainsCell(row, col int) bool {
	return b.Top < row && row < b.Bottom && b.Left < col && col < b.Right
}

// Center returns the top-left position that centres a height x width footprint
func (b Boundary) Center(height, width int) Position {
	return Position{
		Row: float64(b.Top + 1 + (b.Height()-height)/2),
		Col: float64(b.Left + 1 + (b.Width()-width)/2),
	}
}

// ClampFrame clamps a top-left position so a height x width footprint stays playable
// When the footprint is larger than the playfield the top/left edge wins
func (b Boundary) ClampFrame(p Position, height, width int) Position {
	minRow, minCol := float64(b.Top+1), float64(b.Left+1)
	maxRow := float64(b.Bottom - max(height, 1))
	maxCol := float64(b.Right - max(width, 1))

	p.Row = max(minRow, min(p.Row, maxRow))
	p.Col = max(minCol, min(p.Col, maxCol))
	return p
}
