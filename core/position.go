package core

import "math"

// Position is a real-valued surface coordinate
// Fractional parts carry sub-cell velocities and are rounded at draw time
type Position struct {
	Row, Col float64
}

// Vector is a per-tick displacement in cells
type Vector struct {
	DRow, DCol float64
}

// Add returns the position displaced by v
func (p Position) Add(v Vector) Position {
	return Position{Row: p.Row + v.DRow, Col: p.Col + v.DCol}
}

// Rounded returns the nearest cell, halves rounding away from zero
func (p Position) Rounded() (row, col int) {
	return int(math.Round(p.Row)), int(math.Round(p.Col))
}
