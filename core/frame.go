package core

import "strings"

// Frame is an immutable multi-line glyph sprite
// Rows are stored as runes so width is measured in cells, not bytes
type Frame struct {
	rows  [][]rune
	width int
}

// NewFrame builds a frame from sprite text, one row per line
// A trailing newline does not produce an empty last row; CRLF line endings are accepted
func NewFrame(text string) *Frame {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	f := &Frame{rows: make([][]rune, len(lines))}
	for i, line := range lines {
		row := []rune(strings.TrimSuffix(line, "\r"))
		f.rows[i] = row
		f.width = max(f.width, len(row))
	}
	return f
}

// Height returns the number of rows
func (f *Frame) Height() int {
	return len(f.rows)
}

// Width returns the length of the longest row
func (f *Frame) Width() int {
	return f.width
}

// Each calls fn for every cell of the frame, blanks included
func (f *Frame) Each(fn func(row, col int, r rune)) {
	for y, line := range f.rows {
		for x, r := range line {
			fn(y, x, r)
		}
	}
}
