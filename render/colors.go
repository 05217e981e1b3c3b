package render

import "github.com/gdamore/tcell/v2"

// Star intensity styles, mirroring curses A_DIM / A_NORMAL / A_BOLD
var (
	StyleNormal = tcell.StyleDefault
	StyleDim    = tcell.StyleDefault.Dim(true)
	StyleBold   = tcell.StyleDefault.Bold(true)
	StyleBorder = tcell.StyleDefault
)

// Border glyphs
const (
	borderHorizontal  = tcell.RuneHLine
	borderVertical    = tcell.RuneVLine
	borderTopLeft     = tcell.RuneULCorner
	borderTopRight    = tcell.RuneURCorner
	borderBottomLeft  = tcell.RuneLLCorner
	borderBottomRight = tcell.RuneLRCorner
)
