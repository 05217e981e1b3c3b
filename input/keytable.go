package input

import "github.com/gdamore/tcell/v2"

// KeyCode is a recognized key, already stripped of terminal detail
type KeyCode uint8

const (
	KeyNone KeyCode = iota // No key pending; not an error
	KeyFire
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyQuit
	KeyOther
)

func (k KeyCode) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyFire:
		return "fire"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyQuit:
		return "quit"
	default:
		return "other"
	}
}

// specialKeys maps non-rune tcell keys
var specialKeys = map[tcell.Key]KeyCode{
	tcell.KeyUp:     KeyUp,
	tcell.KeyDown:   KeyDown,
	tcell.KeyLeft:   KeyLeft,
	tcell.KeyRight:  KeyRight,
	tcell.KeyEscape: KeyQuit,
	tcell.KeyCtrlC:  KeyQuit,
}

// runeKeys maps printable keys
var runeKeys = map[rune]KeyCode{
	' ': KeyFire,
	'q': KeyQuit,
}

// MapKey classifies a tcell key press
func MapKey(key tcell.Key, r rune) KeyCode {
	if key == tcell.KeyRune {
		if code, ok := runeKeys[r]; ok {
			return code
		}
		return KeyOther
	}
	if code, ok := specialKeys[key]; ok {
		return code
	}
	return KeyOther
}
