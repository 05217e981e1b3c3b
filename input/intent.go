package input

// Poller returns pending key codes without blocking
// KeyNone signals that nothing is pending
type Poller interface {
	Poll() KeyCode
}

// Intent is the reduction of all keys buffered since the previous tick
type Intent struct {
	DRow, DCol int
	Fire       bool
}

// maxKeysPerRead bounds a single drain so a flooding source cannot stall a tick
const maxKeysPerRead = 256

// ReadIntent drains p; the last non-zero direction per axis wins
func ReadIntent(p Poller) Intent {
	var intent Intent
	for i := 0; i < maxKeysPerRead; i++ {
		code := p.Poll()
		switch code {
		case KeyNone:
			return intent
		case KeyUp:
			intent.DRow = -1
		case KeyDown:
			intent.DRow = 1
		case KeyLeft:
			intent.DCol = -1
		case KeyRight:
			intent.DCol = 1
		case KeyFire:
			intent.Fire = true
		}
	}
	return intent
}
