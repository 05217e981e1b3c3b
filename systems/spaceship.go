package systems

import (
	"github.com/lixenwraith/starfield/core"
	"github.com/lixenwraith/starfield/engine"
	"github.com/lixenwraith/starfield/input"
)

// FireRequest asks the launcher for a shot from Origin
type FireRequest struct {
	Origin core.Position
}

// SpaceshipTask moves and animates the player's ship; it never completes
// Animation and movement share one task so the active frame is never published outside it
type SpaceshipTask struct {
	canvas Canvas
	poller input.Poller
	frames []*core.Frame
	fire   chan<- FireRequest

	index  int
	pos    core.Position
	intent input.Intent

	drawn      bool
	drawnPos   core.Position
	drawnFrame *core.Frame
}

// NewSpaceshipTask places the ship at start; fire may be nil to disable shooting
// frames must hold at least one frame
func NewSpaceshipTask(canvas Canvas, poller input.Poller, frames []*core.Frame, start core.Position, fire chan<- FireRequest) *SpaceshipTask {
	return &SpaceshipTask{
		canvas: canvas,
		poller: poller,
		frames: frames,
		fire:   fire,
		// First advance lands on frame 0
		index: len(frames) - 1,
		pos:   start,
	}
}

// Step erases the previous frame, applies input, advances the animation and redraws
func (s *SpaceshipTask) Step() engine.Status {
	if s.drawn {
		s.canvas.Draw(s.drawnPos, s.drawnFrame, true)
		s.drawn = false
	}
	if len(s.frames) == 0 {
		return engine.Continue
	}

	if s.poller != nil {
		s.intent = input.ReadIntent(s.poller)
	}

	s.index = (s.index + 1) % len(s.frames)
	frame := s.frames[s.index]

	candidate := s.pos.Add(core.Vector{DRow: float64(s.intent.DRow), DCol: float64(s.intent.DCol)})
	s.pos = s.canvas.Boundary().ClampFrame(candidate, frame.Height(), frame.Width())

	s.canvas.Draw(s.pos, frame, false)
	s.drawn = true
	s.drawnPos = s.pos
	s.drawnFrame = frame

	if s.intent.Fire {
		s.requestFire(frame)
	}
	return engine.Continue
}

// requestFire signals the launcher without blocking; a full queue drops the request
func (s *SpaceshipTask) requestFire(frame *core.Frame) {
	if s.fire == nil {
		return
	}
	origin := core.Position{
		Row: s.pos.Row - 1,
		Col: s.pos.Col + float64(frame.Width()/2),
	}
	select {
	case s.fire <- FireRequest{Origin: origin}:
	default:
	}
}

// Position returns the top-left of the ship's current frame
func (s *SpaceshipTask) Position() core.Position {
	return s.pos
}

// Frame returns the active animation frame, nil before the first step
func (s *SpaceshipTask) Frame() *core.Frame {
	if !s.drawn {
		return nil
	}
	return s.drawnFrame
}

// Intent returns the last intent read from input
func (s *SpaceshipTask) Intent() input.Intent {
	return s.intent
}
