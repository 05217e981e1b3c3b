package systems

import (
	"github.com/lixenwraith/starfield/constants"
	"github.com/lixenwraith/starfield/core"
	"github.com/lixenwraith/starfield/engine"
	"github.com/lixenwraith/starfield/render"
)

type projectileState uint8

const (
	projectileFlash projectileState = iota
	projectileLoaded
	projectileLaunch
	projectileFlight
	projectileDone
)

// ProjectileTask animates a single shot: flash, load, then straight flight until it leaves the boundary
type ProjectileTask struct {
	canvas Canvas
	beeper Beeper

	pos      core.Position
	velocity core.Vector
	glyph    rune

	state    projectileState
	drawnRow int
	drawnCol int
}

// NewProjectileTask launches a shot from origin; beeper may be nil
func NewProjectileTask(canvas Canvas, beeper Beeper, origin core.Position, velocity core.Vector) *ProjectileTask {
	glyph := rune(constants.GlyphTrailVertical)
	if velocity.DCol != 0 {
		glyph = constants.GlyphTrailHorizontal
	}
	return &ProjectileTask{
		canvas:   canvas,
		beeper:   beeper,
		pos:      origin,
		velocity: velocity,
		glyph:    glyph,
	}
}

// Step advances the shot by one tick
func (p *ProjectileTask) Step() engine.Status {
	switch p.state {
	case projectileFlash:
		p.drawnRow, p.drawnCol = p.pos.Rounded()
		p.canvas.PutGlyph(p.drawnRow, p.drawnCol, constants.GlyphMuzzleFlash, render.StyleNormal)
		p.state = projectileLoaded
		return engine.Continue

	case projectileLoaded:
		p.canvas.PutGlyph(p.drawnRow, p.drawnCol, constants.GlyphLoaded, render.StyleNormal)
		p.state = projectileLaunch
		return engine.Continue

	case projectileLaunch:
		p.canvas.EraseGlyph(p.drawnRow, p.drawnCol)
		if p.beeper != nil {
			p.beeper.Beep()
		}
		p.state = projectileFlight
		return p.advance()

	case projectileFlight:
		p.canvas.EraseGlyph(p.drawnRow, p.drawnCol)
		return p.advance()

	default:
		return engine.Done
	}
}

// advance moves one velocity step and draws the trail, or finishes once outside the boundary
// A position that rounds onto a border cell counts as outside
func (p *ProjectileTask) advance() engine.Status {
	p.pos = p.pos.Add(p.velocity)
	b := p.canvas.Boundary()
	row, col := p.pos.Rounded()
	if !b.Inside(p.pos) || !b.ContainsCell(row, col) {
		p.state = projectileDone
		return engine.Done
	}

	p.drawnRow, p.drawnCol = row, col
	p.canvas.PutGlyph(row, col, p.glyph, render.StyleNormal)
	return engine.Continue
}

// Done reports whether the shot has left the boundary
func (p *ProjectileTask) Done() bool {
	return p.state == projectileDone
}

// Position returns the current real-valued position
func (p *ProjectileTask) Position() core.Position {
	return p.pos
}

// Glyph returns the trail glyph chosen from the velocity axis
func (p *ProjectileTask) Glyph() rune {
	return p.glyph
}
