package renderers

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/alpha-strike/components"
	"github.com/lixenwraith/alpha-strike/constants"
	"github.com/lixenwraith/alpha-strike/render"
)

// ParticleRenderer draws sparks, captions, rings, shockwaves and beams faded by life
type ParticleRenderer struct{ playing }

// NewParticleRenderer creates a new particle renderer
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

// Render draws every live particle
func (r *ParticleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for i := range ctx.World.Particles {
		p := &ctx.World.Particles[i]
		fg := render.Fade(p.Color, p.Life)

		switch p.Kind {
		case components.ParticleSpark:
			x, y := ctx.Project(p.Pos)
			setIn(ctx, buf, x, y, constants.GlyphSpark, fg)

		case components.ParticleText:
			x, y := ctx.Project(p.Pos)
			x -= runewidth.StringWidth(p.Text) / 2
			for _, ch := range p.Text {
				setIn(ctx, buf, x, y, ch, fg)
				x += runewidth.RuneWidth(ch)
			}

		case components.ParticleRing:
			// Expands as it fades
			drawCircle(ctx, buf, p.Pos, p.Size*(2-p.Life), constants.GlyphRing, fg)

		case components.ParticleShockwave:
			drawCircle(ctx, buf, p.Pos, p.Size, constants.GlyphShockwave, fg)

		case components.ParticleBeam:
			drawLine(ctx, buf, p.Pos, p.End, constants.GlyphBeam, fg)
		}
	}
}
