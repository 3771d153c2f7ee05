package renderers

import (
	"math"

	"github.com/lixenwraith/alpha-strike/constants"
	"github.com/lixenwraith/alpha-strike/render"
	"github.com/lixenwraith/alpha-strike/vmath"
)

// ArenaRenderer draws the grid dots and the shrinking border
type ArenaRenderer struct{}

// NewArenaRenderer creates a new arena renderer
func NewArenaRenderer() *ArenaRenderer {
	return &ArenaRenderer{}
}

// IsVisible hides the arena behind the menu
func (r *ArenaRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Front.Scene != render.SceneMenu
}

// Critical reports whether the arena reached its minimum size
func Critical(arena, min float64) bool {
	return arena <= min+1e-9
}

// Render draws the arena
func (r *ArenaRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	w := ctx.World
	half := w.Arena / 2

	grid := render.Hex(constants.ColorArenaGrid)
	for gx := -math.Floor(half/constants.ArenaGridStep) * constants.ArenaGridStep; gx <= half; gx += constants.ArenaGridStep {
		for gy := -math.Floor(half/constants.ArenaGridStep) * constants.ArenaGridStep; gy <= half; gy += constants.ArenaGridStep {
			x, y := ctx.Project(vmath.V(gx, gy))
			if ctx.InGame(x, y) {
				buf.Set(x, y, constants.GlyphGrid, grid)
			}
		}
	}

	borderHex := constants.ColorArenaBorder
	if Critical(w.Arena, w.Config.MinArenaSize) {
		borderHex = constants.ColorArenaCritical
	}
	border := render.Hex(borderHex)

	x0, y0 := ctx.Project(vmath.V(-half, -half))
	x1, y1 := ctx.Project(vmath.V(half, half))
	for x := x0 + 1; x < x1; x++ {
		setIn(ctx, buf, x, y0, constants.GlyphBorderH, border)
		setIn(ctx, buf, x, y1, constants.GlyphBorderH, border)
	}
	for y := y0 + 1; y < y1; y++ {
		setIn(ctx, buf, x0, y, constants.GlyphBorderV, border)
		setIn(ctx, buf, x1, y, constants.GlyphBorderV, border)
	}
	setIn(ctx, buf, x0, y0, constants.GlyphCornerTL, border)
	setIn(ctx, buf, x1, y0, constants.GlyphCornerTR, border)
	setIn(ctx, buf, x0, y1, constants.GlyphCornerBL, border)
	setIn(ctx, buf, x1, y1, constants.GlyphCornerBR, border)
}
