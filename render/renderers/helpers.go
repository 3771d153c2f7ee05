package renderers

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/alpha-strike/render"
	"github.com/lixenwraith/alpha-strike/vmath"
)

// setIn writes only inside the game area so the HUD is never overdrawn
func setIn(ctx render.RenderContext, buf *render.RenderBuffer, x, y int, r rune, fg tcell.Color) {
	if ctx.InGame(x, y) {
		buf.Set(x, y, r, fg)
	}
}

// drawCircle plots an outline of arena radius around center
func drawCircle(ctx render.RenderContext, buf *render.RenderBuffer, center vmath.Vec2, radius float64, r rune, fg tcell.Color) {
	cx, _ := ctx.Cells(radius)
	steps := 8 + 4*cx
	for i := 0; i < steps; i++ {
		angle := float64(i) / float64(steps) * 2 * math.Pi
		x, y := ctx.Project(center.Add(vmath.FromAngle(angle, radius)))
		setIn(ctx, buf, x, y, r, fg)
	}
}

// drawLine plots a straight run of r between two arena points
func drawLine(ctx render.RenderContext, buf *render.RenderBuffer, from, to vmath.Vec2, r rune, fg tcell.Color) {
	x0, y0 := ctx.Project(from)
	x1, y1 := ctx.Project(to)
	dx, dy := x1-x0, y1-y0
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		setIn(ctx, buf, x0, y0, r, fg)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + int(math.Round(float64(dx)*t))
		y := y0 + int(math.Round(float64(dy)*t))
		setIn(ctx, buf, x, y, r, fg)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
