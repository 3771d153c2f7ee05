package render

import (
	"math"

	"github.com/lixenwraith/alpha-strike/components"
	"github.com/lixenwraith/alpha-strike/constants"
	"github.com/lixenwraith/alpha-strike/engine"
	"github.com/lixenwraith/alpha-strike/vmath"
)

// Scene selects which front-end screen is drawn
type Scene int

const (
	SceneMenu Scene = iota
	ScenePlaying
	SceneGameOver
)

// Frontend carries the non-simulation state shown by the HUD and overlays
type Frontend struct {
	Scene      Scene
	PlayerName string
	TotalScore int64
	LastDelta  int64            // Score banked by the previous run
	Final      components.Stats // Valid in SceneGameOver
	Online     bool
}

// HUDRows is the number of terminal rows reserved above the arena
const HUDRows = 2

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	World *engine.World
	Front Frontend
	Frame uint64

	// Screen dimensions
	Width, Height int

	// Game area below the HUD
	GameY      int
	GameHeight int

	// Arena origin in cells and horizontal cells per arena px
	CenterX, CenterY int
	Scale            float64

	// Shake offset in cells for this frame
	ShakeX, ShakeY int
}

// NewRenderContext derives the arena projection for one frame
// The viewport fits the initial arena so shrinking is visible
func NewRenderContext(w *engine.World, front Frontend, frame uint64, width, height int) RenderContext {
	ctx := RenderContext{
		World:      w,
		Front:      front,
		Frame:      frame,
		Width:      width,
		Height:     height,
		GameY:      HUDRows,
		GameHeight: height - HUDRows,
	}
	if ctx.GameHeight < 1 {
		ctx.GameHeight = 1
	}

	span := w.Config.InitialArenaSize
	if span <= 0 {
		span = 1
	}
	sx := float64(width-2) / span
	sy := float64(ctx.GameHeight-2) * constants.CellAspect / span
	ctx.Scale = math.Max(math.Min(sx, sy), 0)

	ctx.CenterX = width / 2
	ctx.CenterY = ctx.GameY + ctx.GameHeight/2

	if w.Shake > 0 {
		// Deterministic per-frame jitter
		phase := float64(frame)
		ctx.ShakeX = int(math.Round(math.Sin(phase*1.7) * w.Shake * ctx.Scale))
		ctx.ShakeY = int(math.Round(math.Cos(phase*2.3) * w.Shake * ctx.Scale / constants.CellAspect))
	}
	return ctx
}

// Project maps an arena point to a screen cell
func (c RenderContext) Project(p vmath.Vec2) (int, int) {
	x := c.CenterX + int(math.Round(p.X*c.Scale)) + c.ShakeX
	y := c.CenterY + int(math.Round(p.Y*c.Scale/constants.CellAspect)) + c.ShakeY
	return x, y
}

// Cells converts an arena length to horizontal and vertical cell counts
func (c RenderContext) Cells(length float64) (int, int) {
	return int(math.Round(length * c.Scale)), int(math.Round(length * c.Scale / constants.CellAspect))
}

// InGame reports whether a cell lies inside the game area
func (c RenderContext) InGame(x, y int) bool {
	return x >= 0 && x < c.Width && y >= c.GameY && y < c.GameY+c.GameHeight
}
