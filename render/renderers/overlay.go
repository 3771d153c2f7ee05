package renderers

import (
	"fmt"

	"github.com/lixenwraith/alpha-strike/constants"
	"github.com/lixenwraith/alpha-strike/render"
)

// MenuRenderer draws the title screen
type MenuRenderer struct{}

// NewMenuRenderer creates a new menu renderer
func NewMenuRenderer() *MenuRenderer {
	return &MenuRenderer{}
}

func (r *MenuRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Front.Scene == render.SceneMenu
}

// Render draws the menu
func (r *MenuRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	cx := ctx.Width / 2
	y := ctx.Height/2 - 4

	buf.SetStringCentered(cx, y, constants.GameTitle, render.Hex(constants.ColorPlayer))
	buf.SetStringCentered(cx, y+1, constants.GameTagline, render.Hex(constants.ColorArenaBorder))

	text := render.Hex(constants.ColorText)
	buf.SetStringCentered(cx, y+3, "AGENT: "+ctx.Front.PlayerName, text)
	buf.SetStringCentered(cx, y+4, fmt.Sprintf("TOTAL SCORE: %d", ctx.Front.TotalScore), text)
	if ctx.Front.LastDelta > 0 {
		buf.SetStringCentered(cx, y+5, fmt.Sprintf("LAST RUN: +%d", ctx.Front.LastDelta), render.Hex(constants.ColorEnemyElite))
	}

	buf.SetStringCentered(cx, y+6, "PRESS ENTER TO ENGAGE", render.Hex(constants.ColorBonusHeal))
	buf.SetStringCentered(cx, y+7, "ESC TO QUIT", render.Hex(constants.ColorArenaBorder))
}

// GameOverRenderer draws final stats over the frozen arena
type GameOverRenderer struct{}

// NewGameOverRenderer creates a new game over renderer
func NewGameOverRenderer() *GameOverRenderer {
	return &GameOverRenderer{}
}

func (r *GameOverRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Front.Scene == render.SceneGameOver
}

// Render draws the game over panel
func (r *GameOverRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	st := ctx.Front.Final
	lines := []string{
		constants.TextGameOver,
		"",
		fmt.Sprintf("SCORE      %d", st.DisplayScore()),
		fmt.Sprintf("MAX COMBO  %d", st.MaxCombo),
		fmt.Sprintf("KILLS      %d", st.Kills),
		fmt.Sprintf("TIME       %s", FormatClock(st.TimeAlive)),
		fmt.Sprintf("TOTAL      %d", ctx.Front.TotalScore),
		"",
		"ENTER TO RETRY  ESC TO QUIT",
	}

	cx := ctx.Width / 2
	top := ctx.Height/2 - len(lines)/2
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}

	// Clear a panel so the arena does not bleed through
	panel := render.Hex(constants.ColorBackground)
	for y := top - 1; y <= top+len(lines); y++ {
		for x := cx - width/2 - 2; x <= cx+width/2+2; x++ {
			buf.SetCell(x, y, render.Cell{Rune: ' ', Fg: panel, Bg: panel})
		}
	}

	text := render.Hex(constants.ColorText)
	for i, l := range lines {
		fg := text
		if i == 0 {
			fg = render.Hex(constants.ColorDanger)
		}
		buf.SetStringCentered(cx, top+i, l, fg)
	}
}
