package renderers

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/alpha-strike/constants"
	"github.com/lixenwraith/alpha-strike/render"
)

// HUDRenderer draws the score line and combo timer bar above the arena
type HUDRenderer struct{ playing }

// NewHUDRenderer creates a new HUD renderer
func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

// FormatClock renders a duration as MM:SS
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Hearts renders base hp as full and empty heart glyphs
func Hearts(hp, maxHP int) string {
	if hp < 0 {
		hp = 0
	}
	if hp > maxHP {
		maxHP = hp
	}
	return strings.Repeat(string(constants.GlyphHeartFull), hp) +
		strings.Repeat(string(constants.GlyphHeartEmpty), maxHP-hp)
}

// ComboBarFill returns the filled cell count of a width-cell combo bar
func ComboBarFill(remaining, decay time.Duration, width int) int {
	if decay <= 0 || remaining <= 0 {
		return 0
	}
	if remaining >= decay {
		return width
	}
	return int(float64(width) * float64(remaining) / float64(decay))
}

type legendEntry struct {
	glyph rune
	hex   string
	label string
}

// legend explains bonus glyphs and special enemy colors
var legend = []legendEntry{
	{constants.GlyphBonusHeal, constants.ColorBonusHeal, "HEAL"},
	{constants.GlyphBonusBomb, constants.ColorBonusBomb, "BOMB"},
	{constants.GlyphBonusSlow, constants.ColorBonusSlow, "SLOW"},
	{'■', constants.ColorEnemyChain, "CHAIN"},
	{'■', constants.ColorEnemyReflect, "BURST"},
}

// Render draws the HUD
func (r *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	w := ctx.World
	text := render.Hex(constants.ColorText)

	x := buf.SetString(1, 0, fmt.Sprintf("SCORE %d", w.Stats.DisplayScore()), text)

	comboHex := constants.ColorText
	if w.Stats.Combo > constants.ComboOverdriveThreshold {
		comboHex = constants.ColorEnemyElite
	}
	x = buf.SetString(x+3, 0, fmt.Sprintf("COMBO x%d", w.Stats.Combo), render.Hex(comboHex))
	if w.Stats.Combo > constants.ComboOverdriveThreshold {
		x = buf.SetString(x+1, 0, constants.TextOverdrive, render.Hex(constants.ColorDanger))
	}

	heartHex := constants.ColorBonusHeal
	if w.BaseHP <= constants.LowBaseHP {
		heartHex = constants.ColorDanger
	}
	x = buf.SetString(x+3, 0, Hearts(w.BaseHP, w.Config.BaseMaxHP), render.Hex(heartHex))
	x = buf.SetString(x+3, 0, "TIME "+FormatClock(w.Stats.TimeAlive), text)
	x = buf.SetString(x+3, 0, fmt.Sprintf("STAGE %d", w.Stage+1), text)

	if w.Slowed() {
		buf.SetString(x+3, 0, constants.TextSlowActive, render.Hex(constants.ColorBonusSlow))
	}
	if ctx.Front.Online {
		buf.SetString(ctx.Width-5, 0, "LINK", render.Hex(constants.ColorPlayer))
	}

	// Combo timer bar
	decay := w.Config.ComboDecay.Duration
	fill := ComboBarFill(w.ComboTimer, decay, constants.ComboBarWidth)
	remaining := 0.0
	if decay > 0 {
		remaining = float64(w.ComboTimer) / float64(decay)
	}
	barColor := render.ComboBarColor(remaining)
	empty := render.Hex(constants.ColorArenaBorder)
	for i := 0; i < constants.ComboBarWidth; i++ {
		if i < fill {
			buf.Set(1+i, 1, constants.GlyphBar, barColor)
		} else {
			buf.Set(1+i, 1, constants.GlyphBarEmpty, empty)
		}
	}

	drawLegend(buf, constants.ComboBarWidth+4)
}

func drawLegend(buf *render.RenderBuffer, x int) {
	dim := render.Hex(constants.ColorArenaBorder)
	for _, e := range legend {
		buf.SetBold(x, 1, e.glyph, render.Hex(e.hex))
		x = buf.SetString(x+2, 1, e.label, dim) + 2
	}
}
