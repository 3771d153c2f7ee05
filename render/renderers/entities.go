package renderers

import (
	"math"
	"strconv"

	"github.com/lixenwraith/alpha-strike/components"
	"github.com/lixenwraith/alpha-strike/constants"
	"github.com/lixenwraith/alpha-strike/render"
	"github.com/lixenwraith/alpha-strike/vmath"
)

// playing hides world layers outside a session
type playing struct{}

func (playing) IsVisible(ctx render.RenderContext) bool {
	return ctx.Front.Scene != render.SceneMenu
}

// BaseRenderer draws the defended core at the origin
type BaseRenderer struct{ playing }

// NewBaseRenderer creates a new base renderer
func NewBaseRenderer() *BaseRenderer {
	return &BaseRenderer{}
}

// Render draws the base and its radius ring
func (r *BaseRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	w := ctx.World
	hex := constants.ColorBase
	if w.BaseHP <= constants.LowBaseHP {
		hex = constants.ColorBaseLow
	}
	fg := render.Hex(hex)

	drawCircle(ctx, buf, vmath.Zero, w.Config.BaseRadius, constants.GlyphRing, render.Dim(hex, 0.5))
	x, y := ctx.Project(vmath.Zero)
	if ctx.InGame(x, y) {
		buf.SetBold(x, y, constants.GlyphBase, fg)
	}
}

// spinGlyphs are picked by the rotating enemy angle
var spinGlyphs = [4]rune{'|', '/', '-', '\\'}

// EnemyRenderer draws letters on colored plates with type decorations
type EnemyRenderer struct{ playing }

// NewEnemyRenderer creates a new enemy renderer
func NewEnemyRenderer() *EnemyRenderer {
	return &EnemyRenderer{}
}

// Render draws every live enemy
func (r *EnemyRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	black := render.Hex(constants.ColorBackground)
	for _, e := range ctx.World.Enemies {
		if !e.Alive() {
			continue
		}
		x, y := ctx.Project(e.Pos)
		if !ctx.InGame(x, y) {
			continue
		}
		plate := render.Hex(e.Color)

		buf.SetBg(x, y, plate)
		buf.SetBold(x, y, e.Char, black)

		switch e.Type {
		case components.EnemyShield:
			if e.HP > 1 {
				setIn(ctx, buf, x-1, y, '[', plate)
				setIn(ctx, buf, x+1, y, ']', plate)
			}
		case components.EnemyElite:
			setIn(ctx, buf, x-1, y, '<', plate)
			buf.SetString(x+1, y, strconv.Itoa(e.HP), plate)
		case components.EnemyRotating:
			idx := int(math.Floor(e.Angle/(math.Pi/4))) % len(spinGlyphs)
			if idx < 0 {
				idx += len(spinGlyphs)
			}
			setIn(ctx, buf, x, y-1, spinGlyphs[idx], plate)
		}

		if g, ok := bonusGlyph(e.Bonus); ok {
			setIn(ctx, buf, x+1, y-1, g, render.Hex(e.Bonus.Color()))
		}
	}
}

func bonusGlyph(b components.Bonus) (rune, bool) {
	switch b {
	case components.BonusHeal:
		return constants.GlyphBonusHeal, true
	case components.BonusBomb:
		return constants.GlyphBonusBomb, true
	case components.BonusSlow:
		return constants.GlyphBonusSlow, true
	}
	return 0, false
}

// ProjectileRenderer draws chain and burst projectiles
type ProjectileRenderer struct{ playing }

// NewProjectileRenderer creates a new projectile renderer
func NewProjectileRenderer() *ProjectileRenderer {
	return &ProjectileRenderer{}
}

// Render draws in-flight projectiles
func (r *ProjectileRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, p := range ctx.World.Projectiles {
		x, y := ctx.Project(p.Pos)
		setIn(ctx, buf, x, y, constants.GlyphProjectile, render.Hex(p.Color))
	}
}

// PlayerRenderer draws the marker and its fading trail
type PlayerRenderer struct{ playing }

// NewPlayerRenderer creates a new player renderer
func NewPlayerRenderer() *PlayerRenderer {
	return &PlayerRenderer{}
}

// Render draws the trail oldest-first then the marker on top
func (r *PlayerRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	p := ctx.World.Player
	if p == nil {
		return
	}
	n := len(p.Trail)
	for i, pos := range p.Trail {
		life := float64(i+1) / float64(n+1)
		x, y := ctx.Project(pos)
		setIn(ctx, buf, x, y, constants.GlyphTrail, render.Fade(constants.ColorTrail, life))
	}
	x, y := ctx.Project(p.Pos)
	if ctx.InGame(x, y) {
		buf.SetBold(x, y, constants.GlyphPlayer, render.Hex(constants.ColorPlayer))
	}
}
