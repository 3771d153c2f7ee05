package systems

import (
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/alpha-strike/components"
	"github.com/lixenwraith/alpha-strike/constants"
	"github.com/lixenwraith/alpha-strike/engine"
	"github.com/lixenwraith/alpha-strike/events"
	"github.com/lixenwraith/alpha-strike/vmath"
)

// CombatSystem resolves key presses into misses, dodges, hits and kills
type CombatSystem struct{}

// NewCombatSystem creates the combat resolver
func NewCombatSystem() *CombatSystem {
	return &CombatSystem{}
}

// HandleKey implements engine.InputHandler
func (s *CombatSystem) HandleKey(w *engine.World, key rune) {
	if w.Over || !constants.ValidKey(key) {
		return
	}

	target := w.EnemyByChar(key)
	if target == nil {
		s.miss(w)
		return
	}

	p := target.Type.Profile()
	if p.DodgeChance > 0 && w.Rand.Float64() < p.DodgeChance {
		s.dodge(w, target)
		return
	}

	target.HP--
	w.Player.MoveTo(target.Pos)
	w.Emit(events.CueShot)

	if target.HP > 0 {
		s.partialHit(w, target)
	} else {
		s.kill(w, target)
	}

	if w.Stats.Combo > 0 && w.Stats.Combo%constants.ComboTierInterval == 0 {
		s.comboTier(w)
	}
}

func (s *CombatSystem) miss(w *engine.World) {
	w.Stats.Combo = 0
	w.ComboTimer = 0
	w.Stats.Misses++
	w.AddShake(constants.ShakeMiss)
	w.AddText(w.Player.Pos, constants.ColorDanger, constants.TextMiss)
	w.Emit(events.CueMiss)
}

// dodge displaces the enemy without touching hp, combo or misses
func (s *CombatSystem) dodge(w *engine.World, e *components.Enemy) {
	angle := w.Rand.Float64() * 2 * math.Pi
	e.Pos = e.Pos.Add(vmath.FromAngle(angle, w.Config.DodgeDistance))
	w.AddShake(constants.ShakeDodge)
	w.AddText(e.Pos, e.Color, constants.TextDodge)
	w.Emit(events.CueDodge)
}

func (s *CombatSystem) partialHit(w *engine.World, e *components.Enemy) {
	w.Stats.Score += constants.PartialHitScore
	w.Stats.BumpCombo()
	w.ComboTimer = w.Config.ComboDecay.Duration

	w.AddShake(constants.ShakeBlock)
	w.AddSparks(e.Pos, e.Color, 5)
	w.AddText(e.Pos, constants.ColorHit, constants.TextBlock)
	w.Emit(events.CueHit)
}

func (s *CombatSystem) kill(w *engine.World, e *components.Enemy) {
	// Scales with combo before the increment
	w.Stats.Score += constants.KillScoreBase * (1 + float64(w.Stats.Combo)*constants.KillComboFactor)
	w.Stats.Kills++
	w.Stats.BumpCombo()
	w.ComboTimer = w.Config.ComboDecay.Duration

	w.AddShake(constants.ShakeKill)
	w.AddSparks(e.Pos, e.Color, 12)
	w.AddRing(e.Pos, e.Color, e.Radius)
	w.Emit(events.CueKill)

	switch e.Type.Profile().Death {
	case components.DeathBurst:
		s.burst(w, e)
	case components.DeathChain:
		if nt := w.Nearest(e.Pos, e.ID); nt != nil {
			hops := constants.ChainHopsMin + w.Rand.Intn(constants.ChainHopsMax-constants.ChainHopsMin+1)
			LaunchChain(w, e.Pos, nt, hops)
		}
	}

	switch e.Bonus {
	case components.BonusHeal:
		if w.BaseHP < w.Config.BaseMaxHP {
			w.BaseHP++
		}
		w.AddSparks(vmath.Zero, constants.ColorBonusHeal, 10)
		w.AddText(vmath.Zero, constants.ColorBonusHeal, constants.TextRepair)
		w.Emit(events.CueBonus)
	case components.BonusSlow:
		extendSlow(w, w.Config.SlowDuration.Duration)
		w.AddText(e.Pos, constants.ColorBonusSlow, constants.TextSlow)
		w.Emit(events.CueBonus)
	case components.BonusBomb:
		s.bomb(w, e)
		w.Emit(events.CueBonus)
	}

	w.PruneEnemies()
}

// burst beams instant kills to the nearest neighbors, victims skip their own effects
func (s *CombatSystem) burst(w *engine.World, e *components.Enemy) {
	n := constants.BurstTargetsMin + w.Rand.Intn(constants.BurstTargetsMax-constants.BurstTargetsMin+1)
	victims := w.NearestN(e.Pos, e.ID, n)
	if len(victims) == 0 {
		return
	}

	for _, v := range victims {
		v.HP = 0
		w.Stats.Score += constants.ProjectileKillScore
		w.Stats.Kills++
		w.AddBeam(e.Pos, v.Pos, constants.ColorEnemyReflect)
		w.AddSparks(v.Pos, v.Color, 4)
	}
	w.Emit(events.CueExplosion)
}

// bomb instant kills every other live enemy strictly inside the radius, victims skip their own effects
func (s *CombatSystem) bomb(w *engine.World, e *components.Enemy) {
	radiusSq := w.Config.BombRadius * w.Config.BombRadius
	count := 0
	for _, v := range w.Enemies {
		if v.ID == e.ID || !v.Alive() {
			continue
		}
		if vmath.DistSq(e.Pos, v.Pos) < radiusSq {
			v.HP = 0
			count++
			w.AddSparks(v.Pos, v.Color, 4)
		}
	}

	w.Stats.Score += float64(constants.BombKillScore * count)
	w.Stats.Kills += count

	w.AddShockwave(e.Pos, constants.ColorBonusBomb)
	w.AddSparks(e.Pos, constants.ColorBonusBomb, 20)
	w.AddText(e.Pos, constants.ColorBonusBomb, fmt.Sprintf(constants.TextBombFmt, count))
	w.Emit(events.CueExplosion)
}

// comboTier rolls the periodic combo reward
func (s *CombatSystem) comboTier(w *engine.World) {
	if w.Rand.Float64() < 0.5 {
		if w.BaseHP < w.Config.BaseMaxHP {
			w.BaseHP++
			w.AddText(vmath.Zero, constants.ColorBonusHeal, constants.TextTierHeal)
		} else {
			w.Stats.Score += constants.ComboTierBonusScore
			w.AddText(w.Player.Pos, constants.ColorText, constants.TextTierCash)
		}
	} else {
		extendSlow(w, constants.ComboTierSlowDuration)
		w.AddText(w.Player.Pos, constants.ColorBonusSlow, constants.TextTierSlow)
	}
	w.Emit(events.CueComboTier)
}

// extendSlow refreshes slow motion to at least d, never shortening it
func extendSlow(w *engine.World, d time.Duration) {
	if d > w.SlowTimer {
		w.SlowTimer = d
	}
}
