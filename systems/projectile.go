package systems

import (
	"time"

	"github.com/lixenwraith/alpha-strike/components"
	"github.com/lixenwraith/alpha-strike/constants"
	"github.com/lixenwraith/alpha-strike/engine"
	"github.com/lixenwraith/alpha-strike/events"
	"github.com/lixenwraith/alpha-strike/vmath"
)

// ProjectileSystem advances homing projectiles on dilated time
type ProjectileSystem struct{}

// NewProjectileSystem creates the projectile sub-step
func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

// Priority implements engine.System
func (s *ProjectileSystem) Priority() int {
	return constants.PriorityProjectile
}

// Update implements engine.System
func (s *ProjectileSystem) Update(w *engine.World, rawDt time.Duration) {
	if len(w.Projectiles) == 0 {
		return
	}

	// Successors spawned this tick start moving next tick
	current := w.Projectiles
	w.Projectiles = make([]*components.Projectile, 0, len(current))
	killed := false

	for _, p := range current {
		target := w.EnemyByID(p.TargetID)
		if target == nil {
			// Fizzle
			continue
		}

		next, reached := vmath.MoveToward(p.Pos, target.Pos, p.Speed*w.Dt)
		if !reached {
			p.Pos = next
			w.Projectiles = append(w.Projectiles, p)
			continue
		}

		killed = true
		impact := target.Pos
		target.HP = 0
		w.Stats.Score += constants.ProjectileKillScore
		w.Stats.Kills++
		w.AddSparks(impact, p.Color, 8)
		w.Emit(events.CueExplosion)

		if p.HopsRemaining > 0 {
			if nt := w.Nearest(impact, target.ID); nt != nil {
				LaunchChain(w, impact, nt, p.HopsRemaining-1)
			}
		}
	}

	if killed {
		w.PruneEnemies()
	}
}

// LaunchChain spawns a homing chain projectile at target
func LaunchChain(w *engine.World, from vmath.Vec2, target *components.Enemy, hops int) *components.Projectile {
	p := &components.Projectile{
		ID:            w.NextID(),
		Pos:           from,
		TargetID:      target.ID,
		Speed:         constants.ProjectileSpeed,
		HopsRemaining: hops,
		Color:         constants.ColorChainProjectile,
	}
	w.Projectiles = append(w.Projectiles, p)
	return p
}
