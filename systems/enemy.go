package systems

import (
	"time"

	"github.com/lixenwraith/alpha-strike/constants"
	"github.com/lixenwraith/alpha-strike/engine"
	"github.com/lixenwraith/alpha-strike/events"
	"github.com/lixenwraith/alpha-strike/vmath"
)

// rotationSpeed is the cosmetic spin of ROTATING enemies in rad/s
const rotationSpeed = 3.0

// EnemySystem moves enemies toward the base and resolves base collisions
type EnemySystem struct{}

// NewEnemySystem creates the enemy motion system
func NewEnemySystem() *EnemySystem {
	return &EnemySystem{}
}

// Priority implements engine.System
func (s *EnemySystem) Priority() int {
	return constants.PriorityEnemy
}

// Update implements engine.System
func (s *EnemySystem) Update(w *engine.World, rawDt time.Duration) {
	hit := false
	for _, e := range w.Enemies {
		if !e.Alive() {
			continue
		}
		if e.Type.Profile().Spins {
			e.Angle += rotationSpeed * w.Dt
		}

		reach := w.Config.BaseRadius + e.Radius
		if e.Pos.Len() > reach {
			e.Pos, _ = vmath.MoveToward(e.Pos, vmath.Zero, e.Speed*w.Dt)
			continue
		}

		// Reached the base
		e.HP = 0
		hit = true
		w.BaseHP--
		w.AddShake(constants.ShakeBaseHit)
		w.AddSparks(vmath.Zero, constants.ColorDanger, 20)
		w.AddRing(vmath.Zero, constants.ColorDanger, w.Config.BaseRadius)
		w.Emit(events.CueBaseHit)

		if w.BaseHP <= 0 {
			w.EndSession()
			break
		}
	}

	if hit {
		w.PruneEnemies()
	}
}
