// Package systems implements the simulation step, the difficulty model,
// the entity spawner and the combat resolver over engine.World
package systems

import (
	"github.com/lixenwraith/alpha-strike/engine"
	"github.com/lixenwraith/alpha-strike/status"
)

// All returns the per-tick systems in no particular order, the session sorts them
func All() []engine.System {
	return []engine.System{
		NewTimeSystem(),
		NewArenaSystem(),
		NewSpawnSystem(),
		NewEnemySystem(),
		NewComboSystem(),
		NewProjectileSystem(),
		NewParticleSystem(),
	}
}

// NewSession builds a session running the full simulation step with combat input
func NewSession(w *engine.World, reg *status.Registry) *engine.Session {
	return engine.NewSession(w, NewCombatSystem(), reg, All()...)
}
