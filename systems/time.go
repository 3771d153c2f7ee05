package systems

import (
	"time"

	"github.com/lixenwraith/alpha-strike/constants"
	"github.com/lixenwraith/alpha-strike/engine"
)

// TimeSystem computes the dilated delta and runs down slow motion on real time
// Must run first so every later system sees the tick's World.Dt
type TimeSystem struct{}

// NewTimeSystem creates the time dilation system
func NewTimeSystem() *TimeSystem {
	return &TimeSystem{}
}

// Priority implements engine.System
func (s *TimeSystem) Priority() int {
	return constants.PriorityTime
}

// Update implements engine.System
func (s *TimeSystem) Update(w *engine.World, rawDt time.Duration) {
	dt := rawDt.Seconds()
	if w.SlowTimer > 0 {
		dt *= w.Config.SlowFactor
		w.SlowTimer -= rawDt
		if w.SlowTimer < 0 {
			w.SlowTimer = 0
		}
	}
	w.Dt = dt
}

// ArenaSystem shrinks the play field on real time down to its floor
type ArenaSystem struct{}

// NewArenaSystem creates the arena shrink system
func NewArenaSystem() *ArenaSystem {
	return &ArenaSystem{}
}

// Priority implements engine.System
func (s *ArenaSystem) Priority() int {
	return constants.PriorityArena
}

// Update implements engine.System
func (s *ArenaSystem) Update(w *engine.World, rawDt time.Duration) {
	w.Arena -= w.Config.ShrinkRate * rawDt.Seconds()
	if w.Arena < w.Config.MinArenaSize {
		w.Arena = w.Config.MinArenaSize
	}
}

// ComboSystem expires the combo on real time and accumulates time alive
type ComboSystem struct{}

// NewComboSystem creates the combo decay system
func NewComboSystem() *ComboSystem {
	return &ComboSystem{}
}

// Priority implements engine.System
func (s *ComboSystem) Priority() int {
	return constants.PriorityCombo
}

// Update implements engine.System
func (s *ComboSystem) Update(w *engine.World, rawDt time.Duration) {
	if w.Stats.Combo > 0 {
		w.ComboTimer -= rawDt
		if w.ComboTimer <= 0 {
			w.ComboTimer = 0
			w.Stats.Combo = 0
		}
	}
	w.Stats.TimeAlive += rawDt
}
