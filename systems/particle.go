package systems

import (
	"math"
	"time"

	"github.com/lixenwraith/alpha-strike/components"
	"github.com/lixenwraith/alpha-strike/constants"
	"github.com/lixenwraith/alpha-strike/engine"
)

// ParticleSystem ages cosmetic particles and settles camera shake on real time
type ParticleSystem struct{}

// NewParticleSystem creates the particle decay system
func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

// Priority implements engine.System
func (s *ParticleSystem) Priority() int {
	return constants.PriorityParticle
}

// Update implements engine.System
func (s *ParticleSystem) Update(w *engine.World, rawDt time.Duration) {
	dt := rawDt.Seconds()

	live := w.Particles[:0]
	for _, p := range w.Particles {
		if p.Kind == components.ParticleShockwave {
			p.Size += constants.ShockwaveGrowth * dt
		} else {
			p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		}
		p.Life -= p.Decay * dt
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	w.Particles = live

	if w.Shake > 0 {
		w.Shake *= math.Pow(constants.ShakeDecayPerSecond, dt)
		if w.Shake < constants.ShakeFloor {
			w.Shake = 0
		}
	}
}
