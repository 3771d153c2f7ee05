package components

import "github.com/lixenwraith/alpha-strike/vmath"

// ParticleKind selects particle motion and drawing
type ParticleKind uint8

const (
	ParticleSpark ParticleKind = iota
	ParticleText
	ParticleRing
	ParticleShockwave
	ParticleBeam
)

func (k ParticleKind) String() string {
	switch k {
	case ParticleText:
		return "text"
	case ParticleRing:
		return "ring"
	case ParticleShockwave:
		return "shockwave"
	case ParticleBeam:
		return "beam"
	default:
		return "spark"
	}
}

// Particle is a transient cosmetic effect
type Particle struct {
	Kind  ParticleKind
	Pos   vmath.Vec2
	Vel   vmath.Vec2
	End   vmath.Vec2 // Beam endpoint
	Life  float64    // 1 at birth, culled at 0
	Decay float64    // Life lost per second
	Color string
	Size  float64
	Text  string
}
