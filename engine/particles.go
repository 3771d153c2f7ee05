package engine

import (
	"math"

	"github.com/lixenwraith/alpha-strike/components"
	"github.com/lixenwraith/alpha-strike/constants"
	"github.com/lixenwraith/alpha-strike/vmath"
)

func (w *World) randRange(lo, hi float64) float64 {
	return lo + w.FX.Float64()*(hi-lo)
}

// AddSparks bursts n sparks radially from pos
func (w *World) AddSparks(pos vmath.Vec2, color string, n int) {
	for i := 0; i < n; i++ {
		angle := w.FX.Float64() * 2 * math.Pi
		speed := w.randRange(constants.SparkSpeedMin, constants.SparkSpeedMax)
		w.Particles = append(w.Particles, components.Particle{
			Kind:  components.ParticleSpark,
			Pos:   pos,
			Vel:   vmath.FromAngle(angle, speed),
			Life:  1,
			Decay: w.randRange(constants.SparkDecayMin, constants.SparkDecayMax),
			Color: color,
			Size:  w.randRange(constants.SparkSizeMin, constants.SparkSizeMax),
		})
	}
}

// AddText floats a caption upward from pos
func (w *World) AddText(pos vmath.Vec2, color, text string) {
	w.Particles = append(w.Particles, components.Particle{
		Kind:  components.ParticleText,
		Pos:   pos,
		Vel:   vmath.V(0, -constants.TextRiseSpeed),
		Life:  1,
		Decay: constants.TextDecay,
		Color: color,
		Size:  constants.TextSize,
		Text:  text,
	})
}

// AddRing marks an impact with an expanding outline of radius size
func (w *World) AddRing(pos vmath.Vec2, color string, size float64) {
	w.Particles = append(w.Particles, components.Particle{
		Kind:  components.ParticleRing,
		Pos:   pos,
		Life:  1,
		Decay: constants.SparkDecayMax,
		Color: color,
		Size:  size,
	})
}

// AddShockwave starts a growing stationary blast front at pos
func (w *World) AddShockwave(pos vmath.Vec2, color string) {
	w.Particles = append(w.Particles, components.Particle{
		Kind:  components.ParticleShockwave,
		Pos:   pos,
		Life:  1,
		Decay: constants.ShockwaveDecay,
		Color: color,
		Size:  1,
	})
}

// AddBeam draws an instant line from pos to end
func (w *World) AddBeam(pos, end vmath.Vec2, color string) {
	w.Particles = append(w.Particles, components.Particle{
		Kind:  components.ParticleBeam,
		Pos:   pos,
		End:   end,
		Life:  1,
		Decay: constants.BeamDecay,
		Color: color,
		Size:  1,
	})
}

// ParticleCount returns live particles of kind
func (w *World) ParticleCount(kind components.ParticleKind) int {
	n := 0
	for i := range w.Particles {
		if w.Particles[i].Kind == kind {
			n++
		}
	}
	return n
}

// HasText reports whether a caption particle with text is live
func (w *World) HasText(text string) bool {
	for i := range w.Particles {
		if w.Particles[i].Kind == components.ParticleText && w.Particles[i].Text == text {
			return true
		}
	}
	return false
}
