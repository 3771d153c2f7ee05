package audio

import (
	"math"

	"github.com/gopxl/beep"
)

const (
	musicBPM        = 128
	musicStepsPerBt = 4
)

// Bass line in Hz, one entry per sixteenth step
var bassLine = [16]float64{
	55, 0, 55, 110, 0, 55, 65.4, 0,
	49, 0, 49, 98, 0, 49, 58.3, 73.4,
}

// musicGenerator synthesizes an endless kick and bass loop
type musicGenerator struct {
	rate        beep.SampleRate
	stepSamples int
	position    int
	bassPhase   float64
	kickPhase   float64
}

func newMusicGenerator(rate beep.SampleRate) *musicGenerator {
	stepSamples := int(float64(rate) * 60 / musicBPM / musicStepsPerBt)
	return &musicGenerator{rate: rate, stepSamples: stepSamples}
}

func (g *musicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		step := (g.position / g.stepSamples) % len(bassLine)
		inStep := g.position % g.stepSamples
		t := float64(inStep) / float64(g.rate)

		var val float64

		// Kick on every beat
		if step%musicStepsPerBt == 0 {
			freq := 150*math.Exp(-t*30) + 45
			g.kickPhase += freq / float64(g.rate)
			val += math.Sin(2*math.Pi*g.kickPhase) * math.Exp(-t*12) * 0.8
		} else {
			g.kickPhase = 0
		}

		if f := bassLine[step]; f > 0 {
			g.bassPhase += f / float64(g.rate)
			g.bassPhase -= math.Floor(g.bassPhase)
			saw := 2.0 * (g.bassPhase - 0.5)
			val += saw * math.Exp(-t*6) * 0.35
		}

		samples[i][0] = val
		samples[i][1] = val
		g.position++
	}
	return len(samples), true
}

func (g *musicGenerator) Err() error { return nil }
