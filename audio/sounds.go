package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/alpha-strike/events"
)

// cueGain balances cues against each other before master volume
var cueGain = map[events.Cue]float64{
	events.CueShot:      0.25,
	events.CueHit:       0.4,
	events.CueKill:      0.5,
	events.CueMiss:      0.35,
	events.CueDodge:     0.3,
	events.CueBonus:     0.5,
	events.CueExplosion: 0.6,
	events.CueBaseHit:   0.7,
	events.CueComboTier: 0.5,
}

// CueSound builds a one-shot stream for c, nil for cues without a sound
// Session cues drive music and have no one-shot
func CueSound(c events.Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case events.CueShot:
		return tone(1800, 600, 60*time.Millisecond, WaveSaw, rate)

	case events.CueHit:
		return tone(260, 200, 90*time.Millisecond, WaveSquare, rate)

	case events.CueKill:
		return beep.Mix(
			tone(880, 220, 150*time.Millisecond, WaveSquare, rate),
			newVolume(tone(1, 1, 120*time.Millisecond, WaveNoise, rate), 0.4),
		)

	case events.CueMiss:
		return tone(110, 90, 180*time.Millisecond, WaveSaw, rate)

	case events.CueDodge:
		return tone(600, 1400, 80*time.Millisecond, WaveSine, rate)

	case events.CueBonus:
		return beep.Seq(
			tone(988, 988, 70*time.Millisecond, WaveSquare, rate),
			tone(1319, 1319, 160*time.Millisecond, WaveSquare, rate),
		)

	case events.CueExplosion:
		return beep.Mix(
			tone(1, 1, 400*time.Millisecond, WaveNoise, rate),
			tone(120, 40, 400*time.Millisecond, WaveSine, rate),
		)

	case events.CueBaseHit:
		return beep.Mix(
			tone(80, 50, 500*time.Millisecond, WaveSquare, rate),
			newVolume(tone(1, 1, 300*time.Millisecond, WaveNoise, rate), 0.5),
		)

	case events.CueComboTier:
		// A major arpeggio
		return beep.Seq(
			tone(523, 523, 60*time.Millisecond, WaveSquare, rate),
			tone(659, 659, 60*time.Millisecond, WaveSquare, rate),
			tone(784, 784, 60*time.Millisecond, WaveSquare, rate),
			tone(1047, 1047, 140*time.Millisecond, WaveSquare, rate),
		)
	}
	return nil
}
