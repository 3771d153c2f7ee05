package components

import (
	"math"
	"time"
)

// Stats is the session aggregate read by the front end at game over
type Stats struct {
	Score       float64
	Combo       int
	MaxCombo    int
	Kills       int
	Misses      int
	TimeAlive   time.Duration
	FinalBaseHP int
}

// DisplayScore returns the floored score shown to the player
func (s *Stats) DisplayScore() int64 {
	return int64(math.Floor(s.Score))
}

// BumpCombo increments combo and tracks the session maximum
func (s *Stats) BumpCombo() {
	s.Combo++
	if s.Combo > s.MaxCombo {
		s.MaxCombo = s.Combo
	}
}
