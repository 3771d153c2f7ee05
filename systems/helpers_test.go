package systems

import (
	"math"
	"testing"

	"github.com/lixenwraith/alpha-strike/components"
	"github.com/lixenwraith/alpha-strike/config"
	"github.com/lixenwraith/alpha-strike/engine"
	"github.com/lixenwraith/alpha-strike/events"
	"github.com/lixenwraith/alpha-strike/vmath"
)

// scriptRand replays queued outcomes, then falls back to fixed defaults
type scriptRand struct {
	floats   []float64
	ints     []int
	defFloat float64
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) == 0 {
		return r.defFloat
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

// newScripted creates a world whose rolls never dodge and never carry bonuses unless scripted
func newScripted(t *testing.T, rec *events.Recorder) (*engine.World, *scriptRand) {
	t.Helper()
	r := &scriptRand{defFloat: 0.99}
	var sink events.Sink = events.Discard
	if rec != nil {
		sink = rec
	}
	return engine.NewWorld(config.Default().Game, r, sink), r
}

// place adds an enemy with its profile's minimum hp
func place(w *engine.World, typ components.EnemyType, bonus components.Bonus, pos vmath.Vec2, char rune) *components.Enemy {
	p := typ.Profile()
	e := &components.Enemy{
		ID:     w.NextID(),
		Pos:    pos,
		Radius: 18 * p.RadiusScale,
		Color:  p.Color,
		Char:   char,
		Type:   typ,
		Bonus:  bonus,
		Speed:  45 * p.SpeedScale,
		MaxHP:  p.HPMin,
		HP:     p.HPMin,
	}
	w.Enemies = append(w.Enemies, e)
	return e
}

func hasEnemy(w *engine.World, e *components.Enemy) bool {
	for _, x := range w.Enemies {
		if x == e {
			return true
		}
	}
	return false
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
