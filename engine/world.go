package engine

import (
	"log"
	"math/rand"
	"time"

	"github.com/lixenwraith/alpha-strike/components"
	"github.com/lixenwraith/alpha-strike/config"
	"github.com/lixenwraith/alpha-strike/events"
	"github.com/lixenwraith/alpha-strike/vmath"
)

// Rand is the random source consumed by spawning and combat
// *math/rand.Rand satisfies it; tests script outcomes
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// World holds all mutable simulation state of one session
// Single writer: only the goroutine driving Session touches it
type World struct {
	Config config.GameConfig

	// Rand drives gameplay rolls, FX drives cosmetic particles only
	Rand Rand
	FX   Rand

	Enemies     []*components.Enemy // Spawn order, oldest first
	Projectiles []*components.Projectile
	Particles   []components.Particle
	Player      *components.Player
	Stats       components.Stats

	BaseHP int
	Arena  float64 // Side length of the square play field

	SpawnTimer time.Duration
	ComboTimer time.Duration
	SlowTimer  time.Duration

	// Dt is the dilated delta of the current tick in seconds
	Dt float64

	// Shake is the camera shake magnitude in arena px
	Shake float64

	// Stage is the difficulty stage index used by the last spawn
	Stage int

	// Over is set once base hp reaches zero
	Over bool

	sink   events.Sink
	nextID components.EntityID
}

// NewWorld creates a world in its session-start state
func NewWorld(cfg config.GameConfig, rng Rand, sink events.Sink) *World {
	if sink == nil {
		sink = events.Discard
	}
	w := &World{
		Config: cfg,
		Rand:   rng,
		FX:     rand.New(rand.NewSource(1)),
		sink:   sink,
	}
	w.Reset()
	return w
}

// Reset restores every mutable field to its session-start value
func (w *World) Reset() {
	w.Enemies = nil
	w.Projectiles = nil
	w.Particles = nil
	w.Player = components.NewPlayer()
	w.Stats = components.Stats{}

	w.BaseHP = w.Config.BaseMaxHP
	w.Arena = w.Config.InitialArenaSize

	w.SpawnTimer = 0
	w.ComboTimer = 0
	w.SlowTimer = 0
	w.Dt = 0
	w.Shake = 0
	w.Stage = 0
	w.Over = false
	w.nextID = 0
}

// NextID reserves a new entity id
func (w *World) NextID() components.EntityID {
	w.nextID++
	return w.nextID
}

// Emit forwards a cue to the sink, a panicking sink never aborts the tick
func (w *World) Emit(c events.Cue) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Cue sink panicked on %s: %v", c, r)
		}
	}()
	w.sink.Emit(c)
}

// EndSession marks the terminal transition and freezes final stats
func (w *World) EndSession() {
	if w.Over {
		return
	}
	w.BaseHP = 0
	w.Over = true
	w.Stats.FinalBaseHP = 0
}

// Slowed reports whether the global slow motion is active
func (w *World) Slowed() bool {
	return w.SlowTimer > 0
}

// AddShake raises camera shake to at least mag
func (w *World) AddShake(mag float64) {
	if mag > w.Shake {
		w.Shake = mag
	}
}

// EnemyByID returns the live enemy with id, nil when gone
func (w *World) EnemyByID(id components.EntityID) *components.Enemy {
	for _, e := range w.Enemies {
		if e.ID == id && e.Alive() {
			return e
		}
	}
	return nil
}

// EnemyByChar returns the first live enemy bearing char in spawn order
func (w *World) EnemyByChar(char rune) *components.Enemy {
	for _, e := range w.Enemies {
		if e.Char == char && e.Alive() {
			return e
		}
	}
	return nil
}

// Nearest returns the live enemy closest to pos other than exclude
func (w *World) Nearest(pos vmath.Vec2, exclude components.EntityID) *components.Enemy {
	var best *components.Enemy
	bestDist := 0.0
	for _, e := range w.Enemies {
		if e.ID == exclude || !e.Alive() {
			continue
		}
		d := vmath.DistSq(pos, e.Pos)
		if best == nil || d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

// NearestN returns up to n live enemies closest to pos other than exclude, nearest first
func (w *World) NearestN(pos vmath.Vec2, exclude components.EntityID, n int) []*components.Enemy {
	if n <= 0 {
		return nil
	}
	candidates := make([]*components.Enemy, 0, len(w.Enemies))
	for _, e := range w.Enemies {
		if e.ID != exclude && e.Alive() {
			candidates = append(candidates, e)
		}
	}

	// Insertion sort by distance, stable for equal distances
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0 && vmath.DistSq(pos, candidates[j].Pos) < vmath.DistSq(pos, candidates[j-1].Pos); j-- {
			candidates[j], candidates[j-1] = candidates[j-1], candidates[j]
		}
	}

	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}

// LiveLetters returns the set of letters held by live enemies
func (w *World) LiveLetters() map[rune]bool {
	used := make(map[rune]bool, len(w.Enemies))
	for _, e := range w.Enemies {
		if e.Alive() {
			used[e.Char] = true
		}
	}
	return used
}

// PruneEnemies drops dead enemies, preserving spawn order
func (w *World) PruneEnemies() {
	live := w.Enemies[:0]
	for _, e := range w.Enemies {
		if e.Alive() {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(w.Enemies); i++ {
		w.Enemies[i] = nil
	}
	w.Enemies = live
}
