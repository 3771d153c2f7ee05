package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/alpha-strike/components"
	"github.com/lixenwraith/alpha-strike/constants"
	"github.com/lixenwraith/alpha-strike/events"
	"github.com/lixenwraith/alpha-strike/status"
)

// GameOverFunc receives the final stats once per session
type GameOverFunc func(stats components.Stats)

// Session owns the world for one run and serializes all access to it
// Input is queued by any goroutine and drained at the tick boundary
type Session struct {
	mu      sync.Mutex
	world   *World
	systems []System
	input   InputHandler

	queue   chan rune
	running atomic.Bool

	onGameOver GameOverFunc

	// Cached metric pointers
	statState   *status.AtomicString
	statScore   *status.AtomicFloat
	statTime    *status.AtomicFloat
	statCombo   *atomic.Int64
	statKills   *atomic.Int64
	statBaseHP  *atomic.Int64
	statEnemies *atomic.Int64
	statStage   *atomic.Int64
}

// NewSession wires systems and the input handler around world
// reg may be nil when no metrics are published
func NewSession(world *World, input InputHandler, reg *status.Registry, systems ...System) *Session {
	if reg == nil {
		reg = status.NewRegistry()
	}

	sorted := make([]System, len(systems))
	copy(sorted, systems)
	sortSystems(sorted)

	s := &Session{
		world:       world,
		systems:     sorted,
		input:       input,
		queue:       make(chan rune, constants.InputQueueSize),
		statState:   reg.Strings.Get(status.KeyState),
		statScore:   reg.Floats.Get(status.KeyScore),
		statTime:    reg.Floats.Get(status.KeyTimeAlive),
		statCombo:   reg.Ints.Get(status.KeyCombo),
		statKills:   reg.Ints.Get(status.KeyKills),
		statBaseHP:  reg.Ints.Get(status.KeyBaseHP),
		statEnemies: reg.Ints.Get(status.KeyEnemies),
		statStage:   reg.Ints.Get(status.KeyStageIndex),
	}
	s.statState.Store(status.StateLobby)
	return s
}

// OnGameOver registers the terminal callback, must be called before Start
// The callback runs on the ticking goroutine after the session lock is released
func (s *Session) OnGameOver(fn GameOverFunc) {
	s.mu.Lock()
	s.onGameOver = fn
	s.mu.Unlock()
}

// Start fully resets the world and enters play
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.world.Reset()
	s.discardInput()
	s.running.Store(true)
	s.statState.Store(status.StatePlaying)
	s.publish()

	s.world.Emit(events.CueSessionStart)
	log.Printf("Session started: arena %.0f, base hp %d", s.world.Arena, s.world.BaseHP)
}

// Stop abandons a running session without firing the game-over callback
// Returns the stats at the time of stopping
func (s *Session) Stop() components.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running.CompareAndSwap(true, false) {
		s.world.Stats.FinalBaseHP = s.world.BaseHP
		s.discardInput()
		s.statState.Store(status.StateLobby)
		s.publish()
		s.world.Emit(events.CueSessionEnd)
		log.Printf("Session stopped: score %d, kills %d", s.world.Stats.DisplayScore(), s.world.Stats.Kills)
	}
	return s.world.Stats
}

// Running reports whether a session is in play
func (s *Session) Running() bool {
	return s.running.Load()
}

// PushKey queues a key press, returns false when ignored or dropped
// Keys outside the alphabet and keys while no session is running are ignored
func (s *Session) PushKey(key rune) bool {
	if !constants.ValidKey(key) || !s.running.Load() {
		return false
	}
	select {
	case s.queue <- key:
		return true
	default:
		return false
	}
}

// Tick drains queued input then advances the simulation by rawDt
func (s *Session) Tick(rawDt time.Duration) {
	s.mu.Lock()

	if !s.running.Load() {
		s.discardInput()
		s.mu.Unlock()
		return
	}

	s.drainInput()
	s.step(rawDt)

	var (
		final    components.Stats
		gameOver bool
	)
	if s.world.Over && s.running.CompareAndSwap(true, false) {
		gameOver = true
		final = s.world.Stats
		s.discardInput()
		s.statState.Store(status.StateLobby)
	}
	// Sinks read the registry on session end, publish first
	s.publish()
	if gameOver {
		s.world.Emit(events.CueSessionEnd)
	}
	cb := s.onGameOver
	s.mu.Unlock()

	if gameOver {
		log.Printf("Game over: score %d, kills %d, misses %d, max combo %d, time %v",
			final.DisplayScore(), final.Kills, final.Misses, final.MaxCombo, final.TimeAlive.Round(time.Second))
		if cb != nil {
			cb(final)
		}
	}
}

// Step advances the simulation without touching the input queue
// A non-positive rawDt leaves the world unchanged
func (s *Session) Step(rawDt time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step(rawDt)
}

// View runs fn with exclusive access to the world
func (s *Session) View(fn func(w *World)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.world)
}

// Stats returns a copy of the current session stats
func (s *Session) Stats() components.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.world.Stats
}

func (s *Session) step(rawDt time.Duration) {
	if rawDt <= 0 || s.world.Over {
		return
	}

	for _, sys := range s.systems {
		sys.Update(s.world, rawDt)
		if s.world.Over {
			return
		}
	}
}

func (s *Session) drainInput() {
	for {
		select {
		case key := <-s.queue:
			if s.world.Over || s.input == nil {
				continue
			}
			s.input.HandleKey(s.world, key)
		default:
			return
		}
	}
}

func (s *Session) discardInput() {
	for {
		select {
		case <-s.queue:
		default:
			return
		}
	}
}

func (s *Session) publish() {
	w := s.world
	s.statScore.Set(w.Stats.Score)
	s.statTime.Set(w.Stats.TimeAlive.Seconds())
	s.statCombo.Store(int64(w.Stats.Combo))
	s.statKills.Store(int64(w.Stats.Kills))
	s.statBaseHP.Store(int64(w.BaseHP))
	s.statEnemies.Store(int64(len(w.Enemies)))
	s.statStage.Store(int64(w.Stage))
}
