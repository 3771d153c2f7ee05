package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/alpha-strike/components"
	"github.com/lixenwraith/alpha-strike/events"
	"github.com/lixenwraith/alpha-strike/status"
	"github.com/lixenwraith/alpha-strike/vmath"
)

// recordingSystem logs its priority into a shared order slice
type recordingSystem struct {
	priority int
	order    *[]int
	deltas   []time.Duration
	fn       func(w *World)
}

func (s *recordingSystem) Update(w *World, rawDt time.Duration) {
	*s.order = append(*s.order, s.priority)
	s.deltas = append(s.deltas, rawDt)
	if s.fn != nil {
		s.fn(w)
	}
}

func (s *recordingSystem) Priority() int { return s.priority }

type keyLog struct {
	keys []rune
}

func (k *keyLog) HandleKey(w *World, key rune) {
	k.keys = append(k.keys, key)
	w.Stats.Score += 1
}

func TestSessionRunsSystemsByPriority(t *testing.T) {
	var order []int
	w := newTestWorld(nil)
	s := NewSession(w, nil, nil,
		&recordingSystem{priority: 30, order: &order},
		&recordingSystem{priority: 10, order: &order},
		&recordingSystem{priority: 20, order: &order},
	)
	s.Start()
	s.Tick(16 * time.Millisecond)

	if len(order) != 3 || order[0] != 10 || order[1] != 20 || order[2] != 30 {
		t.Errorf("Expected [10 20 30], got %v", order)
	}
}

func TestSessionZeroDeltaIsNoop(t *testing.T) {
	var order []int
	w := newTestWorld(nil)
	s := NewSession(w, nil, nil, &recordingSystem{priority: 10, order: &order})
	s.Start()

	s.Step(0)
	s.Tick(0)
	s.Tick(-time.Millisecond)

	if len(order) != 0 {
		t.Errorf("Expected no system updates for non-positive delta, got %d", len(order))
	}
}

func TestSessionPassesLargeDeltaThrough(t *testing.T) {
	var order []int
	sys := &recordingSystem{priority: 10, order: &order}
	s := NewSession(newTestWorld(nil), nil, nil, sys)
	s.Start()
	s.Tick(5 * time.Second)

	if len(sys.deltas) != 1 || sys.deltas[0] != 5*time.Second {
		t.Errorf("Expected full delta 5s, got %v", sys.deltas)
	}
}

func TestSessionInputQueue(t *testing.T) {
	keys := &keyLog{}
	s := NewSession(newTestWorld(nil), keys, nil)

	if s.PushKey('A') {
		t.Error("Expected key to be ignored before Start")
	}

	s.Start()
	if s.PushKey('a') || s.PushKey('1') {
		t.Error("Expected keys outside the alphabet to be ignored")
	}
	if !s.PushKey('A') || !s.PushKey('B') {
		t.Fatal("Expected valid keys to be queued")
	}

	// Drained at the tick boundary even with a zero delta
	s.Tick(0)
	if len(keys.keys) != 2 || keys.keys[0] != 'A' || keys.keys[1] != 'B' {
		t.Errorf("Expected [A B] in order, got %q", string(keys.keys))
	}
}

func TestSessionGameOverFiresOnce(t *testing.T) {
	rec := events.NewRecorder()
	w := newTestWorld(rec)
	reg := status.NewRegistry()

	var order []int
	killer := &recordingSystem{priority: 10, order: &order, fn: func(w *World) {
		w.BaseHP--
		if w.BaseHP <= 0 {
			w.EndSession()
		}
	}}
	after := &recordingSystem{priority: 20, order: &order}
	s := NewSession(w, nil, reg, killer, after)

	var reports []components.Stats
	s.OnGameOver(func(stats components.Stats) {
		reports = append(reports, stats)
	})

	s.Start()
	for i := 0; i < 20; i++ {
		s.Tick(16 * time.Millisecond)
	}

	if len(reports) != 1 {
		t.Fatalf("Expected exactly one game over, got %d", len(reports))
	}
	if reports[0].FinalBaseHP != 0 {
		t.Errorf("Expected finalBaseHp 0, got %d", reports[0].FinalBaseHP)
	}
	if s.Running() {
		t.Error("Expected session to stop at game over")
	}
	// Later systems skip the terminal tick
	if len(after.deltas) != 4 {
		t.Errorf("Expected 4 updates of later system, got %d", len(after.deltas))
	}
	if rec.Count(events.CueSessionEnd) != 1 || rec.Count(events.CueSessionStart) != 1 {
		t.Errorf("Expected one start and one end cue, got %v", rec.Sequence())
	}
	if got := reg.Strings.Get(status.KeyState).Load(); got != status.StateLobby {
		t.Errorf("Expected state %s, got %s", status.StateLobby, got)
	}
}

func TestSessionRestartResetsWorld(t *testing.T) {
	w := newTestWorld(nil)
	s := NewSession(w, nil, nil)
	s.Start()

	s.View(func(w *World) {
		addEnemy(w, 'A', vmath.V(100, 0))
		w.Stats.Score = 300
		w.BaseHP = 2
	})
	s.Stop()
	s.Start()

	s.View(func(w *World) {
		if len(w.Enemies) != 0 || w.Stats.Score != 0 || w.BaseHP != 5 {
			t.Errorf("Expected fresh world, got enemies=%d score=%f hp=%d", len(w.Enemies), w.Stats.Score, w.BaseHP)
		}
	})
}

func TestSessionStopReturnsStats(t *testing.T) {
	rec := events.NewRecorder()
	s := NewSession(newTestWorld(rec), nil, nil)
	s.Start()
	s.View(func(w *World) { w.Stats.Kills = 3 })

	stats := s.Stop()
	if stats.Kills != 3 || stats.FinalBaseHP != 5 {
		t.Errorf("Expected kills 3 hp 5, got %+v", stats)
	}

	// Second stop is a no-op
	s.Stop()
	if rec.Count(events.CueSessionEnd) != 1 {
		t.Errorf("Expected one end cue, got %d", rec.Count(events.CueSessionEnd))
	}
}

func TestSessionPublishesStatus(t *testing.T) {
	reg := status.NewRegistry()
	s := NewSession(newTestWorld(nil), &keyLog{}, reg)
	s.Start()
	s.PushKey('K')
	s.Tick(100 * time.Millisecond)

	if got := reg.Strings.Get(status.KeyState).Load(); got != status.StatePlaying {
		t.Errorf("Expected state %s, got %s", status.StatePlaying, got)
	}
	if got := reg.Floats.Get(status.KeyScore).Get(); got != 1 {
		t.Errorf("Expected published score 1, got %f", got)
	}
	if got := reg.Ints.Get(status.KeyBaseHP).Load(); got != 5 {
		t.Errorf("Expected published base hp 5, got %d", got)
	}
}

func TestSessionEndCueSeesFinalScore(t *testing.T) {
	reg := status.NewRegistry()
	var seen []float64
	sink := events.SinkFunc(func(c events.Cue) {
		if c == events.CueSessionEnd {
			seen = append(seen, reg.Floats.Get(status.KeyScore).Get())
		}
	})

	var order []int
	final := &recordingSystem{priority: 10, order: &order, fn: func(w *World) {
		w.Stats.Score = 42
		w.EndSession()
	}}
	s := NewSession(newTestWorld(sink), nil, reg, final)
	s.Start()
	s.Tick(16 * time.Millisecond)

	if len(seen) != 1 || seen[0] != 42 {
		t.Errorf("Expected end cue to see score 42, got %v", seen)
	}
}

func TestSessionStopPublishesBeforeEndCue(t *testing.T) {
	reg := status.NewRegistry()
	var seen []string
	sink := events.SinkFunc(func(c events.Cue) {
		if c == events.CueSessionEnd {
			seen = append(seen, reg.Strings.Get(status.KeyState).Load())
			if got := reg.Floats.Get(status.KeyScore).Get(); got != 7 {
				t.Errorf("Expected published score 7 at stop, got %f", got)
			}
		}
	})

	var order []int
	sys := &recordingSystem{priority: 10, order: &order, fn: func(w *World) { w.Stats.Score = 7 }}
	s := NewSession(newTestWorld(sink), nil, reg, sys)
	s.Start()
	s.Step(16 * time.Millisecond)
	s.Stop()

	if len(seen) != 1 || seen[0] != status.StateLobby {
		t.Errorf("Expected one end cue in lobby state, got %v", seen)
	}
}
