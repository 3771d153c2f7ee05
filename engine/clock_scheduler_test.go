package engine

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lixenwraith/alpha-strike/status"
)

type deltaTicker struct {
	mu     sync.Mutex
	deltas []time.Duration
}

func (d *deltaTicker) Tick(rawDt time.Duration) {
	d.mu.Lock()
	d.deltas = append(d.deltas, rawDt)
	d.mu.Unlock()
}

func (d *deltaTicker) snapshot() []time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]time.Duration, len(d.deltas))
	copy(out, d.deltas)
	return out
}

func TestProcessTickMeasuresRealDelta(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	ticker := &deltaTicker{}
	reg := status.NewRegistry()
	cs := NewClockScheduler(ticker, mock, 16*time.Millisecond, reg)
	cs.lastTickTime = mock.Now()

	frames := 0
	cs.SetFrameHandler(func() { frames++ })

	mock.Advance(16 * time.Millisecond)
	cs.processTick()
	mock.Advance(40 * time.Millisecond)
	cs.processTick()
	cs.processTick()

	got := ticker.snapshot()
	want := []time.Duration{16 * time.Millisecond, 40 * time.Millisecond, 0}
	if len(got) != len(want) {
		t.Fatalf("Expected %d ticks, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tick %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if frames != 3 {
		t.Errorf("Expected 3 frames, got %d", frames)
	}
	if cs.TickCount() != 3 || reg.Ints.Get(status.KeyTicks).Load() != 3 {
		t.Errorf("Expected tick count 3, got %d", cs.TickCount())
	}
}

func TestSchedulerStartStop(t *testing.T) {
	ticker := &deltaTicker{}
	cs := NewClockScheduler(ticker, NewTimeProvider(), 2*time.Millisecond, nil)

	var frames atomic.Int64
	cs.SetFrameHandler(func() { frames.Add(1) })

	cs.Start()
	cs.Start() // Idempotent

	deadline := time.Now().Add(2 * time.Second)
	for cs.TickCount() < 5 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cs.Stop()

	stopped := cs.TickCount()
	if stopped < 5 {
		t.Fatalf("Expected at least 5 ticks, got %d", stopped)
	}

	time.Sleep(20 * time.Millisecond)
	if cs.TickCount() != stopped {
		t.Errorf("Expected no ticks after Stop, got %d more", cs.TickCount()-stopped)
	}
	if frames.Load() != int64(stopped) {
		t.Errorf("Expected one frame per tick, got %d frames for %d ticks", frames.Load(), stopped)
	}

	for i, d := range ticker.snapshot() {
		if d <= 0 {
			t.Errorf("Tick %d: expected positive real delta, got %v", i, d)
		}
	}

	// Second stop is a no-op
	cs.Stop()
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if !mock.Now().Equal(start) {
		t.Errorf("Expected initial time %v, got %v", start, mock.Now())
	}

	mock.Advance(30 * time.Minute)
	mock.Advance(15 * time.Minute)
	if expected := start.Add(45 * time.Minute); !mock.Now().Equal(expected) {
		t.Errorf("Expected %v after advances, got %v", expected, mock.Now())
	}
}
