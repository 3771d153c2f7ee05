package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/alpha-strike/core"
	"github.com/lixenwraith/alpha-strike/status"
)

// Ticker is advanced by the scheduler with the measured real-time delta
type Ticker interface {
	Tick(rawDt time.Duration)
}

// ClockScheduler drives a Ticker on a fixed interval
// Each tick passes the real elapsed time since the previous tick, so slow frames
// are absorbed by a larger delta instead of slowing the simulation
type ClockScheduler struct {
	ticker Ticker
	clock  Clock

	// Tick configuration
	tickInterval     time.Duration
	lastTickTime     time.Time
	nextTickDeadline time.Time

	// Frame callback, runs after every tick on the scheduler goroutine
	frameFn func()

	tickCount atomic.Uint64
	mu        sync.Mutex

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Cached metric pointers
	statTicks *atomic.Int64
}

// NewClockScheduler creates a new clock scheduler with specified tick interval
func NewClockScheduler(ticker Ticker, clock Clock, tickInterval time.Duration, reg *status.Registry) *ClockScheduler {
	if clock == nil {
		clock = NewTimeProvider()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &ClockScheduler{
		ticker:       ticker,
		clock:        clock,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
		statTicks:    reg.Ints.Get(status.KeyTicks),
	}
}

// SetFrameHandler registers the render callback, must be called before Start
func (cs *ClockScheduler) SetFrameHandler(fn func()) {
	cs.mu.Lock()
	cs.frameFn = fn
	cs.mu.Unlock()
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.mu.Lock()
		now := cs.clock.Now()
		cs.lastTickTime = now
		cs.nextTickDeadline = now.Add(cs.tickInterval)
		cs.mu.Unlock()

		cs.wg.Add(1)
		// Use core.Go for safe execution with centralized crash handling
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for the in-flight tick to finish
// No tick runs after Stop returns
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// TickCount returns the number of ticks processed
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// schedulerLoop sleeps until each deadline, correcting drift
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-timer.C:
		}

		cs.processTick()

		cs.mu.Lock()
		now := cs.clock.Now()
		cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)

		// Skip missed deadlines instead of bursting
		if now.Sub(cs.nextTickDeadline) > cs.tickInterval*2 {
			cs.nextTickDeadline = now.Add(cs.tickInterval)
		}
		sleep := cs.nextTickDeadline.Sub(now)
		cs.mu.Unlock()

		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}

// processTick measures the real delta and runs one tick plus the frame callback
func (cs *ClockScheduler) processTick() {
	cs.mu.Lock()
	now := cs.clock.Now()
	rawDt := now.Sub(cs.lastTickTime)
	cs.lastTickTime = now
	frameFn := cs.frameFn
	cs.mu.Unlock()

	if rawDt < 0 {
		rawDt = 0
	}
	cs.ticker.Tick(rawDt)

	ticks := cs.tickCount.Add(1)
	cs.statTicks.Store(int64(ticks))

	if frameFn != nil {
		frameFn()
	}
}
