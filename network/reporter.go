package network

import (
	"log"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/alpha-strike/core"
	"github.com/lixenwraith/alpha-strike/status"
)

// Identity names the local player in status frames
type Identity struct {
	ID   string
	Name string
}

// Reporter pushes status frames on a fixed real-time interval
// It only reads the registry, the simulation never waits on it
type Reporter struct {
	hub      *Hub
	identity Identity
	interval time.Duration

	state *status.AtomicString
	score *status.AtomicFloat
	time  *status.AtomicFloat
	total atomic.Int64

	sent atomic.Uint64

	running  atomic.Bool
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewReporter creates a reporter reading session metrics from reg
func NewReporter(hub *Hub, reg *status.Registry, id Identity, interval time.Duration) *Reporter {
	if interval <= 0 {
		interval = DefaultConfig().StatusInterval
	}
	return &Reporter{
		hub:      hub,
		identity: id,
		interval: interval,
		state:    reg.Strings.Get(status.KeyState),
		score:    reg.Floats.Get(status.KeyScore),
		time:     reg.Floats.Get(status.KeyTimeAlive),
		stopCh:   make(chan struct{}),
	}
}

// SetTotal records the cumulative stored score reported in every frame
func (r *Reporter) SetTotal(total int64) {
	r.total.Store(total)
}

// Frame builds the current status frame
func (r *Reporter) Frame() StatusFrame {
	state := r.state.Load()
	if state == "" {
		state = status.StateLobby
	}
	return StatusFrame{
		ID:           r.identity.ID,
		Name:         r.identity.Name,
		Status:       state,
		TotalScore:   r.total.Load(),
		CurrentScore: int64(math.Floor(r.score.Get())),
		CurrentTime:  r.time.Get(),
	}
}

// Push sends the current frame immediately
func (r *Reporter) Push() error {
	data, err := r.Frame().Encode()
	if err != nil {
		return err
	}
	if _, err := r.hub.Broadcast(data); err != nil {
		return err
	}
	r.sent.Add(1)
	return nil
}

// Sent returns the number of frames broadcast
func (r *Reporter) Sent() uint64 {
	return r.sent.Load()
}

// Start launches the interval loop
func (r *Reporter) Start() {
	if !r.running.CompareAndSwap(false, true) {
		return
	}
	r.wg.Add(1)
	core.Go(r.loop)
}

// Stop halts the interval loop and waits for it
func (r *Reporter) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopCh)
	})
	r.wg.Wait()
	r.running.Store(false)
}

func (r *Reporter) loop() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			if err := r.Push(); err != nil && err != ErrNotRunning {
				log.Printf("Network: status push failed: %v", err)
			}
		}
	}
}
