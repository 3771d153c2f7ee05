package events

import "sync"

// Recorder is a Sink that counts cues, used by headless runs and tests
type Recorder struct {
	mu     sync.Mutex
	counts [cueCount]int
	order  []Cue
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Emit implements Sink
func (r *Recorder) Emit(c Cue) {
	if c < 0 || c >= cueCount {
		return
	}
	r.mu.Lock()
	r.counts[c]++
	r.order = append(r.order, c)
	r.mu.Unlock()
}

// Count returns how many times c was emitted
func (r *Recorder) Count(c Cue) int {
	if c < 0 || c >= cueCount {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[c]
}

// Sequence returns a copy of the emitted cues in order
func (r *Recorder) Sequence() []Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Cue, len(r.order))
	copy(out, r.order)
	return out
}

// Reset clears all counts
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.counts = [cueCount]int{}
	r.order = r.order[:0]
	r.mu.Unlock()
}
