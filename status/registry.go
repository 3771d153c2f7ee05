// Package status publishes live session numbers across goroutines
// The simulation goroutine writes through cached pointers, readers never block it
package status

import "sync/atomic"

// Well-known metric keys written by the session
const (
	KeyState      = "session.state"
	KeyScore      = "session.score"
	KeyCombo      = "session.combo"
	KeyKills      = "session.kills"
	KeyBaseHP     = "session.base_hp"
	KeyTimeAlive  = "session.time_alive"
	KeyEnemies    = "world.enemies"
	KeyTicks      = "engine.ticks"
	KeyStageIndex = "difficulty.stage"
)

// Session state values stored under KeyState
const (
	StateLobby   = "LOBBY"
	StatePlaying = "PLAYING"
)

// Registry is the central metrics facade
// Systems cache pointers during init; update loops write directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Snapshot copies every metric into a plain map keyed by metric name
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any)
	r.Ints.each(func(k string, v *atomic.Int64) { out[k] = v.Load() })
	r.Floats.each(func(k string, v *AtomicFloat) { out[k] = v.Get() })
	r.Strings.each(func(k string, v *AtomicString) { out[k] = v.Load() })
	return out
}
