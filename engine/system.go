package engine

import "time"

// System advances one concern of the world per tick
// rawDt is the undilated real-time delta, dilated time is World.Dt
type System interface {
	Update(w *World, rawDt time.Duration)
	// Priority orders execution, lower runs first
	Priority() int
}

// InputHandler resolves one queued key press against the world
type InputHandler interface {
	HandleKey(w *World, key rune)
}

// sortSystems orders by priority (insertion sort, small N, stable)
func sortSystems(systems []System) {
	for i := 1; i < len(systems); i++ {
		for j := i; j > 0 && systems[j].Priority() < systems[j-1].Priority(); j-- {
			systems[j], systems[j-1] = systems[j-1], systems[j]
		}
	}
}
