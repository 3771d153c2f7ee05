package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the simulation tick interval
	GameUpdateInterval = 16 * time.Millisecond

	// InputQueueSize is the capacity of the key-press queue drained each tick
	InputQueueSize = 64
)

// System Execution Priorities (lower runs first)
const (
	PriorityTime       = 10
	PriorityArena      = 20
	PrioritySpawn      = 30
	PriorityEnemy      = 40
	PriorityCombo      = 50
	PriorityProjectile = 60
	PriorityParticle   = 70
)

// Alphabet is the fixed input surface, one enemy letter per rune
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// AlphabetSize is the number of distinct enemy letters
const AlphabetSize = len(Alphabet)

// ValidKey reports whether r is part of the active alphabet
func ValidKey(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
