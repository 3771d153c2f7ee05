package components

import "github.com/lixenwraith/alpha-strike/vmath"

// Projectile is a chain bolt homing on a tracked enemy id at constant speed
// A hit re-targets the nearest live enemy while hops remain
type Projectile struct {
	ID            EntityID
	Pos           vmath.Vec2
	TargetID      EntityID
	Speed         float64 // px/s
	HopsRemaining int
	Color         string
}
