package components

import (
	"github.com/lixenwraith/alpha-strike/constants"
	"github.com/lixenwraith/alpha-strike/vmath"
)

// Player is the cursor marker that teleports to each struck enemy
type Player struct {
	Pos    vmath.Vec2
	Radius float64
	Trail  []vmath.Vec2 // Oldest first, at most constants.TrailLength
}

// NewPlayer creates a marker resting on the base
func NewPlayer() *Player {
	return &Player{
		Pos:    vmath.Zero,
		Radius: constants.PlayerRadius,
		Trail:  make([]vmath.Vec2, 0, constants.TrailLength+1),
	}
}

// MoveTo records the current position in the trail and jumps to pos
func (p *Player) MoveTo(pos vmath.Vec2) {
	p.Trail = append(p.Trail, p.Pos)
	if len(p.Trail) > constants.TrailLength {
		// FIFO: drop oldest
		copy(p.Trail, p.Trail[1:])
		p.Trail = p.Trail[:constants.TrailLength]
	}
	p.Pos = pos
}
