// Package events defines the notable-moment taxonomy the simulation emits
// and the capability interface audio and other fire-and-forget consumers implement
package events

// Cue represents a notable simulation event
type Cue int

const (
	// CueShot signals the player marker dashing to a struck enemy
	// Trigger: CombatSystem on any non-dodged direct hit
	CueShot Cue = iota

	// CueHit signals damage that left the enemy alive
	// Trigger: CombatSystem partial hit (SHIELD, ELITE)
	CueHit

	// CueKill signals an enemy destroyed by a direct hit
	// Trigger: CombatSystem kill path
	CueKill

	// CueMiss signals a key press with no matching enemy
	// Trigger: CombatSystem
	CueMiss

	// CueDodge signals a FAST enemy evading a hit
	// Trigger: CombatSystem
	CueDodge

	// CueBonus signals a HEAL or SLOW bonus pickup
	// Trigger: CombatSystem bonus effects
	CueBonus

	// CueExplosion signals a BOMB detonation or a burst/chain reaction kill
	// Trigger: CombatSystem, ProjectileSystem
	CueExplosion

	// CueBaseHit signals an enemy reaching the base
	// Trigger: EnemySystem
	CueBaseHit

	// CueComboTier signals the periodic combo bonus roll
	// Trigger: CombatSystem when combo is a multiple of the tier interval
	CueComboTier

	// CueSessionStart signals a fresh session entering play
	// Trigger: Session.Start
	CueSessionStart

	// CueSessionEnd signals game over
	// Trigger: Session on base hp reaching zero, Session.Stop
	CueSessionEnd

	cueCount
)

var cueNames = [cueCount]string{
	CueShot:         "shot",
	CueHit:          "hit",
	CueKill:         "kill",
	CueMiss:         "miss",
	CueDodge:        "dodge",
	CueBonus:        "bonus",
	CueExplosion:    "explosion",
	CueBaseHit:      "base_hit",
	CueComboTier:    "combo_tier",
	CueSessionStart: "session_start",
	CueSessionEnd:   "session_end",
}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// Cues returns all defined cues in declaration order
func Cues() []Cue {
	out := make([]Cue, cueCount)
	for i := range out {
		out[i] = Cue(i)
	}
	return out
}

// Sink receives cues; implementations must not block the caller
type Sink interface {
	Emit(c Cue)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(c Cue)

// Emit implements Sink
func (f SinkFunc) Emit(c Cue) { f(c) }

// Discard drops every cue
var Discard Sink = SinkFunc(func(Cue) {})

// Fanout forwards each cue to every sink in order
type Fanout []Sink

// Emit implements Sink
func (f Fanout) Emit(c Cue) {
	for _, s := range f {
		s.Emit(c)
	}
}
