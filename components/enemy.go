package components

import (
	"github.com/lixenwraith/alpha-strike/constants"
	"github.com/lixenwraith/alpha-strike/vmath"
)

// EntityID uniquely identifies an enemy or projectile within a session
type EntityID uint64

// EnemyType is the closed set of enemy variants
type EnemyType uint8

const (
	EnemyNormal   EnemyType = iota // Baseline
	EnemyShield                    // Two hits
	EnemyFast                      // Faster, may dodge
	EnemyRotating                  // Cosmetic spin
	EnemyElite                     // High hp, large, slow
	EnemyReflect                   // Burst beams on death
	EnemyChain                     // Homing chain projectile on death
	enemyTypeCount
)

// DeathEffect is the secondary reaction triggered by a direct kill
type DeathEffect uint8

const (
	DeathNone DeathEffect = iota
	DeathBurst
	DeathChain
)

// EnemyProfile is the per-type data row driving spawn and combat behavior
type EnemyProfile struct {
	Name        string
	HPMin       int // Inclusive
	HPMax       int // Exclusive, equal to HPMin+1 for fixed hp
	RadiusScale float64
	SpeedScale  float64
	Color       string
	DodgeChance float64
	Death       DeathEffect
	Spins       bool
}

var enemyProfiles = [enemyTypeCount]EnemyProfile{
	EnemyNormal: {
		Name: "NORMAL", HPMin: 1, HPMax: 2, RadiusScale: 1, SpeedScale: 1,
		Color: constants.ColorEnemyNormal,
	},
	EnemyShield: {
		Name: "SHIELD", HPMin: 2, HPMax: 3, RadiusScale: 1, SpeedScale: 1,
		Color: constants.ColorEnemyShield,
	},
	EnemyFast: {
		Name: "FAST", HPMin: 1, HPMax: 2, RadiusScale: 1, SpeedScale: constants.FastSpeedScale,
		Color: constants.ColorEnemyFast, DodgeChance: constants.DodgeChance,
	},
	EnemyRotating: {
		Name: "ROTATING", HPMin: 1, HPMax: 2, RadiusScale: 1, SpeedScale: 1,
		Color: constants.ColorEnemyRotating, Spins: true,
	},
	EnemyElite: {
		Name: "ELITE", HPMin: constants.EliteHPMin, HPMax: constants.EliteHPMax,
		RadiusScale: constants.EliteRadiusScale, SpeedScale: constants.EliteSpeedScale,
		Color: constants.ColorEnemyElite,
	},
	EnemyReflect: {
		Name: "REFLECT", HPMin: 1, HPMax: 2, RadiusScale: 1, SpeedScale: 1,
		Color: constants.ColorEnemyReflect, Death: DeathBurst,
	},
	EnemyChain: {
		Name: "CHAIN", HPMin: 1, HPMax: 2, RadiusScale: 1, SpeedScale: 1,
		Color: constants.ColorEnemyChain, Death: DeathChain,
	},
}

// EnemyTypes returns every variant in declaration order
func EnemyTypes() []EnemyType {
	types := make([]EnemyType, enemyTypeCount)
	for i := range types {
		types[i] = EnemyType(i)
	}
	return types
}

// Profile returns the data row for t, NORMAL for out-of-range values
func (t EnemyType) Profile() EnemyProfile {
	if t >= enemyTypeCount {
		return enemyProfiles[EnemyNormal]
	}
	return enemyProfiles[t]
}

func (t EnemyType) String() string {
	return t.Profile().Name
}

// Bonus is an independent on-kill modifier carried by an enemy
type Bonus uint8

const (
	BonusNone Bonus = iota
	BonusHeal       // +1 base hp
	BonusSlow       // Global slow motion
	BonusBomb       // Area instant kill
)

// Color returns the override color for a bonus carrier, empty for none
func (b Bonus) Color() string {
	switch b {
	case BonusHeal:
		return constants.ColorBonusHeal
	case BonusSlow:
		return constants.ColorBonusSlow
	case BonusBomb:
		return constants.ColorBonusBomb
	default:
		return ""
	}
}

func (b Bonus) String() string {
	switch b {
	case BonusHeal:
		return "HEAL"
	case BonusSlow:
		return "SLOW"
	case BonusBomb:
		return "BOMB"
	default:
		return "NONE"
	}
}

// Enemy is a letter-bearing hostile converging on the base
type Enemy struct {
	ID     EntityID
	Pos    vmath.Vec2
	Radius float64
	Color  string
	Char   rune
	Type   EnemyType
	Bonus  Bonus
	Speed  float64 // px/s
	MaxHP  int
	HP     int

	// Angle is the cosmetic spin of rotating enemies in radians
	Angle float64
}

// Alive reports whether the enemy still belongs to the live set
func (e *Enemy) Alive() bool {
	return e.HP > 0
}
