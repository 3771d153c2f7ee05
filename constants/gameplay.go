package constants

import "time"

// Scoring
const (
	// PartialHitScore is awarded for a hit that leaves the enemy alive
	PartialHitScore = 50

	// KillScoreBase is multiplied by (1 + combo*KillComboFactor) on a direct kill
	KillScoreBase = 100

	// KillComboFactor is the per-combo score scaling
	KillComboFactor = 0.1

	// ProjectileKillScore is awarded per chain projectile or burst beam kill
	ProjectileKillScore = 200

	// BombKillScore is awarded per enemy caught in a bomb blast
	BombKillScore = 150

	// ComboTierBonusScore is awarded by a combo-tier heal roll when the base is full
	ComboTierBonusScore = 500
)

// Combo
const (
	// ComboTierInterval triggers a bonus roll every Nth combo
	ComboTierInterval = 5

	// ComboTierSlowDuration is the minimum slow-motion time granted by a combo-tier roll
	ComboTierSlowDuration = 10 * time.Second
)

// Enemy
const (
	// EnemyRadius is the base collision and draw radius
	EnemyRadius = 18.0

	// EliteRadiusScale enlarges elite enemies
	EliteRadiusScale = 1.5

	// FastSpeedScale multiplies base speed for fast enemies
	FastSpeedScale = 1.5

	// EliteSpeedScale multiplies base speed for elite enemies
	EliteSpeedScale = 0.6

	// EliteHPMin and EliteHPMax bound elite hp as [min, max)
	EliteHPMin = 5
	EliteHPMax = 8

	// DodgeChance is the probability a fast enemy evades a direct hit
	DodgeChance = 0.25
)

// Bonus
const (
	// BonusChance is the probability an enemy carries a bonus
	BonusChance = 0.15

	// BonusHealShare and BonusBombShare partition the bonus sub-roll, remainder is slow
	BonusHealShare = 0.4
	BonusBombShare = 0.3
)

// Secondary Projectiles
const (
	// ProjectileSpeed is the travel speed of chain projectiles in px/s
	ProjectileSpeed = 600.0

	// ChainHopsMin and ChainHopsMax bound the initial chain hop budget, inclusive
	ChainHopsMin = 5
	ChainHopsMax = 7

	// BurstTargetsMin and BurstTargetsMax bound burst beam count, inclusive
	BurstTargetsMin = 5
	BurstTargetsMax = 12
)

// Player Marker
const (
	// PlayerRadius is the marker draw radius
	PlayerRadius = 10.0

	// TrailLength is the number of recent marker positions kept
	TrailLength = 10
)

// Camera Shake magnitudes
const (
	ShakeDodge   = 2.0
	ShakeMiss    = 5.0
	ShakeBlock   = 5.0
	ShakeKill    = 10.0
	ShakeBaseHit = 20.0

	// ShakeDecayPerSecond is the fraction of shake remaining after one second
	ShakeDecayPerSecond = 0.0018

	// ShakeFloor snaps residual shake to zero
	ShakeFloor = 0.5
)
