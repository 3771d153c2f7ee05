package constants

// Particle Motion
const (
	// SparkSpeedMin and SparkSpeedMax bound the radial launch speed of sparks
	SparkSpeedMin = 50.0
	SparkSpeedMax = 200.0

	// SparkDecayMin and SparkDecayMax bound life lost per second
	SparkDecayMin = 1.5
	SparkDecayMax = 3.0

	// SparkSizeMin and SparkSizeMax bound spark draw size
	SparkSizeMin = 2.0
	SparkSizeMax = 5.0

	// TextRiseSpeed is the upward drift of caption particles
	TextRiseSpeed = 50.0

	// TextDecay is life lost per second by caption particles
	TextDecay = 1.0

	// TextSize is the nominal caption size
	TextSize = 20.0

	// ShockwaveGrowth is the radius growth of a shockwave in px/s
	ShockwaveGrowth = 500.0

	// ShockwaveDecay is life lost per second by a shockwave
	ShockwaveDecay = 2.0

	// BeamDecay is life lost per second by a burst beam
	BeamDecay = 3.0
)

// Particle captions
const (
	TextDodge    = "DODGE!"
	TextBlock    = "BLOCK"
	TextMiss     = "MISS"
	TextRepair   = "BASE REPAIRED"
	TextSlow     = "SLOW FIELD"
	TextBombFmt  = "CHAIN x%d"
	TextTierHeal = "COMBO REPAIR"
	TextTierCash = "+500"
	TextTierSlow = "TIME WARP"
)
