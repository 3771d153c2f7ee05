package constants

// HUD
const (
	// ComboOverdriveThreshold highlights the combo readout above this value
	ComboOverdriveThreshold = 10

	// ComboBarWidth is the width in cells of the combo timer bar
	ComboBarWidth = 32

	// LowBaseHP switches the base to its danger color at or below this value
	LowBaseHP = 2

	// CellAspect is the height/width ratio of a terminal cell
	CellAspect = 2.0

	// ArenaGridStep is the arena-space spacing of background grid dots
	ArenaGridStep = 50.0
)

// Glyphs
const (
	GlyphBase       = '⬢'
	GlyphPlayer     = '◆'
	GlyphTrail      = '·'
	GlyphSpark      = '*'
	GlyphRing       = 'o'
	GlyphShockwave  = '░'
	GlyphBeam       = '═'
	GlyphProjectile = '●'
	GlyphGrid       = '·'
	GlyphHeartFull  = '♥'
	GlyphHeartEmpty = '♡'
	GlyphBorderH    = '─'
	GlyphBorderV    = '│'
	GlyphCornerTL   = '┌'
	GlyphCornerTR   = '┐'
	GlyphCornerBL   = '└'
	GlyphCornerBR   = '┘'
	GlyphBonusHeal  = '+'
	GlyphBonusBomb  = '!'
	GlyphBonusSlow  = '~'
	GlyphBar        = '█'
	GlyphBarEmpty   = '░'
)

// Text
const (
	GameTitle      = "ALPHA STRIKE"
	GameTagline    = "// tactical typing defense //"
	TextOverdrive  = "OVERDRIVE"
	TextSlowActive = "TIME DILATION"
	TextGameOver   = "CONNECTION LOST"
)
