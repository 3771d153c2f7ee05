package constants

// Palette, hex strings parsed by the renderer
const (
	ColorBackground      = "#050505"
	ColorPlayer          = "#00ffff"
	ColorBase            = "#ffffff"
	ColorBaseLow         = "#ff0000"
	ColorEnemyNormal     = "#ff0055"
	ColorEnemyFast       = "#ffff00"
	ColorEnemyShield     = "#888888"
	ColorEnemyRotating   = "#bd00ff"
	ColorEnemyElite      = "#ffaa00"
	ColorEnemyReflect    = "#00ffff"
	ColorEnemyChain      = "#7dff00"
	ColorBonusHeal       = "#00ff55"
	ColorBonusSlow       = "#00ccff"
	ColorBonusBomb       = "#ffaa00"
	ColorText            = "#ffffff"
	ColorHit             = "#ffffff"
	ColorDanger          = "#ff0000"
	ColorTrail           = "#008080"
	ColorArenaGrid       = "#1a1a1a"
	ColorArenaBorder     = "#333333"
	ColorArenaCritical   = "#ff0000"
	ColorChainProjectile = "#7dff00"
)
