package systems

import (
	"math"
	"time"

	"github.com/lixenwraith/alpha-strike/components"
	"github.com/lixenwraith/alpha-strike/constants"
	"github.com/lixenwraith/alpha-strike/engine"
	"github.com/lixenwraith/alpha-strike/vmath"
)

// SpawnSystem creates enemies beyond the arena edge on the difficulty pace
type SpawnSystem struct{}

// NewSpawnSystem creates a spawner
func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{}
}

// Priority implements engine.System
func (s *SpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

// Update implements engine.System
func (s *SpawnSystem) Update(w *engine.World, rawDt time.Duration) {
	w.SpawnTimer -= rawDt
	if w.SpawnTimer > 0 {
		return
	}

	level := Difficulty(w.Stats.Kills)
	Spawn(w, level)

	w.SpawnTimer = level.SpawnInterval
	if floor := w.Config.MinSpawnInterval.Duration; w.SpawnTimer < floor {
		w.SpawnTimer = floor
	}
}

// Spawn places one enemy drawn from level on a random arena edge
func Spawn(w *engine.World, level Level) *components.Enemy {
	w.Stage = level.Stage

	pos := spawnPosition(w)
	typ := level.Weights.Pick(w.Rand.Float64())
	bonus := rollBonus(w)
	char := pickLetter(w)

	e := newEnemy(w, typ, bonus, pos, char, level.SpeedMult)
	w.Enemies = append(w.Enemies, e)
	return e
}

// spawnPosition picks an edge uniformly and a point along it outside the arena
func spawnPosition(w *engine.World) vmath.Vec2 {
	edge := w.Rand.Intn(4)
	along := (w.Rand.Float64() - 0.5) * w.Arena
	out := w.Arena/2 + w.Config.SpawnMargin

	switch edge {
	case 0: // Top
		return vmath.V(along, -out)
	case 1: // Right
		return vmath.V(out, along)
	case 2: // Bottom
		return vmath.V(along, out)
	default: // Left
		return vmath.V(-out, along)
	}
}

func rollBonus(w *engine.World) components.Bonus {
	if w.Rand.Float64() >= constants.BonusChance {
		return components.BonusNone
	}
	sub := w.Rand.Float64()
	switch {
	case sub < constants.BonusHealShare:
		return components.BonusHeal
	case sub < constants.BonusHealShare+constants.BonusBombShare:
		return components.BonusBomb
	default:
		return components.BonusSlow
	}
}

// pickLetter prefers a letter no live enemy holds, duplicates only when all are taken
func pickLetter(w *engine.World) rune {
	used := w.LiveLetters()
	free := make([]rune, 0, constants.AlphabetSize)
	for _, r := range constants.Alphabet {
		if !used[r] {
			free = append(free, r)
		}
	}
	if len(free) == 0 {
		return rune(constants.Alphabet[w.Rand.Intn(constants.AlphabetSize)])
	}
	return free[w.Rand.Intn(len(free))]
}

// newEnemy builds an enemy from its type profile
func newEnemy(w *engine.World, typ components.EnemyType, bonus components.Bonus, pos vmath.Vec2, char rune, speedMult float64) *components.Enemy {
	p := typ.Profile()

	hp := p.HPMin
	if span := p.HPMax - p.HPMin; span > 1 {
		hp += w.Rand.Intn(span)
	}

	color := p.Color
	if c := bonus.Color(); c != "" {
		color = c
	}

	speed := math.Min(w.Config.EnemySpeedBase*p.SpeedScale*speedMult, w.Config.EnemySpeedMax)

	return &components.Enemy{
		ID:     w.NextID(),
		Pos:    pos,
		Radius: constants.EnemyRadius * p.RadiusScale,
		Color:  color,
		Char:   char,
		Type:   typ,
		Bonus:  bonus,
		Speed:  speed,
		MaxHP:  hp,
		HP:     hp,
	}
}
