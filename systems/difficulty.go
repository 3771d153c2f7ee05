package systems

import (
	"time"

	"github.com/lixenwraith/alpha-strike/components"
	"github.com/lixenwraith/alpha-strike/vmath"
)

// Weights maps enemy types to their relative spawn weight
type Weights map[components.EnemyType]float64

// Stage is one kill-indexed breakpoint of the difficulty table
type Stage struct {
	Kills         int
	SpawnInterval time.Duration
	SpeedMult     float64
	Weights       Weights
}

// Level is the difficulty in effect for a given kill count
type Level struct {
	Stage         int // Index into Stages
	SpawnInterval time.Duration
	SpeedMult     float64
	Weights       Weights
}

// Stages is ascending by Kills, the first threshold is zero
var Stages = []Stage{
	{Kills: 0, SpawnInterval: 1400 * time.Millisecond, SpeedMult: 1.00, Weights: Weights{
		components.EnemyNormal: 70, components.EnemyShield: 15, components.EnemyFast: 15,
	}},
	{Kills: 20, SpawnInterval: 1200 * time.Millisecond, SpeedMult: 1.25, Weights: Weights{
		components.EnemyNormal: 55, components.EnemyShield: 20, components.EnemyFast: 15,
		components.EnemyRotating: 10,
	}},
	{Kills: 40, SpawnInterval: 1000 * time.Millisecond, SpeedMult: 1.50, Weights: Weights{
		components.EnemyNormal: 40, components.EnemyShield: 20, components.EnemyFast: 15,
		components.EnemyRotating: 10, components.EnemyChain: 10, components.EnemyElite: 5,
	}},
	{Kills: 70, SpawnInterval: 800 * time.Millisecond, SpeedMult: 1.75, Weights: Weights{
		components.EnemyNormal: 30, components.EnemyShield: 20, components.EnemyFast: 15,
		components.EnemyRotating: 10, components.EnemyChain: 10, components.EnemyReflect: 8,
		components.EnemyElite: 7,
	}},
	{Kills: 110, SpawnInterval: 600 * time.Millisecond, SpeedMult: 2.00, Weights: Weights{
		components.EnemyNormal: 22, components.EnemyShield: 18, components.EnemyFast: 18,
		components.EnemyRotating: 10, components.EnemyChain: 12, components.EnemyReflect: 10,
		components.EnemyElite: 10,
	}},
	{Kills: 160, SpawnInterval: 450 * time.Millisecond, SpeedMult: 2.50, Weights: Weights{
		components.EnemyNormal: 15, components.EnemyShield: 18, components.EnemyFast: 20,
		components.EnemyRotating: 10, components.EnemyChain: 13, components.EnemyReflect: 12,
		components.EnemyElite: 12,
	}},
}

// Difficulty maps a cumulative kill count to the current level
// Pace and speed interpolate linearly toward the next stage, weights step
func Difficulty(kills int) Level {
	if kills < 0 {
		kills = 0
	}

	idx := 0
	for i := range Stages {
		if Stages[i].Kills <= kills {
			idx = i
		}
	}
	cur := Stages[idx]

	if idx == len(Stages)-1 {
		return Level{Stage: idx, SpawnInterval: cur.SpawnInterval, SpeedMult: cur.SpeedMult, Weights: cur.Weights}
	}

	next := Stages[idx+1]
	progress := vmath.Clamp(float64(kills-cur.Kills)/float64(next.Kills-cur.Kills), 0, 1)

	return Level{
		Stage:         idx,
		SpawnInterval: time.Duration(vmath.Lerp(float64(cur.SpawnInterval), float64(next.SpawnInterval), progress)),
		SpeedMult:     vmath.Lerp(cur.SpeedMult, next.SpeedMult, progress),
		Weights:       cur.Weights,
	}
}

// Total returns the sum of all positive weights
func (w Weights) Total() float64 {
	total := 0.0
	for _, v := range w {
		if v > 0 {
			total += v
		}
	}
	return total
}

// Pick draws a type by cumulative weight, roll is uniform in [0, 1)
// Types are visited in declaration order; falls back to NORMAL
func (w Weights) Pick(roll float64) components.EnemyType {
	remaining := roll * w.Total()
	for _, t := range components.EnemyTypes() {
		v := w[t]
		if v <= 0 {
			continue
		}
		remaining -= v
		if remaining <= 0 {
			return t
		}
	}
	return components.EnemyNormal
}
