package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/alpha-strike/components"
	"github.com/lixenwraith/alpha-strike/constants"
	"github.com/lixenwraith/alpha-strike/events"
	"github.com/lixenwraith/alpha-strike/vmath"
)

func TestKillNormal(t *testing.T) {
	rec := events.NewRecorder()
	w, _ := newScripted(t, rec)
	e := place(w, components.EnemyNormal, components.BonusNone, vmath.V(120, -40), 'A')

	NewCombatSystem().HandleKey(w, 'A')

	if hasEnemy(w, e) {
		t.Error("Expected enemy removed after kill")
	}
	if w.Stats.Kills != 1 || w.Stats.Combo != 1 || w.Stats.MaxCombo != 1 {
		t.Errorf("Expected kills=1 combo=1 max=1, got %+v", w.Stats)
	}
	if w.Stats.Score != 100 {
		t.Errorf("Expected score 100, got %f", w.Stats.Score)
	}
	if w.ComboTimer != w.Config.ComboDecay.Duration {
		t.Errorf("Expected combo timer reset to %v, got %v", w.Config.ComboDecay.Duration, w.ComboTimer)
	}
	if w.Player.Pos != e.Pos || len(w.Player.Trail) != 1 || w.Player.Trail[0] != vmath.Zero {
		t.Errorf("Expected marker at enemy with origin in trail, got %v trail %v", w.Player.Pos, w.Player.Trail)
	}
	if rec.Count(events.CueShot) != 1 || rec.Count(events.CueKill) != 1 {
		t.Errorf("Expected shot and kill cues, got %v", rec.Sequence())
	}
	if w.ParticleCount(components.ParticleRing) != 1 || w.ParticleCount(components.ParticleSpark) == 0 {
		t.Error("Expected kill sparks and ring")
	}
}

func TestKillScoreScalesWithPriorCombo(t *testing.T) {
	for _, combo := range []int{0, 1, 3, 7, 12} {
		w, _ := newScripted(t, nil)
		w.Stats.Combo = combo
		w.Stats.MaxCombo = combo
		place(w, components.EnemyNormal, components.BonusNone, vmath.V(200, 0), 'K')

		before := w.Stats.Score
		NewCombatSystem().HandleKey(w, 'K')

		want := 100 * (1 + float64(combo)*0.1)
		if got := w.Stats.Score - before; !approx(got, want) {
			t.Errorf("combo %d: expected +%f, got +%f", combo, want, got)
		}
		if w.Stats.Combo != combo+1 {
			t.Errorf("combo %d: expected combo %d after kill, got %d", combo, combo+1, w.Stats.Combo)
		}
	}
}

func TestMiss(t *testing.T) {
	rec := events.NewRecorder()
	w, _ := newScripted(t, rec)
	e := place(w, components.EnemyNormal, components.BonusNone, vmath.V(200, 0), 'A')
	w.Stats.Combo = 4
	w.ComboTimer = time.Second

	NewCombatSystem().HandleKey(w, 'B')

	if w.Stats.Combo != 0 || w.Stats.Misses != 1 {
		t.Errorf("Expected combo 0 misses 1, got %+v", w.Stats)
	}
	if !hasEnemy(w, e) || e.HP != 1 {
		t.Error("Expected live enemy untouched by miss")
	}
	if !w.HasText(constants.TextMiss) || rec.Count(events.CueMiss) != 1 {
		t.Error("Expected miss caption and cue")
	}
	if w.Shake != constants.ShakeMiss {
		t.Errorf("Expected shake %f, got %f", constants.ShakeMiss, w.Shake)
	}
}

func TestShieldRequiresTwoHits(t *testing.T) {
	w, _ := newScripted(t, nil)
	e := place(w, components.EnemyShield, components.BonusNone, vmath.V(0, 200), 'S')
	combat := NewCombatSystem()

	combat.HandleKey(w, 'S')
	if !hasEnemy(w, e) || e.HP != 1 {
		t.Fatalf("Expected shield alive at hp 1 after first hit, got hp %d", e.HP)
	}
	if w.Stats.Score != 50 || w.Stats.Combo != 1 || w.Stats.Kills != 0 {
		t.Errorf("Expected partial hit score 50 combo 1, got %+v", w.Stats)
	}
	if !w.HasText(constants.TextBlock) {
		t.Error("Expected block caption")
	}

	combat.HandleKey(w, 'S')
	if hasEnemy(w, e) {
		t.Error("Expected shield removed after second hit")
	}
	// 50 + 100*(1+1*0.1)
	if !approx(w.Stats.Score, 160) || w.Stats.Kills != 1 || w.Stats.Combo != 2 {
		t.Errorf("Expected score 160 kills 1 combo 2, got %+v", w.Stats)
	}
}

func TestEliteMultiHit(t *testing.T) {
	w, _ := newScripted(t, nil)
	e := place(w, components.EnemyElite, components.BonusNone, vmath.V(-300, 0), 'E')
	e.HP, e.MaxHP = 6, 6
	combat := NewCombatSystem()

	for i := 0; i < 5; i++ {
		combat.HandleKey(w, 'E')
	}
	if !hasEnemy(w, e) || e.HP != 1 || w.Stats.Kills != 0 {
		t.Fatalf("Expected elite alive at hp 1 after 5 hits, got hp %d", e.HP)
	}
	combat.HandleKey(w, 'E')
	if hasEnemy(w, e) || w.Stats.Kills != 1 {
		t.Error("Expected elite killed by sixth hit")
	}
}

func TestFastDodge(t *testing.T) {
	rec := events.NewRecorder()
	w, r := newScripted(t, rec)
	start := vmath.V(200, 0)
	e := place(w, components.EnemyFast, components.BonusNone, start, 'F')
	w.Stats.Combo = 2
	w.Stats.Score = 75
	r.floats = []float64{0.1, 0.25} // Dodge, angle pi/2

	NewCombatSystem().HandleKey(w, 'F')

	if !hasEnemy(w, e) || e.HP != 1 {
		t.Fatal("Expected dodging enemy to stay alive and unharmed")
	}
	if w.Stats.Combo != 2 || w.Stats.Misses != 0 || w.Stats.Kills != 0 || w.Stats.Score != 75 {
		t.Errorf("Expected stats untouched by dodge, got %+v", w.Stats)
	}
	if d := vmath.Dist(start, e.Pos); !approx(d, w.Config.DodgeDistance) {
		t.Errorf("Expected displacement %f, got %f", w.Config.DodgeDistance, d)
	}
	if w.Player.Pos != vmath.Zero || len(w.Player.Trail) != 0 {
		t.Error("Expected marker not to move on dodge")
	}
	if !w.HasText(constants.TextDodge) || rec.Count(events.CueDodge) != 1 || rec.Count(events.CueShot) != 0 {
		t.Errorf("Expected dodge caption and cue only, got %v", rec.Sequence())
	}
}

func TestFastWithoutDodgeDies(t *testing.T) {
	w, r := newScripted(t, nil)
	e := place(w, components.EnemyFast, components.BonusNone, vmath.V(200, 0), 'F')
	r.floats = []float64{0.25} // Boundary is not a dodge

	NewCombatSystem().HandleKey(w, 'F')

	if hasEnemy(w, e) || w.Stats.Kills != 1 {
		t.Error("Expected fast enemy killed when the dodge roll fails")
	}
}

func TestNonFastNeverRollsDodge(t *testing.T) {
	w, r := newScripted(t, nil)
	place(w, components.EnemyNormal, components.BonusNone, vmath.V(200, 0), 'N')
	r.floats = []float64{0.0}

	NewCombatSystem().HandleKey(w, 'N')

	if w.Stats.Kills != 1 {
		t.Error("Expected normal enemy killed regardless of roll")
	}
	if len(r.floats) != 1 {
		t.Error("Expected no random draw for a non-dodging type")
	}
}

func TestFirstMatchWinsOnDuplicateLetters(t *testing.T) {
	w, _ := newScripted(t, nil)
	older := place(w, components.EnemyNormal, components.BonusNone, vmath.V(400, 0), 'D')
	newer := place(w, components.EnemyNormal, components.BonusNone, vmath.V(100, 0), 'D')

	NewCombatSystem().HandleKey(w, 'D')

	if hasEnemy(w, older) || !hasEnemy(w, newer) {
		t.Error("Expected the oldest enemy with the letter to be hit")
	}
}

func TestBombKillsWithinRadius(t *testing.T) {
	rec := events.NewRecorder()
	w, _ := newScripted(t, rec)
	bomb := place(w, components.EnemyNormal, components.BonusBomb, vmath.V(100, 0), 'B')
	nearA := place(w, components.EnemyNormal, components.BonusNone, vmath.V(200, 0), 'C')
	nearChain := place(w, components.EnemyChain, components.BonusSlow, vmath.V(100, 240), 'D')
	far := place(w, components.EnemyNormal, components.BonusNone, vmath.V(400, 0), 'E')

	NewCombatSystem().HandleKey(w, 'B')

	if hasEnemy(w, bomb) || hasEnemy(w, nearA) || hasEnemy(w, nearChain) {
		t.Error("Expected bomb carrier and enemies in radius removed")
	}
	if !hasEnemy(w, far) {
		t.Error("Expected enemy outside radius to survive")
	}
	if w.Stats.Kills != 3 {
		t.Errorf("Expected 3 kills, got %d", w.Stats.Kills)
	}
	// 100 for the carrier plus 150 per victim
	if !approx(w.Stats.Score, 400) {
		t.Errorf("Expected score 400, got %f", w.Stats.Score)
	}
	// Victims do not cascade their own effects
	if len(w.Projectiles) != 0 || w.SlowTimer != 0 {
		t.Error("Expected bomb victims to skip chain and slow effects")
	}
	if w.ParticleCount(components.ParticleShockwave) != 1 || !w.HasText("CHAIN x2") {
		t.Error("Expected shockwave and blast caption")
	}
	if rec.Count(events.CueExplosion) != 1 {
		t.Errorf("Expected one explosion cue, got %d", rec.Count(events.CueExplosion))
	}
	if rec.Count(events.CueBonus) != 1 {
		t.Errorf("Expected one bonus cue for the bomb pickup, got %d", rec.Count(events.CueBonus))
	}
}

func TestBombRadiusIsExclusive(t *testing.T) {
	w, _ := newScripted(t, nil)
	place(w, components.EnemyNormal, components.BonusBomb, vmath.V(0, 0), 'B')
	edge := place(w, components.EnemyNormal, components.BonusNone, vmath.V(w.Config.BombRadius, 0), 'C')
	inside := place(w, components.EnemyNormal, components.BonusNone, vmath.V(0, w.Config.BombRadius-1), 'D')

	NewCombatSystem().HandleKey(w, 'B')

	if !hasEnemy(w, edge) {
		t.Error("Expected enemy exactly at bomb radius to survive")
	}
	if hasEnemy(w, inside) {
		t.Error("Expected enemy just inside bomb radius removed")
	}
	if w.Stats.Kills != 2 {
		t.Errorf("Expected 2 kills, got %d", w.Stats.Kills)
	}
}

func TestHealBonus(t *testing.T) {
	w, _ := newScripted(t, nil)
	w.BaseHP = 3
	place(w, components.EnemyNormal, components.BonusHeal, vmath.V(100, 0), 'H')
	place(w, components.EnemyNormal, components.BonusHeal, vmath.V(150, 0), 'I')
	place(w, components.EnemyNormal, components.BonusHeal, vmath.V(200, 0), 'J')
	combat := NewCombatSystem()

	combat.HandleKey(w, 'H')
	if w.BaseHP != 4 {
		t.Errorf("Expected base hp 4, got %d", w.BaseHP)
	}
	combat.HandleKey(w, 'I')
	combat.HandleKey(w, 'J')
	if w.BaseHP != 5 {
		t.Errorf("Expected base hp capped at 5, got %d", w.BaseHP)
	}
	if !w.HasText(constants.TextRepair) {
		t.Error("Expected repair caption")
	}
}

func TestSlowBonusNeverShortens(t *testing.T) {
	w, _ := newScripted(t, nil)
	place(w, components.EnemyNormal, components.BonusSlow, vmath.V(100, 0), 'S')
	place(w, components.EnemyNormal, components.BonusSlow, vmath.V(200, 0), 'T')
	combat := NewCombatSystem()

	combat.HandleKey(w, 'S')
	if w.SlowTimer != 5*time.Second {
		t.Errorf("Expected slow 5s, got %v", w.SlowTimer)
	}

	w.SlowTimer = 8 * time.Second
	combat.HandleKey(w, 'T')
	if w.SlowTimer != 8*time.Second {
		t.Errorf("Expected longer slow kept at 8s, got %v", w.SlowTimer)
	}
}

func TestBurstKillsNearestNeighbors(t *testing.T) {
	w, r := newScripted(t, nil)
	src := place(w, components.EnemyReflect, components.BonusNone, vmath.Zero, 'R')
	var others []*components.Enemy
	for i := 1; i <= 7; i++ {
		others = append(others, place(w, components.EnemyNormal, components.BonusNone, vmath.V(float64(i)*50, 0), rune('A'+i)))
	}
	r.ints = []int{0} // Five beams

	NewCombatSystem().HandleKey(w, 'R')

	if hasEnemy(w, src) {
		t.Error("Expected reflect enemy removed")
	}
	for i, e := range others {
		if i < 5 && hasEnemy(w, e) {
			t.Errorf("Expected neighbor %d killed by beam", i)
		}
		if i >= 5 && !hasEnemy(w, e) {
			t.Errorf("Expected distant neighbor %d to survive", i)
		}
	}
	if w.Stats.Kills != 6 {
		t.Errorf("Expected 6 kills, got %d", w.Stats.Kills)
	}
	if !approx(w.Stats.Score, 100+5*200) {
		t.Errorf("Expected score 1100, got %f", w.Stats.Score)
	}
	if w.ParticleCount(components.ParticleBeam) != 5 {
		t.Errorf("Expected 5 beams, got %d", w.ParticleCount(components.ParticleBeam))
	}
	if len(w.Projectiles) != 0 {
		t.Error("Expected beams to be instant, no projectiles")
	}
}

func TestBurstCappedByLiveEnemies(t *testing.T) {
	w, r := newScripted(t, nil)
	place(w, components.EnemyReflect, components.BonusNone, vmath.Zero, 'R')
	place(w, components.EnemyShield, components.BonusNone, vmath.V(90, 0), 'A')
	place(w, components.EnemyChain, components.BonusBomb, vmath.V(0, 90), 'B')
	r.ints = []int{7} // Twelve beams requested

	NewCombatSystem().HandleKey(w, 'R')

	if len(w.Enemies) != 0 || w.Stats.Kills != 3 {
		t.Errorf("Expected all 3 enemies dead, got %d live, %d kills", len(w.Enemies), w.Stats.Kills)
	}
	// Victims skip their own effects
	if len(w.Projectiles) != 0 || w.ParticleCount(components.ParticleShockwave) != 0 {
		t.Error("Expected burst victims not to cascade")
	}
}

func TestChainKillLaunchesProjectile(t *testing.T) {
	w, r := newScripted(t, nil)
	place(w, components.EnemyChain, components.BonusNone, vmath.V(100, 0), 'C')
	far := place(w, components.EnemyNormal, components.BonusNone, vmath.V(400, 0), 'F')
	near := place(w, components.EnemyNormal, components.BonusNone, vmath.V(150, 0), 'N')
	r.ints = []int{2} // Seven hops

	NewCombatSystem().HandleKey(w, 'C')

	if len(w.Projectiles) != 1 {
		t.Fatalf("Expected one chain projectile, got %d", len(w.Projectiles))
	}
	p := w.Projectiles[0]
	if p.TargetID != near.ID || p.TargetID == far.ID {
		t.Errorf("Expected projectile targeting nearest neighbor %d, got %d", near.ID, p.TargetID)
	}
	if p.HopsRemaining != 7 {
		t.Errorf("Expected chain projectile with 7 hops, got %+v", p)
	}
	if p.Pos != vmath.V(100, 0) {
		t.Errorf("Expected launch from kill point, got %v", p.Pos)
	}
	if w.Stats.Kills != 1 {
		t.Errorf("Expected only the direct kill so far, got %d", w.Stats.Kills)
	}
}

func TestChainKillAloneLaunchesNothing(t *testing.T) {
	w, _ := newScripted(t, nil)
	place(w, components.EnemyChain, components.BonusNone, vmath.V(100, 0), 'C')

	NewCombatSystem().HandleKey(w, 'C')

	if len(w.Projectiles) != 0 {
		t.Error("Expected no projectile without a live target")
	}
}

func TestComboTierRewards(t *testing.T) {
	tests := []struct {
		name     string
		roll     float64
		baseHP   int
		wantHP   int
		wantGain float64
		wantSlow time.Duration
	}{
		{"heal below max", 0.1, 3, 4, 140, 0},
		{"cash at max", 0.1, 5, 5, 640, 0},
		{"time warp", 0.7, 5, 5, 140, 10 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := events.NewRecorder()
			w, r := newScripted(t, rec)
			w.BaseHP = tt.baseHP
			w.Stats.Combo = 4
			place(w, components.EnemyNormal, components.BonusNone, vmath.V(100, 0), 'T')
			r.floats = []float64{tt.roll}

			NewCombatSystem().HandleKey(w, 'T')

			if w.Stats.Combo != 5 {
				t.Fatalf("Expected combo 5, got %d", w.Stats.Combo)
			}
			if w.BaseHP != tt.wantHP {
				t.Errorf("Expected base hp %d, got %d", tt.wantHP, w.BaseHP)
			}
			if !approx(w.Stats.Score, tt.wantGain) {
				t.Errorf("Expected score %f, got %f", tt.wantGain, w.Stats.Score)
			}
			if w.SlowTimer != tt.wantSlow {
				t.Errorf("Expected slow %v, got %v", tt.wantSlow, w.SlowTimer)
			}
			if rec.Count(events.CueComboTier) != 1 {
				t.Error("Expected combo tier cue")
			}
		})
	}
}

func TestComboTierOnPartialHit(t *testing.T) {
	rec := events.NewRecorder()
	w, _ := newScripted(t, rec)
	w.Stats.Combo = 9
	place(w, components.EnemyShield, components.BonusNone, vmath.V(100, 0), 'S')

	NewCombatSystem().HandleKey(w, 'S')

	if w.Stats.Combo != 10 || rec.Count(events.CueComboTier) != 1 {
		t.Errorf("Expected combo tier at combo 10, got combo %d", w.Stats.Combo)
	}
}

func TestInvalidInputIgnored(t *testing.T) {
	w, _ := newScripted(t, nil)
	place(w, components.EnemyNormal, components.BonusNone, vmath.V(100, 0), 'A')
	combat := NewCombatSystem()

	combat.HandleKey(w, 'a')
	combat.HandleKey(w, '7')
	if w.Stats.Misses != 0 || w.Stats.Kills != 0 || len(w.Enemies) != 1 {
		t.Error("Expected keys outside the alphabet to be ignored")
	}

	w.EndSession()
	combat.HandleKey(w, 'A')
	if w.Stats.Kills != 0 {
		t.Error("Expected input ignored after game over")
	}
}
