package vmath

import (
	"math"
	"testing"
)

func TestNormalizeZeroSafe(t *testing.T) {
	if got := Zero.Normalize(); got != Zero {
		t.Errorf("Expected zero vector, got %v", got)
	}

	n := V(3, 4).Normalize()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", n.Len())
	}
}

func TestMoveToward(t *testing.T) {
	tests := []struct {
		name    string
		from    Vec2
		target  Vec2
		step    float64
		want    Vec2
		reached bool
	}{
		{"partial", V(0, 0), V(10, 0), 4, V(4, 0), false},
		{"exact", V(0, 0), V(0, 5), 5, V(0, 5), true},
		{"overshoot clamps", V(1, 1), V(2, 1), 100, V(2, 1), true},
		{"zero step", V(3, 3), V(9, 9), 0, V(3, 3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reached := MoveToward(tt.from, tt.target, tt.step)
			if reached != tt.reached {
				t.Errorf("Expected reached=%v, got %v", tt.reached, reached)
			}
			if Dist(got, tt.want) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestLerpClamp(t *testing.T) {
	if got := Lerp(1400, 1200, 0.5); got != 1300 {
		t.Errorf("Expected 1300, got %f", got)
	}
	if got := Clamp(-1, 0, 1); got != 0 {
		t.Errorf("Expected 0, got %f", got)
	}
	if got := Clamp(2, 0, 1); got != 1 {
		t.Errorf("Expected 1, got %f", got)
	}
}
