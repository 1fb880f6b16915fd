package game

import (
	"math"
	"testing"
)

func testConfig() Config {
	return Config{
		Arena:      NewArena(600, 300, 5),
		BallRadius: 6,
		MinSpeed:   5,
		MaxSpeed:   12,
		Paddle: PaddleConfig{
			Radius:            35,
			MoveSpeed:         6,
			ToggleStop:        true,
			KickRadius:        50,
			KickActiveTicks:   8,
			KickCooldownTicks: 60,
		},
		Deltas: HitDeltas{Bounce: 1, Kick: 2},
	}
}

func newTestSim(t *testing.T) *Simulation {
	t.Helper()
	s, err := NewSimulation(testConfig())
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	return s
}

func approx(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func assertVec(t *testing.T, name string, got, want Vec2, eps float64) {
	t.Helper()
	if !approx(got.X, want.X, eps) || !approx(got.Y, want.Y, eps) {
		t.Fatalf("%s = (%v, %v), want (%v, %v)", name, got.X, got.Y, want.X, want.Y)
	}
}
