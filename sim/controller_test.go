package sim

import (
	"testing"

	"github.com/eggrun/eggrun/geom"
)

func testConfig() Config {
	return Config{
		Gravity:          1000,
		MoveSpeed:        300,
		JumpSpeed:        500,
		LandingTolerance: 10,
		WorldWidth:       3200,
		WorldLowerBound:  868,
		PlayerSpawn:      geom.Rect{X: 100, Y: 100, Width: 30, Height: 48},
		Platforms:        []geom.Rect{{X: 0, Y: 200, Width: 800, Height: 20}},
		Goal:             geom.Rect{X: 3000, Y: 100, Width: 120, Height: 200},
	}
}

func TestPlayerHorizontalVelocityIsSetNotAccumulated(t *testing.T) {
	cases := []struct {
		name   string
		left   bool
		right  bool
		wantVX float64
	}{
		{"left_only", true, false, -300},
		{"right_only", false, true, 300},
		{"neither", false, false, 0},
		{"both_cancel", true, true, 0},
	}

	cfg := testConfig()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newWorld(&cfg)
			w.Player.VX = 9999 // stale value must be overwritten, not added to
			stepPlayer(w, &cfg, frameInput{moveLeft: c.left, moveRight: c.right}, 1.0/60)
			if w.Player.VX != c.wantVX {
				t.Fatalf("VX = %v, want %v", w.Player.VX, c.wantVX)
			}
		})
	}
}

func TestPlayerFacingFollowsMovement(t *testing.T) {
	cfg := testConfig()
	w := newWorld(&cfg)
	if !w.Player.FacingRight {
		t.Fatalf("player spawns facing right")
	}
	stepPlayer(w, &cfg, frameInput{moveLeft: true}, 1.0/60)
	if w.Player.FacingRight {
		t.Fatalf("moving left should face left")
	}
	stepPlayer(w, &cfg, frameInput{}, 1.0/60)
	if w.Player.FacingRight {
		t.Fatalf("standing still keeps the last facing")
	}
	stepPlayer(w, &cfg, frameInput{moveRight: true}, 1.0/60)
	if !w.Player.FacingRight {
		t.Fatalf("moving right should face right")
	}
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	cfg := testConfig()
	w := newWorld(&cfg)

	// spawn is airborne; a queued jump must be ignored
	jumped := stepPlayer(w, &cfg, frameInput{jump: true}, 1.0/60)
	if jumped {
		t.Fatalf("airborne jump must not fire")
	}

	// fall until the landing snap grounds the player
	for i := 0; i < 120 && !w.Player.Grounded; i++ {
		stepPlayer(w, &cfg, frameInput{}, 1.0/60)
	}
	if !w.Player.Grounded {
		t.Fatalf("player never landed on the platform")
	}

	jumped = stepPlayer(w, &cfg, frameInput{jump: true}, 1.0/60)
	if !jumped {
		t.Fatalf("grounded jump must fire")
	}
	if w.Player.Grounded {
		t.Fatalf("jumping leaves the ground")
	}
	// -JumpSpeed plus one frame of gravity
	wantVY := -cfg.JumpSpeed + cfg.Gravity/60
	if diff := w.Player.VY - wantVY; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("VY after jump = %v, want %v", w.Player.VY, wantVY)
	}
}

func TestGravityAccumulatesWhileAirborne(t *testing.T) {
	cfg := testConfig()
	cfg.Platforms = nil
	w := newWorld(&cfg)

	dt := 1.0 / 60
	stepPlayer(w, &cfg, frameInput{}, dt)
	first := w.Player.VY
	stepPlayer(w, &cfg, frameInput{}, dt)
	if w.Player.VY <= first {
		t.Fatalf("vertical velocity must keep accumulating: %v then %v", first, w.Player.VY)
	}
}

func TestHazardBoundaryReflection(t *testing.T) {
	cases := []struct {
		name   string
		bounds geom.Rect
		vx     float64
		ticks  int
		wantVX float64
	}{
		{
			name:   "left_wall_flips_positive",
			bounds: geom.Rect{X: 0.5, Y: 300, Width: 52, Height: 48},
			vx:     -50,
			ticks:  1,
			wantVX: 50,
		},
		{
			name:   "right_wall_flips_negative",
			bounds: geom.Rect{X: 3148, Y: 300, Width: 52, Height: 48},
			vx:     50,
			ticks:  1,
			wantVX: -50,
		},
		{
			name:   "mid_world_keeps_direction",
			bounds: geom.Rect{X: 1600, Y: 300, Width: 52, Height: 48},
			vx:     -50,
			ticks:  1,
			wantVX: -50,
		},
		{
			name:   "stationary_stays_put",
			bounds: geom.Rect{X: 1600, Y: 300, Width: 52, Height: 48},
			vx:     0,
			ticks:  10,
			wantVX: 0,
		},
	}

	cfg := testConfig()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newWorld(&cfg)
			w.Hazards = []MovingEntity{NewMovingEntity(c.bounds, KindHazard, c.vx, 0)}
			startY := c.bounds.Y
			for i := 0; i < c.ticks; i++ {
				stepHazards(w, &cfg, 1.0/60)
			}
			h := w.Hazards[0]
			if h.VX != c.wantVX {
				t.Fatalf("VX = %v, want %v", h.VX, c.wantVX)
			}
			if h.VY != 0 || h.Bounds.Y != startY {
				t.Fatalf("hazard developed vertical motion: vy=%v y=%v", h.VY, h.Bounds.Y)
			}
		})
	}
}

func TestHazardOscillatesWithoutSticking(t *testing.T) {
	// An overshooting hazard must not get stuck flipping sign outside the
	// bounds; the reflection assigns magnitude, not a bare negation.
	cfg := testConfig()
	cfg.WorldWidth = 200
	w := newWorld(&cfg)
	w.Hazards = []MovingEntity{
		NewMovingEntity(geom.Rect{X: 10, Y: 300, Width: 52, Height: 48}, KindHazard, -5000, 0),
	}
	for i := 0; i < 600; i++ {
		stepHazards(w, &cfg, 1.0/60)
		h := w.Hazards[0]
		if h.Bounds.Left() <= 0 && h.VX < 0 {
			t.Fatalf("tick %d: stuck moving left past the left wall", i)
		}
		if h.Bounds.Right() >= cfg.WorldWidth && h.VX > 0 {
			t.Fatalf("tick %d: stuck moving right past the right wall", i)
		}
	}
}
