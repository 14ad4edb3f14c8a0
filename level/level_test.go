package level

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/eggrun/eggrun/sim"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load default: %v", err)
	}

	if cfg.Gravity != 1000 || cfg.MoveSpeed != 300 || cfg.JumpSpeed != 500 {
		t.Fatalf("physics constants: %+v", cfg)
	}
	if cfg.LandingTolerance != 10 {
		t.Fatalf("landing tolerance = %v, want 10", cfg.LandingTolerance)
	}
	if cfg.PlayerSpawn.Width != 30 || cfg.PlayerSpawn.Height != 48 {
		t.Fatalf("player spawn = %+v", cfg.PlayerSpawn)
	}
	if len(cfg.Platforms) == 0 || len(cfg.Pickups) == 0 || len(cfg.Hazards) == 0 {
		t.Fatalf("default level is missing entities: %d platforms, %d pickups, %d hazards",
			len(cfg.Platforms), len(cfg.Pickups), len(cfg.Hazards))
	}
	if cfg.Goal.Width <= 0 || cfg.Goal.Height <= 0 {
		t.Fatalf("goal = %+v", cfg.Goal)
	}

	// the default level must construct a valid game
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("default level rejected by the simulation: %v", r)
		}
	}()
	g := sim.NewGame(cfg)
	if g.State() != sim.StateStart {
		t.Fatalf("state = %v, want start", g.State())
	}
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.yaml")
	body := `
name: tiny
physics: { gravity: 900, move_speed: 200, jump_speed: 400, landing_tolerance: 5 }
world_width: 800
world_lower_bound: 700
player: { x: 10, y: 10, width: 30, height: 48 }
platforms:
  - { x: 0, y: 200, width: 800, height: 20 }
pickups:
  - { x: 100, y: 160, width: 40, height: 40 }
hazards:
  - { x: 400, y: 152, width: 52, height: 48, vx: -50 }
goal: { x: 700, y: 100, width: 60, height: 100 }
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Gravity != 900 || cfg.WorldWidth != 800 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if len(cfg.Hazards) != 1 || cfg.Hazards[0].VX != -50 {
		t.Fatalf("hazards = %+v", cfg.Hazards)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load("does/not/exist.yaml"); err == nil {
		t.Fatalf("missing file must error")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("platforms: {not: [a, list"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("malformed yaml must error")
	}
}
