// Package level loads world configuration from YAML: the physics constants
// and the fixed layout of platforms, eggs, hazards, and the goal. The layout
// is read once at startup; there is no runtime reload.
package level

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eggrun/eggrun/geom"
	"github.com/eggrun/eggrun/sim"
)

//go:embed *.yaml
var levelsFS embed.FS

// DefaultName is the embedded level used when no path is given.
const DefaultName = "default.yaml"

// RectSpec is a rectangle in a level file.
type RectSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (r RectSpec) rect() geom.Rect {
	return geom.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// HazardSpec places a hazard with a horizontal patrol speed. vx 0 makes it
// stationary (a spike rather than a chicken).
type HazardSpec struct {
	RectSpec `yaml:",inline"`
	VX       float64 `yaml:"vx"`
}

// PhysicsSpec holds the tuning constants.
type PhysicsSpec struct {
	Gravity          float64 `yaml:"gravity"`
	MoveSpeed        float64 `yaml:"move_speed"`
	JumpSpeed        float64 `yaml:"jump_speed"`
	LandingTolerance float64 `yaml:"landing_tolerance"`
}

// Spec is one complete level file.
type Spec struct {
	Name            string       `yaml:"name"`
	Physics         PhysicsSpec  `yaml:"physics"`
	WorldWidth      float64      `yaml:"world_width"`
	WorldLowerBound float64      `yaml:"world_lower_bound"`
	Player          RectSpec     `yaml:"player"`
	Platforms       []RectSpec   `yaml:"platforms"`
	Pickups         []RectSpec   `yaml:"pickups"`
	Hazards         []HazardSpec `yaml:"hazards"`
	Goal            RectSpec     `yaml:"goal"`
}

// Load reads a level from the given path, or the embedded default when the
// path is empty, and converts it into a simulation config.
func Load(path string) (sim.Config, error) {
	var (
		data []byte
		err  error
		name string
	)
	if path == "" {
		name = DefaultName
		data, err = levelsFS.ReadFile(DefaultName)
	} else {
		name = path
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return sim.Config{}, fmt.Errorf("level: read %s: %w", name, err)
	}

	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return sim.Config{}, fmt.Errorf("level: unmarshal %s: %w", name, err)
	}
	return spec.Config(), nil
}

// Config converts the file spec into the simulation's config structure.
func (s *Spec) Config() sim.Config {
	cfg := sim.Config{
		Gravity:          s.Physics.Gravity,
		MoveSpeed:        s.Physics.MoveSpeed,
		JumpSpeed:        s.Physics.JumpSpeed,
		LandingTolerance: s.Physics.LandingTolerance,
		WorldWidth:       s.WorldWidth,
		WorldLowerBound:  s.WorldLowerBound,
		PlayerSpawn:      s.Player.rect(),
		Goal:             s.Goal.rect(),
	}
	for _, p := range s.Platforms {
		cfg.Platforms = append(cfg.Platforms, p.rect())
	}
	for _, p := range s.Pickups {
		cfg.Pickups = append(cfg.Pickups, p.rect())
	}
	for _, h := range s.Hazards {
		cfg.Hazards = append(cfg.Hazards, sim.HazardSpec{Bounds: h.rect(), VX: h.VX})
	}
	return cfg
}
