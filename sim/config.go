package sim

import (
	"fmt"

	"github.com/eggrun/eggrun/geom"
)

// HazardSpec places a patrolling hazard. VX may be zero for stationary
// hazards such as spikes.
type HazardSpec struct {
	Bounds geom.Rect
	VX     float64
}

// Config fixes every tunable of a game world. It is supplied once at
// construction; there is no runtime reload.
type Config struct {
	// Physics constants, in pixels and seconds.
	Gravity          float64
	MoveSpeed        float64
	JumpSpeed        float64
	LandingTolerance float64

	// WorldWidth bounds hazard patrols; WorldLowerBound is the y coordinate
	// below which a falling player is lost.
	WorldWidth      float64
	WorldLowerBound float64

	PlayerSpawn geom.Rect
	Platforms   []geom.Rect
	Pickups     []geom.Rect
	Hazards     []HazardSpec
	Goal        geom.Rect
}

func (c *Config) validate() error {
	if c.Gravity < 0 {
		return fmt.Errorf("gravity must be non-negative, got %v", c.Gravity)
	}
	if c.MoveSpeed < 0 || c.JumpSpeed < 0 {
		return fmt.Errorf("speeds must be non-negative, got move=%v jump=%v", c.MoveSpeed, c.JumpSpeed)
	}
	if c.LandingTolerance < 0 {
		return fmt.Errorf("landing tolerance must be non-negative, got %v", c.LandingTolerance)
	}
	if c.WorldWidth <= 0 {
		return fmt.Errorf("world width must be positive, got %v", c.WorldWidth)
	}
	if err := validBounds("player spawn", c.PlayerSpawn); err != nil {
		return err
	}
	if err := validBounds("goal", c.Goal); err != nil {
		return err
	}
	for i, p := range c.Platforms {
		if err := validBounds(fmt.Sprintf("platform %d", i), p); err != nil {
			return err
		}
	}
	for i, p := range c.Pickups {
		if err := validBounds(fmt.Sprintf("pickup %d", i), p); err != nil {
			return err
		}
	}
	for i, h := range c.Hazards {
		if err := validBounds(fmt.Sprintf("hazard %d", i), h.Bounds); err != nil {
			return err
		}
	}
	return nil
}

func validBounds(name string, r geom.Rect) error {
	if r.Width < 0 || r.Height < 0 {
		return fmt.Errorf("%s has negative dimensions: %+v", name, r)
	}
	return nil
}
