package sim

import (
	"fmt"

	"github.com/eggrun/eggrun/geom"
)

// Kind identifies what an entity is to the collision resolver.
type Kind int

const (
	KindPlatform Kind = iota
	KindPickup
	KindHazard
	KindGoal
	KindPlayer
)

func (k Kind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindPickup:
		return "pickup"
	case KindHazard:
		return "hazard"
	case KindGoal:
		return "goal"
	case KindPlayer:
		return "player"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Entity is a positioned rectangle. Platform and goal bounds never change
// after construction; pickups are removed rather than mutated.
type Entity struct {
	Bounds geom.Rect
	Kind   Kind
}

// NewEntity constructs an entity. Negative dimensions are a caller bug.
func NewEntity(bounds geom.Rect, kind Kind) Entity {
	mustValidBounds(bounds, kind)
	return Entity{Bounds: bounds, Kind: kind}
}

// MovingEntity is an entity with a velocity. Hazards patrol horizontally;
// the player additionally falls under gravity and can be grounded.
type MovingEntity struct {
	Entity
	VX, VY   float64
	Grounded bool
}

// NewMovingEntity constructs an airborne moving entity.
func NewMovingEntity(bounds geom.Rect, kind Kind, vx, vy float64) MovingEntity {
	mustValidBounds(bounds, kind)
	return MovingEntity{
		Entity: Entity{Bounds: bounds, Kind: kind},
		VX:     vx,
		VY:     vy,
	}
}

// Player is the single player-controlled actor.
type Player struct {
	MovingEntity
	Score       int
	Alive       bool
	FacingRight bool
}

func newPlayer(spawn geom.Rect) Player {
	return Player{
		MovingEntity: NewMovingEntity(spawn, KindPlayer, 0, 0),
		Alive:        true,
		FacingRight:  true,
	}
}

func mustValidBounds(bounds geom.Rect, kind Kind) {
	if bounds.Width < 0 || bounds.Height < 0 {
		panic(fmt.Sprintf("sim: %s bounds have negative dimensions: %+v", kind, bounds))
	}
}
