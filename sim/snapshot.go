package sim

import "github.com/eggrun/eggrun/geom"

// HazardView is one hazard's state as exposed to the frame driver.
type HazardView struct {
	Bounds geom.Rect
	VX     float64
}

// Snapshot is a read-only copy of the world for rendering and UI. Nothing in
// it aliases core storage; it is valid for the frame it was taken on and the
// frame driver must not hold it across frames.
type Snapshot struct {
	State State
	Score int

	PlayerBounds geom.Rect
	PlayerVX     float64
	PlayerVY     float64
	Grounded     bool
	Alive        bool
	FacingRight  bool

	Platforms []geom.Rect
	Pickups   []geom.Rect
	Hazards   []HazardView
	Goal      geom.Rect
}

// Snapshot copies the current world state. Before the first Play transition
// there is no world; only State is meaningful then.
func (g *Game) Snapshot() Snapshot {
	g.mustReady()
	snap := Snapshot{State: g.state}
	w := g.world
	if w == nil {
		return snap
	}

	snap.Score = w.Player.Score
	snap.PlayerBounds = w.Player.Bounds
	snap.PlayerVX = w.Player.VX
	snap.PlayerVY = w.Player.VY
	snap.Grounded = w.Player.Grounded
	snap.Alive = w.Player.Alive
	snap.FacingRight = w.Player.FacingRight

	snap.Platforms = make([]geom.Rect, len(w.Platforms))
	for i, p := range w.Platforms {
		snap.Platforms[i] = p.Bounds
	}
	snap.Pickups = make([]geom.Rect, len(w.Pickups))
	for i, p := range w.Pickups {
		snap.Pickups[i] = p.Bounds
	}
	snap.Hazards = make([]HazardView, len(w.Hazards))
	for i, h := range w.Hazards {
		snap.Hazards[i] = HazardView{Bounds: h.Bounds, VX: h.VX}
	}
	snap.Goal = w.Goal.Bounds
	return snap
}
