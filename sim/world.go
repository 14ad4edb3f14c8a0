package sim

// World owns every entity collection for one run. It exists only while the
// game is in StatePlay and is rebuilt from the config on every (re)start, so
// two worlds built from the same config are identical.
type World struct {
	Player    Player
	Platforms []Entity
	Pickups   []Entity
	Hazards   []MovingEntity
	Goal      Entity
}

func newWorld(cfg *Config) *World {
	w := &World{
		Player:    newPlayer(cfg.PlayerSpawn),
		Platforms: make([]Entity, 0, len(cfg.Platforms)),
		Pickups:   make([]Entity, 0, len(cfg.Pickups)),
		Hazards:   make([]MovingEntity, 0, len(cfg.Hazards)),
		Goal:      NewEntity(cfg.Goal, KindGoal),
	}
	for _, p := range cfg.Platforms {
		w.Platforms = append(w.Platforms, NewEntity(p, KindPlatform))
	}
	for _, p := range cfg.Pickups {
		w.Pickups = append(w.Pickups, NewEntity(p, KindPickup))
	}
	for _, h := range cfg.Hazards {
		w.Hazards = append(w.Hazards, NewMovingEntity(h.Bounds, KindHazard, h.VX, 0))
	}
	return w
}

// removePickup deletes the pickup at index i preserving the order of the
// remaining pickups, so the platform-list style first-match tie-break stays
// stable across removals.
func (w *World) removePickup(i int) {
	w.Pickups = append(w.Pickups[:i], w.Pickups[i+1:]...)
}
