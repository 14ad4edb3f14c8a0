package sim

import "github.com/eggrun/eggrun/geom"

// The resolver decides one frame's collision outcomes for the player. The
// landing sweep is discrete: it compares the player's bounds before and after
// integration instead of sweeping the path continuously, so a fast enough
// player (or a long enough frame) can tunnel straight through a thin
// platform. That is a known limitation inherited from the tuning of the
// landing tolerance band, not something the resolver tries to hide.

// landingPlatform scans the platforms in declared order and returns the top
// edge of the first one the player lands on this frame. pre is the player's
// bounds before integration and vy the vertical velocity after gravity has
// been applied for the frame.
//
// A platform matches when the player is falling (vy > 0), the horizontal
// ranges overlap, the player's bottom edge sits inside the tolerance band
// above the platform top, and integration would carry the bottom edge onto
// or past the top. Both ends of the band are inclusive: resting exactly on
// the top still lands, as does a bottom edge exactly tolerance pixels above.
// The first match wins; no attempt is made to pick the nearest platform.
func landingPlatform(pre geom.Rect, vy, dt, tolerance float64, platforms []Entity) (float64, bool) {
	if vy <= 0 {
		return 0, false
	}
	for _, p := range platforms {
		top := p.Bounds.Top()
		horizontal := pre.Right() > p.Bounds.Left() && pre.Left() < p.Bounds.Right()
		inBand := pre.Bottom() <= top+tolerance
		reaches := pre.Bottom()+vy*dt >= top
		if horizontal && inBand && reaches {
			return top, true
		}
	}
	return 0, false
}

// collectPickups removes every pickup overlapping the player and returns how
// many were collected. Removal is immediate and exactly-once; several
// pickups overlapped in the same frame are all collected.
func collectPickups(w *World) int {
	collected := 0
	for i := 0; i < len(w.Pickups); {
		if w.Player.Bounds.Overlaps(w.Pickups[i].Bounds) {
			w.removePickup(i)
			collected++
			continue
		}
		i++
	}
	return collected
}

// touchingHazard reports whether the player overlaps any hazard.
func touchingHazard(w *World) bool {
	for _, h := range w.Hazards {
		if w.Player.Bounds.Overlaps(h.Bounds) {
			return true
		}
	}
	return false
}

// fellBelow reports whether the player has dropped below the playable
// vertical extent.
func fellBelow(w *World, lowerBound float64) bool {
	return w.Player.Bounds.Top() > lowerBound
}

// reachedGoal reports whether the player overlaps the goal with every pickup
// collected. The goal is not solid; touching it with pickups remaining has
// no effect.
func reachedGoal(w *World) bool {
	return len(w.Pickups) == 0 && w.Player.Bounds.Overlaps(w.Goal.Bounds)
}
