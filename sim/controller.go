package sim

import "math"

// stepPlayer advances the player one frame: input sets the horizontal
// velocity outright, a queued jump fires only while grounded, gravity always
// accumulates (the landing snap re-cancels it on resting contact), and the
// position integrates semi-implicitly — velocity first, then position.
// Returns true if the player jumped this frame.
func stepPlayer(w *World, cfg *Config, in frameInput, dt float64) bool {
	p := &w.Player

	switch {
	case in.moveLeft && !in.moveRight:
		p.VX = -cfg.MoveSpeed
		p.FacingRight = false
	case in.moveRight && !in.moveLeft:
		p.VX = cfg.MoveSpeed
		p.FacingRight = true
	default:
		p.VX = 0
	}

	jumped := false
	if in.jump && p.Grounded {
		p.VY = -cfg.JumpSpeed
		p.Grounded = false
		jumped = true
	}

	p.VY += cfg.Gravity * dt

	pre := p.Bounds
	p.Bounds.X += p.VX * dt
	p.Bounds.Y += p.VY * dt

	if top, ok := landingPlatform(pre, p.VY, dt, cfg.LandingTolerance, w.Platforms); ok {
		p.Bounds.Y = top - p.Bounds.Height
		p.VY = 0
		p.Grounded = true
	} else {
		p.Grounded = false
	}

	return jumped
}

// stepHazards advances every hazard one frame. Patrol speed is constant in
// magnitude; the direction flips when the leading edge reaches a world
// horizontal boundary. Hazards never move vertically and ignore platforms.
func stepHazards(w *World, cfg *Config, dt float64) {
	for i := range w.Hazards {
		h := &w.Hazards[i]
		h.Bounds.X += h.VX * dt
		if h.Bounds.Left() <= 0 {
			h.VX = math.Abs(h.VX)
		} else if h.Bounds.Right() >= cfg.WorldWidth {
			h.VX = -math.Abs(h.VX)
		}
	}
}
