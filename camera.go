package main

import "github.com/eggrun/eggrun/geom"

// Camera tracks the horizontal draw offset so the player stays centered.
// It never leaves the world: the offset clamps to [0, worldWidth - screen].
type Camera struct {
	x          float64
	worldWidth float64
}

func NewCamera(worldWidth float64) *Camera {
	return &Camera{worldWidth: worldWidth}
}

func (c *Camera) Follow(player geom.Rect) {
	x := player.CenterX() - baseWidth/2
	if limit := c.worldWidth - baseWidth; x > limit {
		x = limit
	}
	if x < 0 {
		x = 0
	}
	c.x = x
}

func (c *Camera) X() float64 {
	return c.x
}
