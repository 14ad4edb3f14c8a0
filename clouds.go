package main

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/eggrun/eggrun/geom"
)

const (
	cloudCount    = 14
	cloudParallax = 0.5
)

var cloudColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xb4}

// Clouds are decorative parallax scenery owned entirely by the frame driver.
// They drift right and wrap around; the simulation core never sees them.
type Clouds struct {
	rects      []geom.Rect
	speeds     []float64
	worldWidth float64
}

func NewClouds(worldWidth float64) *Clouds {
	// fixed seed: the sky looks the same every run
	rng := rand.New(rand.NewSource(7))
	c := &Clouds{
		rects:      make([]geom.Rect, cloudCount),
		speeds:     make([]float64, cloudCount),
		worldWidth: worldWidth,
	}
	for i := range c.rects {
		c.rects[i] = geom.Rect{
			X:      rng.Float64() * worldWidth,
			Y:      40 + rng.Float64()*260,
			Width:  180 + rng.Float64()*140,
			Height: 34 + rng.Float64()*22,
		}
		c.speeds[i] = 20 + rng.Float64()*40
	}
	return c
}

func (c *Clouds) Update(dt float64) {
	for i := range c.rects {
		c.rects[i].X += c.speeds[i] * dt
		if c.rects[i].X > c.worldWidth {
			c.rects[i].X = -c.rects[i].Width
		}
	}
}

func (c *Clouds) Draw(screen *ebiten.Image, camX float64) {
	for _, r := range c.rects {
		drawRect(screen, r, camX*cloudParallax, cloudColor)
	}
}
