package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/eggrun/eggrun/geom"
	"github.com/eggrun/eggrun/sim"
)

var backgroundColor = color.RGBA{R: 0xeb, G: 0xe0, B: 0xc7, A: 0xff}

// pixel is a 1x1 white image scaled and tinted per draw call. All entities
// render as flat colored rectangles.
var pixel = func() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}()

func drawRect(screen *ebiten.Image, r geom.Rect, camX float64, col color.Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X-camX, r.Y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(pixel, op)
}

func drawWorld(screen *ebiten.Image, snap sim.Snapshot, camX float64) {
	if snap.State == sim.StateStart {
		return
	}

	drawRect(screen, snap.Goal, camX, colornames.Cornflowerblue)
	for _, p := range snap.Platforms {
		drawRect(screen, p, camX, colornames.Forestgreen)
	}
	for _, p := range snap.Pickups {
		drawRect(screen, p, camX, colornames.Gold)
	}
	for _, h := range snap.Hazards {
		col := colornames.Orangered
		if h.VX == 0 {
			col = colornames.Darkred
		}
		drawRect(screen, h.Bounds, camX, col)
	}

	drawPlayer(screen, snap, camX)
}

func drawPlayer(screen *ebiten.Image, snap sim.Snapshot, camX float64) {
	drawRect(screen, snap.PlayerBounds, camX, colornames.Crimson)

	// a lighter strip on the facing edge so direction reads without a sprite
	strip := snap.PlayerBounds
	strip.Width = 6
	if snap.FacingRight {
		strip.X = snap.PlayerBounds.Right() - strip.Width
	}
	strip.Height = snap.PlayerBounds.Height / 3
	drawRect(screen, strip, camX, colornames.Mistyrose)
}
