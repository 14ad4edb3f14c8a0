package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/eggrun/eggrun/geom"
)

const (
	hudPanelWidth  = 220
	hudPanelHeight = 34
	hudPaddingX    = 14
	hudPaddingY    = 10
	hudTextScale   = 1.5
)

var hudPanelColor = color.RGBA{A: 0xaa}

// HUD draws the score panel in screen space, untouched by the camera.
type HUD struct {
	face ebtext.Face
}

func NewHUD() *HUD {
	return &HUD{face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

func (h *HUD) Draw(screen *ebiten.Image, score, total int) {
	panel := geom.Rect{
		X:      baseWidth - hudPanelWidth - 20,
		Y:      20,
		Width:  hudPanelWidth,
		Height: hudPanelHeight,
	}
	drawRect(screen, panel, 0, hudPanelColor)

	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(hudTextScale, hudTextScale)
	op.GeoM.Translate(panel.X+hudPaddingX, panel.Y+hudPaddingY)
	op.ColorScale.ScaleWithColor(color.White)
	ebtext.Draw(screen, fmt.Sprintf("Eggs: %d / %d", score, total), h.face, op)
}
