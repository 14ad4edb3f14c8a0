package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/eggrun/eggrun/sim"
)

const (
	baseWidth  = 1024
	baseHeight = 768
)

// Game is the frame driver: it owns presentation and the wall clock, feeds
// elapsed time and intents into the simulation core, and renders the
// snapshot the core hands back.
type Game struct {
	frames int
	debug  bool

	core   *sim.Game
	snap   sim.Snapshot
	input  *Input
	camera *Camera
	clouds *Clouds
	sounds *Sounds
	hud    *HUD
	menus  *Menus

	totalPickups int
}

func NewGame(cfg sim.Config, debug bool) *Game {
	core := sim.NewGame(cfg)
	g := &Game{
		debug:        debug,
		core:         core,
		snap:         core.Snapshot(),
		input:        NewInput(),
		camera:       NewCamera(cfg.WorldWidth),
		clouds:       NewClouds(cfg.WorldWidth),
		sounds:       NewSounds(),
		hud:          NewHUD(),
		totalPickups: len(cfg.Pickups),
	}
	g.menus = NewMenus(core)
	return g
}

func (g *Game) Update() error {
	g.frames++

	for _, intent := range g.input.Poll() {
		g.core.Dispatch(intent)
	}

	// Ebiten ticks at a fixed rate, so every frame advances the core by the
	// same step. The core itself never measures wall-clock time.
	dt := 1.0 / float64(ebiten.TPS())
	events, err := g.core.Update(dt)
	if err != nil {
		return err
	}
	g.sounds.PlayFor(events)

	g.snap = g.core.Snapshot()
	g.camera.Follow(g.snap.PlayerBounds)
	g.clouds.Update(dt)
	g.menus.Update(g.snap.State)

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.clouds.Draw(screen, g.camera.X())
	drawWorld(screen, g.snap, g.camera.X())

	if g.snap.State != sim.StateStart {
		g.hud.Draw(screen, g.snap.Score, g.totalPickups)
	}
	g.menus.Draw(screen, g.snap.State)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"Frames: %d    FPS: %.2f    State: %s    Grounded: %v",
			g.frames, ebiten.ActualFPS(), g.snap.State, g.snap.Grounded))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
