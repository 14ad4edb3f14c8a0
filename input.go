package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/eggrun/eggrun/sim"
)

// Input polls the keyboard once per frame and maps device state onto
// simulation intents. Movement is held state; jump, start, and restart are
// dispatched only on the frame the key goes down.
type Input struct{}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Poll() []sim.Intent {
	intents := []sim.Intent{
		sim.MoveLeft(ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft)),
		sim.MoveRight(ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight)),
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		intents = append(intents, sim.Jump())
	}

	// Enter works on every waiting screen; the core ignores whichever of the
	// two doesn't apply to the current state.
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		intents = append(intents, sim.Start())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		intents = append(intents, sim.Restart())
	}

	return intents
}
