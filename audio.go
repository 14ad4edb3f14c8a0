package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/eggrun/eggrun/assets"
	"github.com/eggrun/eggrun/sim"
)

// Sounds maps simulation events to sound effects. A sound that fails to load
// is logged and skipped rather than blocking the game.
type Sounds struct {
	players map[sim.Event]*audio.Player
}

func NewSounds() *Sounds {
	s := &Sounds{players: make(map[sim.Event]*audio.Player)}
	for event, name := range map[sim.Event]string{
		sim.EventJumped:    "jump.wav",
		sim.EventScored:    "collect.wav",
		sim.EventHazardHit: "hit.wav",
		sim.EventFell:      "lose.wav",
		sim.EventWon:       "win.wav",
	} {
		player, err := assets.LoadAudioPlayer(name)
		if err != nil {
			log.Printf("failed to load sound %s: %v", name, err)
			continue
		}
		s.players[event] = player
	}
	return s
}

func (s *Sounds) PlayFor(events []sim.Event) {
	for _, e := range events {
		player, ok := s.players[e]
		if !ok {
			continue
		}
		if player.IsPlaying() {
			continue
		}
		player.Rewind()
		player.Play()
	}
}
