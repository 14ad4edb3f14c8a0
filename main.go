package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/eggrun/eggrun/level"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay")
	levelPath := flag.String("level", "", "path to a level YAML (embedded default if empty)")
	flag.Parse()

	cfg, err := level.Load(*levelPath)
	if err != nil {
		log.Fatalf("load level: %v", err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("eggrun")

	game := NewGame(cfg, *debug)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
