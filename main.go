package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	seed := flag.Uint64("seed", 0, "random seed for enemy timings (0 picks one from the clock)")
	debug := flag.Bool("debug", false, "outline colliders")
	watch := flag.Bool("watch", false, "reload prefabs and scripts when they change on disk")
	flag.Parse()

	game, err := NewGame(*seed, *debug, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(game.width, game.height)
	ebiten.SetWindowTitle("minigame")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
