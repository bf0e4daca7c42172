package main

import (
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"

	"ballpit/internal/config"
)

// Screen Constants
const (
	ScreenWidth  = 800
	ScreenHeight = 450
	WindowTitle  = "ebiten ball pit"
)

func main() {
	// 1. Window Setup
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	// 2. Initialize Game
	cfg := config.Load()
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	game := NewGame(cfg, rng)

	// 3. Run Loop. A ball outgrowing the window ends here with a non-zero exit.
	op := &ebiten.RunGameOptions{ScreenTransparent: true}
	if err := ebiten.RunGameWithOptions(game, op); err != nil {
		log.Fatal(err)
	}
}
