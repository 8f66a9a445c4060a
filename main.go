package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"whack/internal/config"
	"whack/internal/session"
	"whack/internal/sound"
)

const WindowTitle = "Whack-a-Target"

func main() {
	cfg := config.Load()
	if cfg.TargetsMayOverlap() {
		log.Printf("[Config] targets of radius %d overlap cells of size %d; hits resolve in cell order\n", cfg.TargetRadius, cfg.CellSize)
	}

	// 1. Window Setup
	ebiten.SetWindowSize(cfg.ScreenWidth*cfg.Scale, cfg.ScreenHeight*cfg.Scale)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// 2. Initialize Game
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	var cue session.Cue = sound.NopCue{}
	if !cfg.Muted {
		cue = NewPopPlayer()
	}
	game, err := NewGame(cfg, rand.New(rand.NewSource(seed)), cue)
	if err != nil {
		log.Fatal(err)
	}

	// 3. Run Loop
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
