package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"whack/internal/config"
	"whack/internal/session"
	"whack/internal/sound"
	"whack/internal/tui"
)

const sampleRate = beep.SampleRate(sound.SampleRate)

// speakerCue plays the pop through the default audio device.
type speakerCue struct {
	pop sound.Pop
}

func (c speakerCue) Pop() {
	speaker.Play(c.pop.Streamer(sampleRate))
}

func initAudio() (session.Cue, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}
	return speakerCue{pop: sound.DefaultPop()}, nil
}

func run(cfg config.Config) (session.Snapshot, error) {
	var cue session.Cue = sound.NopCue{}
	if !cfg.Muted {
		c, err := initAudio()
		if err != nil {
			// Non-fatal, game can run without sound
			log.Printf("[Audio] %v", err)
		} else {
			cue = c
			defer speaker.Close()
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s, err := session.New(cfg, rand.New(rand.NewSource(seed)), cue)
	if err != nil {
		return session.Snapshot{}, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return session.Snapshot{}, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return session.Snapshot{}, fmt.Errorf("initializing screen: %w", err)
	}
	screen.EnableMouse()

	// Log lines would scribble over the board.
	log.SetOutput(io.Discard)
	tui.NewGame(screen, s, tui.DefaultLayout()).Run()
	screen.Fini()
	log.SetOutput(os.Stderr)

	return s.Snapshot(), nil
}

func main() {
	cfg := config.Load()
	if cfg.TargetsMayOverlap() {
		log.Printf("[Config] targets of radius %d overlap cells of size %d; hits resolve in cell order\n", cfg.TargetRadius, cfg.CellSize)
	}

	final, err := run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Score: %d  Accuracy: %.1f%% (%d/%d)\n", final.Score, final.Accuracy, final.Hits, final.Clicks)
}
