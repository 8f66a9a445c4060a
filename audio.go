package main

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"whack/internal/sound"
)

// PopPlayer plays the hit cue through ebiten's audio context.
type PopPlayer struct {
	ctx     *audio.Context
	pcm     []byte
	players []*audio.Player
}

func NewPopPlayer() *PopPlayer {
	return &PopPlayer{
		ctx: audio.NewContext(sound.SampleRate),
		pcm: sound.PCM16(sound.DefaultPop().Samples(sound.SampleRate)),
	}
}

// Pop starts a fresh player per hit so quick hits overlap instead of cutting
// each other off. Finished players are released on the next call.
func (p *PopPlayer) Pop() {
	live := p.players[:0]
	for _, pl := range p.players {
		if pl.IsPlaying() {
			live = append(live, pl)
			continue
		}
		pl.Close()
	}
	pl := p.ctx.NewPlayerFromBytes(p.pcm)
	pl.Play()
	p.players = append(live, pl)
}
