package entity

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	ColTarget = color.RGBA{0xff, 0x6b, 0x6b, 0xff}
	ColRing   = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Marker draws one target. While live it pulses slightly below its hit radius
// so the clickable area is never smaller than what is shown.
type Marker struct {
	Radius float64

	// Pulse animation: radius scale per frame, held for delays[i] ticks
	frames       []float32
	delays       []int
	currentFrame int
	tickCounter  int
}

func NewMarker(radius float64) *Marker {
	return &Marker{
		Radius: radius,
		frames: []float32{1, 0.97, 0.94, 0.97},
		delays: []int{12, 6, 12, 6},
	}
}

// Update advances the pulse; an empty cell resets it so a fresh target
// always appears at full size.
func (m *Marker) Update(live bool) {
	if !live {
		m.currentFrame = 0
		m.tickCounter = 0
		return
	}

	m.tickCounter++

	// Check if we passed the delay for the CURRENT frame
	if m.tickCounter >= m.delays[m.currentFrame] {
		m.tickCounter = 0
		m.currentFrame++

		// Loop back to start
		if m.currentFrame >= len(m.frames) {
			m.currentFrame = 0
		}
	}
}

func (m *Marker) Draw(screen *ebiten.Image, x, y float64) {
	px, py := float32(x), float32(y)
	r := float32(m.Radius) * m.frames[m.currentFrame]

	vector.DrawFilledCircle(screen, px, py, r, ColTarget, true)
	vector.DrawFilledCircle(screen, px, py, r*0.65, ColRing, true)
	vector.DrawFilledCircle(screen, px, py, r*0.3, ColTarget, true)
}
