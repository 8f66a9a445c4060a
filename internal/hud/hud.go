package hud

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"whack/internal/session"
)

var (
	ColText    = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColLow     = color.RGBA{0xff, 0x6b, 0x6b, 0xff}
	ColOverlay = color.RGBA{0x10, 0x10, 0x10, 0xc0}
)

// lowTime is when the clock turns red.
const lowTime = 10

// HUD draws the stats readout and the end-of-session overlay.
type HUD struct {
	small  *text.GoTextFace
	large  *text.GoTextFace
	width  int
	height int
}

func New(src *text.GoTextFaceSource, width, height int) *HUD {
	return &HUD{
		small:  &text.GoTextFace{Source: src, Size: 24},
		large:  &text.GoTextFace{Source: src, Size: 56},
		width:  width,
		height: height,
	}
}

func (h *HUD) Draw(screen *ebiten.Image, snap session.Snapshot) {
	cx := float64(h.width) / 2

	clock := ColText
	if snap.Active && snap.TimeLeft <= lowTime {
		clock = ColLow
	}
	h.drawText(screen, fmt.Sprintf("Score: %d", snap.Score), h.small, float64(h.width)/6, 40, ColText)
	h.drawText(screen, "Time: "+snap.Clock(), h.small, cx, 40, clock)
	h.drawText(screen, fmt.Sprintf("Accuracy: %.1f%%", snap.Accuracy), h.small, float64(h.width)*5/6, 40, ColText)

	if snap.Active {
		return
	}

	// Session over: freeze the board behind a final result card
	vector.DrawFilledRect(screen, 0, 0, float32(h.width), float32(h.height), ColOverlay, false)
	cy := float64(h.height) / 2
	h.drawText(screen, "GAME OVER", h.large, cx, cy-90, ColText)
	h.drawText(screen, fmt.Sprintf("Final Score: %d", snap.Score), h.small, cx, cy, ColText)
	h.drawText(screen, fmt.Sprintf("Accuracy: %.1f%%  (%d/%d)", snap.Accuracy, snap.Hits, snap.Clicks), h.small, cx, cy+40, ColText)
	h.drawText(screen, "Press ESC to exit", h.small, cx, cy+100, ColText)
}

func (h *HUD) drawText(screen *ebiten.Image, msg string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, msg, face, op)
}
