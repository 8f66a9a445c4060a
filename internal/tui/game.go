package tui

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"whack/internal/grid"
	"whack/internal/session"
)

var (
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleLow    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleTarget = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xff, 0x6b, 0x6b))
	styleCellA  = tcell.StyleDefault.Background(tcell.NewRGBColor(0x2d, 0x2d, 0x2d))
	styleCellB  = tcell.StyleDefault.Background(tcell.NewRGBColor(0x3a, 0x3a, 0x3a))
	styleBox    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)

// Game drives a session from terminal events.
type Game struct {
	screen  tcell.Screen
	session *session.Session
	layout  Layout

	lastTick time.Time
	buttons  tcell.ButtonMask
}

func NewGame(screen tcell.Screen, s *session.Session, layout Layout) *Game {
	return &Game{
		screen:   screen,
		session:  s,
		layout:   layout,
		lastTick: time.Now(),
	}
}

// HandleEvent applies one terminal event. It returns false when the player quits.
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventMouse:
		// Motion events repeat the held buttons; only a fresh press is a click.
		pressed := ev.Buttons()&tcell.Button1 != 0 && g.buttons&tcell.Button1 == 0
		g.buttons = ev.Buttons()
		if pressed {
			x, y := ev.Position()
			g.session.Click(g.layout.ToWorld(g.session.Config(), x, y))
		}

	case *tcell.EventResize:
		g.screen.Sync()
	}

	return true
}

// Advance feeds the wall time elapsed since the previous call into the session.
func (g *Game) Advance(now time.Time) {
	g.session.Tick(now.Sub(g.lastTick))
	g.lastTick = now
}

func (g *Game) Draw() {
	g.screen.Clear()
	snap := g.session.Snapshot()

	g.drawStats(snap)
	for _, c := range snap.Cells {
		g.drawCell(c)
	}
	if !snap.Active {
		g.drawOverlay(snap)
	}

	g.screen.Show()
}

func (g *Game) drawStats(snap session.Snapshot) {
	clock := styleText
	if snap.Active && snap.TimeLeft <= 10 {
		clock = styleLow
	}
	x := g.layout.OriginX
	x = g.drawText(x, 0, fmt.Sprintf("Score: %d   ", snap.Score), styleText)
	x = g.drawText(x, 0, "Time: "+snap.Clock(), clock)
	g.drawText(x, 0, fmt.Sprintf("   Accuracy: %.1f%%", snap.Accuracy), styleText)
	g.drawText(g.layout.OriginX, 1, "click the targets - Esc or q to quit", styleDim)
}

// drawCell paints the cell background and, for a live target, every character
// whose center lies inside the hit radius.
func (g *Game) drawCell(c grid.Cell) {
	cfg := g.session.Config()
	radius := g.session.Grid().Radius()
	ox, oy := g.layout.Origin(cfg, c.Index)
	cx, cy := c.Rect.Center()

	bg := styleCellA
	if (c.Index/cfg.GridSize+c.Index%cfg.GridSize)%2 == 1 {
		bg = styleCellB
	}
	for y := oy; y < oy+g.layout.CellRows; y++ {
		for x := ox; x < ox+g.layout.CellCols; x++ {
			if c.HasTarget {
				p := g.layout.ToWorld(cfg, x, y)
				if math.Hypot(float64(p.X)-cx, float64(p.Y)-cy) <= radius {
					g.screen.SetContent(x, y, '█', nil, styleTarget)
					continue
				}
			}
			g.screen.SetContent(x, y, ' ', nil, bg)
		}
	}
}

func (g *Game) drawOverlay(snap session.Snapshot) {
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Final Score: %d", snap.Score),
		fmt.Sprintf("Accuracy: %.1f%% (%d/%d)", snap.Accuracy, snap.Hits, snap.Clicks),
		"",
		"Press Esc to exit",
	}
	w, h := g.layout.Size(g.session.Config())
	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines) + 2
	left := g.layout.OriginX + (w-boxW)/2
	top := g.layout.OriginY + (h-boxH)/2

	for y := top; y < top+boxH; y++ {
		for x := left; x < left+boxW; x++ {
			g.screen.SetContent(x, y, ' ', nil, styleBox)
		}
	}
	for i, l := range lines {
		g.drawText(left+(boxW-len(l))/2, top+1+i, l, styleBox)
	}
}

// drawText writes s starting at (x, y) and returns the column after it.
func (g *Game) drawText(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		g.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// Run polls events and redraws at ~60 FPS until the player quits.
func (g *Game) Run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			events <- ev
		}
	}()

	g.lastTick = time.Now()
	g.Draw()
	for {
		select {
		case ev := <-events:
			if !g.HandleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			g.Advance(now)
			g.Draw()
		}
	}
}
