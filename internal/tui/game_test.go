package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"whack/internal/config"
	"whack/internal/session"
)

// pickFirst always chooses the lowest free cell.
type pickFirst struct{}

func (pickFirst) Intn(int) int { return 0 }

func newTestGame(t *testing.T) (*Game, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	screen.SetSize(80, 40)
	t.Cleanup(screen.Fini)

	s, err := session.New(config.Default(), pickFirst{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return NewGame(screen, s, DefaultLayout()), screen
}

func press(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone)
}

func release(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone)
}

func rowText(screen tcell.SimulationScreen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestLayout_ToWorld(t *testing.T) {
	cfg := config.Default()
	l := DefaultLayout()

	// Middle characters of cell 0 land near its center (200, 160).
	p := l.ToWorld(cfg, l.OriginX+4, l.OriginY+2)
	if p.X != 195 || p.Y != 160 {
		t.Errorf("ToWorld = %+v, want {195 160}", p)
	}
	p = l.ToWorld(cfg, l.OriginX+5, l.OriginY+2)
	if p.X != 205 {
		t.Errorf("ToWorld X = %d, want 205", p.X)
	}

	// Left of the grid maps left of the grid.
	p = l.ToWorld(cfg, l.OriginX-1, l.OriginY)
	if p.X >= cfg.GridOffsetX {
		t.Errorf("ToWorld X = %d, want < %d", p.X, cfg.GridOffsetX)
	}
}

func TestLayout_Origin(t *testing.T) {
	cfg := config.Default()
	l := DefaultLayout()

	x, y := l.Origin(cfg, 7) // row 1, col 2
	if x != l.OriginX+20 || y != l.OriginY+5 {
		t.Errorf("Origin(7) = (%d, %d), want (%d, %d)", x, y, l.OriginX+20, l.OriginY+5)
	}
	w, h := l.Size(cfg)
	if w != 50 || h != 25 {
		t.Errorf("Size = (%d, %d), want (50, 25)", w, h)
	}
}

func TestGame_HandleEvent_ClickHit(t *testing.T) {
	g, _ := newTestGame(t)

	if !g.HandleEvent(press(6, 5)) {
		t.Fatal("click should not quit")
	}

	if g.session.Hits() != 1 || g.session.TotalClicks() != 1 {
		t.Errorf("hits/clicks = %d/%d, want 1/1", g.session.Hits(), g.session.TotalClicks())
	}
	if g.session.Grid().Len() != 3 {
		t.Errorf("targets = %d, want 3", g.session.Grid().Len())
	}
}

func TestGame_HandleEvent_ClickMiss(t *testing.T) {
	g, _ := newTestGame(t)

	g.HandleEvent(press(70, 30))

	if g.session.TotalClicks() != 1 || g.session.Hits() != 0 {
		t.Errorf("hits/clicks = %d/%d, want 0/1", g.session.Hits(), g.session.TotalClicks())
	}
}

func TestGame_HandleEvent_HeldButtonClicksOnce(t *testing.T) {
	g, _ := newTestGame(t)

	g.HandleEvent(press(60, 30))
	g.HandleEvent(press(61, 30)) // drag
	g.HandleEvent(press(62, 30))
	if g.session.TotalClicks() != 1 {
		t.Errorf("TotalClicks() while held = %d, want 1", g.session.TotalClicks())
	}

	g.HandleEvent(release(62, 30))
	g.HandleEvent(press(62, 30))
	if g.session.TotalClicks() != 2 {
		t.Errorf("TotalClicks() after second press = %d, want 2", g.session.TotalClicks())
	}
}

func TestGame_HandleEvent_Quit(t *testing.T) {
	g, _ := newTestGame(t)

	if !g.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Error("'x' should not quit")
	}
	if g.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Esc should quit")
	}
	if g.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("'q' should quit")
	}
}

func TestGame_Advance(t *testing.T) {
	g, _ := newTestGame(t)
	start := g.lastTick

	g.Advance(start.Add(2500 * time.Millisecond))
	if g.session.TimeLeft() != 58 {
		t.Errorf("TimeLeft() = %d, want 58", g.session.TimeLeft())
	}
	g.Advance(start.Add(3100 * time.Millisecond))
	if g.session.TimeLeft() != 57 {
		t.Errorf("TimeLeft() = %d, want 57", g.session.TimeLeft())
	}
}

func TestGame_Draw(t *testing.T) {
	g, screen := newTestGame(t)

	g.Draw()

	if row := rowText(screen, 0, 60); !strings.HasPrefix(strings.TrimSpace(row), "Score: 0") {
		t.Errorf("stats row = %q", row)
	}
	if r, _, _, _ := screen.GetContent(6, 5); r != '█' {
		t.Errorf("target center rune = %q, want '█'", r)
	}
	// Cell 12 is empty.
	x, y := g.layout.Origin(g.session.Config(), 12)
	if r, _, _, _ := screen.GetContent(x+4, y+2); r == '█' {
		t.Error("empty cell should not draw a target")
	}
}

func TestGame_Draw_Ended(t *testing.T) {
	g, screen := newTestGame(t)
	g.HandleEvent(press(6, 5))
	g.Advance(g.lastTick.Add(time.Minute))

	g.Draw()

	found := false
	for y := 0; y < 40; y++ {
		if strings.Contains(rowText(screen, y, 80), "GAME OVER") {
			found = true
			break
		}
	}
	if !found {
		t.Error("ended session should draw the GAME OVER overlay")
	}
}
