package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"whack/internal/assets"
	"whack/internal/config"
	"whack/internal/entity"
	"whack/internal/grid"
	"whack/internal/hud"
	"whack/internal/session"
)

var (
	ColBg       = color.RGBA{0x2d, 0x2d, 0x2d, 0xff}
	ColCell     = color.RGBA{0x3a, 0x3a, 0x3a, 0xff}
	ColGridLine = color.RGBA{0x50, 0x50, 0x60, 0xff}
)

// Game adapts a session to ebiten's frame loop.
type Game struct {
	cfg      config.Config
	session  *session.Session
	markers  []*entity.Marker
	hud      *hud.HUD
	lastTick time.Time
}

func NewGame(cfg config.Config, rng grid.Rand, cue session.Cue) (*Game, error) {
	s, err := session.New(cfg, rng, cue)
	if err != nil {
		return nil, fmt.Errorf("starting session: %w", err)
	}
	markers := make([]*entity.Marker, cfg.TotalCells())
	for i := range markers {
		markers[i] = entity.NewMarker(float64(cfg.TargetRadius))
	}
	return &Game{
		cfg:      cfg,
		session:  s,
		markers:  markers,
		hud:      hud.New(assets.LoadFontSource(), cfg.ScreenWidth, cfg.ScreenHeight),
		lastTick: time.Now(),
	}, nil
}

// Update: Logic (60 TPS)
func (g *Game) Update() error {
	now := time.Now()
	g.session.Tick(now.Sub(g.lastTick))
	g.lastTick = now

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.session.Click(grid.Point{X: x, Y: y})
	}

	for i, c := range g.session.Grid().Cells() {
		g.markers[i].Update(c.HasTarget)
	}
	return nil
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColBg)

	snap := g.session.Snapshot()
	for _, c := range snap.Cells {
		r := c.Rect
		x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
		vector.DrawFilledRect(screen, x+2, y+2, w-4, h-4, ColCell, false)
		vector.StrokeRect(screen, x, y, w, h, 2, ColGridLine, false)
		if c.HasTarget {
			cx, cy := r.Center()
			g.markers[c.Index].Draw(screen, cx, cy)
		}
	}

	g.hud.Draw(screen, snap)
}

// Layout: fixed logical size, ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}
