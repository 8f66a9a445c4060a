package tui

import (
	"whack/internal/config"
	"whack/internal/grid"
)

// Layout places the grid on the terminal: each grid cell becomes a block of
// CellCols x CellRows character cells starting at (OriginX, OriginY).
type Layout struct {
	OriginX, OriginY   int
	CellCols, CellRows int
}

func DefaultLayout() Layout {
	return Layout{OriginX: 2, OriginY: 3, CellCols: 10, CellRows: 5}
}

// ToWorld maps the terminal cell (x, y) to the window-space point at the
// middle of that character. Points outside the grid map outside it too.
func (l Layout) ToWorld(cfg config.Config, x, y int) grid.Point {
	dx, dy := x-l.OriginX, y-l.OriginY
	return grid.Point{
		X: cfg.GridOffsetX + (2*dx+1)*cfg.CellSize/(2*l.CellCols),
		Y: cfg.GridOffsetY + (2*dy+1)*cfg.CellSize/(2*l.CellRows),
	}
}

// Origin returns the top-left terminal cell of grid cell index.
func (l Layout) Origin(cfg config.Config, index int) (int, int) {
	row, col := index/cfg.GridSize, index%cfg.GridSize
	return l.OriginX + col*l.CellCols, l.OriginY + row*l.CellRows
}

// Size is the terminal area the grid covers.
func (l Layout) Size(cfg config.Config) (int, int) {
	return cfg.GridSize * l.CellCols, cfg.GridSize * l.CellRows
}
