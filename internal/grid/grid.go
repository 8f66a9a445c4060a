package grid

import (
	"math"
	"slices"
	"sort"

	"whack/internal/config"
)

// Rand is the random source used to pick spawn cells. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Grid owns the cells and the set of cells currently bearing a target.
// Cell.HasTarget mirrors membership in the target set after every call.
type Grid struct {
	cells   []Cell
	targets map[int]struct{}
	radius  float64
	rng     Rand
}

// New lays out cfg.GridSize² cells in row-major order, all empty.
func New(cfg config.Config, rng Rand) *Grid {
	n := cfg.TotalCells()
	if n < 0 {
		n = 0
	}
	g := &Grid{
		cells:   make([]Cell, n),
		targets: make(map[int]struct{}, cfg.NumTargets),
		radius:  float64(cfg.TargetRadius),
		rng:     rng,
	}
	for i := range g.cells {
		row, col := i/cfg.GridSize, i%cfg.GridSize
		rect := Rect{
			X: cfg.GridOffsetX + col*cfg.CellSize,
			Y: cfg.GridOffsetY + row*cfg.CellSize,
			W: cfg.CellSize,
			H: cfg.CellSize,
		}
		g.cells[i] = Cell{Index: i, Rect: rect}
	}
	return g
}

// Spawn places a target on a uniformly chosen free cell, never one listed in
// skip. It reports false and changes nothing when no candidate is left.
func (g *Grid) Spawn(skip ...int) (int, bool) {
	free := make([]int, 0, len(g.cells)-len(g.targets))
	for _, c := range g.cells {
		if !c.HasTarget && !slices.Contains(skip, c.Index) {
			free = append(free, c.Index)
		}
	}
	if len(free) == 0 {
		return 0, false
	}
	idx := free[g.rng.Intn(len(free))]
	g.targets[idx] = struct{}{}
	g.cells[idx].HasTarget = true
	return idx, true
}

// Remove clears the target on index. Absent or out-of-range indices are ignored.
func (g *Grid) Remove(index int) bool {
	if _, ok := g.targets[index]; !ok {
		return false
	}
	delete(g.targets, index)
	g.cells[index].HasTarget = false
	return true
}

// HitTest returns the first cell, in index order, whose target contains p.
func (g *Grid) HitTest(p Point) (int, bool) {
	for _, c := range g.cells {
		if !c.HasTarget {
			continue
		}
		cx, cy := c.Rect.Center()
		if math.Hypot(float64(p.X)-cx, float64(p.Y)-cy) <= g.radius {
			return c.Index, true
		}
	}
	return 0, false
}

func (g *Grid) HasTarget(index int) bool {
	_, ok := g.targets[index]
	return ok
}

// Len is the number of cells bearing a target.
func (g *Grid) Len() int {
	return len(g.targets)
}

func (g *Grid) Size() int {
	return len(g.cells)
}

func (g *Grid) Radius() float64 {
	return g.radius
}

func (g *Grid) Cell(index int) (Cell, bool) {
	if index < 0 || index >= len(g.cells) {
		return Cell{}, false
	}
	return g.cells[index], true
}

// Cells returns a copy of every cell in index order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Targets returns the target set in ascending index order.
func (g *Grid) Targets() []int {
	out := make([]int, 0, len(g.targets))
	for idx := range g.targets {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}
