package grid

// Point is a position in window space.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Center() (float64, float64) {
	return float64(r.X) + float64(r.W)/2, float64(r.Y) + float64(r.H)/2
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

type Cell struct {
	Index     int
	Rect      Rect
	HasTarget bool
}
