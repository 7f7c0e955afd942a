package core

// Direction names one of the four cardinal neighbors of a grid cell.
type Direction uint8

const (
	Right Direction = iota
	Top
	Left
	Bottom
)

// Directions lists the cardinal directions in neighbor-evaluation order.
var Directions = [4]Direction{Right, Top, Left, Bottom}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Top:
		return "top"
	case Left:
		return "left"
	case Bottom:
		return "bottom"
	}
	return "unknown"
}

// Grid describes a toroidal W*H lattice stored in row-major order. It carries
// no cell data; callers index their own flat slices with it.
type Grid struct {
	W, H int
}

// NewGrid returns a grid with the given dimensions. Non-positive dimensions
// are clamped to 1.
func NewGrid(w, h int) Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Grid{W: w, H: h}
}

// Len returns the number of cells.
func (g Grid) Len() int { return g.W * g.H }

// Index returns the linear slice index for coordinates (x, y).
func (g Grid) Index(x, y int) int { return y*g.W + x }

// Coord returns the coordinates of a linear index.
func (g Grid) Coord(idx int) (int, int) { return idx % g.W, idx / g.W }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// WrapIndex returns the linear index of (x, y) after wrapping.
func (g Grid) WrapIndex(x, y int) int {
	x, y = g.Wrap(x, y)
	return g.Index(x, y)
}

// Offset returns the index reached by moving (dx, dy) from idx with wraparound.
func (g Grid) Offset(idx, dx, dy int) int {
	x, y := g.Coord(idx)
	return g.WrapIndex(x+dx, y+dy)
}

// Neighbor returns the index of the cardinal neighbor of idx. Top is y-1.
func (g Grid) Neighbor(idx int, d Direction) int {
	switch d {
	case Right:
		return g.Offset(idx, 1, 0)
	case Top:
		return g.Offset(idx, 0, -1)
	case Left:
		return g.Offset(idx, -1, 0)
	default:
		return g.Offset(idx, 0, 1)
	}
}

// Neighbors returns the four cardinal neighbors of idx indexed by Direction.
func (g Grid) Neighbors(idx int) [4]int {
	var out [4]int
	for _, d := range Directions {
		out[d] = g.Neighbor(idx, d)
	}
	return out
}
