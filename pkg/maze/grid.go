package maze

import "fmt"

// Wall is the per-cell passage state. Only the west and north passages are
// stored on a cell; east and south live on the neighboring cell.
type Wall uint8

const (
	// WestOpen marks an open passage to the cell at index-1.
	WestOpen Wall = 1 << iota
	// NorthOpen marks an open passage to the cell at index-width.
	NorthOpen
)

// Closed is the wall state of a cell with no west or north passage.
const Closed Wall = 0

// West reports whether the passage to the west neighbor is open.
func (w Wall) West() bool { return w&WestOpen != 0 }

// North reports whether the passage to the north neighbor is open.
func (w Wall) North() bool { return w&NorthOpen != 0 }

// Edge is an open passage between two adjacent cells. A is always the smaller
// index.
type Edge struct {
	A int `json:"a"`
	B int `json:"b"`
}

// NewEdge returns the Edge between a and b with its endpoints ordered.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Grid is a rectangular maze grid. The zero value is not usable; create grids
// with [New].
type Grid struct {
	height int
	width  int
	walls  []Wall
	rng    Source
}

// Option configures a [Grid] at construction time.
type Option func(*Grid)

// WithSource sets the random source used by neighbor selection and carving.
// A nil source keeps the process-wide default.
func WithSource(src Source) Option {
	return func(g *Grid) {
		if src != nil {
			g.rng = src
		}
	}
}

// New creates a height × width grid with every passage closed.
// It returns ErrInvalidDimensions if either dimension is not positive.
func New(height, width int, opts ...Option) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, height, width)
	}
	g := &Grid{
		height: height,
		width:  width,
		walls:  make([]Wall, height*width),
		rng:    globalSource{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Erase closes every passage. Dimensions are unchanged.
func (g *Grid) Erase() {
	clear(g.walls)
}

// Dimensions returns the grid's height and width.
func (g *Grid) Dimensions() (height, width int) { return g.height, g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Cells returns the number of cells (height*width).
func (g *Grid) Cells() int { return len(g.walls) }

// Source returns the grid's random source.
func (g *Grid) Source() Source { return g.rng }

// IsValidCell reports whether i addresses a cell of the grid.
func (g *Grid) IsValidCell(i int) bool {
	return i >= 0 && i < len(g.walls)
}

// CellToCoord converts a cell index to its column and row.
func (g *Grid) CellToCoord(i int) (col, row int) {
	return i % g.width, i / g.width
}

// CoordToCell converts a column and row to a cell index.
func (g *Grid) CoordToCell(col, row int) int {
	return col + row*g.width
}

// inBounds reports whether (col, row) lies inside the grid.
func (g *Grid) inBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

// WallState returns the raw wall bits of cell i, or Closed if i is not a
// valid cell.
func (g *Grid) WallState(i int) Wall {
	if !g.IsValidCell(i) {
		return Closed
	}
	return g.walls[i]
}

// String returns a short description such as "maze 20x30".
func (g *Grid) String() string {
	return fmt.Sprintf("maze %dx%d", g.height, g.width)
}

func (g *Grid) checkCell(i int) error {
	if !g.IsValidCell(i) {
		return fmt.Errorf("%w: %d (maze size is %d by %d)", ErrOutOfRange, i, g.width, g.height)
	}
	return nil
}
