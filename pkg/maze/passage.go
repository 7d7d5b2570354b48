package maze

import "fmt"

// OpenPassage opens the passage between cells a and b.
//
// Both cells must be valid (ErrOutOfRange otherwise) and share an edge
// (ErrNotAdjacent otherwise). A horizontal passage sets WestOpen on the
// eastern cell, a vertical one sets NorthOpen on the southern cell. Opening
// an already open passage is a no-op.
func (g *Grid) OpenPassage(a, b int) error {
	if err := g.checkCell(a); err != nil {
		return err
	}
	if err := g.checkCell(b); err != nil {
		return err
	}
	x1, y1 := g.CellToCoord(a)
	x2, y2 := g.CellToCoord(b)
	switch {
	case x1 == x2 && abs(y1-y2) == 1:
		g.walls[max(a, b)] |= NorthOpen
	case y1 == y2 && abs(x1-x2) == 1:
		g.walls[max(a, b)] |= WestOpen
	default:
		return fmt.Errorf("%w: (%d,%d) and (%d,%d)", ErrNotAdjacent, x1, y1, x2, y2)
	}
	return nil
}

// OpenPassageAt opens the passage between (x1, y1) and (x2, y2), given as
// column and row. Coordinates outside the grid fail with ErrOutOfRange.
func (g *Grid) OpenPassageAt(x1, y1, x2, y2 int) error {
	if !g.inBounds(x1, y1) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, x1, y1)
	}
	if !g.inBounds(x2, y2) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, x2, y2)
	}
	return g.OpenPassage(g.CoordToCell(x1, y1), g.CoordToCell(x2, y2))
}

// Passage reports whether an open passage connects a and b. Invalid or
// non-adjacent pairs report false.
func (g *Grid) Passage(a, b int) bool {
	if !g.IsValidCell(a) || !g.IsValidCell(b) {
		return false
	}
	lo, hi := min(a, b), max(a, b)
	x1, y1 := g.CellToCoord(lo)
	x2, y2 := g.CellToCoord(hi)
	switch {
	case x1 == x2 && y2-y1 == 1:
		return g.walls[hi].North()
	case y1 == y2 && x2-x1 == 1:
		return g.walls[hi].West()
	}
	return false
}

// NeighborsInPath returns the neighbors of i reachable through an open
// passage, in west, east, north, south order.
func (g *Grid) NeighborsInPath(i int) []int {
	if !g.IsValidCell(i) {
		return nil
	}
	col, row := g.CellToCoord(i)
	ns := make([]int, 0, 4)
	if col > 0 && g.walls[i].West() {
		ns = append(ns, i-1)
	}
	if col < g.width-1 && g.walls[i+1].West() {
		ns = append(ns, i+1)
	}
	if row > 0 && g.walls[i].North() {
		ns = append(ns, i-g.width)
	}
	if row < g.height-1 && g.walls[i+g.width].North() {
		ns = append(ns, i+g.width)
	}
	return ns
}

// Edges returns every open passage, ordered by the index of the cell that
// stores it and then west before north.
func (g *Grid) Edges() []Edge {
	var edges []Edge
	for i, w := range g.walls {
		if w.West() {
			edges = append(edges, Edge{A: i - 1, B: i})
		}
		if w.North() {
			edges = append(edges, Edge{A: i - g.width, B: i})
		}
	}
	return edges
}

// PassageCount returns the number of open passages.
func (g *Grid) PassageCount() int {
	n := 0
	for _, w := range g.walls {
		if w.West() {
			n++
		}
		if w.North() {
			n++
		}
	}
	return n
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
