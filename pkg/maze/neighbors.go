package maze

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// NoNeighbor is returned by [Grid.RandomNeighborExcluding] when every
// neighbor is excluded. It doubles as the "no predecessor" marker for the
// root of a depth-first carve.
const NoNeighbor = -1

// Neighbors returns the cells sharing an edge with i, in west, east, north,
// south order. It fails with ErrOutOfRange for an invalid cell and with
// ErrNoNeighbors on a single-cell grid.
func (g *Grid) Neighbors(i int) ([]int, error) {
	if err := g.checkMovable(i); err != nil {
		return nil, err
	}
	return g.gridNeighbors(i), nil
}

func (g *Grid) gridNeighbors(i int) []int {
	col, row := g.CellToCoord(i)
	ns := make([]int, 0, 4)
	if col > 0 {
		ns = append(ns, i-1)
	}
	if col < g.width-1 {
		ns = append(ns, i+1)
	}
	if row > 0 {
		ns = append(ns, i-g.width)
	}
	if row < g.height-1 {
		ns = append(ns, i+g.width)
	}
	return ns
}

// WeightedRandomNeighbor returns one neighbor of i chosen uniformly among the
// directions available at i's position: endpoints of a single row or column
// have one, corners two, border cells three and interior cells four.
func (g *Grid) WeightedRandomNeighbor(i int) (int, error) {
	if err := g.checkMovable(i); err != nil {
		return 0, err
	}

	var n int
	if g.width == 1 || g.height == 1 {
		// In a single row or column the neighbors are always i±1.
		switch i {
		case 0:
			n = 1
		case len(g.walls) - 1:
			n = i - 1
		default:
			n = g.pick2(i-1, i+1)
		}
	} else {
		ns := g.gridNeighbors(i)
		switch len(ns) {
		case 2: // corner
			n = g.pick2(ns[0], ns[1])
		default: // border (3) or interior (4)
			n = ns[g.rng.IntN(len(ns))]
		}
	}

	if !g.IsValidCell(n) {
		return 0, fmt.Errorf("%w: %d chosen for cell %d", ErrInvalidNeighbor, n, i)
	}
	return n, nil
}

func (g *Grid) pick2(a, b int) int {
	if g.rng.Float64() < 0.5 {
		return a
	}
	return b
}

// RandomNeighborExcluding shuffles the neighbors of i and returns the first
// one not in exclude. A nil exclude set excludes nothing. It returns
// NoNeighbor when every neighbor is excluded.
func (g *Grid) RandomNeighborExcluding(i int, exclude *mapset.Set[int]) (int, error) {
	ns, err := g.Neighbors(i)
	if err != nil {
		return NoNeighbor, err
	}
	Shuffle(g.rng, ns)
	for _, n := range ns {
		if exclude == nil || !exclude.Has(n) {
			return n, nil
		}
	}
	return NoNeighbor, nil
}

func (g *Grid) checkMovable(i int) error {
	if err := g.checkCell(i); err != nil {
		return err
	}
	if len(g.walls) <= 1 {
		return ErrNoNeighbors
	}
	return nil
}
