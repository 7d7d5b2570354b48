package carve

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/matzehuels/mazegen/pkg/maze"
)

// RandomPath walks from start to random unvisited neighbors, opening a
// passage for every step, until it reaches a cell whose neighbors are all
// visited. Cells are added to visited as the walk proceeds; a nil set starts
// empty. The returned Sequence is the path, which never revisits a cell.
//
// If start is already in visited the path is empty.
func RandomPath(g *maze.Grid, start int, visited *mapset.Set[int]) (*Report, error) {
	if !g.IsValidCell(start) {
		return nil, fmt.Errorf("random path: %w: %d", maze.ErrOutOfRange, start)
	}
	if visited == nil {
		s := mapset.New[int]()
		visited = &s
	}

	path := []int{}
	prev, cur := maze.NoNeighbor, start
	for !visited.Has(cur) {
		if prev != maze.NoNeighbor {
			if err := g.OpenPassage(prev, cur); err != nil {
				return nil, fmt.Errorf("random path %d -> %d: %w", prev, cur, err)
			}
		}
		visited.Put(cur)
		path = append(path, cur)
		prev = cur

		next, err := g.RandomNeighborExcluding(cur, visited)
		if err != nil {
			return nil, fmt.Errorf("random path at %d: %w", cur, err)
		}
		if next == maze.NoNeighbor {
			break
		}
		cur = next
	}
	return &Report{Strategy: NamePath, Start: start, Sequence: path}, nil
}
