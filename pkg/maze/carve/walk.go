package carve

import (
	"fmt"

	"github.com/matzehuels/mazegen/pkg/maze"
)

// RandomWalk moves steps times from start to a uniformly chosen neighbor,
// opening every passage it crosses. steps <= 0 means one step per cell.
//
// Passages may be crossed more than once; opening is idempotent. The report's
// Sequence starts with start and records every cell moved to, so it holds
// steps+1 entries.
func RandomWalk(g *maze.Grid, start, steps int) (*Report, error) {
	if steps <= 0 {
		steps = g.Cells()
	}
	seq := make([]int, 1, steps+1)
	seq[0] = start

	a := start
	for range steps {
		b, err := g.WeightedRandomNeighbor(a)
		if err != nil {
			return nil, fmt.Errorf("random walk at %d: %w", a, err)
		}
		if err := g.OpenPassage(a, b); err != nil {
			return nil, fmt.Errorf("random walk %d -> %d: %w", a, b, err)
		}
		seq = append(seq, b)
		a = b
	}
	return &Report{Strategy: NameWalk, Start: start, Sequence: seq}, nil
}
