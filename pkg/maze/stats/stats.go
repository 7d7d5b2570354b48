// Package stats computes structural properties of a carved maze: how many
// connected regions it has, how many independent loops, and how many dead
// ends.
package stats

import (
	"github.com/spakin/disjoint"

	"github.com/matzehuels/mazegen/pkg/maze"
)

// Stats describes the passage graph of a grid.
type Stats struct {
	Cells      int `json:"cells"`
	Passages   int `json:"passages"`
	Components int `json:"components"`
	// Cycles is the number of independent loops: passages - cells + components.
	Cycles int `json:"cycles"`
	// DeadEnds counts cells with exactly one open passage.
	DeadEnds int `json:"dead_ends"`
	// Perfect is true when every cell is reachable by exactly one path.
	Perfect bool `json:"perfect"`
}

// Analyze inspects g. It does not modify the grid.
func Analyze(g *maze.Grid) Stats {
	n := g.Cells()
	reaches := make([]*disjoint.Element, n)
	for i := range reaches {
		reaches[i] = disjoint.NewElement()
	}
	edges := g.Edges()
	for _, e := range edges {
		disjoint.Union(reaches[e.A], reaches[e.B])
	}

	roots := make(map[*disjoint.Element]struct{})
	for _, r := range reaches {
		roots[r.Find()] = struct{}{}
	}

	s := Stats{
		Cells:      n,
		Passages:   len(edges),
		Components: len(roots),
	}
	s.Cycles = s.Passages - s.Cells + s.Components
	for i := range n {
		if len(g.NeighborsInPath(i)) == 1 {
			s.DeadEnds++
		}
	}
	s.Perfect = s.Components == 1 && s.Cycles == 0
	return s
}
