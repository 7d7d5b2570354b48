package carve

import "github.com/matzehuels/mazegen/pkg/maze"

// Loop describes a passage opened by the braided carve between a cell that
// was already carved and the predecessor that reached it again.
type Loop struct {
	Cell        int `json:"cell"`
	Predecessor int `json:"predecessor"`
	// Distance is |depth(Cell) - (depth(Predecessor)+1)|, the depth gap that
	// qualified the loop.
	Distance int `json:"distance"`
}

// Edge returns the loop's passage.
func (l Loop) Edge() maze.Edge { return maze.NewEdge(l.Cell, l.Predecessor) }

// Report summarizes one strategy run.
type Report struct {
	// Strategy is the name of the strategy that produced the report.
	Strategy string `json:"strategy"`
	// Start is the cell the traversal started from.
	Start int `json:"start"`
	// Sequence holds the visited cells: the full walk (with repeats) for
	// random walks, the path for random paths and the discovery order for
	// depth-first carves.
	Sequence []int `json:"sequence"`
	// Depth holds the discovery depth of every cell for depth-first carves
	// (root = 1, 0 = never reached). Nil for other strategies.
	Depth []int `json:"depth,omitempty"`
	// Loops lists the extra passages opened by the braided carve.
	Loops []Loop `json:"loops,omitempty"`
}

// Cycles returns the number of loops the run created.
func (r *Report) Cycles() int { return len(r.Loops) }
