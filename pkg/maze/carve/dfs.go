package carve

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mazegen/pkg/maze"
)

// DefaultMinCycle is the depth gap a braided carve requires before it
// considers reconnecting two carved cells. It also sets the odds: a
// qualifying reconnection is opened with probability 1/minCycle.
const DefaultMinCycle = 50

// frame is a pending visit on the carve stack.
type frame struct {
	pred  int // cell the visit comes from, maze.NoNeighbor for the root
	cell  int
	depth int // pred's depth + 1; the root has depth 1
}

// Option configures a depth-first carve.
type Option func(*dfsConfig)

type dfsConfig struct {
	logger *log.Logger
}

// WithLogger makes the braided carve log every loop it creates at debug
// level.
func WithLogger(l *log.Logger) Option {
	return func(c *dfsConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// DFSPath carves a perfect maze with a randomized depth-first traversal from
// start. Every cell of the grid ends up connected by exactly one path.
func DFSPath(g *maze.Grid, start int, opts ...Option) (*Report, error) {
	r, err := dfs(g, start, 0, opts)
	if err != nil {
		return nil, err
	}
	r.Strategy = NameDFS
	return r, nil
}

// DFSGraph carves like [DFSPath] but braids the maze: when the traversal pops
// a cell that is already carved and the depth gap to the popping entry is at
// least minCycle, it opens that passage with probability 1/minCycle. The
// result is a spanning tree plus a sparse set of loops joining distant
// branches. minCycle <= 0 selects DefaultMinCycle.
func DFSGraph(g *maze.Grid, start, minCycle int, opts ...Option) (*Report, error) {
	if minCycle <= 0 {
		minCycle = DefaultMinCycle
	}
	r, err := dfs(g, start, minCycle, opts)
	if err != nil {
		return nil, err
	}
	r.Strategy = NameBraided
	return r, nil
}

// dfs runs the stack-based carve. minCycle == 0 disables loops.
func dfs(g *maze.Grid, start, minCycle int, opts []Option) (*Report, error) {
	cfg := dfsConfig{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !g.IsValidCell(start) {
		return nil, fmt.Errorf("depth-first carve: %w: %d", maze.ErrOutOfRange, start)
	}

	rng := g.Source()
	depth := make([]int, g.Cells())
	report := &Report{
		Start:    start,
		Sequence: make([]int, 0, g.Cells()),
		Depth:    depth,
	}

	stack := []frame{{pred: maze.NoNeighbor, cell: start, depth: 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if seen := depth[f.cell]; seen > 0 {
			if minCycle == 0 {
				continue
			}
			dist := abs(seen - f.depth)
			if dist >= minCycle && rng.IntN(minCycle) == 1 && !g.Passage(f.cell, f.pred) {
				if err := g.OpenPassage(f.cell, f.pred); err != nil {
					return nil, fmt.Errorf("open loop %d -> %d: %w", f.pred, f.cell, err)
				}
				report.Loops = append(report.Loops, Loop{Cell: f.cell, Predecessor: f.pred, Distance: dist})
				cfg.logger.Debug("created loop",
					"n", len(report.Loops),
					"from", f.pred,
					"to", f.cell,
					"depths", []int{seen, f.depth},
					"dist", dist)
			}
			continue
		}

		depth[f.cell] = f.depth
		report.Sequence = append(report.Sequence, f.cell)
		if f.pred != maze.NoNeighbor {
			if err := g.OpenPassage(f.pred, f.cell); err != nil {
				return nil, fmt.Errorf("open passage %d -> %d: %w", f.pred, f.cell, err)
			}
		}

		ns, err := g.Neighbors(f.cell)
		if err != nil {
			return nil, fmt.Errorf("depth-first carve at %d: %w", f.cell, err)
		}
		maze.Shuffle(rng, ns)
		for _, n := range ns {
			stack = append(stack, frame{pred: f.cell, cell: n, depth: f.depth + 1})
		}
	}
	return report, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
