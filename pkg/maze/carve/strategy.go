package carve

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mazegen/pkg/maze"
)

// Strategy names accepted by [New].
const (
	NameWalk    = "walk"
	NamePath    = "path"
	NameDFS     = "dfs"
	NameBraided = "braided"

	// DefaultStrategy is the braided depth-first carve.
	DefaultStrategy = NameBraided
)

// ErrUnknownStrategy is returned by [New] for a name it does not know.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy carves passages into a grid, starting at a given cell.
type Strategy interface {
	// Name returns the strategy's registry name.
	Name() string
	// Carve runs the strategy to completion, mutating g.
	Carve(g *maze.Grid, start int) (*Report, error)
}

// Walk is the [RandomWalk] strategy. Steps <= 0 walks one step per cell.
type Walk struct{ Steps int }

func (Walk) Name() string { return NameWalk }

func (s Walk) Carve(g *maze.Grid, start int) (*Report, error) {
	return RandomWalk(g, start, s.Steps)
}

// Path is the [RandomPath] strategy with a fresh visited set.
type Path struct{}

func (Path) Name() string { return NamePath }

func (Path) Carve(g *maze.Grid, start int) (*Report, error) {
	return RandomPath(g, start, nil)
}

// DFS is the perfect depth-first carve, [DFSPath].
type DFS struct{}

func (DFS) Name() string { return NameDFS }

func (DFS) Carve(g *maze.Grid, start int) (*Report, error) {
	return DFSPath(g, start)
}

// Braided is the depth-first carve with loops, [DFSGraph].
type Braided struct {
	MinCycle int         // <= 0 selects DefaultMinCycle
	Logger   *log.Logger // optional; receives a debug line per loop
}

func (Braided) Name() string { return NameBraided }

func (s Braided) Carve(g *maze.Grid, start int) (*Report, error) {
	return DFSGraph(g, start, s.MinCycle, WithLogger(s.Logger))
}

// Params holds the tunables a named strategy may use.
type Params struct {
	Steps    int // walk
	MinCycle int // braided
	Logger   *log.Logger
}

// Names lists the registered strategy names.
func Names() []string {
	return []string{NameWalk, NamePath, NameDFS, NameBraided}
}

// New returns the strategy registered under name. An empty name selects
// DefaultStrategy.
func New(name string, p Params) (Strategy, error) {
	switch name {
	case NameWalk:
		return Walk{Steps: p.Steps}, nil
	case NamePath:
		return Path{}, nil
	case NameDFS:
		return DFS{}, nil
	case NameBraided, "":
		return Braided{MinCycle: p.MinCycle, Logger: p.Logger}, nil
	}
	return nil, fmt.Errorf("%w: %q (must be one of: walk, path, dfs, braided)", ErrUnknownStrategy, name)
}
