package carve

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/zyedidia/generic/mapset"

	"github.com/matzehuels/mazegen/pkg/maze"
)

func newGrid(t *testing.T, h, w int, seed uint64) *maze.Grid {
	t.Helper()
	g, err := maze.New(h, w, maze.WithSource(maze.NewSource(seed)))
	if err != nil {
		t.Fatalf("maze.New(%d, %d) error = %v", h, w, err)
	}
	return g
}

// connected reports whether every cell is reachable from cell 0.
func connected(g *maze.Grid) bool {
	return len(g.VisitSequence()) == g.Cells()
}

func TestDFSPath_SpanningTree(t *testing.T) {
	sizes := [][2]int{{1, 2}, {2, 1}, {2, 2}, {3, 3}, {1, 17}, {17, 1}, {5, 9}, {20, 20}, {31, 7}}
	for _, s := range sizes {
		for seed := range uint64(5) {
			g := newGrid(t, s[0], s[1], seed)
			r, err := DFSPath(g, 0)
			if err != nil {
				t.Fatalf("%dx%d: DFSPath error = %v", s[0], s[1], err)
			}
			if got, want := g.PassageCount(), g.Cells()-1; got != want {
				t.Errorf("%dx%d seed %d: PassageCount() = %d, want %d", s[0], s[1], seed, got, want)
			}
			// n-1 edges plus connectivity implies acyclic.
			if !connected(g) {
				t.Errorf("%dx%d seed %d: maze not connected", s[0], s[1], seed)
			}
			if len(r.Sequence) != g.Cells() {
				t.Errorf("%dx%d: Sequence has %d cells, want %d", s[0], s[1], len(r.Sequence), g.Cells())
			}
			if r.Cycles() != 0 {
				t.Errorf("DFSPath created %d loops", r.Cycles())
			}
		}
	}
}

func TestDFSPath_Depth(t *testing.T) {
	g := newGrid(t, 6, 6, 11)
	r, err := DFSPath(g, 14)
	if err != nil {
		t.Fatal(err)
	}
	if r.Sequence[0] != 14 || r.Depth[14] != 1 {
		t.Fatalf("root = %d depth %d, want 14 depth 1", r.Sequence[0], r.Depth[14])
	}
	// Every non-root cell has exactly one tree neighbor one level up.
	for i := range g.Cells() {
		if i == 14 {
			continue
		}
		parents := 0
		for _, n := range g.NeighborsInPath(i) {
			if r.Depth[n] == r.Depth[i]-1 {
				parents++
			}
		}
		if parents != 1 {
			t.Errorf("cell %d (depth %d) has %d parents", i, r.Depth[i], parents)
		}
	}
}

func TestDFSPath_Deterministic(t *testing.T) {
	a := newGrid(t, 12, 15, 42)
	b := newGrid(t, 12, 15, 42)
	if _, err := DFSPath(a, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := DFSPath(b, 0); err != nil {
		t.Fatal(err)
	}
	for i := range a.Cells() {
		if a.WallState(i) != b.WallState(i) {
			t.Fatalf("cell %d differs between equal seeds", i)
		}
	}
}

func TestDFSGraph_Braided(t *testing.T) {
	for seed := range uint64(10) {
		g := newGrid(t, 20, 20, seed)
		r, err := DFSGraph(g, 0, 50)
		if err != nil {
			t.Fatal(err)
		}
		if got := g.PassageCount(); got < 399 {
			t.Errorf("seed %d: PassageCount() = %d, want >= 399", seed, got)
		}
		if got, want := g.PassageCount(), 399+r.Cycles(); got != want {
			t.Errorf("seed %d: PassageCount() = %d, want tree + loops = %d", seed, got, want)
		}
		if !connected(g) {
			t.Errorf("seed %d: maze not connected", seed)
		}
		for _, l := range r.Loops {
			if l.Distance < 50 {
				t.Errorf("seed %d: loop %+v shorter than minCycle", seed, l)
			}
			if d := abs(r.Depth[l.Cell] - (r.Depth[l.Predecessor] + 1)); d != l.Distance {
				t.Errorf("seed %d: loop %+v, recorded depth gap %d", seed, l, d)
			}
			if !g.Passage(l.Cell, l.Predecessor) {
				t.Errorf("seed %d: loop %+v passage not open", seed, l)
			}
		}
	}
}

func TestDFSGraph_DefaultMinCycle(t *testing.T) {
	g := newGrid(t, 20, 20, 3)
	r, err := DFSGraph(g, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, l := range r.Loops {
		if l.Distance < DefaultMinCycle {
			t.Errorf("loop %+v shorter than DefaultMinCycle", l)
		}
	}
	if r.Strategy != NameBraided {
		t.Errorf("Strategy = %q, want %q", r.Strategy, NameBraided)
	}
}

func TestDFSGraph_LogsLoops(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	g := newGrid(t, 20, 20, 8)
	r, err := DFSGraph(g, 0, 4, WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}
	if r.Cycles() == 0 {
		t.Fatal("expected loops with minCycle 4 on a 20x20 grid")
	}
	if got := strings.Count(buf.String(), "created loop"); got != r.Cycles() {
		t.Errorf("logged %d loops, report has %d", got, r.Cycles())
	}
}

func TestRandomWalk(t *testing.T) {
	g := newGrid(t, 8, 8, 5)
	r, err := RandomWalk(g, 10, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Sequence) != 101 || r.Sequence[0] != 10 {
		t.Fatalf("Sequence len %d starting at %d, want 101 starting at 10", len(r.Sequence), r.Sequence[0])
	}
	for i := 1; i < len(r.Sequence); i++ {
		a, b := r.Sequence[i-1], r.Sequence[i]
		if !g.Passage(a, b) {
			t.Fatalf("step %d: no passage %d -> %d", i, a, b)
		}
	}
	if g.PassageCount() > 100 {
		t.Errorf("PassageCount() = %d, more than steps", g.PassageCount())
	}
}

func TestRandomWalk_DefaultSteps(t *testing.T) {
	g := newGrid(t, 4, 5, 5)
	r, err := RandomWalk(g, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Sequence) != 21 {
		t.Errorf("len(Sequence) = %d, want 21", len(r.Sequence))
	}
}

func TestRandomPath(t *testing.T) {
	for seed := range uint64(20) {
		g := newGrid(t, 7, 9, seed)
		visited := mapset.New[int]()
		r, err := RandomPath(g, 30, &visited)
		if err != nil {
			t.Fatal(err)
		}
		path := r.Sequence
		if len(path) == 0 || path[0] != 30 {
			t.Fatalf("path = %v, want to start at 30", path)
		}
		seen := map[int]bool{}
		for i, c := range path {
			if seen[c] {
				t.Fatalf("seed %d: path revisits %d", seed, c)
			}
			seen[c] = true
			if !visited.Has(c) {
				t.Errorf("seed %d: %d missing from visited", seed, c)
			}
			if i > 0 && !g.Passage(path[i-1], c) {
				t.Errorf("seed %d: no passage %d -> %d", seed, path[i-1], c)
			}
		}
		if g.PassageCount() != len(path)-1 {
			t.Errorf("seed %d: PassageCount() = %d, want %d", seed, g.PassageCount(), len(path)-1)
		}
		// The path ends at a dead end: every neighbor was visited.
		last := path[len(path)-1]
		ns, _ := g.Neighbors(last)
		for _, n := range ns {
			if !visited.Has(n) {
				t.Errorf("seed %d: path stopped at %d with unvisited neighbor %d", seed, last, n)
			}
		}
	}
}

func TestRandomPath_StartVisited(t *testing.T) {
	g := newGrid(t, 3, 3, 1)
	visited := mapset.New[int]()
	visited.Put(4)
	r, err := RandomPath(g, 4, &visited)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Sequence) != 0 || g.PassageCount() != 0 {
		t.Errorf("path = %v, passages = %d, want empty", r.Sequence, g.PassageCount())
	}
}

func TestStrategies_SingleCell(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			g := newGrid(t, 1, 1, 0)
			s, err := New(name, Params{})
			if err != nil {
				t.Fatal(err)
			}
			if _, err := s.Carve(g, 0); !errors.Is(err, maze.ErrNoNeighbors) {
				t.Errorf("Carve on 1x1 error = %v, want ErrNoNeighbors", err)
			}
		})
	}
}

func TestStrategies_InvalidStart(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			g := newGrid(t, 3, 3, 0)
			s, _ := New(name, Params{Steps: 5})
			if _, err := s.Carve(g, 9); !errors.Is(err, maze.ErrOutOfRange) {
				t.Errorf("Carve(start=9) error = %v, want ErrOutOfRange", err)
			}
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"walk", NameWalk, false},
		{"path", NamePath, false},
		{"dfs", NameDFS, false},
		{"braided", NameBraided, false},
		{"", DefaultStrategy, false},
		{"prim", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.name, Params{})
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownStrategy) {
					t.Errorf("New(%q) error = %v, want ErrUnknownStrategy", tt.name, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if s.Name() != tt.want {
				t.Errorf("New(%q).Name() = %q, want %q", tt.name, s.Name(), tt.want)
			}
		})
	}
}

func TestStrategy_ReportName(t *testing.T) {
	for _, name := range Names() {
		g := newGrid(t, 6, 6, 2)
		s, _ := New(name, Params{Steps: 10, MinCycle: 5})
		r, err := s.Carve(g, 0)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if r.Strategy != name {
			t.Errorf("%s: report strategy %q", name, r.Strategy)
		}
	}
}
