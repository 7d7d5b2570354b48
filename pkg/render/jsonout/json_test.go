package jsonout

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/matzehuels/mazegen/pkg/maze"
	"github.com/matzehuels/mazegen/pkg/maze/carve"
	"github.com/matzehuels/mazegen/pkg/maze/stats"
)

func TestRender(t *testing.T) {
	g, _ := maze.New(2, 2)
	_ = g.OpenPassage(0, 1)
	_ = g.OpenPassage(0, 2)
	_ = g.OpenPassage(2, 3)

	data, err := Render(g, WithID("abc"), WithSeed(7), WithOrder(), WithStats(stats.Analyze(g)))
	if err != nil {
		t.Fatal(err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if doc.ID != "abc" || doc.Height != 2 || doc.Width != 2 {
		t.Errorf("header = %+v", doc)
	}
	if doc.Seed == nil || *doc.Seed != 7 {
		t.Errorf("Seed = %v, want 7", doc.Seed)
	}
	if want := []int{0, 1, 2, 1}; !slices.Equal(doc.Walls, want) {
		t.Errorf("Walls = %v, want %v", doc.Walls, want)
	}
	if want := []int{0, 2, 3, 1}; !slices.Equal(doc.Order, want) {
		t.Errorf("Order = %v, want %v", doc.Order, want)
	}
	if len(doc.Passages) != 3 {
		t.Errorf("Passages = %v, want 3", doc.Passages)
	}
	if doc.Stats == nil || !doc.Stats.Perfect {
		t.Errorf("Stats = %+v, want perfect", doc.Stats)
	}
}

func TestRender_Minimal(t *testing.T) {
	g, _ := maze.New(1, 3)
	data, err := Render(g)
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"id", "seed", "order", "report", "stats", "strategy"} {
		if _, ok := raw[key]; ok {
			t.Errorf("unexpected key %q in minimal document", key)
		}
	}
	if p, ok := raw["passages"].([]any); !ok || len(p) != 0 {
		t.Errorf("passages = %v, want empty list", raw["passages"])
	}
}

func TestBuild_Report(t *testing.T) {
	g, _ := maze.New(4, 4, maze.WithSource(maze.NewSource(1)))
	r, err := carve.DFSPath(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	doc := Build(g, WithReport(r))
	if doc.Strategy != carve.NameDFS || doc.Report != r {
		t.Errorf("Build() strategy = %q, report attached = %v", doc.Strategy, doc.Report == r)
	}
}
