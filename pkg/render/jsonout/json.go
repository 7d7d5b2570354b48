// Package jsonout renders mazes as JSON documents.
//
// The document carries the raw wall bits (bit 0 = west passage open, bit 1 =
// north passage open) in row-major order together with the explicit passage
// list, so consumers can use whichever is more convenient. The carve report
// and structural statistics are included when supplied.
package jsonout

import (
	"encoding/json"

	"github.com/matzehuels/mazegen/pkg/maze"
	"github.com/matzehuels/mazegen/pkg/maze/carve"
	"github.com/matzehuels/mazegen/pkg/maze/stats"
)

// Document is the JSON representation of a maze.
type Document struct {
	ID       string        `json:"id,omitempty"`
	Height   int           `json:"height"`
	Width    int           `json:"width"`
	Strategy string        `json:"strategy,omitempty"`
	Seed     *uint64       `json:"seed,omitempty"`
	Walls    []int         `json:"walls"`
	Passages []maze.Edge   `json:"passages"`
	Order    []int         `json:"order,omitempty"`
	Report   *carve.Report `json:"report,omitempty"`
	Stats    *stats.Stats  `json:"stats,omitempty"`
}

// Option configures JSON rendering via [Render].
type Option func(*Document)

// WithID records an identifier for the maze.
func WithID(id string) Option { return func(d *Document) { d.ID = id } }

// WithSeed records the seed the maze was generated from.
func WithSeed(seed uint64) Option { return func(d *Document) { d.Seed = &seed } }

// WithReport attaches the carve report and its strategy name.
func WithReport(r *carve.Report) Option {
	return func(d *Document) {
		if r != nil {
			d.Report = r
			d.Strategy = r.Strategy
		}
	}
}

// WithStats attaches structural statistics.
func WithStats(s stats.Stats) Option { return func(d *Document) { d.Stats = &s } }

// WithOrder includes the visitation order of the cells.
func WithOrder() Option {
	return func(d *Document) { d.Order = []int{} }
}

// Build assembles the document for g without encoding it.
func Build(g *maze.Grid, opts ...Option) Document {
	h, w := g.Dimensions()
	d := Document{
		Height:   h,
		Width:    w,
		Walls:    Walls(g),
		Passages: g.Edges(),
	}
	if d.Passages == nil {
		d.Passages = []maze.Edge{}
	}
	for _, opt := range opts {
		opt(&d)
	}
	if d.Order != nil {
		d.Order = g.VisitSequence()
	}
	return d
}

// Render returns the indented JSON document for g.
func Render(g *maze.Grid, opts ...Option) ([]byte, error) {
	data, err := json.MarshalIndent(Build(g, opts...), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Walls returns the wall bits of every cell as integers. A []maze.Wall would
// be encoded as base64 by encoding/json.
func Walls(g *maze.Grid) []int {
	walls := make([]int, g.Cells())
	for i := range walls {
		walls[i] = int(g.WallState(i))
	}
	return walls
}
