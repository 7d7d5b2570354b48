// Package render provides output formats for carved mazes.
//
// # Overview
//
// This package lists the supported output formats and hosts the renderers,
// one subpackage each:
//
//   - [ascii]: box-drawing text, one character row per wall row
//   - [svg]: vector image with one line per closed wall, optionally animated
//     in visitation order
//   - [jsonout]: machine-readable document with wall states, passages and
//     the carve report
//   - [nodelink]: the passage graph as a Graphviz diagram (DOT, SVG or PNG)
//
// Renderers only read the grid through [maze.Grid.WallState],
// [maze.Grid.Edges] and [maze.Grid.VisitOrder]; none of them modify it.
//
// # Formats
//
// [Formats] returns the names accepted by the CLI and HTTP API. [Binary]
// reports whether a format produces non-text output.
//
// [ascii]: github.com/matzehuels/mazegen/pkg/render/ascii
// [svg]: github.com/matzehuels/mazegen/pkg/render/svg
// [jsonout]: github.com/matzehuels/mazegen/pkg/render/jsonout
// [nodelink]: github.com/matzehuels/mazegen/pkg/render/nodelink
// [maze.Grid.WallState]: github.com/matzehuels/mazegen/pkg/maze#Grid.WallState
// [maze.Grid.Edges]: github.com/matzehuels/mazegen/pkg/maze#Grid.Edges
// [maze.Grid.VisitOrder]: github.com/matzehuels/mazegen/pkg/maze#Grid.VisitOrder
package render
