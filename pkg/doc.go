// Package pkg provides the core libraries for mazegen.
//
// # Overview
//
// Mazegen carves mazes on rectangular grids. A grid starts with every wall
// closed; a carve strategy opens passages between adjacent cells until the
// maze is done. The pkg directory is organized into these areas:
//
//  1. [maze] - The grid, wall bits, neighbor selection and visit order
//  2. [maze/carve] - Carve strategies (random walk, random path, DFS, braided)
//  3. [maze/stats] - Structural analysis of carved grids
//  4. [render] - Output formats (txt, svg, json, dot, png)
//  5. [pipeline] - Orchestration (carve → analyze → render)
//
// # Architecture
//
// The typical data flow through mazegen:
//
//	Height × Width + seed
//	         ↓
//	    [maze] package (closed grid with its random source)
//	         ↓
//	    [maze/carve] package (strategy opens passages, returns a report)
//	         ↓
//	    [maze/stats] package (components, cycles, dead ends)
//	         ↓
//	    [render] packages (txt/SVG/JSON/DOT/PNG)
//
// # Quick Start
//
//	g, _ := maze.New(20, 30, maze.WithSource(maze.NewSource(42)))
//	report, _ := carve.DFSGraph(g, 0, carve.DefaultMinCycle)
//	fmt.Printf("%d loops\n", report.Cycles())
//	os.Stdout.Write(svg.Render(g))
//
// Or let the pipeline handle defaults, validation and rendering:
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Height:   20,
//	    Width:    30,
//	    Strategy: carve.NameDFS,
//	    Formats:  []string{render.FormatSVG, render.FormatJSON},
//	})
//
// # Supporting Packages
//
// [config] loads settings from TOML and MAZEGEN_* environment variables.
// [errors] defines the coded errors returned at the CLI and HTTP boundaries.
// [observability] lets callers hook carve, render and HTTP events.
// [buildinfo] carries the version injected at build time.
//
// [maze]: https://pkg.go.dev/github.com/matzehuels/mazegen/pkg/maze
// [maze/carve]: https://pkg.go.dev/github.com/matzehuels/mazegen/pkg/maze/carve
// [maze/stats]: https://pkg.go.dev/github.com/matzehuels/mazegen/pkg/maze/stats
// [render]: https://pkg.go.dev/github.com/matzehuels/mazegen/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/mazegen/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/mazegen/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/mazegen/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/mazegen/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/mazegen/pkg/buildinfo
package pkg
