package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"
	"github.com/zyedidia/generic/mapset"

	"github.com/matzehuels/mazegen/pkg/maze"
	"github.com/matzehuels/mazegen/pkg/maze/carve"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed labels each node with its column and row.
	// When false, nodes are drawn as unlabeled points.
	Detailed bool

	// Loops are drawn in red and dashed.
	Loops []carve.Loop

	// Spacing is the distance between neighboring nodes in inches.
	// Zero selects 0.5.
	Spacing float64
}

// ToDOT converts the passage graph of g to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
func ToDOT(g *maze.Grid, opts Options) string {
	spacing := opts.Spacing
	if spacing <= 0 {
		spacing = 0.5
	}
	loops := mapset.New[maze.Edge]()
	for _, l := range opts.Loops {
		loops.Put(l.Edge())
	}

	h, _ := g.Dimensions()
	var buf bytes.Buffer
	buf.WriteString("graph maze {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  splines=false;\n")
	if opts.Detailed {
		buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=10, width=0.3, height=0.3, fixedsize=true];\n")
	} else {
		buf.WriteString("  node [shape=point, width=0.08];\n")
	}
	buf.WriteString("  edge [penwidth=2];\n")
	buf.WriteString("\n")

	for i := range g.Cells() {
		col, row := g.CellToCoord(i)
		// Graphviz y grows upward; flip rows so row 0 is on top.
		attrs := fmt.Sprintf("pos=\"%.2f,%.2f!\"", float64(col)*spacing, float64(h-1-row)*spacing)
		if opts.Detailed {
			attrs += fmt.Sprintf(", label=\"%d,%d\"", col, row)
		}
		fmt.Fprintf(&buf, "  %d [%s];\n", i, attrs)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if loops.Has(e) {
			fmt.Fprintf(&buf, "  %d -- %d [color=red, style=dashed];\n", e.A, e.B)
			continue
		}
		fmt.Fprintf(&buf, "  %d -- %d;\n", e.A, e.B)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz's neato layout.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz's neato layout.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
