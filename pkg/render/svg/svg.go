// Package svg renders mazes as SVG images.
//
// Each cell contributes its own wall lines: the left and top edges come from
// the cell's wall bits, the right and bottom edges from the neighbors to the
// east and south. The outer border is always closed. All lines are collected
// into a single path element.
//
// With [WithAnimation] every cell also gets a rectangle that flashes in the
// order [maze.Grid.VisitOrder] reports, replaying how the maze would be drawn
// cell by cell.
package svg

import (
	"bytes"
	"fmt"
	"time"

	"github.com/matzehuels/mazegen/pkg/maze"
)

// DefaultCellSize is the edge length of one cell in SVG user units.
const DefaultCellSize = 5.0

const animationCSS = `
    .cell { fill: %[1]s; opacity: 0; animation: reveal %[2]s linear forwards; }
    @keyframes reveal { 0%% { fill: #d62728; opacity: 1; } 90%% { fill: #d62728; } 100%% { fill: %[1]s; opacity: 1; } }`

// Option configures SVG rendering.
type Option func(*renderer)

type renderer struct {
	cell       float64
	margin     float64
	stroke     string
	background string
	width      float64
	delay      time.Duration
}

// WithCellSize sets the cell edge length. Non-positive values are ignored.
func WithCellSize(size float64) Option {
	return func(r *renderer) {
		if size > 0 {
			r.cell = size
		}
	}
}

// WithMargin adds empty space around the maze.
func WithMargin(m float64) Option { return func(r *renderer) { r.margin = max(m, 0) } }

// WithStroke sets the wall color.
func WithStroke(color string) Option { return func(r *renderer) { r.stroke = color } }

// WithStrokeWidth sets the wall line width.
func WithStrokeWidth(w float64) Option { return func(r *renderer) { r.width = w } }

// WithBackground sets the fill color behind the maze.
func WithBackground(color string) Option { return func(r *renderer) { r.background = color } }

// WithAnimation reveals cells in visitation order, one every delay.
func WithAnimation(delay time.Duration) Option {
	return func(r *renderer) {
		if delay > 0 {
			r.delay = delay
		}
	}
}

// Render returns the SVG document for g.
func Render(g *maze.Grid, opts ...Option) []byte {
	r := renderer{cell: DefaultCellSize, stroke: "#000000", background: "#ffffff"}
	for _, opt := range opts {
		opt(&r)
	}
	if r.width <= 0 {
		r.width = r.cell / 5
	}

	h, w := g.Dimensions()
	frameW := float64(w)*r.cell + 2*r.margin
	frameH := float64(h)*r.cell + 2*r.margin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		frameW, frameH, frameW, frameH)
	if r.delay > 0 {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", fmt.Sprintf(animationCSS, r.background, seconds(r.delay)))
	}
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n", frameW, frameH, r.background)

	if r.delay > 0 {
		r.renderCells(&buf, g)
	}
	r.renderWalls(&buf, g)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *renderer) renderCells(buf *bytes.Buffer, g *maze.Grid) {
	buf.WriteString(`  <g class="cells">` + "\n")
	g.VisitOrder(func(cell, order int) {
		x, y := r.origin(g, cell)
		fmt.Fprintf(buf, `    <rect class="cell" x="%.1f" y="%.1f" width="%.1f" height="%.1f" style="animation-delay:%s" data-order="%d"/>`+"\n",
			x, y, r.cell, r.cell, seconds(r.delay*time.Duration(order)), order)
	})
	buf.WriteString("  </g>\n")
}

func (r *renderer) renderWalls(buf *bytes.Buffer, g *maze.Grid) {
	h, w := g.Dimensions()
	var d bytes.Buffer
	line := func(x, y, dx, dy float64) {
		fmt.Fprintf(&d, "M%.1f %.1fl%.1f %.1f", x, y, dx, dy)
	}

	for i := range g.Cells() {
		col, row := g.CellToCoord(i)
		x, y := r.origin(g, i)
		ws := g.WallState(i)
		if !ws.West() {
			line(x, y, 0, r.cell)
		}
		if !ws.North() {
			line(x, y, r.cell, 0)
		}
		if col == w-1 {
			line(x+r.cell, y, 0, r.cell)
		}
		if row == h-1 {
			line(x, y+r.cell, r.cell, 0)
		}
	}

	fmt.Fprintf(buf, `  <path class="walls" d="%s" stroke="%s" stroke-width="%.2f" stroke-linecap="square" fill="none"/>`+"\n",
		d.String(), r.stroke, r.width)
}

func (r *renderer) origin(g *maze.Grid, i int) (x, y float64) {
	col, row := g.CellToCoord(i)
	return r.margin + float64(col)*r.cell, r.margin + float64(row)*r.cell
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.3fs", d.Seconds())
}
