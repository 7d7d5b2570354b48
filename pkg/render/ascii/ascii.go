// Package ascii renders mazes as plain text.
//
// Corners are drawn as '+', horizontal walls as "---" and vertical walls as
// '|', the classic look of terminal maze printers:
//
//	+---+---+---+
//	|       |   |
//	+---+   +   +
//	|           |
//	+---+---+---+
package ascii

import (
	"bytes"

	"github.com/matzehuels/mazegen/pkg/maze"
)

// Option configures text rendering.
type Option func(*renderer)

type renderer struct {
	hidden []bool
	marks  map[int]byte
}

// WithHidden draws the cells for which hidden[i] is true as solid blocks with
// all walls closed. The TUI uses it to reveal a maze cell by cell.
func WithHidden(hidden []bool) Option { return func(r *renderer) { r.hidden = hidden } }

// WithMark draws ch in the middle of cell.
func WithMark(cell int, ch byte) Option {
	return func(r *renderer) {
		if r.marks == nil {
			r.marks = make(map[int]byte)
		}
		r.marks[cell] = ch
	}
}

// Render returns the text drawing of g, terminated by a newline.
func Render(g *maze.Grid, opts ...Option) []byte {
	var r renderer
	for _, opt := range opts {
		opt(&r)
	}
	h, w := g.Dimensions()

	var buf bytes.Buffer
	buf.WriteByte('+')
	for range w {
		buf.WriteString("---+")
	}
	buf.WriteByte('\n')

	for row := range h {
		buf.WriteByte('|')
		for col := range w {
			i := g.CoordToCell(col, row)
			switch {
			case r.isHidden(i):
				buf.WriteString("###")
			case r.marks[i] != 0:
				buf.WriteByte(' ')
				buf.WriteByte(r.marks[i])
				buf.WriteByte(' ')
			default:
				buf.WriteString("   ")
			}
			if col == w-1 || !r.open(g, i, i+1) {
				buf.WriteByte('|')
			} else {
				buf.WriteByte(' ')
			}
		}
		buf.WriteByte('\n')

		buf.WriteByte('+')
		for col := range w {
			i := g.CoordToCell(col, row)
			if row == h-1 || !r.open(g, i, i+w) {
				buf.WriteString("---+")
			} else {
				buf.WriteString("   +")
			}
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func (r *renderer) isHidden(i int) bool {
	return i < len(r.hidden) && r.hidden[i]
}

func (r *renderer) open(g *maze.Grid, a, b int) bool {
	if r.isHidden(a) || r.isHidden(b) {
		return false
	}
	return g.Passage(a, b)
}
