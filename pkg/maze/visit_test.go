package maze

import (
	"slices"
	"testing"
)

// snake carves a boustrophedon path through every cell.
func snake(g *Grid) {
	h, w := g.Dimensions()
	for row := range h {
		for col := range w - 1 {
			_ = g.OpenPassageAt(col, row, col+1, row)
		}
		if row < h-1 {
			col := w - 1
			if row%2 == 1 {
				col = 0
			}
			_ = g.OpenPassageAt(col, row, col, row+1)
		}
	}
}

func TestVisitOrder_AllCells(t *testing.T) {
	g, _ := New(3, 3)
	snake(g)

	counts := make([]int, g.Cells())
	var orders []int
	g.VisitOrder(func(cell, order int) {
		counts[cell]++
		orders = append(orders, order)
	})
	for i, c := range counts {
		if c != 1 {
			t.Errorf("cell %d visited %d times, want 1", i, c)
		}
	}
	for i, o := range orders {
		if o != i {
			t.Fatalf("order counter = %v, want 0..8", orders)
		}
	}
}

func TestVisitOrder_Deterministic(t *testing.T) {
	g, _ := New(2, 2)
	_ = g.OpenPassage(0, 1)
	_ = g.OpenPassage(0, 2)
	_ = g.OpenPassage(2, 3)
	want := []int{0, 2, 3, 1}
	for range 3 {
		if got := g.VisitSequence(); !slices.Equal(got, want) {
			t.Fatalf("VisitSequence() = %v, want %v", got, want)
		}
	}
	if g.PassageCount() != 3 {
		t.Error("VisitOrder mutated the grid")
	}
}

func TestVisitOrder_Unreachable(t *testing.T) {
	g, _ := New(2, 3)
	_ = g.OpenPassage(0, 1)
	if got := g.VisitSequence(); !slices.Equal(got, []int{0, 1}) {
		t.Errorf("VisitSequence() = %v, want [0 1]", got)
	}
}
