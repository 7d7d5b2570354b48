package maze

// VisitOrder walks the carved passage graph depth-first from cell 0 and calls
// fn once for every reachable cell with a 0-based visit counter.
//
// Neighbors are pushed in west, east, north, south order and popped from the
// top of the stack, so the order is fully determined by the grid's passages.
// The grid is not modified.
func (g *Grid) VisitOrder(fn func(cell, order int)) {
	if len(g.walls) == 0 {
		return
	}
	seen := make([]bool, len(g.walls))
	stack := []int{0}
	count := 0
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[x] {
			continue
		}
		seen[x] = true
		if fn != nil {
			fn(x, count)
		}
		count++
		stack = append(stack, g.NeighborsInPath(x)...)
	}
}

// VisitSequence returns the cells in the order [Grid.VisitOrder] reports them.
func (g *Grid) VisitSequence() []int {
	seq := make([]int, 0, len(g.walls))
	g.VisitOrder(func(cell, _ int) {
		seq = append(seq, cell)
	})
	return seq
}
