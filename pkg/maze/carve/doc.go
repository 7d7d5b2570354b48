// Package carve implements the randomized traversals that open passages in a
// [maze.Grid].
//
// # Strategies
//
// Four strategies are available, each as a function and as a [Strategy]
// value that can be selected by name with [New]:
//
//   - [RandomWalk] ("walk"): wanders to a uniformly chosen neighbor at every
//     step, opening each passage it crosses. Revisits are allowed.
//   - [RandomPath] ("path"): a self-avoiding walk that stops at the first
//     dead end. Produces a simple path, not a spanning maze.
//   - [DFSPath] ("dfs"): randomized depth-first carve producing a perfect
//     maze (a spanning tree of the grid).
//   - [DFSGraph] ("braided"): the same carve, but when the traversal meets an
//     already carved cell whose discovery depth differs by at least minCycle
//     it occasionally opens the passage anyway, creating a loop between
//     distant parts of the tree.
//
// All strategies run synchronously to completion and report what they did in
// a [Report]. They draw every random number from the grid's source, so a
// seeded grid yields the same maze every time.
//
// # Example
//
//	g, _ := maze.New(20, 30, maze.WithSource(maze.NewSource(42)))
//	report, err := carve.DFSGraph(g, 0, carve.DefaultMinCycle)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(report.Cycles(), "loops")
package carve
