// Package maze provides the rectangular grid model used to carve mazes.
//
// # Overview
//
// A [Grid] is a height × width arrangement of cells addressed by a flat index
// (index = column + row*width). Cells start fully walled. Passages between
// grid-adjacent cells are opened with [Grid.OpenPassage]; nothing else mutates
// the grid except [Grid.Erase], which closes every passage again.
//
// The carving algorithms themselves live in the [carve] subpackage. They only
// use the primitives exposed here: neighbor selection, passage opening and the
// grid's random [Source].
//
// # Wall Encoding
//
// Each cell stores a two-bit [Wall] value describing its west and north
// passages. A cell's east and south passages are stored on the neighbor to the
// east and south, so asking whether two cells are connected means looking at
// whichever of the two has the larger index. [Grid.Passage] and
// [Grid.NeighborsInPath] do this for callers; [Grid.WallState] exposes the raw
// bits for renderers that draw per-cell wall lines.
//
// # Randomness
//
// All random draws go through a single [Source]. Pass one with [WithSource]
// (for example [NewSource] with a fixed seed for reproducible mazes); without
// it the grid draws from the process-wide math/rand/v2 generator.
//
// # Visitation Order
//
// [Grid.VisitOrder] enumerates the carved passage graph depth-first from cell 0
// in a deterministic order. Renderers use it to sequence draw operations.
//
// # Concurrency
//
// A Grid is not safe for concurrent use. Run at most one carving strategy on a
// grid at a time.
//
// [carve]: github.com/matzehuels/mazegen/pkg/maze/carve
package maze
