package maze

import "errors"

var (
	// ErrInvalidDimensions is returned by [New] when height or width is not
	// positive.
	ErrInvalidDimensions = errors.New("invalid maze dimensions")

	// ErrOutOfRange is returned when a cell index or coordinate lies outside
	// the grid. It indicates a caller bug rather than a recoverable condition.
	ErrOutOfRange = errors.New("cell out of range")

	// ErrNotAdjacent is returned by [Grid.OpenPassage] when the two cells do
	// not share an edge.
	ErrNotAdjacent = errors.New("cells are not adjacent")

	// ErrNoNeighbors is returned by neighbor queries on a single-cell grid,
	// where no movement is possible.
	ErrNoNeighbors = errors.New("grid has no neighbors")

	// ErrInvalidNeighbor is returned when neighbor selection produced a cell
	// outside the grid. It cannot happen for a consistent grid.
	ErrInvalidNeighbor = errors.New("invalid neighbor")
)
