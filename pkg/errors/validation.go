package errors

import (
	"slices"
	"strings"
	"unicode"

	"github.com/matzehuels/mazegen/pkg/maze/carve"
)

// MaxDimension bounds the height and width accepted from user input.
const MaxDimension = 1000

// MaxSteps bounds the step budget of the random walk. The walk records every
// step, so the budget is also a memory bound.
const MaxSteps = 10 * MaxDimension * MaxDimension

// ValidateDimensions checks a requested maze size.
//
// Both sides must lie in [1, MaxDimension] and the maze must have at least
// two cells, since no strategy can carve a single cell.
func ValidateDimensions(height, width int) error {
	if height < 1 || width < 1 {
		return New(ErrCodeInvalidDimensions, "height and width must be positive (got %dx%d)", height, width)
	}
	if height > MaxDimension || width > MaxDimension {
		return New(ErrCodeInvalidDimensions, "height and width must not exceed %d (got %dx%d)", MaxDimension, height, width)
	}
	if height*width < 2 {
		return New(ErrCodeInvalidDimensions, "maze must have at least two cells")
	}
	return nil
}

// ValidateStrategy checks that name is a registered carve strategy. The
// empty name selects the default and is accepted.
func ValidateStrategy(name string) error {
	if name == "" || slices.Contains(carve.Names(), name) {
		return nil
	}
	return New(ErrCodeInvalidStrategy, "invalid strategy: %s (must be one of: %s)", name, strings.Join(carve.Names(), ", "))
}

// ValidateFormat checks that format is one of allowed.
func ValidateFormat(format string, allowed []string) error {
	if slices.Contains(allowed, format) {
		return nil
	}
	return New(ErrCodeInvalidFormat, "invalid format: %s (must be one of: %s)", format, strings.Join(allowed, ", "))
}

// ValidateSteps checks a random-walk step budget. Zero selects the default
// of one step per cell.
func ValidateSteps(steps int) error {
	if steps < 0 || steps > MaxSteps {
		return New(ErrCodeInvalidInput, "steps must lie in [0, %d] (got %d)", MaxSteps, steps)
	}
	return nil
}

// ValidateStart checks that a start cell lies inside a height × width maze.
func ValidateStart(start, height, width int) error {
	if start < 0 || start >= height*width {
		return New(ErrCodeInvalidInput, "start cell %d outside %dx%d maze", start, height, width)
	}
	return nil
}

// ValidateOutputPath validates a user-supplied output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}
