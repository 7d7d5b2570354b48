// Package pipeline provides the maze generation pipeline shared by the CLI
// and the HTTP server.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Carve: Build a grid and run a carve strategy on it
//  2. Analyze: Compute structural statistics of the carved maze
//  3. Render: Generate output in various formats (txt, SVG, JSON, DOT, PNG)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Height:   20,
//	    Width:    30,
//	    Strategy: "braided",
//	    Formats:  []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	result, err := runner.Generate(ctx, opts)
//	artifacts, err := runner.Render(ctx, result, opts)
//
// # Seeds
//
// Every result records the seed its random source was built from. A zero
// Options.Seed draws a fresh one, so any maze can be reproduced by passing
// its recorded seed back in.
package pipeline

import (
	"io"
	"math"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mazegen/pkg/errors"
	"github.com/matzehuels/mazegen/pkg/maze"
	"github.com/matzehuels/mazegen/pkg/maze/carve"
	"github.com/matzehuels/mazegen/pkg/maze/stats"
	"github.com/matzehuels/mazegen/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultHeight is the default number of rows.
	DefaultHeight = 20

	// DefaultWidth is the default number of columns.
	DefaultWidth = 30

	// DefaultCellSize is the default SVG cell edge length.
	DefaultCellSize = 5.0

	// DefaultFormat is the default output format.
	DefaultFormat = render.FormatTXT
)

// DefaultStrategy is the default carve strategy.
const DefaultStrategy = carve.DefaultStrategy

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the generation pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Carve options
	Height   int    `json:"height"`
	Width    int    `json:"width"`
	Strategy string `json:"strategy,omitempty"`
	Start    int    `json:"start,omitempty"`
	Steps    int    `json:"steps,omitempty"`     // walk only; 0 = one per cell
	MinCycle int    `json:"min_cycle,omitempty"` // braided only; 0 = carve.DefaultMinCycle
	Seed     uint64 `json:"seed,omitempty"`      // 0 = random

	// Render options
	Formats   []string      `json:"formats,omitempty"`
	CellSize  float64       `json:"cell_size,omitempty"`
	Animate   time.Duration `json:"animate,omitempty"`  // SVG reveal delay per cell
	Detailed  bool          `json:"detailed,omitempty"` // label nodes in DOT/PNG
	WithOrder bool          `json:"with_order,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
	Source maze.Source `json:"-"` // overrides Seed when set

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ID uniquely identifies this generated maze.
	ID string

	// Grid is the carved maze.
	Grid *maze.Grid

	// Report describes what the strategy did.
	Report *carve.Report

	// Seed is the seed the random source was built from. Zero when the
	// caller supplied Options.Source or after Runner.Regenerate, since then
	// no seed reproduces the maze.
	Seed uint64

	// Structure holds the structural statistics of the maze.
	Structure stats.Stats

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Cells      int
	Passages   int
	Cycles     int
	CarveTime  time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForCarve(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForCarve checks the carve options and applies their defaults.
func (o *Options) ValidateForCarve() error {
	o.SetCarveDefaults()
	if err := errors.ValidateDimensions(o.Height, o.Width); err != nil {
		return err
	}
	if err := errors.ValidateStrategy(o.Strategy); err != nil {
		return err
	}
	if err := errors.ValidateStart(o.Start, o.Height, o.Width); err != nil {
		return err
	}
	if err := errors.ValidateSteps(o.Steps); err != nil {
		return err
	}
	if o.MinCycle < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "min_cycle must not be negative")
	}
	return nil
}

// SetCarveDefaults sets default values for carving.
func (o *Options) SetCarveDefaults() {
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Strategy == "" {
		o.Strategy = DefaultStrategy
	}
	if o.Seed == 0 && o.Source == nil {
		o.Seed = rand.Uint64()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.CellSize <= 0 {
		o.CellSize = DefaultCellSize
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if math.IsNaN(o.CellSize) || math.IsInf(o.CellSize, 0) {
		return errors.New(errors.ErrCodeInvalidInput, "cell size must be a finite number (got %v)", o.CellSize)
	}
	for _, f := range o.Formats {
		if err := errors.ValidateFormat(f, render.Formats()); err != nil {
			return err
		}
	}
	return nil
}

// newSource returns the random source for a carve.
func (o *Options) newSource() maze.Source {
	if o.Source != nil {
		return o.Source
	}
	return maze.NewSource(o.Seed)
}

// params returns the strategy parameters for o.
func (o *Options) params() carve.Params {
	return carve.Params{Steps: o.Steps, MinCycle: o.MinCycle, Logger: o.Logger}
}
