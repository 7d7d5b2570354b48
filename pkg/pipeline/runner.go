package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/mazegen/pkg/errors"
	"github.com/matzehuels/mazegen/pkg/maze"
	"github.com/matzehuels/mazegen/pkg/maze/carve"
	"github.com/matzehuels/mazegen/pkg/maze/stats"
	"github.com/matzehuels/mazegen/pkg/observability"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options; every run gets its own grid and random source.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger uses the default logger.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete carve → analyze → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result, err := r.Generate(ctx, opts)
	if err != nil {
		return nil, err
	}

	renderStart := time.Now()
	artifacts, err := r.Render(ctx, result, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Generate builds a grid, carves it and analyzes the result.
func (r *Runner) Generate(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForCarve(); err != nil {
		return nil, err
	}

	g, err := maze.New(opts.Height, opts.Width, maze.WithSource(opts.newSource()))
	if err != nil {
		return nil, errors.FromMaze(err)
	}

	result := &Result{
		ID:        uuid.NewString(),
		Grid:      g,
		Artifacts: make(map[string][]byte),
	}
	if opts.Source == nil {
		result.Seed = opts.Seed
	}
	if err := r.carve(ctx, result, opts); err != nil {
		return nil, err
	}
	return result, nil
}

// Regenerate erases the result's grid and carves it again with the same
// options. The grid keeps its random source, so the new maze differs from
// the previous one. The result gets a new ID; rendered artifacts are dropped.
// Seed is reset to zero because the advanced source cannot be recreated from
// it.
func (r *Runner) Regenerate(ctx context.Context, result *Result, opts Options) error {
	if result == nil || result.Grid == nil {
		return errors.New(errors.ErrCodeInvalidInput, "nothing to regenerate")
	}
	h, w := result.Grid.Dimensions()
	opts.Height, opts.Width = h, w
	r.applyLogger(&opts)
	if err := opts.ValidateForCarve(); err != nil {
		return err
	}

	result.Grid.Erase()
	result.ID = uuid.NewString()
	result.Seed = 0
	result.Artifacts = make(map[string][]byte)
	return r.carve(ctx, result, opts)
}

func (r *Runner) carve(ctx context.Context, result *Result, opts Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	strategy, err := carve.New(opts.Strategy, opts.params())
	if err != nil {
		return errors.FromMaze(err)
	}

	g := result.Grid
	hooks := observability.Generate()
	hooks.OnCarveStart(ctx, strategy.Name(), g.Height(), g.Width())

	start := time.Now()
	report, err := strategy.Carve(g, opts.Start)
	result.Stats.CarveTime = time.Since(start)
	hooks.OnCarveComplete(ctx, strategy.Name(), g.PassageCount(), result.Stats.CarveTime, err)
	if err != nil {
		return errors.FromMaze(fmt.Errorf("carve %s: %w", strategy.Name(), err))
	}

	result.Report = report
	result.Structure = stats.Analyze(g)
	result.Stats.Cells = result.Structure.Cells
	result.Stats.Passages = result.Structure.Passages
	result.Stats.Cycles = report.Cycles()

	r.Logger.Info("carved maze",
		"id", result.ID,
		"strategy", strategy.Name(),
		"size", g.String(),
		"passages", result.Stats.Passages,
		"loops", result.Stats.Cycles,
		"duration", result.Stats.CarveTime)
	r.Logger.Debug("maze structure",
		"components", result.Structure.Components,
		"dead_ends", result.Structure.DeadEnds,
		"perfect", result.Structure.Perfect)
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
