package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/mazegen/pkg/errors"
	"github.com/matzehuels/mazegen/pkg/observability"
	"github.com/matzehuels/mazegen/pkg/render"
	"github.com/matzehuels/mazegen/pkg/render/ascii"
	"github.com/matzehuels/mazegen/pkg/render/jsonout"
	"github.com/matzehuels/mazegen/pkg/render/nodelink"
	"github.com/matzehuels/mazegen/pkg/render/svg"
)

// Render generates output artifacts for result in the requested formats.
func (r *Runner) Render(ctx context.Context, result *Result, opts Options) (map[string][]byte, error) {
	if result == nil || result.Grid == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "nothing to render")
	}
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	hooks := observability.Generate()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts := make(map[string][]byte, len(opts.Formats))
	var err error
	for _, format := range opts.Formats {
		if err = ctx.Err(); err != nil {
			break
		}
		var data []byte
		data, err = RenderFormat(ctx, result, format, opts)
		if err != nil {
			break
		}
		artifacts[format] = data
		r.Logger.Debug("rendered format", "format", format, "bytes", len(data))
	}

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return artifacts, nil
}

// RenderFormat renders result in a single format.
func RenderFormat(ctx context.Context, result *Result, format string, opts Options) ([]byte, error) {
	g := result.Grid
	switch format {
	case render.FormatTXT:
		return ascii.Render(g), nil

	case render.FormatSVG:
		cell := opts.CellSize
		if cell <= 0 {
			cell = DefaultCellSize
		}
		return svg.Render(g, svg.WithCellSize(cell), svg.WithAnimation(opts.Animate)), nil

	case render.FormatJSON:
		jopts := []jsonout.Option{
			jsonout.WithID(result.ID),
			jsonout.WithReport(result.Report),
			jsonout.WithStats(result.Structure),
		}
		if result.Seed != 0 {
			jopts = append(jopts, jsonout.WithSeed(result.Seed))
		}
		if opts.WithOrder {
			jopts = append(jopts, jsonout.WithOrder())
		}
		data, err := jsonout.Render(g, jopts...)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render json")
		}
		return data, nil

	case render.FormatDOT, render.FormatPNG:
		nopts := nodelink.Options{Detailed: opts.Detailed}
		if result.Report != nil {
			nopts.Loops = result.Report.Loops
		}
		dot := nodelink.ToDOT(g, nopts)
		if format == render.FormatDOT {
			return []byte(dot), nil
		}
		data, err := nodelink.RenderPNG(ctx, dot)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render png")
		}
		return data, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
}
