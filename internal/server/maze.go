package server

import (
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/matzehuels/mazegen/pkg/errors"
	"github.com/matzehuels/mazegen/pkg/pipeline"
	"github.com/matzehuels/mazegen/pkg/render"
)

func (s *Server) handleMaze(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts, err := parseOptions(q)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	format := q.Get("format")
	if format == "" {
		format = render.FormatJSON
	}
	opts.Formats = []string{format}
	if v := q.Get("cell"); v != "" {
		opts.CellSize, err = strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(opts.CellSize) || math.IsInf(opts.CellSize, 0) {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid cell: %q", v))
			return
		}
	}
	if v := q.Get("animate"); v != "" {
		if opts.Animate, err = time.ParseDuration(v); err != nil || opts.Animate < 0 {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid animate: %q", v))
			return
		}
	}
	opts.Detailed = q.Get("detailed") == "true"
	opts.WithOrder = q.Get("order") == "true"

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", render.ContentType(format))
	w.Header().Set("X-Maze-ID", result.ID)
	w.Header().Set("X-Maze-Seed", strconv.FormatUint(result.Seed, 10))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// parseOptions reads the carve parameters shared by /v1/maze and the stream.
func parseOptions(q url.Values) (pipeline.Options, error) {
	var opts pipeline.Options
	ints := []struct {
		key string
		dst *int
	}{
		{"height", &opts.Height},
		{"width", &opts.Width},
		{"min_cycle", &opts.MinCycle},
		{"steps", &opts.Steps},
		{"start", &opts.Start},
	}
	for _, p := range ints {
		v := q.Get(p.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid %s: %q", p.key, v)
		}
		*p.dst = n
	}
	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid seed: %q", v)
		}
		opts.Seed = seed
	}
	opts.Strategy = q.Get("strategy")
	return opts, nil
}
