package server

import (
	"context"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/matzehuels/mazegen/pkg/errors"
	"github.com/matzehuels/mazegen/pkg/observability"
	"github.com/matzehuels/mazegen/pkg/pipeline"
	"github.com/matzehuels/mazegen/pkg/render/jsonout"
)

// StreamHeader is the first message of a maze stream.
type StreamHeader struct {
	Type     string `json:"type"` // "maze"
	ID       string `json:"id"`
	Height   int    `json:"height"`
	Width    int    `json:"width"`
	Strategy string `json:"strategy"`
	Seed     uint64 `json:"seed,omitempty"`
	Walls    []int  `json:"walls"`
}

// StreamCell reports one cell in visitation order.
type StreamCell struct {
	Cell  int `json:"cell"`
	Order int `json:"order"`
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts, err := parseOptions(q)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var delay time.Duration
	if v := q.Get("delay"); v != "" {
		delay, err = time.ParseDuration(v)
		if err != nil || delay < 0 || delay > MaxStreamDelay {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid delay: %q (max %s)", v, MaxStreamDelay))
			return
		}
	}

	// Generate before upgrading so input errors get a regular HTTP response.
	result, err := s.runner.Generate(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket accept failed", "err", err)
		return
	}
	defer conn.CloseNow()

	ctx := conn.CloseRead(r.Context())
	if err := s.stream(ctx, conn, result, delay); err != nil {
		observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
		s.logger.Debug("stream aborted", "id", result.ID, "err", err)
		return
	}
	conn.Close(websocket.StatusNormalClosure, "done")
}

// stream writes the header followed by one message per cell in visitation
// order, sleeping delay between cells.
func (s *Server) stream(ctx context.Context, conn *websocket.Conn, result *pipeline.Result, delay time.Duration) error {
	g := result.Grid
	header := StreamHeader{
		Type:     "maze",
		ID:       result.ID,
		Height:   g.Height(),
		Width:    g.Width(),
		Strategy: result.Report.Strategy,
		Seed:     result.Seed,
		Walls:    jsonout.Walls(g),
	}
	if err := wsjson.Write(ctx, conn, header); err != nil {
		return err
	}

	var ticker *time.Ticker
	if delay > 0 {
		ticker = time.NewTicker(delay)
		defer ticker.Stop()
	}
	for order, cell := range g.VisitSequence() {
		if ticker != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		}
		if err := wsjson.Write(ctx, conn, StreamCell{Cell: cell, Order: order}); err != nil {
			return err
		}
	}
	return nil
}
