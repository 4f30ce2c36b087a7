package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/backmassage/framegrid/internal/cellcolor"
	"github.com/backmassage/framegrid/internal/config"
	"github.com/backmassage/framegrid/internal/document"
	"github.com/backmassage/framegrid/internal/frame"
	"github.com/backmassage/framegrid/internal/grid"
	"github.com/backmassage/framegrid/internal/logging"
	"github.com/backmassage/framegrid/internal/planner"
	"github.com/backmassage/framegrid/internal/source"
	"github.com/backmassage/framegrid/internal/term"
)

// ErrResourceUnavailable is returned when the video cannot be opened.
var ErrResourceUnavailable = errors.New("video resource unavailable")

// Run extracts the color grid document from cfg.InputPath using open.
// The source is closed on every return path.
func Run(ctx context.Context, cfg *config.Config, open source.Opener, log *logging.Logger) (*document.Document, RunStats, error) {
	start := time.Now()
	stats := RunStats{}
	log = log.With("run_id", uuid.NewString())

	if cfg.Rows <= 0 || cfg.Cols <= 0 || cfg.NumFrames <= 0 {
		return nil, stats, fmt.Errorf("%w: rows, cols and num_frames must be positive", config.ErrInvalidConfiguration)
	}
	reducer, err := cellcolor.NewReducer(cfg.Method)
	if err != nil {
		return nil, stats, fmt.Errorf("%w: %w", config.ErrInvalidConfiguration, err)
	}

	src, err := open(ctx, cfg.InputPath)
	if err != nil {
		return nil, stats, fmt.Errorf("%w: %s: %w", ErrResourceUnavailable, cfg.InputPath, err)
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			log.Warn("Closing video: %v", cerr)
		}
	}()

	logSource(log, cfg, src)

	plan := planner.BuildPlan(cfg, src.FrameCount())
	stats.TotalFrames = plan.TotalFrames
	stats.Planned = plan.Len()
	if plan.Note != "" {
		if plan.Empty() {
			log.Warn("%s", plan.Note)
		} else {
			log.Info("%s", plan.Note)
		}
	}
	log.Debug(cfg.Verbose, "Sample positions: %v", plan.Positions)

	builder := document.NewBuilder(cfg.Rows, cfg.Cols)
	cells := newCellCache(cfg.Rows, cfg.Cols)
	isTTY := term.IsTerminal(os.Stdout)

	for i, pos := range plan.Positions {
		if err := ctx.Err(); err != nil {
			clearProgress(isTTY)
			return nil, stats, err
		}
		printProgress(isTTY, i+1, plan.Len(), stats.Skipped, pos)

		f, err := src.DecodeAt(ctx, pos)
		if err != nil {
			if ctx.Err() != nil {
				clearProgress(isTTY)
				return nil, stats, ctx.Err()
			}
			clearProgress(isTTY)
			log.Warn("Skip frame %d: %v", pos, err)
			stats.Skipped++
			continue
		}

		if err := builder.Add(pos, reduceFrame(f, cells.rects(f), reducer)); err != nil {
			clearProgress(isTTY)
			return nil, stats, err
		}
		stats.Processed++
	}
	clearProgress(isTTY)

	doc := builder.Finish()
	stats.Changes = CountChanges(doc)
	stats.Elapsed = time.Since(start)
	return doc, stats, nil
}

// reduceFrame computes one color per cell, row-major.
func reduceFrame(f *frame.Frame, rects [][]grid.Rect, reducer cellcolor.Reducer) [][]cellcolor.Color {
	out := make([][]cellcolor.Color, len(rects))
	for i, row := range rects {
		out[i] = make([]cellcolor.Color, len(row))
		for j, r := range row {
			out[i][j] = reducer.Reduce(f.Region(r))
		}
	}
	return out
}

// cellCache keeps the last partition so frames of one size share it.
type cellCache struct {
	rows, cols    int
	width, height int
	cached        [][]grid.Rect
}

func newCellCache(rows, cols int) *cellCache {
	return &cellCache{rows: rows, cols: cols}
}

func (c *cellCache) rects(f *frame.Frame) [][]grid.Rect {
	if c.cached == nil || f.Width != c.width || f.Height != c.height {
		c.width, c.height = f.Width, f.Height
		c.cached = grid.Partition(f.Height, f.Width, c.rows, c.cols)
	}
	return c.cached
}
