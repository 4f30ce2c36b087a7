package pipeline

import (
	"time"

	"github.com/backmassage/framegrid/internal/display"
	"github.com/backmassage/framegrid/internal/logging"
)

// RunStats tracks what a run planned and what it produced.
type RunStats struct {
	TotalFrames int
	Planned     int
	Processed   int
	Skipped     int
	Changes     int // Cell color changes between consecutive frames.
	Elapsed     time.Duration
	OutputBytes int64
}

// LogSummary prints the end-of-run report.
func LogSummary(log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d of %d planned frames processed, %d skipped",
		stats.Processed, stats.Planned, stats.Skipped)
	log.Info("  Video frames: %d", stats.TotalFrames)
	log.Info("  Cell changes: %d", stats.Changes)
	log.Info("  Elapsed: %s", display.FormatDuration(stats.Elapsed))
	if stats.OutputBytes > 0 {
		log.Success("  Output size: %s", display.FormatBytes(stats.OutputBytes))
	}
	if stats.Skipped > 0 {
		log.Warn("  %d frame(s) could not be decoded and were left out", stats.Skipped)
	}
}
