package pipeline

import (
	"fmt"
	"os"
	"strings"

	"github.com/backmassage/framegrid/internal/config"
	"github.com/backmassage/framegrid/internal/document"
	"github.com/backmassage/framegrid/internal/logging"
	"github.com/backmassage/framegrid/internal/probe"
	"github.com/backmassage/framegrid/internal/source"
)

// infoSource is implemented by sources that were opened through ffprobe.
type infoSource interface {
	Info() *probe.VideoInfo
}

// logSource prints the video header line and the grid settings.
func logSource(log *logging.Logger, cfg *config.Config, src source.Source) {
	w, h := src.Size()
	if is, ok := src.(infoSource); ok {
		info := is.Info()
		codec := info.Codec
		if codec == "" {
			codec = "unknown"
		}
		count := fmt.Sprintf("%d frames", info.FrameCount)
		if !info.FrameCountExact {
			count = "~" + count
		}
		log.Info("Video: %s | %s | %.3f fps | %s", info.Resolution(), codec, info.FrameRate, count)
	} else {
		log.Info("Video: %dx%d | %d frames", w, h, src.FrameCount())
	}
	log.Info("Grid: %dx%d cells, method %s, %d frames requested", cfg.Rows, cfg.Cols, cfg.Method, cfg.NumFrames)

	if w > 0 && h > 0 && (h < cfg.Rows || w < cfg.Cols) {
		log.Warn("Frame %dx%d is smaller than the %dx%d grid; some cells will be empty", w, h, cfg.Cols, cfg.Rows)
	}
}

// CountChanges returns how many cells differ from the same cell in the
// previous frame, summed over the document. The first frame counts every
// cell.
func CountChanges(d *document.Document) int {
	var n int
	var prev [][]string
	for _, f := range d.Frames {
		for i, row := range f.Grid {
			for j, c := range row {
				if prev == nil || prev[i][j] != c {
					n++
				}
			}
		}
		prev = f.Grid
	}
	return n
}

// printProgress shows a live decode counter. On a TTY it writes an inline
// \r-overwritten line; otherwise it is a no-op.
func printProgress(isTTY bool, current, total, skipped, position int) {
	if !isTTY || total == 0 {
		return
	}
	pct := current * 100 / total
	status := fmt.Sprintf("  Decoding [%d/%d] %d%% frame %d ", current, total, pct, position)
	if skipped > 0 {
		status += fmt.Sprintf("(%d skipped) ", skipped)
	}

	// Pad to 80 chars to overwrite previous longer lines, then \r.
	if len(status) < 80 {
		status += strings.Repeat(" ", 80-len(status))
	}
	fmt.Fprintf(os.Stdout, "\r%s", status)
}

// clearProgress erases the inline progress line on a TTY.
func clearProgress(isTTY bool) {
	if !isTTY {
		return
	}
	fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", 80))
}
