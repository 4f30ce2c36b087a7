// Package emit turns a grid document into per-row command files. Each
// line sets the color of one cell at one tick; cells whose color did not
// change since the previous frame produce no line, and a final reset tick
// restores every cell.
package emit

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/backmassage/framegrid/internal/config"
	"github.com/backmassage/framegrid/internal/document"
)

// Template placeholders.
const (
	TickVar     = "$tick"
	PositionVar = "$position"
	ColorVar    = "$color"
)

// Result describes the files written by [Emit].
type Result struct {
	Files []string // One per row that produced lines, in row order.
	Lines []int    // Lines written per row, indexed by row.
	Bytes int64
}

// Total returns the number of lines written across all rows.
func (r *Result) Total() int {
	var n int
	for _, l := range r.Lines {
		n += l
	}
	return n
}

// Collapse maps a cell color to the short form used in commands: "FFF"
// for white and "000" for everything else.
func Collapse(hex string) string {
	if hex == "#FFFFFF" {
		return "FFF"
	}
	return "000"
}

// Expand substitutes the placeholders of template.
func Expand(template string, tick, position int, color string) string {
	return strings.NewReplacer(
		TickVar, strconv.Itoa(tick),
		PositionVar, strconv.Itoa(position),
		ColorVar, color,
	).Replace(template)
}

// Render returns the command lines for every row of d. Ticks are
// frame_index+1; the reset tick is the last frame_index+2. A document
// without frames renders no lines.
func Render(d *document.Document, cfg *config.EmitConfig) [][]string {
	lines := make([][]string, d.Rows)
	last := make([][]string, d.Rows)
	for i := range last {
		last[i] = make([]string, d.Columns)
	}

	for _, f := range d.Frames {
		for i, row := range f.Grid {
			for j, color := range row {
				if color == "" || last[i][j] == color {
					continue
				}
				lines[i] = append(lines[i], Expand(cfg.Template, f.FrameIndex+1, j, Collapse(color)))
				last[i][j] = color
			}
		}
	}

	lastIdx, ok := d.LastFrameIndex()
	if !ok {
		return lines
	}
	for i := range lines {
		for j := 0; j < d.Columns; j++ {
			lines[i] = append(lines[i], Expand(cfg.Template, lastIdx+2, j, cfg.ResetColor))
		}
	}
	return lines
}

// FileName returns the output file name for zero-based row.
func FileName(cfg *config.EmitConfig, row int) string {
	return cfg.Prefix + strconv.Itoa(row+1) + cfg.Ext
}

// Emit renders d and writes one file per row into cfg.OutputDir. Files are
// truncated unless cfg.Append is set. Rows without lines are not touched.
func Emit(d *document.Document, cfg *config.EmitConfig) (*Result, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if cfg.Append {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}

	rows := Render(d, cfg)
	res := &Result{Lines: make([]int, len(rows))}
	for i, lines := range rows {
		if len(lines) == 0 {
			continue
		}
		path := filepath.Join(cfg.OutputDir, FileName(cfg, i))
		n, err := writeLines(path, flags, lines)
		if err != nil {
			return res, err
		}
		res.Files = append(res.Files, path)
		res.Lines[i] = len(lines)
		res.Bytes += n
	}
	return res, nil
}

func writeLines(path string, flags int, lines []string) (int64, error) {
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return 0, err
	}
	n, werr := f.WriteString(strings.Join(lines, "\n") + "\n")
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return int64(n), fmt.Errorf("write %s: %w", path, werr)
	}
	return int64(n), nil
}
