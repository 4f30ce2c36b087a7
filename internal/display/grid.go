package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/backmassage/framegrid/internal/cellcolor"
	"github.com/backmassage/framegrid/internal/term"
)

// PrintGrid renders one frame's grid. With colors enabled each cell is a
// 24-bit background swatch; otherwise the hex values are printed.
func PrintGrid(w io.Writer, rows [][]string) {
	for _, row := range rows {
		var b strings.Builder
		b.WriteString("  ")
		for _, hex := range row {
			b.WriteString(Swatch(hex))
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}
}

// Swatch returns a colored two-column block for hex, or "hex " when colors
// are off or hex does not parse.
func Swatch(hex string) string {
	c, err := cellcolor.ParseHex(hex)
	if err != nil || !term.Enabled() {
		return hex + " "
	}
	return fmt.Sprintf("\033[48;2;%d;%d;%dm  %s", c.R, c.G, c.B, term.NC)
}
