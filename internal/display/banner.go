package display

import (
	"fmt"
	"io"

	"github.com/backmassage/framegrid/internal/term"
)

const banner = ` __                                     _     _
 / _|_ __ __ _ _ __ ___   ___  __ _ _ __(_) __| |
| |_| '__/ _` + "`" + ` | '_ ` + "`" + ` _ \ / _ \/ _` + "`" + ` | '__| |/ _` + "`" + ` |
|  _| | | (_| | | | | | |  __/ (_| | |  | | (_| |
|_| |_|  \__,_|_| |_| |_|\___|\__, |_|  |_|\__,_|
                              |___/
`

// PrintBanner writes the ASCII art banner and version; magenta when colors
// are enabled.
func PrintBanner(w io.Writer, version string) {
	if term.Enabled() {
		fmt.Fprint(w, "\033[1;95m")
	}
	fmt.Fprint(w, banner)
	if term.Enabled() {
		fmt.Fprint(w, term.NC)
	}
	fmt.Fprintf(w, "  v%s\n\n", version)
}
