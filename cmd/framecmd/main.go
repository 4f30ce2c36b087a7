// Command framecmd reads a framegrid document and writes one command file
// per grid row, emitting a line whenever a cell changes color and a final
// reset tick for every cell.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/backmassage/framegrid/internal/config"
	"github.com/backmassage/framegrid/internal/display"
	"github.com/backmassage/framegrid/internal/document"
	"github.com/backmassage/framegrid/internal/emit"
	"github.com/backmassage/framegrid/internal/logging"
)

// version is injected at build time via -ldflags.
var version = "1.0.0"

func main() {
	os.Exit(run())
}

func run() int {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "framecmd: .env: %v\n", err)
		return 1
	}

	cfg, err := config.LoadEmit(os.Args[1:], version)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) || errors.Is(err, config.ErrVersion) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "framecmd: %v\n", err)
		return 1
	}
	if err := cfg.ValidateEmit(); err != nil {
		fmt.Fprintf(os.Stderr, "framecmd: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "framecmd: %v\n", err)
		return 1
	}
	defer log.Close()

	e := &cfg.Emit
	log.Info("=== framecmd v%s ===", version)
	log.Info("In:  %s", e.InputPath)
	log.Info("Out: %s", e.OutputDir)

	doc, err := document.Read(e.InputPath)
	if err != nil {
		log.Error("Cannot read document: %v", err)
		return 1
	}
	log.Info("Document: %dx%d grid, %d frames", doc.Rows, doc.Columns, len(doc.Frames))
	if len(doc.Frames) == 0 {
		log.Warn("Document has no frames; nothing to emit")
	}

	res, err := emit.Emit(doc, e)
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	for row, n := range res.Lines {
		if n > 0 {
			log.Info("  %s: %d lines", emit.FileName(e, row), n)
		}
	}
	log.Debug(cfg.Verbose, "Output directory: %s", filepath.Clean(e.OutputDir))
	log.Success("Wrote %d lines in %d files (%s)", res.Total(), len(res.Files), display.FormatBytes(res.Bytes))
	return 0
}
