// Command framegrid samples frames from a video, reduces each frame to a
// grid of representative colors and writes the result as a JSON document.
//
// It parses flags, validates configuration and paths, and either runs
// system diagnostics (--check) or the extraction pipeline.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/backmassage/framegrid/internal/check"
	"github.com/backmassage/framegrid/internal/config"
	"github.com/backmassage/framegrid/internal/display"
	"github.com/backmassage/framegrid/internal/document"
	"github.com/backmassage/framegrid/internal/logging"
	"github.com/backmassage/framegrid/internal/pipeline"
	"github.com/backmassage/framegrid/internal/source"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "framegrid: .env: %v\n", err)
		return 1
	}

	cfg, err := config.Load(os.Args[1:], version)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) || errors.Is(err, config.ErrVersion) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "framegrid: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "framegrid: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "framegrid: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available.
	display.PrintBanner(os.Stdout, version)

	if cfg.CheckOnly {
		check.RunCheck(&cfg, log)
		return 0
	}

	log.Info("=== framegrid v%s (%s) ===", version, commit)
	log.Info("In:  %s", cfg.InputPath)
	log.Info("Out: %s", cfg.OutputPath)
	if cfg.ConfigFile != "" {
		log.Info("Config: %s", cfg.ConfigFile)
	}

	if err := pipeline.ValidateInput(cfg.InputPath, log); err != nil {
		log.Error("%v", err)
		return 1
	}
	if err := check.CheckDeps(&cfg); err != nil {
		log.Error("%v", err)
		return 1
	}
	open, err := source.Lookup(string(cfg.Backend))
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	// Phase 3: Signal handling. Cancel the context on SIGINT/SIGTERM so the
	// pipeline stops between frames and no document is written.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, stopping after the current frame…")
		cancel()
	}()

	// Phase 4: Run the pipeline and write the document.
	doc, stats, err := pipeline.Run(ctx, &cfg, open, log)
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	if err := document.Write(cfg.OutputPath, doc); err != nil {
		log.Error("Cannot write document: %v", err)
		return 1
	}
	if fi, err := os.Stat(cfg.OutputPath); err == nil {
		stats.OutputBytes = fi.Size()
	}

	if cfg.Verbose && len(doc.Frames) > 0 {
		last := doc.Frames[len(doc.Frames)-1]
		log.Info("Frame %d:", last.FrameIndex)
		display.PrintGrid(os.Stdout, last.Grid)
	}

	pipeline.LogSummary(log, &stats)
	log.Success("Wrote %s", cfg.OutputPath)
	return 0
}
