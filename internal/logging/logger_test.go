package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/backmassage/framegrid/internal/config"
)

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	l.Info("test message")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorAlways
	cfg.LogFile = filepath.Join(dir, "logs", "framegrid.log")
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	l.With("run_id", "abc").Warn("frame %d skipped", 7)
	l.Debug(false, "hidden")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(cfg.LogFile)
	for _, want := range []string{"[WARN]", "frame 7 skipped", `"run_id": "abc"`} {
		if !bytes.Contains(b, []byte(want)) {
			t.Errorf("log file missing %q: %s", want, string(b))
		}
	}
	if bytes.Contains(b, []byte("hidden")) {
		t.Errorf("debug line written without verbose: %s", string(b))
	}
	if bytes.Contains(b, []byte("\033[")) {
		t.Errorf("log file contains ANSI codes: %q", string(b))
	}
}

func TestFromZap_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core), true)

	l.Info("a")
	l.Success("b")
	l.Warn("c %s", "x")
	l.Error("d")
	l.Debug(l.Verbose(), "e")

	want := []zapcore.Level{zapcore.InfoLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel, zapcore.DebugLevel}
	got := logs.All()
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i, e := range got {
		if e.Level != want[i] {
			t.Errorf("entry %d level = %v, want %v", i, e.Level, want[i])
		}
	}
	if got[2].Message != "c x" {
		t.Errorf("formatted message = %q", got[2].Message)
	}
}
