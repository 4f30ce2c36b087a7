// Package check provides system diagnostics (--check mode) and pre-run
// dependency validation (CheckDeps) for ffmpeg, ffprobe and the selected
// frame source backend.
package check

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/backmassage/framegrid/internal/config"
	"github.com/backmassage/framegrid/internal/source"
)

// Sentinel errors returned by CheckDeps when a required tool is missing.
var (
	ErrFfmpegNotFound   = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound  = errors.New("ffprobe not found on PATH")
	ErrDecodeTestFailed = errors.New("ffmpeg found but a raw bgr24 test decode failed")
	ErrBackendMissing   = errors.New("frame source backend not compiled in")
)

// Logger is the minimal logging interface needed by RunCheck.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the interactive --check flow: prints availability of
// ffmpeg and ffprobe, the result of a test decode, and the compiled-in
// backends. It is informational only and does not stop on failure.
func RunCheck(cfg *config.Config, log Logger) {
	log.Info("=== System Check ===")

	checkTool(log, "ffmpeg")
	checkTool(log, "ffprobe")
	checkDecode(log)
	checkBackends(cfg, log)
}

// checkTool verifies name is on PATH and logs its version line.
func checkTool(log Logger, name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		log.Error("%s not found", name)
		return
	}
	log.Debug(true, "%s: %s", name, path)
	out, err := exec.Command(name, "-version").Output()
	if err != nil {
		log.Warn("%s found but -version failed: %v", name, err)
		return
	}
	log.Success("%s: %s", name, firstLine(string(out)))
}

// checkDecode decodes one synthetic frame to raw bgr24.
func checkDecode(log Logger) {
	log.Info("Testing raw bgr24 decode...")
	if runSilent("ffmpeg", decodeTestArgs()...) {
		log.Success("ffmpeg bgr24 decode works")
	} else {
		log.Error("ffmpeg bgr24 test decode failed")
	}
}

func checkBackends(cfg *config.Config, log Logger) {
	log.Info("Frame source backends: %s", strings.Join(source.Names(), ", "))
	if _, err := source.Lookup(string(cfg.Backend)); err != nil {
		log.Warn("Configured backend %q is not available in this build", cfg.Backend)
		return
	}
	log.Success("Configured backend: %s", cfg.Backend)
}

// CheckDeps is the pre-run validation. The ffmpeg backend needs ffmpeg and
// ffprobe on PATH and a working bgr24 decode; any backend must be
// registered in this build. Returns a sentinel error on failure.
func CheckDeps(cfg *config.Config) error {
	if _, err := source.Lookup(string(cfg.Backend)); err != nil {
		return ErrBackendMissing
	}
	if cfg.Backend != config.BackendFFmpeg {
		return nil
	}
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFfmpegNotFound
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return ErrFfprobeNotFound
	}
	if !runSilent("ffmpeg", decodeTestArgs()...) {
		return ErrDecodeTestFailed
	}
	return nil
}

// --- internal helpers ---

// decodeTestArgs returns the ffmpeg arguments for a single-frame lavfi
// decode to raw bgr24 on stdout, the same output format the ffmpeg
// backend reads.
func decodeTestArgs() []string {
	return []string{
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "color=black:s=16x16:d=0.1",
		"-frames:v", "1",
		"-f", "rawvideo", "-pix_fmt", "bgr24", "-",
	}
}

// runSilent runs a command and returns true if it exits with status 0.
// Both stdout and stderr are discarded.
func runSilent(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "\n"); idx > 0 {
		return s[:idx]
	}
	return s
}
