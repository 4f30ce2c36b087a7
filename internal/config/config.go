// Package config holds runtime configuration: defaults, an optional YAML
// file, FRAMEGRID_* environment overrides, CLI flag parsing and validation.
// Later sources win: defaults < file < environment < flags.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/backmassage/framegrid/internal/cellcolor"
)

// ErrInvalidConfiguration wraps every validation failure so callers can
// reject a run before any decoding starts.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// --- Enum types for validated string fields ---

// Backend selects the frame decoder.
type Backend string

const (
	BackendFFmpeg Backend = "ffmpeg" // ffprobe + ffmpeg subprocesses (default).
	BackendGoCV   Backend = "gocv"   // OpenCV VideoCapture; needs a build with -tags gocv.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then [LoadFile], [ApplyEnv] and [ParseFlags] in that order, and passed by
// pointer to the packages that need it.
type Config struct {
	// Paths (set from positional args).
	InputPath  string `yaml:"-"`
	OutputPath string `yaml:"-"`

	// Grid sampling.
	Rows      int              `yaml:"rows" env:"ROWS"`             // Default: 5.
	Cols      int              `yaml:"cols" env:"COLS"`             // Default: 5.
	NumFrames int              `yaml:"num_frames" env:"NUM_FRAMES"` // Default: 10.
	Method    cellcolor.Method `yaml:"method" env:"METHOD"`         // Default: "average".
	Backend   Backend          `yaml:"backend" env:"BACKEND"`       // Default: "ffmpeg".

	// Display and logging.
	Verbose   bool      `yaml:"verbose" env:"VERBOSE"`
	ColorMode ColorMode `yaml:"color" env:"COLOR"` // Default: "auto".
	LogFile   string    `yaml:"log_file" env:"LOG_FILE"`
	CheckOnly bool      `yaml:"-"` // Run --check diagnostics and exit.

	// ConfigFile is the YAML file the settings above were read from, if any.
	ConfigFile string `yaml:"-"`

	// Command emission (framecmd).
	Emit EmitConfig `yaml:"emit" envPrefix:"EMIT_"`
}

// EmitConfig holds the settings of the command emission stage.
type EmitConfig struct {
	InputPath string `yaml:"-"`
	OutputDir string `yaml:"-"`

	Template   string `yaml:"template" env:"TEMPLATE"`
	ResetColor string `yaml:"reset_color" env:"RESET_COLOR"` // Default: "0F0".
	Prefix     string `yaml:"prefix" env:"PREFIX"`           // Default: "line_".
	Ext        string `yaml:"ext" env:"EXT"`                 // Default: ".mcfunction".
	Append     bool   `yaml:"append" env:"APPEND"`
}

// DefaultTemplate is the per-cell directive written by the emitter.
// $tick, $position and $color are substituted per line.
const DefaultTemplate = "execute if score #global timer matches $tick run waypoint modify @e[tag=pos_$position,limit=1] color hex $color"

// DefaultConfig returns a Config with the documented defaults.
func DefaultConfig() Config {
	return Config{
		Rows:      5,
		Cols:      5,
		NumFrames: 10,
		Method:    cellcolor.MethodAverage,
		Backend:   BackendFFmpeg,
		ColorMode: ColorAuto,
		Emit: EmitConfig{
			Template:   DefaultTemplate,
			ResetColor: "0F0",
			Prefix:     "line_",
			Ext:        ".mcfunction",
		},
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}

// Validate checks the grid, method, backend and display settings. Method and
// backend strings coming from the file or environment are normalized in
// place. When not in CheckOnly mode it also requires both paths, and
// rejects an output path that resolves to the input itself.
func (c *Config) Validate() error {
	if c.Rows <= 0 {
		return invalid("rows must be positive (got %d)", c.Rows)
	}
	if c.Cols <= 0 {
		return invalid("cols must be positive (got %d)", c.Cols)
	}
	if c.NumFrames <= 0 {
		return invalid("num_frames must be positive (got %d)", c.NumFrames)
	}

	m, err := cellcolor.ParseMethod(string(c.Method))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	c.Method = m

	b, err := parseBackend(string(c.Backend))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	c.Backend = b

	if err := c.validateColorMode(); err != nil {
		return err
	}

	if c.CheckOnly {
		return nil
	}
	if c.InputPath == "" || c.OutputPath == "" {
		return invalid("need exactly video_path and output_json")
	}
	if filepath.Clean(c.InputPath) == filepath.Clean(c.OutputPath) {
		return invalid("output path must differ from the input video")
	}
	return nil
}

// ValidateEmit checks the settings used by the command emission stage.
func (c *Config) ValidateEmit() error {
	if err := c.validateColorMode(); err != nil {
		return err
	}
	e := &c.Emit
	if e.InputPath == "" || e.OutputDir == "" {
		return invalid("need exactly input_json and output_dir")
	}
	if !strings.Contains(e.Template, "$tick") {
		return invalid("template must contain $tick")
	}
	if e.ResetColor == "" {
		return invalid("reset color must not be empty")
	}
	if strings.ContainsRune(e.Prefix, filepath.Separator) || strings.ContainsRune(e.Ext, filepath.Separator) {
		return invalid("prefix and extension must not contain path separators")
	}
	return nil
}

func (c *Config) validateColorMode() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return invalid("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}
}

func parseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case BackendFFmpeg, BackendGoCV:
		return b, nil
	default:
		return "", fmt.Errorf("invalid backend %q (use 'ffmpeg' or 'gocv')", s)
	}
}
