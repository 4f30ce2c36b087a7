package config

// This file implements CLI flag parsing and help text for both commands.
// Flags are grouped into grid, decoding, display and utility sections.
// Negated flags (e.g. --no-color) are applied after Parse so earlier
// sources hold unless the flag is given.

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/backmassage/framegrid/internal/cellcolor"
)

// usageOut is where help text goes; tests swap it.
var usageOut io.Writer = os.Stderr

// ParseFlags parses args (without the program name) into cfg for the
// framegrid command. It returns [flag.ErrHelp] after printing help and
// [ErrVersion] after printing the version; callers treat both as success.
func ParseFlags(cfg *Config, args []string, version string) error {
	fs := flag.NewFlagSet("framegrid", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	var negated negatedFlags

	defineGridFlags(fs, cfg)
	defineDecodeFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, cfg, &negated)
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")

	rest, err := parseInterspersed(fs, args)
	if err != nil {
		if err == flag.ErrHelp {
			printUsage(extractUsage(version))
		}
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(extractUsage(version))
		return flag.ErrHelp
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "framegrid v"+version)
		return ErrVersion
	}

	if cfg.CheckOnly {
		return nil
	}
	if len(rest) != 2 {
		return fmt.Errorf("need exactly video_path and output_json")
	}
	cfg.InputPath = rest[0]
	cfg.OutputPath = rest[1]
	return nil
}

// ParseEmitFlags parses args into cfg for the framecmd command.
func ParseEmitFlags(cfg *Config, args []string, version string) error {
	fs := flag.NewFlagSet("framecmd", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	var negated negatedFlags

	e := &cfg.Emit
	fs.StringVar(&e.Template, "template", e.Template, "Directive template ($tick, $position, $color)")
	fs.StringVar(&e.ResetColor, "reset-color", e.ResetColor, "Color of the final reset tick")
	fs.StringVar(&e.Prefix, "prefix", e.Prefix, "Row file name prefix")
	fs.StringVar(&e.Ext, "ext", e.Ext, "Row file extension")
	fs.BoolVar(&e.Append, "append", e.Append, "Append to existing row files")
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, cfg, &negated)

	rest, err := parseInterspersed(fs, args)
	if err != nil {
		if err == flag.ErrHelp {
			printUsage(emitUsage(version))
		}
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(emitUsage(version))
		return flag.ErrHelp
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "framecmd v"+version)
		return ErrVersion
	}

	if len(rest) != 2 {
		return fmt.Errorf("need exactly input_json and output_dir")
	}
	e.InputPath = rest[0]
	e.OutputDir = rest[1]
	return nil
}

// parseInterspersed parses flags that may appear before, between or after
// the positional arguments and returns the positionals in order. "--" ends
// flag parsing.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var rest []string
	for len(args) > 0 {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		remaining := fs.Args()
		if consumed := len(args) - len(remaining); consumed > 0 && args[consumed-1] == "--" {
			return append(rest, remaining...), nil
		}
		if len(remaining) == 0 {
			break
		}
		rest = append(rest, remaining[0])
		args = remaining[1:]
	}
	return rest, nil
}

// negatedFlags holds boolean flags that are applied after Parse.
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineGridFlags registers rows, cols, frame count and method.
func defineGridFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Var(&positiveIntValue{&cfg.Rows, "rows"}, "rows", "Grid rows per frame")
	fs.Var(&positiveIntValue{&cfg.Rows, "rows"}, "r", "Same as --rows")
	fs.Var(&positiveIntValue{&cfg.Cols, "cols"}, "cols", "Grid columns per frame")
	fs.Var(&positiveIntValue{&cfg.Cols, "cols"}, "k", "Same as --cols")
	fs.Var(&positiveIntValue{&cfg.NumFrames, "num_frames"}, "num-frames", "Number of frames to sample")
	fs.Var(&positiveIntValue{&cfg.NumFrames, "num_frames"}, "num_frames", "Same as --num-frames")
	fs.Var(&positiveIntValue{&cfg.NumFrames, "num_frames"}, "n", "Same as --num-frames")
	fs.Var(&methodValue{&cfg.Method}, "method", "Reduction: average | mode | black_white")
	fs.Var(&methodValue{&cfg.Method}, "m", "Same as --method")
}

// defineDecodeFlags registers --backend.
func defineDecodeFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Var(&backendValue{&cfg.Backend}, "backend", "Frame decoder: ffmpeg | gocv")
}

// defineDisplayFlags registers --color, --no-color, verbose and --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "Same as --log")
}

// defineUtilityFlags registers --config, --version and --help.
func defineUtilityFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	// Already applied by Load's pre-scan; registered so the flag set accepts it.
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "YAML config file")
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated and override flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

type usageLine struct {
	flags string
	desc  string
}

func extractUsage(version string) []usageLine {
	return []usageLine{
		{"", "framegrid v" + version + " - sample video frames into color grids"},
		{"", ""},
		{"  framegrid [OPTIONS] <video_path> <output_json>", ""},
		{"", ""},
		{"Grid", ""},
		{"  -r, --rows <n>", "Grid rows per frame (default: 5)"},
		{"  -k, --cols <n>", "Grid columns per frame (default: 5)"},
		{"  -n, --num-frames <n>", "Frames to sample, evenly spaced (default: 10)"},
		{"  -m, --method <name>", "average | mode | black_white (default: average)"},
		{"", ""},
		{"Decoding", ""},
		{"  --backend <name>", "ffmpeg | gocv (default: ffmpeg)"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  --config <path>", "YAML config file (also FRAMEGRID_CONFIG)"},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (ffmpeg, ffprobe)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
		{"", ""},
		{"", "Environment: FRAMEGRID_ROWS, FRAMEGRID_COLS, FRAMEGRID_NUM_FRAMES, FRAMEGRID_METHOD, ..."},
	}
}

func emitUsage(version string) []usageLine {
	return []usageLine{
		{"", "framecmd v" + version + " - turn a grid document into per-row command files"},
		{"", ""},
		{"  framecmd [OPTIONS] <input_json> <output_dir>", ""},
		{"", ""},
		{"Output", ""},
		{"  --template <text>", "Directive with $tick, $position, $color"},
		{"  --reset-color <hex>", "Color of the final reset tick (default: 0F0)"},
		{"  --prefix <text>", "Row file prefix (default: line_)"},
		{"  --ext <text>", "Row file extension (default: .mcfunction)"},
		{"  --append", "Append to existing row files instead of replacing them"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  --config <path>", "YAML config file (also FRAMEGRID_CONFIG)"},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}
}

// printUsage writes column-aligned help text to usageOut.
func printUsage(lines []usageLine) {
	const col1 = 30
	for _, l := range lines {
		switch {
		case l.flags == "" && l.desc == "":
			fmt.Fprintln(usageOut)
		case l.desc == "":
			fmt.Fprintln(usageOut, l.flags)
		case l.flags == "":
			fmt.Fprintln(usageOut, l.desc)
		default:
			padding := col1 - len(l.flags)
			if padding < 1 {
				padding = 1
			}
			fmt.Fprintf(usageOut, "%s%*s%s\n", l.flags, padding, "", l.desc)
		}
	}
}

// flag.Value adapters for enum and positive integer fields.

type methodValue struct{ p *cellcolor.Method }

func (m *methodValue) String() string {
	if m.p == nil {
		return ""
	}
	return string(*m.p)
}
func (m *methodValue) Set(s string) error {
	v, err := cellcolor.ParseMethod(s)
	if err != nil {
		return err
	}
	*m.p = v
	return nil
}

type backendValue struct{ p *Backend }

func (b *backendValue) String() string {
	if b.p == nil {
		return ""
	}
	return string(*b.p)
}
func (b *backendValue) Set(s string) error {
	v, err := parseBackend(s)
	if err != nil {
		return err
	}
	*b.p = v
	return nil
}

type positiveIntValue struct {
	p    *int
	name string
}

func (v *positiveIntValue) String() string {
	if v.p == nil {
		return "0"
	}
	return strconv.Itoa(*v.p)
}
func (v *positiveIntValue) Set(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("%s must be a whole number (got %q)", v.name, s)
	}
	if n <= 0 {
		return fmt.Errorf("%w: %s must be positive (got %d)", ErrInvalidConfiguration, v.name, n)
	}
	*v.p = n
	return nil
}
