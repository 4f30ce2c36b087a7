// Package logging provides the leveled printf-style logger used by both
// commands. It is backed by zap: a console core for the terminal (errors go
// to stderr, everything else to stdout) and an optional plain-text file core.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/backmassage/framegrid/internal/config"
	"github.com/backmassage/framegrid/internal/term"
)

const timeLayout = "2006-01-02 15:04:05"

// Logger provides leveled, optionally colored logging with optional file sink.
type Logger struct {
	z       *zap.Logger
	file    *os.File
	verbose bool
}

// NewLogger configures terminal colors from cfg and optionally opens
// cfg.LogFile in append mode. Call Close when done.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	stdout := zapcore.Lock(os.Stdout)
	stderr := zapcore.Lock(os.Stderr)
	console := zapcore.NewConsoleEncoder(encoderConfig(term.Enabled()))

	belowError := zap.LevelEnablerFunc(func(l zapcore.Level) bool { return l < zapcore.ErrorLevel })
	atError := zap.LevelEnablerFunc(func(l zapcore.Level) bool { return l >= zapcore.ErrorLevel })

	cores := []zapcore.Core{
		zapcore.NewCore(console, stdout, belowError),
		zapcore.NewCore(console, stderr, atError),
	}

	l := &Logger{verbose: cfg.Verbose}
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
		plain := zapcore.NewConsoleEncoder(encoderConfig(false))
		cores = append(cores, zapcore.NewCore(plain, zapcore.AddSync(f), zapcore.DebugLevel))
	}

	l.z = zap.New(zapcore.NewTee(cores...))
	return l, nil
}

// FromZap wraps an existing zap logger, e.g. an observer core in tests.
func FromZap(z *zap.Logger, verbose bool) *Logger {
	return &Logger{z: z, verbose: verbose}
}

// NewNop returns a Logger that discards everything.
func NewNop() *Logger {
	return &Logger{z: zap.NewNop()}
}

func encoderConfig(color bool) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeTime:       zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeLevel:      levelEncoder(color),
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
}

// levelEncoder renders "[INFO]"-style labels, colored when enabled.
func levelEncoder(color bool) zapcore.LevelEncoder {
	return func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		label := "[" + levelLabel(l) + "]"
		if color {
			label = term.Paint(levelColor(l), label)
		}
		enc.AppendString(label)
	}
}

func levelLabel(l zapcore.Level) string {
	switch l {
	case zapcore.DebugLevel:
		return "DEBUG"
	case zapcore.WarnLevel:
		return "WARN"
	case zapcore.InfoLevel:
		return "INFO"
	default:
		return "ERROR"
	}
}

func levelColor(l zapcore.Level) string {
	switch l {
	case zapcore.DebugLevel:
		return term.Cyan
	case zapcore.InfoLevel:
		return term.Blue
	case zapcore.WarnLevel:
		return term.Yellow
	default:
		return term.Red
	}
}

// Close flushes buffered output and closes the log file if one was opened.
func (l *Logger) Close() error {
	_ = l.z.Sync() // stdout/stderr Sync fails on terminals; nothing to do about it.
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// With returns a child logger that adds key=value to every entry.
func (l *Logger) With(key string, value any) *Logger {
	return &Logger{z: l.z.With(zap.Any(key, value)), file: l.file, verbose: l.verbose}
}

// Verbose reports whether debug output is enabled.
func (l *Logger) Verbose() bool { return l.verbose }

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.z.Info(fmt.Sprintf(format, args...))
}

// Success logs a completed step at INFO level with an ok=true field.
func (l *Logger) Success(format string, args ...interface{}) {
	l.z.Info(fmt.Sprintf(format, args...), zap.Bool("ok", true))
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.z.Warn(fmt.Sprintf(format, args...))
}

// Error logs at ERROR level, to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.z.Error(fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level only when verbose is true.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.z.Debug(fmt.Sprintf(format, args...))
}
