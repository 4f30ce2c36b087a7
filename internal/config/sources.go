package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name read by [ApplyEnv].
const EnvPrefix = "FRAMEGRID_"

// LoadFile overlays the YAML file at path onto cfg. Keys absent from the
// file keep their current values.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	cfg.ConfigFile = path
	return nil
}

// ApplyEnv overlays FRAMEGRID_* environment variables onto cfg.
func ApplyEnv(cfg *Config) error {
	return applyEnv(cfg, nil)
}

// applyEnv is ApplyEnv with an explicit environment for tests; a nil map
// reads the process environment.
func applyEnv(cfg *Config, environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}

// Load builds the extraction config from every source: defaults, the YAML
// file named by --config (or FRAMEGRID_CONFIG), the environment, then the
// command line in args (without the program name).
func Load(args []string, version string) (Config, error) {
	cfg := DefaultConfig()
	if err := overlayFileAndEnv(&cfg, args); err != nil {
		return cfg, err
	}
	err := ParseFlags(&cfg, args, version)
	return cfg, err
}

// LoadEmit is [Load] for the command emission stage.
func LoadEmit(args []string, version string) (Config, error) {
	cfg := DefaultConfig()
	if err := overlayFileAndEnv(&cfg, args); err != nil {
		return cfg, err
	}
	err := ParseEmitFlags(&cfg, args, version)
	return cfg, err
}

func overlayFileAndEnv(cfg *Config, args []string) error {
	path := configFlagValue(args)
	if path == "" {
		path = os.Getenv(EnvPrefix + "CONFIG")
	}
	if path != "" {
		if err := LoadFile(path, cfg); err != nil {
			return err
		}
	}
	return ApplyEnv(cfg)
}

// configFlagValue pre-scans args for -config/--config so the file can be
// loaded before the flag set applies its own overrides.
func configFlagValue(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			return ""
		}
		name := strings.TrimLeft(a, "-")
		if name == a {
			continue
		}
		switch {
		case name == "config" && i+1 < len(args):
			return args[i+1]
		case strings.HasPrefix(name, "config="):
			return strings.TrimPrefix(name, "config=")
		}
	}
	return ""
}

// ErrVersion is returned by the flag parsers after --version was printed.
var ErrVersion = errors.New("version requested")
