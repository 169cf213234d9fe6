package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// cliConfig is the optional shunt.toml, looked up from the working
// directory upward. Flags always win over config values.
type cliConfig struct {
	Output outputConfig `toml:"output"`
}

type outputConfig struct {
	// Precision is the default number of significant digits (0 = shortest).
	Precision int `toml:"precision"`
	// Group enables thousands separators by default.
	Group bool `toml:"group"`
	// Color is the default for --color (auto|on|off).
	Color string `toml:"color"`
}

func findShuntToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "shunt.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfig returns the nearest shunt.toml, or nil when there is none.
func loadConfig(startDir string) (*cliConfig, error) {
	path, ok, err := findShuntToml(startDir)
	if err != nil || !ok {
		return nil, err
	}

	var cfg cliConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	switch cfg.Output.Color {
	case "", "auto", "on", "off":
	default:
		return nil, fmt.Errorf("%s: invalid output.color %q", path, cfg.Output.Color)
	}
	return &cfg, nil
}
