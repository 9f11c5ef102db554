// Package config loads the project-level .vesper.yaml configuration:
// stdlib path, additional source search paths, and a case-sensitivity
// override. VESPER_STDLIB replaces the file's stdlib path and VESPER_PATH
// entries are appended after the file's search paths (grounded on the
// teacher's internal/module
// resolver's AILANG_STDLIB/AILANG_PATH env-var convention).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the parsed project configuration.
type Config struct {
	// StdlibPath is the directory the `stdlib` module is loaded from.
	StdlibPath string `yaml:"stdlib_path"`

	// SearchPaths are additional directories searched for imported
	// modules, in order, after the project root.
	SearchPaths []string `yaml:"search_paths"`

	// CaseSensitive overrides the filesystem's own case sensitivity
	// when matching module paths to files. nil means "detect from the
	// host OS", matching the teacher's isFileSystemCaseSensitive.
	CaseSensitive *bool `yaml:"case_sensitive"`
}

const fileName = ".vesper.yaml"

// Load reads fileName from dir (the project root), applying
// VESPER_STDLIB / VESPER_PATH environment overrides afterward. A
// missing config file is not an error: Load returns the zero Config
// with environment overrides still applied.
func Load(dir string) (*Config, error) {
	cfg := &Config{}

	path := filepath.Join(dir, fileName)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// No project config: proceed with defaults + env overrides.
	default:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if stdlib := os.Getenv("VESPER_STDLIB"); stdlib != "" {
		cfg.StdlibPath = stdlib
	}
	if path := os.Getenv("VESPER_PATH"); path != "" {
		for _, p := range strings.Split(path, string(os.PathListSeparator)) {
			if p != "" {
				cfg.SearchPaths = append(cfg.SearchPaths, p)
			}
		}
	}
}

// ResolvedStdlibPath returns StdlibPath, or "<dir>/stdlib" when unset,
// matching the teacher's own stdlib-path fallback.
func (c *Config) ResolvedStdlibPath(dir string) string {
	if c.StdlibPath != "" {
		return c.StdlibPath
	}
	return filepath.Join(dir, "stdlib")
}

// IsCaseSensitive reports the effective case-sensitivity, honoring an
// explicit override before falling back to the host OS default.
func (c *Config) IsCaseSensitive() bool {
	if c.CaseSensitive != nil {
		return *c.CaseSensitive
	}
	return defaultCaseSensitive()
}
