// Package configloader resolves the tool configuration: an explicit path
// from the --config flag, a .uncrustify.yaml discovered in the working
// directory or any parent, then built-in defaults.
package configloader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vobal-jb/uncrustify/pkg/config"
)

// configFileName is the project config file searched for upward from the
// working directory.
const configFileName = ".uncrustify.yaml"

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is the directory to search from. Defaults to the current
	// working directory when empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// When set, discovery is skipped and a missing file is an error.
	ExplicitPath string
}

// LoadResult carries the resolved configuration and where it came from.
type LoadResult struct {
	Config *config.Config

	// LoadedFrom is the file that was read, empty when defaults were used.
	LoadedFrom string
}

// Load resolves the configuration.
func Load(opts LoadOptions) (*LoadResult, error) {
	if opts.ExplicitPath != "" {
		cfg, err := readFile(opts.ExplicitPath)
		if err != nil {
			return nil, err
		}
		return &LoadResult{Config: cfg, LoadedFrom: opts.ExplicitPath}, nil
	}

	dir := opts.WorkingDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		dir = wd
	}

	if path, ok := discover(dir); ok {
		cfg, err := readFile(path)
		if err != nil {
			return nil, err
		}
		return &LoadResult{Config: cfg, LoadedFrom: path}, nil
	}

	return &LoadResult{Config: config.Default()}, nil
}

// discover walks from dir to the filesystem root looking for the config
// file.
func discover(dir string) (string, bool) {
	for {
		candidate := filepath.Join(dir, configFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func readFile(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := config.Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if !cfg.Color.IsValid() {
		return nil, fmt.Errorf("config %s: invalid color mode %q", path, cfg.Color)
	}
	return cfg, nil
}
