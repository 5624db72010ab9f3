package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type fileConfig struct {
	Javadoc Options `toml:"javadoc"`
}

// Load reads options from a doccheck.toml file. Keys missing from the file
// keep their Default values.
func Load(path string) (Options, error) {
	cfg := fileConfig{Javadoc: Default()}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Options{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Options{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Javadoc.Validate(); err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg.Javadoc, nil
}

// Find walks up from startDir looking for doccheck.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
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

// Discover loads the nearest doccheck.toml above startDir, or returns
// Default when there is none.
func Discover(startDir string) (Options, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Options{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}
