package platform

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrConfigNotFound is returned by FindConfig when no configuration file exists
// in the start directory or any of its parents.
var ErrConfigNotFound = errors.New("config not found")

// FindConfig recursively looks upwards for a configuration file.
// If found, returns the absolute path to the file.
func FindConfig(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasFile(dir, ConfigFileName) {
			return filepath.Join(dir, ConfigFileName), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", ErrConfigNotFound
}

func hasFile(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && !info.IsDir()
}
