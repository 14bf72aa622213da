// Package datadir provides constants and utilities for the tasklist data directory.
package datadir

import (
	"os"
	"path/filepath"
)

const (
	// Dir is the name of the per-user data directory.
	Dir = ".tasklist"

	// ConfigFile is the config file name (inside the data directory).
	ConfigFile = "tasklist.toml"

	// LogFile is the log file name (inside the data directory).
	LogFile = "tasklist.log"
)

// Default returns ~/.tasklist, or .tasklist when the home directory is unknown.
func Default() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return Dir
	}
	return filepath.Join(home, Dir)
}

// ConfigPath returns the full path to the config file within dataDir.
func ConfigPath(dataDir string) string {
	return joinPath(dataDir, ConfigFile)
}

// LogPath returns the full path to the log file within dataDir.
func LogPath(dataDir string) string {
	return joinPath(dataDir, LogFile)
}

func joinPath(dataDir, file string) string {
	if dataDir == "" {
		dataDir = Default()
	}
	return filepath.Join(dataDir, file)
}
