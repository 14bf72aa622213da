package config

import (
	"os"
	"path/filepath"

	"github.com/nibzard/tasklist/internal/datadir"
)

// projectConfigCandidates lists project config files, preferred first.
func projectConfigCandidates() []string {
	return []string{datadir.ConfigFile, "." + datadir.ConfigFile}
}

// userConfigCandidates lists user config files, preferred first: the data
// directory, then the platform config directory (XDG, APPDATA or
// Application Support, as os.UserConfigDir resolves it).
func userConfigCandidates() []string {
	var paths []string
	paths = append(paths, datadir.ConfigPath(datadir.Default()))
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		paths = append(paths, filepath.Join(dir, "tasklist", datadir.ConfigFile))
	}
	return paths
}

func firstExisting(paths []string) string {
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

func setDefaults(cfg *Config) {
	cfg.DataDir = DefaultDataDir
	cfg.Store = DefaultStore
	cfg.Theme = DefaultTheme
	cfg.DateFormat = DefaultDateFormat
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}

// GetConfigFile returns the config file that was loaded, preferring the
// project file over the user file. It is empty when neither exists.
func (cws *ConfigWithSources) GetConfigFile() string {
	if cws.projectFile != "" {
		return cws.projectFile
	}
	return cws.userFile
}
