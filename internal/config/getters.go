package config

import (
	"github.com/nibzard/tasklist/internal/datadir"
	"github.com/nibzard/tasklist/internal/logging"
	"github.com/nibzard/tasklist/internal/store"
)

// StoreKind returns the configured store backend.
// Unknown values fall back to the file store.
func (c *Config) StoreKind() store.Kind {
	kind, err := store.ParseKind(c.Store)
	if err != nil {
		return store.KindFile
	}
	return kind
}

// StorePath returns where the configured backend keeps its data.
func (c *Config) StorePath() string {
	return store.Path(c.StoreKind(), c.dataDir())
}

// OpenStore opens the configured store backend.
func (c *Config) OpenStore() (store.Store, error) {
	return store.Open(c.StoreKind(), c.dataDir())
}

// LogPath returns the log file path.
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return datadir.LogPath(c.dataDir())
}

// LogOptions returns logger options from the logging settings.
func (c *Config) LogOptions() logging.Options {
	opts := logging.DefaultOptions()
	if c.LogLevel != "" {
		opts.Level = c.LogLevel
	}
	if c.LogFormat != "" {
		opts.Format = c.LogFormat
	}
	opts.Timestamps = c.LogTimestamps
	opts.Caller = c.LogCaller
	return opts
}

// DarkByDefault reports whether the dark theme is used before one is saved.
func (c *Config) DarkByDefault() bool {
	theme, _ := normalizeTheme(c.Theme)
	return theme == ThemeDark
}

func (c *Config) dataDir() string {
	if c.DataDir == "" {
		return datadir.Default()
	}
	return expandPath(c.DataDir)
}
