package config

import (
	"flag"
)

// parseFlags defines and parses CLI flags.
// If sources is non-nil, it tracks the source of each explicitly set flag.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("tasklist", flag.ContinueOnError)
	}

	// Paths
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Data directory for the store and log")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Log file (default <data-dir>/tasklist.log)")

	// Storage and display
	fs.StringVar(&cfg.Store, "store", cfg.Store, "Store backend (file, sqlite, memory)")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "Theme used until one is saved (light, dark)")
	fs.StringVar(&cfg.DateFormat, "date-format", cfg.DateFormat, "Go time layout for due dates")

	// Logging
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Show caller location in logs")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if sources == nil {
		return nil
	}

	// Map flag names to source field names
	flagToSource := map[string]string{
		"data-dir":       "data_dir",
		"log-file":       "log_file",
		"store":          "store",
		"theme":          "theme",
		"date-format":    "date_format",
		"log-level":      "log_level",
		"log-format":     "log_format",
		"log-timestamps": "log_timestamps",
		"log-caller":     "log_caller",
	}
	fs.Visit(func(f *flag.Flag) {
		if fieldName, ok := flagToSource[f.Name]; ok {
			sources[fieldName] = SourceFlag
		}
	})

	return nil
}
