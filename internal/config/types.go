package config

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource

	userFile    string
	projectFile string
}

// Default values.
const (
	DefaultDataDir    = "~/.tasklist"
	DefaultStore      = "file"
	DefaultTheme      = ThemeLight
	DefaultDateFormat = "2006-01-02"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

// Theme names.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Config holds the full configuration for tasklist.
type Config struct {
	// Paths
	DataDir string `toml:"data_dir"`
	LogFile string `toml:"log_file"` // Defaults to <data_dir>/tasklist.log

	// Storage backend: file, sqlite or memory
	Store string `toml:"store"`

	// Theme used until one is saved with the theme toggle
	Theme string `toml:"theme"`

	// Go time layout for displaying due dates
	DateFormat string `toml:"date_format"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Project root (computed)
	ProjectRoot string `toml:"-"`
}
