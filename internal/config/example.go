package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# tasklist configuration file
# Values can be overridden by environment variables (TASKLIST_*) or CLI flags

# Data directory holding the store and the log (supports ~ expansion)
data_dir = "~/.tasklist"

# Store backend: file (store.json), sqlite (store.db) or memory
store = "file"

# Theme used until one is saved with the theme toggle: light or dark
theme = "light"

# Go time layout for displaying due dates
date_format = "2006-01-02"

# Log file (default: <data_dir>/tasklist.log)
# log_file = "~/.tasklist/tasklist.log"

# Logging
log_level = "info"
log_format = "text"
log_timestamps = true
log_caller = false
`
}
