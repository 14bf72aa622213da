package datadir

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestPaths(t *testing.T) {
	base := filepath.Join("tmp", "data")
	if got, want := ConfigPath(base), filepath.Join(base, ConfigFile); got != want {
		t.Errorf("ConfigPath: got %q, want %q", got, want)
	}
	if got, want := LogPath(base), filepath.Join(base, LogFile); got != want {
		t.Errorf("LogPath: got %q, want %q", got, want)
	}
}

func TestEmptyDirUsesDefault(t *testing.T) {
	got := LogPath("")
	if !strings.HasSuffix(got, filepath.Join(Dir, LogFile)) {
		t.Errorf("LogPath(\"\"): got %q, want suffix %q", got, filepath.Join(Dir, LogFile))
	}
}
