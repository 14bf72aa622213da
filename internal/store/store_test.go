package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// backends returns a fresh store of every kind rooted in a temp dir.
func backends(t *testing.T) map[Kind]Store {
	t.Helper()
	out := make(map[Kind]Store)
	for _, kind := range []Kind{KindFile, KindSQLite, KindMemory} {
		s, err := Open(kind, t.TempDir())
		if err != nil {
			t.Fatalf("Open(%s) error = %v", kind, err)
		}
		t.Cleanup(func() { s.Close() })
		out[kind] = s
	}
	return out
}

func TestStoreGetSet(t *testing.T) {
	for kind, s := range backends(t) {
		t.Run(string(kind), func(t *testing.T) {
			if _, ok, err := s.Get(KeyTasks); err != nil || ok {
				t.Fatalf("Get on empty store: ok=%v err=%v", ok, err)
			}

			if err := s.Set(KeyTasks, `[]`); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if err := s.Set(KeyDarkMode, "true"); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if err := s.Set(KeyTasks, `[{"text":"A"}]`); err != nil {
				t.Fatalf("Set overwrite failed: %v", err)
			}

			v, ok, err := s.Get(KeyTasks)
			if err != nil || !ok {
				t.Fatalf("Get(tasks): ok=%v err=%v", ok, err)
			}
			if v != `[{"text":"A"}]` {
				t.Errorf("Get(tasks): got %q", v)
			}
			v, ok, _ = s.Get(KeyDarkMode)
			if !ok || v != "true" {
				t.Errorf("Get(darkMode): got %q ok=%v", v, ok)
			}
		})
	}
}

func TestPersistentBackendsReopen(t *testing.T) {
	for _, kind := range []Kind{KindFile, KindSQLite} {
		t.Run(string(kind), func(t *testing.T) {
			dir := t.TempDir()
			s, err := Open(kind, dir)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			if err := s.Set(KeyDarkMode, "false"); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if err := s.Close(); err != nil {
				t.Fatalf("Close failed: %v", err)
			}

			reopened, err := Open(kind, dir)
			if err != nil {
				t.Fatalf("reopen failed: %v", err)
			}
			defer reopened.Close()
			v, ok, err := reopened.Get(KeyDarkMode)
			if err != nil || !ok || v != "false" {
				t.Errorf("Get after reopen: got %q ok=%v err=%v", v, ok, err)
			}
		})
	}
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := s.Set(KeyTasks, "[]"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != FileName {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("dir contents: got %v, want [%s]", names, FileName)
	}
}

func TestFileStoreCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", FileName)
	s, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	if err := s.Set(KeyDarkMode, "true"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("store file not created: %v", err)
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := OpenFile(path); err == nil {
		t.Fatal("expected error for corrupt store file")
	}
}

func TestFileStoreEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	s, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	if _, ok, _ := s.Get(KeyTasks); ok {
		t.Error("empty file should have no keys")
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"", KindFile, false},
		{"FILE", KindFile, false},
		{"sqlite", KindSQLite, false},
		{"sqlite3", KindSQLite, false},
		{"memory", KindMemory, false},
		{"redis", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnknownKind) {
				t.Errorf("error should wrap ErrUnknownKind: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q): got %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPath(t *testing.T) {
	if got := Path(KindFile, "/data"); !strings.HasSuffix(got, FileName) {
		t.Errorf("Path(file): got %q", got)
	}
	if got := Path(KindSQLite, "/data"); !strings.HasSuffix(got, SQLiteName) {
		t.Errorf("Path(sqlite): got %q", got)
	}
	if got := Path(KindMemory, "/data"); got != "" {
		t.Errorf("Path(memory): got %q, want empty", got)
	}
}

func TestOpenUnknownKind(t *testing.T) {
	if _, err := Open(Kind("redis"), t.TempDir()); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Open(redis): got %v, want ErrUnknownKind", err)
	}
}
