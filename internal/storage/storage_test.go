package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

type profile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func backends(t *testing.T) map[string]Backend {
	t.Helper()
	dir := t.TempDir()

	file, err := NewFileBackend(filepath.Join(dir, "state.json"))
	if err != nil {
		t.Fatalf("NewFileBackend() error = %v", err)
	}
	db, err := OpenSQLite(filepath.Join(dir, "state.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return map[string]Backend{
		BackendMemory: NewMemoryBackend(),
		BackendFile:   file,
		BackendSQLite: db,
	}
}

func TestStorageRoundTrip(t *testing.T) {
	for name, backend := range backends(t) {
		t.Run(name, func(t *testing.T) {
			store := New(backend, zerolog.Nop())

			if err := store.SetJSON(KeyUser, profile{ID: "u1", Name: "Wanjiru"}); err != nil {
				t.Fatalf("SetJSON() error = %v", err)
			}
			if err := store.SetJSON(KeyDarkMode, true); err != nil {
				t.Fatalf("SetJSON() error = %v", err)
			}
			// Overwrite must replace, not duplicate.
			if err := store.SetJSON(KeyUser, profile{ID: "u1", Name: "Wanjiru Kamau"}); err != nil {
				t.Fatalf("SetJSON() error = %v", err)
			}

			var got profile
			if !store.GetJSON(KeyUser, &got) {
				t.Fatalf("GetJSON(user) = false")
			}
			if got.Name != "Wanjiru Kamau" {
				t.Fatalf("GetJSON(user) = %+v", got)
			}

			var dark bool
			if !store.GetJSON(KeyDarkMode, &dark) || !dark {
				t.Fatalf("GetJSON(darkMode) = %v", dark)
			}

			if err := store.Remove(KeyUser); err != nil {
				t.Fatalf("Remove() error = %v", err)
			}
			if store.GetJSON(KeyUser, &got) {
				t.Fatalf("GetJSON(user) after Remove = true")
			}
			if err := store.Remove("never-set"); err != nil {
				t.Fatalf("Remove(missing) error = %v", err)
			}
		})
	}
}

func TestStorageIgnoresCorruptValues(t *testing.T) {
	for name, backend := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := backend.Set(KeyUser, `{"id": "u1",`); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			if err := backend.Set(KeyToken, ""); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			store := New(backend, zerolog.Nop())

			var got profile
			if store.GetJSON(KeyUser, &got) {
				t.Fatalf("GetJSON(corrupt) = true")
			}
			var token string
			if store.GetJSON(KeyToken, &token) {
				t.Fatalf("GetJSON(empty) = true")
			}

			var parseErr *ParseError
			if err := store.Decode(KeyUser, &got); !errors.As(err, &parseErr) || parseErr.Key != KeyUser {
				t.Fatalf("Decode() error = %v, want ParseError for user", err)
			}
		})
	}
}

func TestFileBackendSurvivesReopenAndCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	first, err := NewFileBackend(path)
	if err != nil {
		t.Fatalf("NewFileBackend() error = %v", err)
	}
	if err := first.Set(KeyPreferredLanguage, `"sw"`); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	second, _ := NewFileBackend(path)
	value, ok, err := second.Get(KeyPreferredLanguage)
	if err != nil || !ok || value != `"sw"` {
		t.Fatalf("Get() = %q, %v, %v", value, ok, err)
	}

	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, ok, err := second.Get(KeyPreferredLanguage); err != nil || ok {
		t.Fatalf("Get() on corrupt file = %v, %v, want absent", ok, err)
	}
	if err := second.Set(KeyDarkMode, "true"); err != nil {
		t.Fatalf("Set() on corrupt file error = %v", err)
	}
	if value, ok, _ := second.Get(KeyDarkMode); !ok || value != "true" {
		t.Fatalf("Get() after rewrite = %q, %v", value, ok)
	}
}

func TestSQLiteBackendPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	if err := db.Set(KeyToken, `"abc"`); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() reopen error = %v", err)
	}
	defer reopened.Close()
	value, ok, err := reopened.Get(KeyToken)
	if err != nil || !ok || value != `"abc"` {
		t.Fatalf("Get() = %q, %v, %v", value, ok, err)
	}
}

func TestOpenBackend(t *testing.T) {
	dir := t.TempDir()
	if _, err := OpenBackend("file", filepath.Join(dir, "a.json")); err != nil {
		t.Fatalf("OpenBackend(file) error = %v", err)
	}
	b, err := OpenBackend("SQLite", filepath.Join(dir, "a.db"))
	if err != nil {
		t.Fatalf("OpenBackend(sqlite) error = %v", err)
	}
	if err := New(b, zerolog.Nop()).Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := OpenBackend("memory", ""); err != nil {
		t.Fatalf("OpenBackend(memory) error = %v", err)
	}
	if _, err := OpenBackend("redis", ""); err == nil {
		t.Fatalf("OpenBackend(redis) error = nil")
	}
	if _, err := OpenBackend("file", " "); err == nil {
		t.Fatalf("OpenBackend(file, blank path) error = nil")
	}
}
