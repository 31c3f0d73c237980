package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Keys persisted by the client.
const (
	KeyToken             = "token"
	KeyUser              = "user"
	KeyUserRole          = "userRole"
	KeyPreferredLanguage = "preferredLanguage"
	KeyDarkMode          = "darkMode"
	KeyFavoriteJobs      = "favoriteJobs"
	KeySeenJobs          = "seenJobs"
)

// Backend is a string key/value store that survives restarts.
type Backend interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// ParseError is a stored entry that is not valid JSON for the requested type.
type ParseError struct {
	Key string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse stored %q: %v", e.Key, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Storage serializes values to JSON at the backend boundary. Read failures never reach
// the caller: corrupt or unreadable entries are logged and reported as absent.
type Storage struct {
	backend Backend
	logger  zerolog.Logger
}

func New(backend Backend, logger zerolog.Logger) *Storage {
	return &Storage{backend: backend, logger: logger}
}

// Decode unmarshals the stored value for key into v.
func (s *Storage) Decode(key string, v any) error {
	raw, ok, err := s.backend.Get(key)
	if err != nil {
		return err
	}
	if !ok {
		return errNotFound
	}
	if strings.TrimSpace(raw) == "" {
		return &ParseError{Key: key, Err: errors.New("empty value")}
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return &ParseError{Key: key, Err: err}
	}
	return nil
}

// GetJSON loads key into v and reports whether a well-formed value was found.
func (s *Storage) GetJSON(key string, v any) bool {
	err := s.Decode(key, v)
	switch {
	case err == nil:
		return true
	case errors.Is(err, errNotFound):
		return false
	default:
		s.logger.Debug().Err(err).Str("key", key).Msg("ignoring stored value")
		return false
	}
}

func (s *Storage) SetJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if err := s.backend.Set(key, string(data)); err != nil {
		return fmt.Errorf("store %q: %w", key, err)
	}
	return nil
}

func (s *Storage) Remove(key string) error {
	if err := s.backend.Delete(key); err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

// Close releases the backend when it holds resources.
func (s *Storage) Close() error {
	if closer, ok := s.backend.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

var errNotFound = errors.New("not found")

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// OpenBackend opens the named backend at path.
func OpenBackend(kind string, path string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case BackendFile, "":
		return NewFileBackend(path)
	case BackendSQLite:
		return OpenSQLite(path)
	case BackendMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", kind)
	}
}
