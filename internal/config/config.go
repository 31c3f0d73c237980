package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

const (
	DirName        = "kazi"
	ConfigFileName = "config.json"
	StateFileName  = "state.json"
	StateDBName    = "state.db"
)

const DefaultAPIBaseURL = "https://api.kazimashinani.co.ke/api"

// Config contains client settings. Zero values are replaced by defaults in Normalize.
type Config struct {
	APIBaseURL      string `json:"api_base_url"`
	TimeoutSeconds  int    `json:"timeout_seconds"`
	StorageBackend  string `json:"storage_backend"`
	StoragePath     string `json:"storage_path"`
	DefaultLanguage string `json:"default_language"`
	PageSize        int    `json:"page_size"`
	Proxy           string `json:"proxy"`
}

func DefaultConfig() Config {
	return Config{
		APIBaseURL:      envString("KAZI_API_URL", DefaultAPIBaseURL),
		TimeoutSeconds:  envInt("KAZI_TIMEOUT", 15),
		StorageBackend:  envString("KAZI_STORAGE", "file"),
		StoragePath:     envString("KAZI_STORAGE_PATH", ""),
		DefaultLanguage: envString("KAZI_LANGUAGE", "en"),
		PageSize:        envInt("KAZI_PAGE_SIZE", 10),
		Proxy:           envString("KAZI_PROXY", ""),
	}
}

// Normalize fills zero or out-of-range fields from DefaultConfig.
func (c Config) Normalize() Config {
	defaults := DefaultConfig()
	c.APIBaseURL = strings.TrimSpace(c.APIBaseURL)
	if c.APIBaseURL == "" {
		c.APIBaseURL = defaults.APIBaseURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = defaults.TimeoutSeconds
	}
	c.StorageBackend = strings.ToLower(strings.TrimSpace(c.StorageBackend))
	if c.StorageBackend == "" {
		c.StorageBackend = defaults.StorageBackend
	}
	if strings.TrimSpace(c.DefaultLanguage) == "" {
		c.DefaultLanguage = defaults.DefaultLanguage
	}
	if c.PageSize <= 0 {
		c.PageSize = defaults.PageSize
	}
	c.Proxy = strings.TrimSpace(c.Proxy)
	return c
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ResolveStoragePath returns the configured storage path, or a file under configDir
// named after the backend.
func (c Config) ResolveStoragePath(configDir string) string {
	if path := strings.TrimSpace(c.StoragePath); path != "" {
		return path
	}
	if c.StorageBackend == "sqlite" {
		return filepath.Join(configDir, StateDBName)
	}
	return filepath.Join(configDir, StateFileName)
}

func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, DirName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

func Load() (Config, error) {
	cfg := DefaultConfig()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	if err := json5.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg.Normalize(), nil
}

// Init writes a default config.json if it doesn't already exist.
func Init() ([]string, error) {
	var created []string

	dir, err := ConfigDir()
	if err != nil {
		return created, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return created, err
	}

	configPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := writeConfig(configPath, DefaultConfig()); err != nil {
			return created, err
		}
		created = append(created, configPath)
	}

	return created, nil
}

func writeConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func envString(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func envInt(key string, fallback int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
