// ABOUTME: Workseq configuration management with backend selection.
// ABOUTME: Handles settings, preferences, and the storage backend factory function.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/workseq/internal/kv"
)

// Backends lists the accepted Backend values.
var Backends = []string{"badger", "sqlite", "charm", "memory", "none"}

// Config stores workseq configuration.
type Config struct {
	// Backend selects the storage backend: "badger" (default), "sqlite", "charm",
	// "memory" or "none". "none" runs without persistence.
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage.
	// Badger keeps its files in DataDir/badger, SQLite uses DataDir/workseq.db.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/workseq.
	DataDir string `json:"data_dir,omitempty"`

	// LogLevel is one of debug, info, warn, error. Defaults to warn.
	LogLevel string `json:"log_level,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "badger".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "badger"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetLogLevel returns the configured log level, defaulting to "warn".
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return "warn"
	}
	return c.LogLevel
}

// Set assigns a config value by its JSON key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "backend":
		if !isKnownBackend(value) {
			return fmt.Errorf("unknown backend: %q (use %s)", value, strings.Join(Backends, ", "))
		}
		c.Backend = value
	case "data_dir":
		c.DataDir = value
	case "log_level":
		c.LogLevel = value
	default:
		return fmt.Errorf("unknown config key: %q", key)
	}
	return nil
}

func isKnownBackend(name string) bool {
	for _, b := range Backends {
		if b == name {
			return true
		}
	}
	return false
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "workseq")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenBackend creates a kv.Backend based on the configured backend.
func (c *Config) OpenBackend() (kv.Backend, error) {
	return OpenBackend(c.GetBackend(), c.GetDataDir())
}

// OpenBackend creates the named backend rooted at dataDir.
func OpenBackend(backend, dataDir string) (kv.Backend, error) {
	switch backend {
	case "badger":
		return kv.OpenBadger(filepath.Join(dataDir, "badger"))
	case "sqlite":
		return kv.OpenSQLite(filepath.Join(dataDir, "workseq.db"))
	case "charm":
		return kv.OpenCharm()
	case "memory":
		return kv.NewMemory(), nil
	case "none":
		return kv.Unavailable{}, nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "workseq", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
