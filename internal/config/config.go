// Package config handles the XDG data directory, file paths, and the
// API credential.
package config

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the application data directory name.
	AppName = "godspeed-cli"

	// ListsFile is the list-reference cache filename.
	ListsFile = "lists.toml"

	// LabelsFile is the label-reference cache filename.
	LabelsFile = "labels.toml"

	// QueueFile is the retry queue filename.
	QueueFile = "cache"

	// EnvAPIKey is the environment variable holding the bearer credential.
	EnvAPIKey = "GODSPEED_API"
)

// Config holds the paths and credential for one invocation. It is
// constructed once at startup and passed explicitly; nothing else
// reads the environment.
type Config struct {
	// Dir is the data directory path.
	Dir string

	// APIKey is the bearer credential for the remote API. Empty means
	// the credential is missing, which is fatal before any processing.
	APIKey string
}

// New creates a Config with the default or specified data directory.
// If dataDir is empty, uses XDG_DATA_HOME/godspeed-cli or
// $HOME/.local/share/godspeed-cli.
func New(dataDir string) *Config {
	dir := dataDir
	if dir == "" {
		dir = DefaultDataDir()
	}
	return &Config{Dir: dir}
}

// FromEnv builds the startup configuration: default data directory
// plus the credential from GODSPEED_API.
func FromEnv() *Config {
	cfg := New("")
	cfg.APIKey = os.Getenv(EnvAPIKey)
	return cfg
}

// DefaultDataDir returns the default data directory. Uses
// XDG_DATA_HOME if set, otherwise $HOME/.local/share; with neither
// set, a relative .local/share is used.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".local", "share", AppName)
	}
	return filepath.Join(".local", "share", AppName)
}

// ListsPath returns the path to the list-reference cache.
func (c *Config) ListsPath() string {
	return filepath.Join(c.Dir, ListsFile)
}

// LabelsPath returns the path to the label-reference cache.
func (c *Config) LabelsPath() string {
	return filepath.Join(c.Dir, LabelsFile)
}

// QueuePath returns the path to the retry queue file.
func (c *Config) QueuePath() string {
	return filepath.Join(c.Dir, QueueFile)
}

// EnsureDir creates the data directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasAPIKey reports whether a credential was supplied.
func (c *Config) HasAPIKey() bool {
	return c.APIKey != ""
}
