// Package config loads the terminal client's configuration and install
// identity. Precedence follows the usual client stack: command-line flag,
// then SHLOKA_* environment variable, then ~/.shloka/config.yaml, then
// default. The server address has no default on purpose — its absence is
// the CONFIGURATION error every screen surfaces without retrying.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// DefaultDataDir is where the client keeps its cache, bookmarks, config
// file, and install id.
const DefaultDataDir = "~/.shloka"

// Config holds the client configuration.
type Config struct {
	// APIURL is the content server base address. Empty means not
	// configured; calls fail with a CONFIGURATION error.
	APIURL string
	// DataDir is the expanded client state directory.
	DataDir string
	// Timeout bounds each network fetch.
	Timeout time.Duration
	// NoColor disables ANSI styling in output.
	NoColor bool
}

// NewViper builds the viper instance the CLI binds its flags into:
// SHLOKA_* env vars and the optional config file under dataDir are
// already wired.
func NewViper(dataDir string) (*viper.Viper, error) {
	expanded, err := homedir.Expand(dataDir)
	if err != nil {
		return nil, fmt.Errorf("expand data dir %q: %w", dataDir, err)
	}

	v := viper.New()
	v.SetEnvPrefix("SHLOKA")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("data-dir", expanded)
	v.SetDefault("timeout", "10s")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(expanded)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return v, nil
}

// FromViper resolves the final configuration from a bound viper.
func FromViper(v *viper.Viper) (*Config, error) {
	dataDir, err := homedir.Expand(v.GetString("data-dir"))
	if err != nil {
		return nil, fmt.Errorf("expand data dir: %w", err)
	}

	timeout := v.GetDuration("timeout")
	if timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %v", timeout)
	}

	return &Config{
		APIURL:  strings.TrimRight(v.GetString("api"), "/"),
		DataDir: dataDir,
		Timeout: timeout,
		NoColor: v.GetBool("no-color"),
	}, nil
}

// CachePath returns the local cache directory.
func (c *Config) CachePath() string {
	return filepath.Join(c.DataDir, "cache")
}

// BookmarksPath returns the bookmark store directory.
func (c *Config) BookmarksPath() string {
	return filepath.Join(c.DataDir, "bookmarks")
}

// installIDFile is the filename of the persisted install identity.
const installIDFile = "install_id"

// InstallID returns this installation's identity, minting and persisting
// a new one on first run. The id goes out with every API request so the
// server can count distinct installs. A data dir that cannot be written
// degrades to a per-process id rather than failing the command.
func InstallID(dataDir string) string {
	path := filepath.Join(dataDir, installIDFile)

	if data, err := os.ReadFile(path); err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			return id
		}
	}

	id := uuid.NewString()
	if err := os.MkdirAll(dataDir, 0o755); err == nil {
		_ = os.WriteFile(path, []byte(id+"\n"), 0o600)
	}
	return id
}
