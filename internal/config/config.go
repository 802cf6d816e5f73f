// Package config loads server configuration from command-line flags,
// environment variables, and an optional .env file.
package config

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
)

// Config holds the server configuration.
type Config struct {
	App       AppConfig
	Logger    LoggerConfig
	Store     StoreConfig
	Server    ServerConfig
	RateLimit RateLimitConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level  string
	Format string // pretty or json; empty picks by environment
}

// StoreConfig holds content store configuration.
type StoreConfig struct {
	// DataDir is the root for server state; the badger database lives
	// under DataDir/db.
	DataDir string
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	// CORSOrigins is a comma-separated allowlist; "*" admits any origin.
	CORSOrigins string
}

// RateLimitConfig holds per-client request budget configuration.
type RateLimitConfig struct {
	RPS   int
	Burst int
}

// LoadConfig loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func LoadConfig() (*Config, error) {
	env := flag.String("env", "", "Environment (development, staging, production)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	logFormat := flag.String("log-format", "", "Log format (pretty, json)")
	dataDir := flag.String("data-dir", "", "Directory for server state and the content database")
	host := flag.String("host", "", "Listen address (default: 0.0.0.0)")
	port := flag.String("port", "", "Listen port (default: 8080)")
	corsOrigins := flag.String("cors-origins", "", "Comma-separated CORS origin allowlist (default: *)")
	rateRPS := flag.String("rate-rps", "", "Sustained requests per second per client (default: 25)")
	rateBurst := flag.String("rate-burst", "", "Burst budget per client (default: 50)")
	readTimeout := flag.String("read-timeout", "", "HTTP read timeout (default: 15s)")
	writeTimeout := flag.String("write-timeout", "", "HTTP write timeout (default: 15s)")
	idleTimeout := flag.String("idle-timeout", "", "HTTP idle timeout (default: 60s)")
	envFile := flag.String("env-file", ".env", "Path to .env file")

	flag.Parse()

	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(*envFile)

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*env, "SHLOKA_ENV", "development"),
		},
		Logger: LoggerConfig{
			Level:  getConfigValue(*logLevel, "SHLOKA_LOG_LEVEL", "info"),
			Format: getConfigValue(*logFormat, "SHLOKA_LOG_FORMAT", ""),
		},
		Store: StoreConfig{
			DataDir: getConfigValue(*dataDir, "SHLOKA_DATA_DIR", ""),
		},
		Server: ServerConfig{
			Host:        getConfigValue(*host, "SHLOKA_HOST", "0.0.0.0"),
			Port:        getConfigValue(*port, "SHLOKA_PORT", "8080"),
			CORSOrigins: getConfigValue(*corsOrigins, "SHLOKA_CORS_ORIGINS", "*"),
		},
		RateLimit: RateLimitConfig{
			RPS:   getIntConfigValue(*rateRPS, "SHLOKA_RATE_RPS", 25),
			Burst: getIntConfigValue(*rateBurst, "SHLOKA_RATE_BURST", 50),
		},
	}

	readTimeoutStr := getConfigValue(*readTimeout, "SHLOKA_READ_TIMEOUT", "15s")
	readTimeoutDuration, err := time.ParseDuration(readTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid read timeout %q: %w", readTimeoutStr, err)
	}
	cfg.Server.ReadTimeout = readTimeoutDuration

	writeTimeoutStr := getConfigValue(*writeTimeout, "SHLOKA_WRITE_TIMEOUT", "15s")
	writeTimeoutDuration, err := time.ParseDuration(writeTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid write timeout %q: %w", writeTimeoutStr, err)
	}
	cfg.Server.WriteTimeout = writeTimeoutDuration

	idleTimeoutStr := getConfigValue(*idleTimeout, "SHLOKA_IDLE_TIMEOUT", "60s")
	idleTimeoutDuration, err := time.ParseDuration(idleTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid idle timeout %q: %w", idleTimeoutStr, err)
	}
	cfg.Server.IdleTimeout = idleTimeoutDuration

	if err := cfg.expandDataDir(); err != nil {
		return nil, fmt.Errorf("invalid data dir: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "" && c.Logger.Format != "pretty" && c.Logger.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be pretty or json)", c.Logger.Format)
	}

	if c.Store.DataDir == "" {
		return errors.New("data dir cannot be empty after expansion")
	}

	portNum, err := strconv.Atoi(c.Server.Port)
	if err != nil || portNum < 1 || portNum > 65535 {
		return fmt.Errorf("invalid port: %s", c.Server.Port)
	}

	if c.RateLimit.RPS < 1 {
		return fmt.Errorf("rate RPS must be positive, got %d", c.RateLimit.RPS)
	}
	if c.RateLimit.Burst < c.RateLimit.RPS {
		return fmt.Errorf("rate burst (%d) must be at least the RPS (%d)", c.RateLimit.Burst, c.RateLimit.RPS)
	}

	return nil
}

// LogFormat returns the configured log format, falling back to json in
// production and pretty everywhere else.
func (c *Config) LogFormat() string {
	if c.Logger.Format != "" {
		return c.Logger.Format
	}
	if c.App.Environment == "production" {
		return "json"
	}
	return "pretty"
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

// DatabaseDir returns the badger directory under the data dir.
func (c *Config) DatabaseDir() string {
	return filepath.Join(c.Store.DataDir, "db")
}

// expandDataDir expands ~ and makes the path absolute, defaulting to
// ~/.shloka-server.
func (c *Config) expandDataDir() error {
	path := c.Store.DataDir
	if path == "" {
		home, err := homedir.Dir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		c.Store.DataDir = filepath.Join(home, ".shloka-server")
		return nil
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("failed to expand path: %w", err)
	}
	if !filepath.IsAbs(expanded) {
		expanded, err = filepath.Abs(expanded)
		if err != nil {
			return fmt.Errorf("failed to get absolute path: %w", err)
		}
	}
	c.Store.DataDir = filepath.Clean(expanded)
	return nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// getIntConfigValue returns an int from flag, env var, or default.
func getIntConfigValue(flagValue, envKey string, defaultValue int) int {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	result, err := strconv.Atoi(strValue)
	if err != nil {
		return defaultValue
	}
	return result
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		value = strings.Trim(value, `"'`)

		// Real environment variables win over .env entries.
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
