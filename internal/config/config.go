// Package config handles loading and validating issuedeck configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the config file omits a value.
const (
	DefaultPageSize        = 50
	DefaultNotificationTTL = 4 * time.Second
)

// DefaultColumns is the column set used when none is configured.
var DefaultColumns = []string{"title", "status", "priority", "assignee", "updated"}

// Config holds the application configuration.
type Config struct {
	Server        ServerConfig       `yaml:"server"`
	List          ListConfig         `yaml:"list"`
	Notifications NotificationConfig `yaml:"notifications"`
}

// ServerConfig points at the tracker backend.
type ServerConfig struct {
	BaseURL string `yaml:"base_url"`
}

// ListConfig controls the issue list view.
type ListConfig struct {
	PageSize int      `yaml:"page_size,omitempty"`
	Columns  []string `yaml:"columns,omitempty"`
}

// NotificationConfig controls transient status messages.
type NotificationConfig struct {
	TTL string `yaml:"ttl,omitempty"` // duration string, e.g. "4s"
}

// Duration returns the parsed notification lifetime.
func (n NotificationConfig) Duration() time.Duration {
	if n.TTL == "" {
		return DefaultNotificationTTL
	}
	d, err := time.ParseDuration(n.TTL)
	if err != nil || d <= 0 {
		return DefaultNotificationTTL
	}
	return d
}

// DefaultConfigDir returns the .issuedeck directory next to the executable.
func DefaultConfigDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("finding executable path: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolving executable symlinks: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), ".issuedeck"), nil
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads and parses the config file, applying defaults for anything
// left unset.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Default returns a configuration with all defaults applied, used when no
// config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://127.0.0.1:8000"
	}
	if c.List.PageSize == 0 {
		c.List.PageSize = DefaultPageSize
	}
	if len(c.List.Columns) == 0 {
		c.List.Columns = append([]string(nil), DefaultColumns...)
	}
}

// knownColumns is the set of column names the list view can render.
var knownColumns = map[string]bool{
	"id": true, "title": true, "status": true, "priority": true,
	"assignee": true, "created": true, "updated": true,
}

// Validate checks that all config fields are usable.
func (c *Config) Validate() error {
	if c.Server.BaseURL == "" {
		return fmt.Errorf("server.base_url is required")
	}
	if c.List.PageSize < 1 || c.List.PageSize > 100 {
		return fmt.Errorf("list.page_size must be between 1 and 100, got %d", c.List.PageSize)
	}
	for _, col := range c.List.Columns {
		if !knownColumns[col] {
			return fmt.Errorf("unknown column %q in list.columns", col)
		}
	}
	if c.Notifications.TTL != "" {
		if _, err := time.ParseDuration(c.Notifications.TTL); err != nil {
			return fmt.Errorf("notifications.ttl: %w", err)
		}
	}
	return nil
}
