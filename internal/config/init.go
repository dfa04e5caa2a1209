package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// SampleConfig is the default config.yaml written by Init.
const SampleConfig = `# issuedeck configuration
# Edit the values below for your tracker backend.

server:
  base_url: http://127.0.0.1:8000

list:
  page_size: 50
  columns: [title, status, priority, assignee, updated]

notifications:
  ttl: 4s
`

// Init creates the .issuedeck directory with a sample config file.
// It returns the directory path created. Existing files are left alone.
func Init() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating config dir: %w", err)
	}

	configPath := filepath.Join(dir, "config.yaml")
	if err := writeIfNotExists(configPath, SampleConfig); err != nil {
		return dir, err
	}

	return dir, nil
}

// DirExists returns true if the .issuedeck config directory exists.
func DirExists() bool {
	dir, err := DefaultConfigDir()
	if err != nil {
		return false
	}
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}

func writeIfNotExists(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // already exists — don't overwrite
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
