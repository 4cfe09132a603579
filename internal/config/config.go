package config

import (
	"os"
	"path/filepath"
)

const (
	DefaultConfigDir   = ".packguard"
	DefaultCatalogFile = "catalog.yaml"
	DefaultLogFile     = "audit.jsonl"
)

// Config locates the user's catalog extension file and audit log.
type Config struct {
	ConfigDir   string
	CatalogPath string
	LogPath     string
}

// Load resolves paths, creating the config directory on first use.
// Explicit paths win over the defaults under ~/.packguard.
func Load(catalogPath, logPath string) (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configDir := filepath.Join(homeDir, DefaultConfigDir)
	if err := ensureDir(configDir); err != nil {
		return nil, err
	}

	cfg := &Config{ConfigDir: configDir}

	if catalogPath != "" {
		cfg.CatalogPath = catalogPath
	} else {
		cfg.CatalogPath = filepath.Join(configDir, DefaultCatalogFile)
	}

	if logPath != "" {
		cfg.LogPath = logPath
	} else {
		cfg.LogPath = filepath.Join(configDir, DefaultLogFile)
	}

	return cfg, nil
}

func ensureDir(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, 0700)
	}
	return nil
}
