// Package config resolves the devtrail base directory and loads and
// saves the JSON config file that lives inside it.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/marcus/devtrail/internal/models"
)

const configFile = "config.json"

// EnvDir overrides the base directory when set.
const EnvDir = "DEVTRAIL_DIR"

// Defaults applied when config.json is absent or a field is unset.
const (
	DefaultRemote    = "origin"
	DefaultBranch    = "main"
	DefaultFrequency = int64(86400)
)

// BaseDir returns the directory holding log.json, reminder_settings.json
// and config.json: $DEVTRAIL_DIR if set, otherwise ~/.devtrail.
func BaseDir() (string, error) {
	if dir := os.Getenv(EnvDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".devtrail"), nil
}

// Load reads the config from disk. A missing file yields a zero config.
func Load(baseDir string) (*models.Config, error) {
	data, err := os.ReadFile(filepath.Join(baseDir, configFile))
	if err != nil {
		if os.IsNotExist(err) {
			return &models.Config{}, nil
		}
		return nil, err
	}

	var cfg models.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", configFile, err)
	}

	return &cfg, nil
}

// Save writes the config to disk using atomic write (temp file + rename)
func Save(baseDir string, cfg *models.Config) error {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(baseDir, "config-*.json.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, filepath.Join(baseDir, configFile))
}

// Remote returns the configured push remote, or the default.
func Remote(cfg *models.Config) string {
	if cfg != nil && cfg.Remote != "" {
		return cfg.Remote
	}
	return DefaultRemote
}

// Branch returns the configured push branch, or the default.
func Branch(cfg *models.Config) string {
	if cfg != nil && cfg.Branch != "" {
		return cfg.Branch
	}
	return DefaultBranch
}

// Frequency returns the configured reminder frequency in seconds, or the
// default of 24 hours.
func Frequency(cfg *models.Config) int64 {
	if cfg != nil && cfg.Frequency > 0 {
		return cfg.Frequency
	}
	return DefaultFrequency
}
