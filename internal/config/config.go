// Package config loads client configuration from a YAML file with
// environment overrides. Settings resolve in order: defaults, config file,
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all portal client configuration.
type Config struct {
	API    APIConfig    `yaml:"api"`
	Portal PortalConfig `yaml:"portal"`
	UI     UIConfig     `yaml:"ui"`
}

// APIConfig points the client at the remote API.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

// PortalConfig tunes the listing pipeline.
type PortalConfig struct {
	PollInterval string `yaml:"poll_interval"`
}

// UIConfig holds presentation preferences.
type UIConfig struct {
	Theme string `yaml:"theme"` // "light", "dark" or "" for auto-detect
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:8000",
			Timeout: "30s",
		},
		Portal: PortalConfig{
			PollInterval: "30s",
		},
	}
}

// Dir returns the directory holding config and the token file. A
// project-local .asa directory wins when present; otherwise ~/.asa.
func Dir() (string, error) {
	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, ".asa")
		if stat, err := os.Stat(local); err == nil && stat.IsDir() {
			return local, nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".asa"), nil
}

// File returns the full path of the config file.
func File() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads configuration from path, falling back to defaults when the
// file does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes configuration to path, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if url := os.Getenv("ASA_API_URL"); url != "" {
		c.API.BaseURL = url
	}
	if interval := os.Getenv("ASA_POLL_INTERVAL"); interval != "" {
		c.Portal.PollInterval = interval
	}
	if theme := os.Getenv("ASA_THEME"); theme != "" {
		c.UI.Theme = theme
	}
}

// GetTimeout returns the API timeout as a duration.
func (c *Config) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// GetPollInterval returns the listing poll interval as a duration.
func (c *Config) GetPollInterval() time.Duration {
	d, err := time.ParseDuration(c.Portal.PollInterval)
	if err != nil {
		return 30 * time.Second
	}
	return d
}
