package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"sooth/internal/progress"
)

// Config holds the handful of settings sooth reads at startup.
type Config struct {
	APIBaseURL  string `yaml:"api_base_url"`
	DailyGoal   int    `yaml:"daily_goal"`
	CatalogPath string `yaml:"catalog_path,omitempty"`
	AuthToken   string `yaml:"auth_token,omitempty"`
	UserID      string `yaml:"user_id,omitempty"`
}

// Dir returns the sooth data directory (~/.sooth).
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".sooth"), nil
}

// Path returns the config file location inside the data directory.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Default returns the configuration used when no file exists yet.
func Default() *Config {
	return &Config{
		APIBaseURL: "http://localhost:8000",
		DailyGoal:  progress.DefaultDailyGoal,
	}
}

// Load reads the config file, falling back to defaults when it is absent.
// Missing fields are filled with their defaults so a partial file works.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads a config file from an explicit path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.DailyGoal <= 0 {
		cfg.DailyGoal = progress.DefaultDailyGoal
	}
	return cfg, nil
}

// Save writes the config back to its default location.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to an explicit path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CatalogFile returns the configured catalog path, or the default location
// inside the data directory.
func (c *Config) CatalogFile() (string, error) {
	if c.CatalogPath != "" {
		return c.CatalogPath, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "catalog.yaml"), nil
}
