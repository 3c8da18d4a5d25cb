package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ToolConfig represents the per-user tool configuration, holding defaults for
// flags that rarely change between invocations.
type ToolConfig struct {
	GitHub GitHubConfig `yaml:"github"`
}

// GitHubConfig represents GitHub-specific tool configuration
type GitHubConfig struct {
	Token        string `yaml:"token,omitempty"`
	Organization string `yaml:"organization,omitempty"`
	APIBase      string `yaml:"api_base,omitempty"`
}

// GetToolConfigPath returns the path of the tool configuration file
func GetToolConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".statuspage", "config.yaml"), nil
}

// LoadToolConfig loads the tool configuration from the default location.
// A missing file yields an empty config, not an error.
func LoadToolConfig() (*ToolConfig, error) {
	path, err := GetToolConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadToolConfigFromPath(path)
}

// LoadToolConfigFromPath loads the tool configuration from a specific path
func LoadToolConfigFromPath(path string) (*ToolConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &ToolConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tool config: %w", err)
	}

	var cfg ToolConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tool config: %w", err)
	}

	return &cfg, nil
}

// SaveToPath saves the tool configuration to a specific path
func (c *ToolConfig) SaveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal tool config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write tool config: %w", err)
	}

	return nil
}
