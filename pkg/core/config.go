// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultPrefix is where runtime files are conventionally placed
	DefaultPrefix = "/usr"

	// DefaultSource is the prebuilt layer read from the working directory
	DefaultSource = "./liblatencyflex2_layer.so"
)

// InstallConfig is the resolved configuration for one install run.
// It is built once per process and not modified afterwards.
type InstallConfig struct {
	Prefix  string `yaml:"prefix"`
	DestDir string `yaml:"destdir"`
	Source  string `yaml:"source"`
	SHA256  string `yaml:"sha256"`
	Debug   bool   `yaml:"debug"`
	DryRun  bool   `yaml:"dry_run"`
}

// DefaultConfig returns the configuration used when nothing is specified
func DefaultConfig() *InstallConfig {
	return &InstallConfig{
		Prefix:  DefaultPrefix,
		DestDir: "",
		Source:  DefaultSource,
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/lfx2-install/config.yaml,
// falling back to ~/.config. It returns "" if neither can be determined.
func DefaultConfigPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "lfx2-install", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "lfx2-install", "config.yaml")
}

// LoadConfig loads configuration from file. Fields absent from the file keep
// their defaults and a missing file yields DefaultConfig.
func LoadConfig(path string) (*InstallConfig, error) {
	if path == "" {
		path = DefaultConfigPath()
		if path == "" {
			return DefaultConfig(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *InstallConfig, path string) error {
	if path == "" {
		path = DefaultConfigPath()
		if path == "" {
			return fmt.Errorf("no config path")
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
