package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the configuration file name looked up in each directory.
const ConfigFile = "pong.yaml"

// Load loads the pong configuration and validates it.
// Search order: customPath -> ~/.pong/pong.yaml -> ./configs/pong.yaml -> embedded default.
// Values missing from a file keep their defaults.
func Load(customPath string) (Config, error) {
	cfg, _, err := LoadWithSource(customPath)
	return cfg, err
}

// LoadWithSource is Load that also reports where the configuration came from.
func LoadWithSource(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, validated(cfg, customPath)
	}

	// Try user config directory
	if path := userConfigPath(ConfigFile); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, path, validated(cfg, path)
			}
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", ConfigFile)
	if data, err := os.ReadFile(local); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, local, validated(cfg, local)
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultPongYAML)
	if err != nil {
		return DefaultConfig(), "builtin", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", validated(cfg, "embedded")
}

// parse decodes YAML over the default configuration.
func parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validated(cfg Config, source string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config %s: %w", source, err)
	}
	return nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong", filename)
}
