package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in the config directories.
const ConfigFile = "skyclimb.yaml"

// Load loads the course configuration.
// Search order: customPath -> ~/.skyclimb/configs/skyclimb.yaml -> ./configs/skyclimb.yaml -> embedded default.
// Keys missing from a file keep their default values.
func Load(customPath string) (ClimbConfig, error) {
	cfg := DefaultClimbConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if parsed, ok := tryLoad(userCfgPath); ok {
			return parsed, nil
		}
	}

	// Try local configs directory
	if parsed, ok := tryLoad(filepath.Join("configs", ConfigFile)); ok {
		return parsed, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultClimbYAML, &cfg); err != nil {
		return DefaultClimbConfig(), nil
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or malformed files are skipped.
func tryLoad(path string) (ClimbConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ClimbConfig{}, false
	}
	cfg := DefaultClimbConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ClimbConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyclimb", "configs", filename)
}

// Save writes cfg as YAML to path, creating parent directories.
func Save(path string, cfg ClimbConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: failed to encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	return nil
}
