package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/moto2d.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used when even the
// embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Data: DataConfig{
			Dir:       "~/.moto2d/data",
			ThemesDir: "~/.moto2d/data/Themes",
			DBPath:    "~/.moto2d/moto2d.db",
		},
		Theme: ThemeConfig{
			Default:  "Classic",
			WatchDir: true,
		},
		Joystick: JoystickConfig{
			Deadzone: 1024,
			Max:      32767,
		},
	}
}

// Load loads the application configuration.
// Search order: customPath -> ~/.moto2d/config.yaml -> ./configs/moto2d.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg.expand(), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg.expand(), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/moto2d.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg.expand(), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default().expand(), nil // Fallback to hardcoded if embed fails
	}
	return cfg.expand(), nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".moto2d", filename)
}

// expand resolves ~ in every path setting.
func (c Config) expand() Config {
	c.Data.Dir = expandHome(c.Data.Dir)
	c.Data.ThemesDir = expandHome(c.Data.ThemesDir)
	c.Data.DBPath = expandHome(c.Data.DBPath)
	return c
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}
