// Package config provides YAML-based application configuration loading
// for moto2d: data locations, the active theme and joystick tuning.
package config

// Config contains all application-level settings. Per-profile settings
// like key bindings live in the database, not here.
type Config struct {
	Data     DataConfig     `yaml:"data"`
	Theme    ThemeConfig    `yaml:"theme"`
	Joystick JoystickConfig `yaml:"joystick"`
}

// DataConfig defines where game data lives.
type DataConfig struct {
	// Dir is the root of the asset tree (Textures/, Musics/, Sounds/).
	Dir string `yaml:"dir"`
	// ThemesDir holds the theme descriptor files.
	ThemesDir string `yaml:"themes_dir"`
	// DBPath is the profile and catalog database file.
	DBPath string `yaml:"db_path"`
}

// ThemeConfig selects and tunes the theme pipeline.
type ThemeConfig struct {
	// Default names the theme used when a profile picks none.
	Default string `yaml:"default"`
	// DisableAnimations loads animated textures as static sprites.
	DisableAnimations bool `yaml:"disable_animations"`
	// WatchDir rescans the themes directory on file changes.
	WatchDir bool `yaml:"watch_dir"`
}

// JoystickConfig tunes analog axis handling.
type JoystickConfig struct {
	// Deadzone is the raw magnitude under which an axis reads zero.
	Deadzone int `yaml:"deadzone"`
	// Max is the raw magnitude mapped to full deflection.
	Max int `yaml:"max"`
}
