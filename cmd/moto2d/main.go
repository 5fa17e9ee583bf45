// moto2d manages rider profiles, key bindings and visual themes for a
// 2D motocross game, in the terminal.
//
// Usage:
//
//	moto2d menu              - Interactive menu (controls, themes, profiles)
//	moto2d controls          - Show the key bindings of a profile
//	moto2d themes            - Scan and list the theme catalog
//	moto2d theme <name>      - Show details of one theme
//	moto2d verify <name>     - Verify a theme's asset files
//	moto2d profiles          - Manage rider profiles
//	moto2d serve             - Start SSH server for remote sessions
//
// Global flags:
//
//	--config <path>  - Config file path (default: search order)
//	--db <path>      - Profile database path
//	--data <path>    - Game data directory
//	--profile <name> - Profile to act on
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openmoto/moto2d/internal/config"
	"github.com/openmoto/moto2d/internal/storage"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagDataDir string
	flagProfile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "moto2d",
	Short: "moto2d - profiles, controls and themes for terminal motocross",
	Long: `moto2d manages the player-facing configuration of a 2D motocross
game: rider profiles, per-player key bindings and visual themes.

Available commands:
  menu      - Interactive terminal UI
  controls  - Show key bindings of a profile
  themes    - Scan and list the theme catalog
  theme     - Show details of one theme
  verify    - Verify a theme's asset files
  profiles  - Manage rider profiles
  serve     - Start SSH server for remote sessions

Examples:
  moto2d menu
  moto2d controls --profile alice
  moto2d themes
  moto2d verify Classic
  moto2d serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to profile database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data", "", "Game data directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "default", "Profile to act on")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(controlsCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the application config and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Data.DBPath = flagDBPath
	}
	if flagDataDir != "" {
		cfg.Data.Dir = flagDataDir
		cfg.Data.ThemesDir = flagDataDir + "/Themes"
	}
	return cfg, nil
}

// openStore opens the profile database from the resolved config.
func openStore(cfg config.Config) (*storage.Store, error) {
	return storage.Open(cfg.Data.DBPath)
}

// ensureProfile creates the profile when it does not exist yet.
func ensureProfile(store *storage.Store, name string) error {
	exists, err := store.ProfileExists(name)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return store.CreateProfile(name)
}
