package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openmoto/moto2d/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Scan and list the theme catalog",
	Long: `Rescan the themes directory and list every registered theme.

Examples:
  moto2d themes
  moto2d themes --data ./gamedata`,
	Run: runThemes,
}

func runThemes(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	n, err := theme.ScanDir(store, cfg.Data.ThemesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning %s: %v\n", cfg.Data.ThemesDir, err)
		os.Exit(1)
	}

	if n == 0 {
		fmt.Printf("No themes found in %s\n", cfg.Data.ThemesDir)
		return
	}

	entries, err := store.Themes()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing themes: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Themes in %s:\n\n", cfg.Data.ThemesDir)
	for _, e := range entries {
		fmt.Printf("  %-24s %s\n", e.Name, e.File)
	}
	fmt.Println()
	fmt.Println("Run 'moto2d theme <name>' for details.")
}
