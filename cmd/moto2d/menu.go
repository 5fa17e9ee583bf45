package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/openmoto/moto2d/internal/platform/tui"
	"github.com/openmoto/moto2d/internal/theme"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive terminal UI",
	Long: `Start the interactive menu: edit key bindings, browse and verify
themes, and switch profiles.

Controls:
  Up/Down/j/k  - Navigate
  Enter        - Select
  Esc          - Back
  Q            - Quit (from the menu)

Examples:
  moto2d menu
  moto2d menu --profile alice
  moto2d menu --db ./moto2d.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
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

	if err := ensureProfile(store, flagProfile); err != nil {
		fmt.Fprintf(os.Stderr, "Error preparing profile: %v\n", err)
		os.Exit(1)
	}

	// Populate the catalog before the browser opens. A missing themes
	// directory is not fatal: the browser just shows an empty list.
	if _, err := theme.ScanDir(store, cfg.Data.ThemesDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not scan themes: %v\n", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Theme.WatchDir {
		if err := theme.Watch(ctx, store, cfg.Data.ThemesDir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not watch themes: %v\n", err)
		}
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	if _, err := tui.RunSession(store, cfg.Data.Dir, flagProfile, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
