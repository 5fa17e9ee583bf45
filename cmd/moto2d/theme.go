package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/openmoto/moto2d/internal/theme"
)

var flagListFiles bool

var themeCmd = &cobra.Command{
	Use:   "theme <name>",
	Short: "Show details of one theme",
	Long: `Load a theme from the catalog and print its sprite inventory,
audio references and required files.

Examples:
  moto2d theme Classic
  moto2d theme Classic --files`,
	Args: cobra.ExactArgs(1),
	Run:  runTheme,
}

func init() {
	themeCmd.Flags().BoolVar(&flagListFiles, "files", false, "List every required file with its checksum")
}

// loadCatalogTheme resolves a theme name through the catalog, rescanning
// the themes directory when the name is not yet registered.
func loadCatalogTheme(name string) (*theme.Theme, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	file, ok, err := store.ThemeFile(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		if _, err := theme.ScanDir(store, cfg.Data.ThemesDir); err != nil {
			return nil, err
		}
		file, ok, err = store.ThemeFile(name)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("theme %q is not in the catalog (looked in %s)", name, cfg.Data.ThemesDir)
		}
	}

	th := theme.New()
	th.DisableAnimations = cfg.Theme.DisableAnimations
	if err := th.Load(file); err != nil {
		return nil, err
	}
	return th, nil
}

func runTheme(_ *cobra.Command, args []string) {
	th, err := loadCatalogTheme(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Theme: %s\n\n", th.Name())

	counts := make(map[theme.SpriteType]int)
	for _, s := range th.Sprites() {
		counts[s.Type()]++
	}
	types := make([]theme.SpriteType, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	fmt.Println("Sprites:")
	for _, t := range types {
		fmt.Printf("  %-18s %d\n", t.String(), counts[t])
	}

	fmt.Printf("\nMusics: %d   Sounds: %d   Required files: %d\n",
		len(th.Musics()), len(th.Sounds()), len(th.RequiredFiles()))

	if flagListFiles {
		fmt.Println("\nRequired files:")
		for _, f := range th.RequiredFiles() {
			sum := f.Sum
			if sum == "" {
				sum = "-"
			}
			fmt.Printf("  %-48s %s\n", f.Path, sum)
		}
	}
}
