package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openmoto/moto2d/internal/input"
)

var (
	flagTechnical bool
	flagAction    string
)

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "Show the key bindings of a profile",
	Long: `Display the key bindings stored for a profile: the five bike
controls of every player slot, followed by the global actions.

Examples:
  moto2d controls
  moto2d controls --profile alice
  moto2d controls --technical
  moto2d controls --action "Drive 2"`,
	Run: runControls,
}

func init() {
	controlsCmd.Flags().BoolVar(&flagTechnical, "technical", false, "Print serialized key forms instead of labels")
	controlsCmd.Flags().StringVar(&flagAction, "action", "", `Look up a single binding by label, e.g. "Drive" or "Brake 2"`)
}

func runControls(_ *cobra.Command, _ []string) {
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

	handler := input.NewHandler()
	if err := handler.Load(store, flagProfile); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading bindings: %v\n", err)
		os.Exit(1)
	}

	if flagAction != "" {
		fmt.Println(handler.KeyByActionLabel(flagAction, flagTechnical))
		return
	}

	fmt.Printf("Key bindings - profile %s\n\n", flagProfile)

	for p := 0; p < input.NumPlayers; p++ {
		fmt.Printf("Player %d\n", p+1)
		for a := input.PlayerAction(0); a < input.NumPlayerActions; a++ {
			key := handler.PlayerKey(a, p)
			fmt.Printf("  %-20s %s\n", handler.PlayerKeyHelp(a, p), keyForm(key))
		}
		fmt.Println()
	}

	fmt.Println("Global")
	for g := input.GlobalAction(0); g < input.NumGlobalActions; g++ {
		key := handler.GlobalKey(g)
		note := ""
		if !handler.GlobalKeyCustomizable(g) {
			note = "  (fixed)"
		}
		fmt.Printf("  %-32s %s%s\n", handler.GlobalKeyHelp(g), keyForm(key), note)
	}
}

func keyForm(key input.Key) string {
	if flagTechnical {
		return key.String()
	}
	return key.Label()
}
