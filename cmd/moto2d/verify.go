package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openmoto/moto2d/internal/theme"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <name>",
	Short: "Verify a theme's asset files",
	Long: `Load a theme and check every required file against the data
directory: the file must exist and its md5 checksum must match the one
recorded in the theme descriptor.

Exits non-zero when any file fails.

Examples:
  moto2d verify Classic
  moto2d verify Classic --data ./gamedata`,
	Args: cobra.ExactArgs(1),
	Run:  runVerify,
}

func runVerify(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	th, err := loadCatalogTheme(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	mismatches, err := theme.Verify(th, cfg.Data.Dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error verifying: %v\n", err)
		os.Exit(1)
	}

	total := len(th.RequiredFiles())
	if len(mismatches) == 0 {
		fmt.Printf("%s: all %d files verified\n", th.Name(), total)
		return
	}

	fmt.Printf("%s: %d of %d files failed verification\n\n", th.Name(), len(mismatches), total)
	for _, m := range mismatches {
		fmt.Printf("  %-48s %s\n", m.Path, m.Reason)
	}
	os.Exit(1)
}
