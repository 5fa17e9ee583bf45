package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage rider profiles",
	Long: `List, create and delete rider profiles. Each profile carries
its own key bindings.

Examples:
  moto2d profiles
  moto2d profiles create alice
  moto2d profiles delete alice`,
	Run: runProfilesList,
}

var profilesCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new profile",
	Args:  cobra.ExactArgs(1),
	Run:   runProfilesCreate,
}

var profilesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a profile and its bindings",
	Args:  cobra.ExactArgs(1),
	Run:   runProfilesDelete,
}

func init() {
	profilesCmd.AddCommand(profilesCreateCmd)
	profilesCmd.AddCommand(profilesDeleteCmd)
}

func runProfilesList(_ *cobra.Command, _ []string) {
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

	profiles, err := store.Profiles()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing profiles: %v\n", err)
		os.Exit(1)
	}

	if len(profiles) == 0 {
		fmt.Println("No profiles yet.")
		fmt.Println("Run 'moto2d profiles create <name>' to create one.")
		return
	}

	fmt.Println("Profiles:")
	for _, p := range profiles {
		fmt.Printf("  %s\n", p.Name)
	}
}

func runProfilesCreate(_ *cobra.Command, args []string) {
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

	if err := store.CreateProfile(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating profile: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Created profile %s\n", args[0])
}

func runProfilesDelete(_ *cobra.Command, args []string) {
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

	if err := store.DeleteProfile(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting profile: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted profile %s\n", args[0])
}
