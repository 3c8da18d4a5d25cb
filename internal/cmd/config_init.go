package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"statuspage/pkg/config"
)

var configInitCmd = &cobra.Command{
	Use:   "config-init",
	Short: "Write the default page configuration to config.json",
	Long: `Write the built-in page configuration as pretty-printed JSON to config.json
in the current directory. Edit it and pass it to create via --config, or
commit it to the pages branch to customize a live page.`,
	RunE: runConfigInit,
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	target := filepath.Join(wd, config.ConfigFileName)
	if _, err := os.Stat(target); err == nil {
		fmt.Printf("⚠️  %s already exists\n", config.ConfigFileName)
		if !confirm("Do you want to overwrite it?") {
			fmt.Println("Config initialization cancelled.")
			return nil
		}
	}

	path, err := config.WriteDefault(wd)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Successfully created new config at %s\n", path)
	return nil
}
