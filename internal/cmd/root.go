package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"statuspage/internal/logging"
)

// Version is the released tool version, shown by --version.
const Version = "1.0"

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "statuspage",
	Version: Version,
	Short:   "Generate a GitHub Pages status page from a repository's issues and labels",
	Long: `Statuspage turns a GitHub repository into a hosted status page. Labels encode
monitored systems and incident severities, open issues with a severity label
are active incidents, and recently closed issues form the incident history.
The generated page is committed to a GitHub Pages branch.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Initialize(verbose)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(upgradeCmd)
	rootCmd.AddCommand(addSystemCmd)
	rootCmd.AddCommand(removeSystemCmd)
}
