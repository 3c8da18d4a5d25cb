package cmd

import (
	"github.com/spf13/cobra"
)

var (
	upgradeOpts        repoOptions
	upgradeBranchPages string
)

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Synchronize the bundled template files to the pages branch",
	Long: `Compare each bundled template file against its copy on the pages branch and
create or update it as needed. Extra files on the branch are left untouched.`,
	RunE: runUpgrade,
}

func init() {
	upgradeOpts.addFlags(upgradeCmd)
	upgradeCmd.Flags().StringVar(&upgradeBranchPages, "branch-pages", "gh-pages", "GitHub Pages branch name")
}

func runUpgrade(_ *cobra.Command, _ []string) error {
	svc, err := upgradeOpts.newService()
	if err != nil {
		return err
	}
	return svc.Upgrade(upgradeBranchPages)
}
