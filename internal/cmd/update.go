package cmd

import (
	"github.com/spf13/cobra"
)

var (
	updateOpts        repoOptions
	updateBranchPages string
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Regenerate the status page from current issues and labels",
	Long: `Fetch the repository's labels, issues, and comments, derive system statuses
and the incident history, render the page template, and commit index.html to
the pages branch. Nothing is committed when the page content is unchanged.`,
	RunE: runUpdate,
}

func init() {
	updateOpts.addFlags(updateCmd)
	updateCmd.Flags().StringVar(&updateBranchPages, "branch-pages", "gh-pages", "GitHub Pages branch name")
}

func runUpdate(_ *cobra.Command, _ []string) error {
	svc, err := updateOpts.newService()
	if err != nil {
		return err
	}
	return svc.Update(updateBranchPages)
}
