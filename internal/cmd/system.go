package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	addSystemOpts        repoOptions
	addSystemName        string
	addSystemPrompt      bool
	addSystemBranchPages string

	removeSystemOpts        repoOptions
	removeSystemName        string
	removeSystemPrompt      bool
	removeSystemBranchPages string
)

var addSystemCmd = &cobra.Command{
	Use:   "add-system",
	Short: "Add a new monitored system",
	Long: `Create a new system label colored with the configured system color. With
--prompt (the default), offers to regenerate the page afterwards.`,
	RunE: runAddSystem,
}

var removeSystemCmd = &cobra.Command{
	Use:   "remove-system",
	Short: "Remove a monitored system",
	Long: `Delete a system's label. With --prompt (the default), offers to regenerate
the page afterwards.`,
	RunE: runRemoveSystem,
}

func init() {
	addSystemOpts.addFlags(addSystemCmd)
	addSystemCmd.Flags().StringVar(&addSystemName, "system", "", "System to add")
	addSystemCmd.Flags().BoolVar(&addSystemPrompt, "prompt", true, "Offer to run update afterwards")
	addSystemCmd.Flags().StringVar(&addSystemBranchPages, "branch-pages", "gh-pages", "GitHub Pages branch name")
	_ = addSystemCmd.MarkFlagRequired("system")

	removeSystemOpts.addFlags(removeSystemCmd)
	removeSystemCmd.Flags().StringVar(&removeSystemName, "system", "", "System to remove")
	removeSystemCmd.Flags().BoolVar(&removeSystemPrompt, "prompt", true, "Offer to run update afterwards")
	removeSystemCmd.Flags().StringVar(&removeSystemBranchPages, "branch-pages", "gh-pages", "GitHub Pages branch name")
	_ = removeSystemCmd.MarkFlagRequired("system")
}

func runAddSystem(_ *cobra.Command, _ []string) error {
	if addSystemName == "" {
		return fmt.Errorf("--system must not be empty")
	}

	svc, err := addSystemOpts.newService()
	if err != nil {
		return err
	}

	added, err := svc.AddSystem(addSystemName, addSystemBranchPages)
	if err != nil {
		return err
	}

	if added && addSystemPrompt && confirm("Run update to re-generate the page?") {
		return svc.Update(addSystemBranchPages)
	}
	return nil
}

func runRemoveSystem(_ *cobra.Command, _ []string) error {
	if removeSystemName == "" {
		return fmt.Errorf("--system must not be empty")
	}

	svc, err := removeSystemOpts.newService()
	if err != nil {
		return err
	}

	removed, err := svc.RemoveSystem(removeSystemName)
	if err != nil {
		return err
	}

	if removed && removeSystemPrompt && confirm("Run update to re-generate the page?") {
		return svc.Update(removeSystemBranchPages)
	}
	return nil
}
