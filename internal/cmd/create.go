package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"statuspage/pkg/statuspage"
)

var (
	createOpts        repoOptions
	createSystems     string
	createPrivate     bool
	createConfigPath  string
	createBranchMain  string
	createBranchPages string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create and configure a new status page repository",
	Long: `Create a new repository, replace its stock labels with severity and system
labels, set up the pages branch with the template files and config.json, and
render the first page.

Example:
  statuspage create --name status --systems "Website,API" --token $GITHUB_TOKEN`,
	RunE: runCreate,
}

func init() {
	createOpts.addFlags(createCmd)
	createCmd.Flags().StringVar(&createSystems, "systems", "", "Comma-separated system names, e.g. \"Website,API\"")
	createCmd.Flags().BoolVar(&createPrivate, "private", false, "Create the repository as private")
	createCmd.Flags().StringVar(&createConfigPath, "config", "", "Local config file replacing the built-in defaults")
	createCmd.Flags().StringVar(&createBranchMain, "branch-main", "main", "Main branch name")
	createCmd.Flags().StringVar(&createBranchPages, "branch-pages", "gh-pages", "GitHub Pages branch name")
	_ = createCmd.MarkFlagRequired("systems")
}

func runCreate(_ *cobra.Command, _ []string) error {
	systems := splitSystems(createSystems)
	if len(systems) == 0 {
		return fmt.Errorf("--systems must name at least one system")
	}

	svc, err := createOpts.newService()
	if err != nil {
		return err
	}

	return svc.Provision(statuspage.ProvisionOptions{
		Systems:     systems,
		Private:     createPrivate,
		ConfigPath:  createConfigPath,
		BranchMain:  createBranchMain,
		BranchPages: createBranchPages,
	})
}

func splitSystems(list string) []string {
	var systems []string
	for _, part := range strings.Split(list, ",") {
		if name := strings.TrimSpace(part); name != "" {
			systems = append(systems, name)
		}
	}
	return systems
}
