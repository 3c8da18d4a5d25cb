package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"statuspage/internal/logging"
	"statuspage/pkg/config"
	"statuspage/pkg/github"
	"statuspage/pkg/statuspage"
)

// repoOptions are the flags shared by every command that talks to a
// repository.
type repoOptions struct {
	Name      string
	Token     string
	Org       string
	APIBase   string
	SSLVerify bool
}

func (o *repoOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.Name, "name", "", "Repository name")
	cmd.Flags().StringVar(&o.Token, "token", "", "GitHub API token (falls back to GITHUB_TOKEN or the tool config)")
	cmd.Flags().StringVar(&o.Org, "org", "", "GitHub organization owning the repository (defaults to the authenticated user)")
	cmd.Flags().StringVar(&o.APIBase, "github-api", github.DefaultAPIBase, "API server to use")
	cmd.Flags().BoolVar(&o.SSLVerify, "ssl-verify", true, "Verify TLS certificates on GitHub requests")
	_ = cmd.MarkFlagRequired("name")
}

// newService resolves the token, builds the API client, and determines the
// repository owner.
func (o *repoOptions) newService() (*statuspage.Service, error) {
	toolCfg, err := config.LoadToolConfig()
	if err != nil {
		return nil, err
	}

	token, err := github.ResolveToken(o.Token, toolCfg.GitHub.Token)
	if err != nil {
		token, err = promptToken()
		if err != nil {
			return nil, err
		}
	}

	org := o.Org
	if org == "" {
		org = toolCfg.GitHub.Organization
	}

	apiBase := o.APIBase
	if apiBase == github.DefaultAPIBase && toolCfg.GitHub.APIBase != "" {
		apiBase = toolCfg.GitHub.APIBase
	}

	client, err := github.NewClient(token, github.Options{
		BaseURL:       apiBase,
		SkipTLSVerify: !o.SSLVerify,
	})
	if err != nil {
		return nil, err
	}

	owner := org
	if owner == "" {
		owner, err = client.AuthenticatedLogin()
		if err != nil {
			return nil, err
		}
	}

	logging.Debug("resolved repository", "owner", owner, "name", o.Name, "api", apiBase)

	return statuspage.New(client, owner, org, o.Name), nil
}

// promptToken asks for the token interactively, without echoing it.
func promptToken() (string, error) {
	fmt.Print("GitHub API token: ")
	data, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("no GitHub token provided")
	}
	return token, nil
}

// confirm asks a yes/no question on stdout, defaulting to no.
func confirm(question string) bool {
	fmt.Printf("%s (y/N): ", question)
	var response string
	_, _ = fmt.Scanln(&response) // Ignore error for user input
	return response == "y" || response == "Y"
}
