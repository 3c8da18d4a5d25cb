package statuspage

import (
	"fmt"
	"sort"
	"strings"

	"github.com/schollz/progressbar/v3"

	"statuspage/internal/logging"
	"statuspage/pkg/config"
	"statuspage/pkg/github"
	"statuspage/pkg/templates"
)

// ProvisionOptions controls the create flow.
type ProvisionOptions struct {
	Systems     []string // system names, one label each
	Private     bool
	ConfigPath  string // optional local config replacing the defaults
	BranchMain  string
	BranchPages string
}

// Provision creates and fully configures a new status page repository:
// labels, the main branch placeholder, the pages branch with its template
// files and config.json, and an initial page render.
//
// The flow is not transactional. A failure partway through leaves the
// repository partially configured; re-running create on a fresh name is the
// recovery path.
func (s *Service) Provision(opts ProvisionOptions) error {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		var err error
		cfg, err = config.LoadFile(opts.ConfigPath)
		if err != nil {
			return err
		}
	}

	description := fmt.Sprintf("Visit this site at https://%s.github.io/%s/", s.Owner, s.Repo)

	repo, err := s.Client.CreateRepository(s.Org, s.Repo, description, opts.Private)
	if err != nil {
		return err
	}
	logging.Debug("created repository", "full_name", repo.FullName)

	// GitHub seeds new repositories with stock labels; only system and
	// severity labels may remain.
	stock, err := s.Client.ListLabels(s.Owner, s.Repo)
	if err != nil {
		return err
	}
	bar := progressbar.Default(int64(len(stock)), "Deleting initial labels")
	for _, label := range stock {
		if err := s.Client.DeleteLabel(s.Owner, s.Repo, label.Name); err != nil {
			return err
		}
		_ = bar.Add(1)
	}

	severities := make([]string, 0, len(cfg.StatusLabels))
	for name := range cfg.StatusLabels {
		severities = append(severities, name)
	}
	sort.Strings(severities)

	bar = progressbar.Default(int64(len(severities)), "Creating status labels")
	for _, name := range severities {
		if err := s.Client.CreateLabel(s.Owner, s.Repo, github.Label{Name: name, Color: cfg.StatusLabels[name]}); err != nil {
			return err
		}
		_ = bar.Add(1)
	}

	bar = progressbar.Default(int64(len(opts.Systems)), "Creating system labels")
	for _, system := range opts.Systems {
		if err := s.Client.CreateLabel(s.Owner, s.Repo, github.Label{Name: strings.TrimSpace(system), Color: cfg.SystemColor}); err != nil {
			return err
		}
		_ = bar.Add(1)
	}

	// The pages branch can only be forked once main has a commit.
	if err := s.Client.CreateFile(s.Owner, s.Repo, "README.md", "", "initial", []byte(description)); err != nil {
		return err
	}

	mainSHA, err := s.Client.GetBranchSHA(s.Owner, s.Repo, opts.BranchMain)
	if err != nil {
		return err
	}
	if err := s.Client.CreateBranch(s.Owner, s.Repo, opts.BranchPages, mainSHA); err != nil {
		return err
	}

	bar = progressbar.Default(int64(len(cfg.Templates)), "Adding template files")
	for _, name := range cfg.Templates {
		content, err := templates.Content(name)
		if err != nil {
			return err
		}
		if name == "translations.ini" {
			if err := templates.ValidateTranslations(content); err != nil {
				return err
			}
		}
		if err := s.Client.CreateFile(s.Owner, s.Repo, name, opts.BranchPages, "initial", content); err != nil {
			return err
		}
		_ = bar.Add(1)
	}

	cfgData, err := cfg.MarshalPretty()
	if err != nil {
		return err
	}
	if err := s.Client.CreateFile(s.Owner, s.Repo, config.ConfigFileName, opts.BranchPages, "initial", cfgData); err != nil {
		return err
	}

	if err := s.Client.SetDefaultBranch(s.Owner, s.Repo, opts.BranchPages); err != nil {
		return err
	}

	if err := s.Update(opts.BranchPages); err != nil {
		return err
	}

	fmt.Printf("\nCreate new issues at https://github.com/%s/%s/issues\n", s.Owner, s.Repo)
	fmt.Printf("Visit your new status page at https://%s.github.io/%s/\n", s.Owner, s.Repo)
	fmt.Println("\n✓ Your status page is now set up and ready!")
	fmt.Println("Please note: you need to run the update command whenever you update or create an issue.")
	fmt.Println("\nIn order to update this status page, run:")
	if s.Org != "" {
		fmt.Printf("  statuspage update --name=%s --org=%s\n", s.Repo, s.Org)
	} else {
		fmt.Printf("  statuspage update --name=%s\n", s.Repo)
	}

	return nil
}
