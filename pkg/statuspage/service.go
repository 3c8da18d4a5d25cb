// Package statuspage orchestrates the end-to-end flows: generating the page,
// provisioning a new status repository, synchronizing template files, and
// managing system labels.
package statuspage

import (
	"fmt"
	"time"

	"statuspage/internal/logging"
	"statuspage/pkg/config"
	"statuspage/pkg/github"
	"statuspage/pkg/page"
	"statuspage/pkg/status"
)

// incidentWindow bounds how far back closed issues still show up in the
// incident history.
const incidentWindow = 90 * 24 * time.Hour

// IndexFileName is the page file committed to the pages branch.
const IndexFileName = "index.html"

// Service runs the status page flows against one repository.
type Service struct {
	Client github.APIClient
	Owner  string // repository owner login (user or organization)
	Org    string // organization name when the repository belongs to one, else empty
	Repo   string
}

// New creates a Service for owner/repo. org is empty for user repositories.
func New(client github.APIClient, owner, org, repo string) *Service {
	return &Service{
		Client: client,
		Owner:  owner,
		Org:    org,
		Repo:   repo,
	}
}

// verifyRepository confirms the target repository is reachable before a
// multi-step flow starts. A missing repository surfaces as one typed
// not-found error up front instead of a failure partway through.
func (s *Service) verifyRepository() error {
	repo, err := s.Client.GetRepository(s.Owner, s.Repo)
	if err != nil {
		return fmt.Errorf("failed to access repository %s/%s: %w", s.Owner, s.Repo, err)
	}
	logging.Debug("verified repository", "full_name", repo.FullName)
	return nil
}

// Update regenerates the page from the repository's current labels and
// issues and commits index.html to the pages branch when it changed.
func (s *Service) Update(branchPages string) error {
	if err := s.verifyRepository(); err != nil {
		return err
	}

	fmt.Println("Generating..")

	tmplFile, err := s.Client.GetFile(s.Owner, s.Repo, "template.html", branchPages)
	if err != nil {
		return fmt.Errorf("failed to fetch page template: %w", err)
	}

	cfg, err := config.Resolve(s.Client, s.Owner, s.Repo, branchPages)
	if err != nil {
		return err
	}

	labels, err := s.Client.ListLabels(s.Owner, s.Repo)
	if err != nil {
		return err
	}

	issues, err := s.Client.ListIssues(s.Owner, s.Repo, time.Now().Add(-incidentWindow))
	if err != nil {
		return err
	}

	collaborators, err := s.Client.ListCollaboratorLogins(s.Owner, s.Repo)
	if err != nil {
		return err
	}

	logging.Debug("derivation input",
		"repo", s.Owner+"/"+s.Repo,
		"labels", len(labels),
		"issues", len(issues),
		"collaborators", len(collaborators))

	statuses, err := status.DeriveSystems(labels, issues, cfg.SystemColor, cfg.StatusLabels)
	if err != nil {
		return err
	}

	incidents, err := status.CollectIncidents(issues, collaborators, cfg.SystemColor, cfg.StatusLabels,
		func(issueNumber int) ([]github.Comment, error) {
			return s.Client.ListComments(s.Owner, s.Repo, issueNumber)
		})
	if err != nil {
		return err
	}

	panels := status.BuildPanels(statuses)

	content, err := page.Render(string(tmplFile.Content), page.Data{
		Systems:   statuses,
		Incidents: incidents,
		Panels:    panels,
		Config:    cfg,
	})
	if err != nil {
		return err
	}

	result, err := page.Publish(s.Client, s.Owner, s.Repo, branchPages, IndexFileName, content, "initial", "update index")
	if err != nil {
		return err
	}

	switch result {
	case page.Unchanged:
		fmt.Println("Local status matches remote status, no need to commit.")
	case page.Created:
		fmt.Printf("✓ Created %s\n", IndexFileName)
	case page.Updated:
		fmt.Printf("✓ Updated %s\n", IndexFileName)
	}

	return nil
}
