package github

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

// DefaultAPIBase is the public GitHub REST endpoint.
const DefaultAPIBase = "https://api.github.com"

// Options configures the underlying HTTP and API endpoints.
type Options struct {
	// BaseURL points the client at a GitHub Enterprise instance. Empty or
	// DefaultAPIBase selects public GitHub.
	BaseURL string

	// SkipTLSVerify disables certificate verification, for self-hosted
	// instances with private CAs.
	SkipTLSVerify bool
}

// Client implements the APIClient interface using the GitHub REST API
type Client struct {
	client *github.Client
	ctx    context.Context
}

// NewClient creates a new GitHub API client with the provided token
func NewClient(token string, opts Options) (*Client, error) {
	ctx := context.Background()

	if opts.SkipTLSVerify {
		base := &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // #nosec G402 -- user-requested via --ssl-verify=false
			},
		}
		ctx = context.WithValue(ctx, oauth2.HTTPClient, base)
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	gh := github.NewClient(tc)
	if opts.BaseURL != "" && opts.BaseURL != DefaultAPIBase {
		var err error
		gh, err = gh.WithEnterpriseURLs(opts.BaseURL, opts.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid API base URL %q: %w", opts.BaseURL, err)
		}
	}

	return &Client{
		client: gh,
		ctx:    ctx,
	}, nil
}

// AuthenticatedLogin returns the login of the token's user
func (c *Client) AuthenticatedLogin() (string, error) {
	var user *github.User

	err := WithRetry(func() error {
		var err error
		user, _, err = c.client.Users.Get(c.ctx, "")
		if err != nil {
			return WrapGitHubError(err, "authenticated user")
		}
		return nil
	}, DefaultRetryConfig())

	if err != nil {
		return "", err
	}

	return user.GetLogin(), nil
}

// GetRepository retrieves a repository by owner and name
func (c *Client) GetRepository(owner, name string) (*Repository, error) {
	var repo *github.Repository

	err := WithRetry(func() error {
		var err error
		repo, _, err = c.client.Repositories.Get(c.ctx, owner, name)
		if err != nil {
			return WrapGitHubError(err, fmt.Sprintf("repository %s/%s", owner, name))
		}
		return nil
	}, DefaultRetryConfig())

	if err != nil {
		return nil, err
	}

	return convertGitHubRepository(repo), nil
}

// CreateRepository creates a repository for the authenticated user, or in the
// given organization when org is non-empty.
func (c *Client) CreateRepository(org, name, description string, private bool) (*Repository, error) {
	repo := &github.Repository{
		Name:        github.String(name),
		Description: github.String(description),
		Private:     github.Bool(private),
	}

	var created *github.Repository

	err := WithRetry(func() error {
		var err error
		created, _, err = c.client.Repositories.Create(c.ctx, org, repo)
		if err != nil {
			return WrapGitHubError(err, fmt.Sprintf("repository %s", name))
		}
		return nil
	}, DefaultRetryConfig())

	if err != nil {
		return nil, err
	}

	return convertGitHubRepository(created), nil
}

// SetDefaultBranch changes the repository's default branch
func (c *Client) SetDefaultBranch(owner, name, branch string) error {
	return WithRetry(func() error {
		_, _, err := c.client.Repositories.Edit(c.ctx, owner, name, &github.Repository{
			Name:          github.String(name),
			DefaultBranch: github.String(branch),
		})
		if err != nil {
			return WrapGitHubError(err, fmt.Sprintf("repository %s/%s", owner, name))
		}
		return nil
	}, DefaultRetryConfig())
}

// ListLabels lists all labels defined on a repository
func (c *Client) ListLabels(owner, name string) ([]Label, error) {
	opts := &github.ListOptions{PerPage: 100}

	var allLabels []Label

	err := WithRetry(func() error {
		allLabels = nil // Reset on retry
		opts.Page = 0   // Reset pagination on retry

		for {
			labels, resp, err := c.client.Issues.ListLabels(c.ctx, owner, name, opts)
			if err != nil {
				return WrapGitHubError(err, fmt.Sprintf("labels for %s/%s", owner, name))
			}

			for _, label := range labels {
				allLabels = append(allLabels, Label{
					Name:  label.GetName(),
					Color: label.GetColor(),
				})
			}

			if resp.NextPage == 0 {
				break
			}
			opts.Page = resp.NextPage
		}
		return nil
	}, DefaultRetryConfig())

	return allLabels, err
}

// CreateLabel creates a new label on a repository
func (c *Client) CreateLabel(owner, name string, label Label) error {
	return WithRetry(func() error {
		_, _, err := c.client.Issues.CreateLabel(c.ctx, owner, name, &github.Label{
			Name:  github.String(label.Name),
			Color: github.String(label.Color),
		})
		if err != nil {
			return WrapGitHubError(err, fmt.Sprintf("label %q for %s/%s", label.Name, owner, name))
		}
		return nil
	}, DefaultRetryConfig())
}

// DeleteLabel removes a label from a repository
func (c *Client) DeleteLabel(owner, name, labelName string) error {
	return WithRetry(func() error {
		_, err := c.client.Issues.DeleteLabel(c.ctx, owner, name, labelName)
		if err != nil {
			return WrapGitHubError(err, fmt.Sprintf("label %q for %s/%s", labelName, owner, name))
		}
		return nil
	}, DefaultRetryConfig())
}

// ListIssues lists repository issues in any state updated since the given
// time. Pull requests, which the issues API also returns, are filtered out.
func (c *Client) ListIssues(owner, name string, since time.Time) ([]Issue, error) {
	opts := &github.IssueListByRepoOptions{
		State:       "all",
		Since:       since,
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var allIssues []Issue

	err := WithRetry(func() error {
		allIssues = nil // Reset on retry
		opts.Page = 0   // Reset pagination on retry

		for {
			issues, resp, err := c.client.Issues.ListByRepo(c.ctx, owner, name, opts)
			if err != nil {
				return WrapGitHubError(err, fmt.Sprintf("issues for %s/%s", owner, name))
			}

			for _, issue := range issues {
				if issue.IsPullRequest() {
					continue
				}
				allIssues = append(allIssues, convertGitHubIssue(issue))
			}

			if resp.NextPage == 0 {
				break
			}
			opts.Page = resp.NextPage
		}
		return nil
	}, DefaultRetryConfig())

	return allIssues, err
}

// ListComments lists the comments of an issue in chronological order
func (c *Client) ListComments(owner, name string, issueNumber int) ([]Comment, error) {
	opts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var allComments []Comment

	err := WithRetry(func() error {
		allComments = nil // Reset on retry
		opts.Page = 0     // Reset pagination on retry

		for {
			comments, resp, err := c.client.Issues.ListComments(c.ctx, owner, name, issueNumber, opts)
			if err != nil {
				return WrapGitHubError(err, fmt.Sprintf("comments for %s/%s#%d", owner, name, issueNumber))
			}

			for _, comment := range comments {
				allComments = append(allComments, Comment{
					Author:    comment.GetUser().GetLogin(),
					Body:      comment.GetBody(),
					CreatedAt: comment.GetCreatedAt().Time,
				})
			}

			if resp.NextPage == 0 {
				break
			}
			opts.Page = resp.NextPage
		}
		return nil
	}, DefaultRetryConfig())

	return allComments, err
}

// ListCollaboratorLogins lists the logins of all repository collaborators
func (c *Client) ListCollaboratorLogins(owner, name string) ([]string, error) {
	opts := &github.ListCollaboratorsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var logins []string

	err := WithRetry(func() error {
		logins = nil  // Reset on retry
		opts.Page = 0 // Reset pagination on retry

		for {
			collaborators, resp, err := c.client.Repositories.ListCollaborators(c.ctx, owner, name, opts)
			if err != nil {
				return WrapGitHubError(err, fmt.Sprintf("collaborators for %s/%s", owner, name))
			}

			for _, collab := range collaborators {
				logins = append(logins, collab.GetLogin())
			}

			if resp.NextPage == 0 {
				break
			}
			opts.Page = resp.NextPage
		}
		return nil
	}, DefaultRetryConfig())

	return logins, err
}

// ListRootFiles lists the file paths at the repository root on the given ref
func (c *Client) ListRootFiles(owner, name, ref string) ([]string, error) {
	var paths []string

	err := WithRetry(func() error {
		paths = nil // Reset on retry

		_, entries, _, err := c.client.Repositories.GetContents(c.ctx, owner, name, "/", &github.RepositoryContentGetOptions{Ref: ref})
		if err != nil {
			return WrapGitHubError(err, fmt.Sprintf("files for %s/%s@%s", owner, name, ref))
		}

		for _, entry := range entries {
			paths = append(paths, entry.GetPath())
		}
		return nil
	}, DefaultRetryConfig())

	return paths, err
}

// GetFile fetches a single file at a path and ref, with its content decoded
func (c *Client) GetFile(owner, name, path, ref string) (*RepoFile, error) {
	var file *RepoFile

	err := WithRetry(func() error {
		content, _, _, err := c.client.Repositories.GetContents(c.ctx, owner, name, path, &github.RepositoryContentGetOptions{Ref: ref})
		if err != nil {
			return WrapGitHubError(err, fmt.Sprintf("file %s in %s/%s", path, owner, name))
		}
		if content == nil {
			return &GitHubError{
				Type:     ErrorTypeNotFound,
				Message:  fmt.Sprintf("%s is a directory, not a file", path),
				Resource: fmt.Sprintf("file %s in %s/%s", path, owner, name),
			}
		}

		decoded, err := content.GetContent()
		if err != nil {
			return WrapGitHubError(err, fmt.Sprintf("file %s in %s/%s", path, owner, name))
		}

		file = &RepoFile{
			Path:    content.GetPath(),
			SHA:     content.GetSHA(),
			Content: []byte(decoded),
		}
		return nil
	}, DefaultRetryConfig())

	if err != nil {
		return nil, err
	}

	return file, nil
}

// CreateFile commits a new file to a branch
func (c *Client) CreateFile(owner, name, path, branch, message string, content []byte) error {
	opts := &github.RepositoryContentFileOptions{
		Message: github.String(message),
		Content: content,
	}
	if branch != "" {
		opts.Branch = github.String(branch)
	}

	return WithRetry(func() error {
		_, _, err := c.client.Repositories.CreateFile(c.ctx, owner, name, path, opts)
		if err != nil {
			return WrapGitHubError(err, fmt.Sprintf("file %s in %s/%s", path, owner, name))
		}
		return nil
	}, DefaultRetryConfig())
}

// UpdateFile commits new content for an existing file. The sha of the blob
// being replaced is required so a concurrent update fails instead of being
// silently overwritten.
func (c *Client) UpdateFile(owner, name, path, branch, message, sha string, content []byte) error {
	opts := &github.RepositoryContentFileOptions{
		Message: github.String(message),
		Content: content,
		SHA:     github.String(sha),
	}
	if branch != "" {
		opts.Branch = github.String(branch)
	}

	return WithRetry(func() error {
		_, _, err := c.client.Repositories.UpdateFile(c.ctx, owner, name, path, opts)
		if err != nil {
			return WrapGitHubError(err, fmt.Sprintf("file %s in %s/%s", path, owner, name))
		}
		return nil
	}, DefaultRetryConfig())
}

// GetBranchSHA returns the commit SHA a branch head points at
func (c *Client) GetBranchSHA(owner, name, branch string) (string, error) {
	var sha string

	err := WithRetry(func() error {
		ref, _, err := c.client.Git.GetRef(c.ctx, owner, name, "refs/heads/"+branch)
		if err != nil {
			return WrapGitHubError(err, fmt.Sprintf("branch %s of %s/%s", branch, owner, name))
		}
		sha = ref.GetObject().GetSHA()
		return nil
	}, DefaultRetryConfig())

	if err != nil {
		return "", err
	}

	return sha, nil
}

// CreateBranch creates a branch pointing at the given commit SHA
func (c *Client) CreateBranch(owner, name, branch, fromSHA string) error {
	return WithRetry(func() error {
		_, _, err := c.client.Git.CreateRef(c.ctx, owner, name, &github.Reference{
			Ref:    github.String("refs/heads/" + branch),
			Object: &github.GitObject{SHA: github.String(fromSHA)},
		})
		if err != nil {
			return WrapGitHubError(err, fmt.Sprintf("branch %s of %s/%s", branch, owner, name))
		}
		return nil
	}, DefaultRetryConfig())
}

// convertGitHubRepository converts a GitHub API repository to our internal type
func convertGitHubRepository(repo *github.Repository) *Repository {
	return &Repository{
		ID:            repo.GetID(),
		Name:          repo.GetName(),
		FullName:      repo.GetFullName(),
		Owner:         repo.GetOwner().GetLogin(),
		Description:   repo.GetDescription(),
		Private:       repo.GetPrivate(),
		DefaultBranch: repo.GetDefaultBranch(),
		HTMLURL:       repo.GetHTMLURL(),
	}
}

// convertGitHubIssue converts a GitHub API issue to our internal type
func convertGitHubIssue(issue *github.Issue) Issue {
	converted := Issue{
		Number:    issue.GetNumber(),
		Title:     issue.GetTitle(),
		Body:      issue.GetBody(),
		State:     issue.GetState(),
		Author:    issue.GetUser().GetLogin(),
		CreatedAt: issue.GetCreatedAt().Time,
	}

	for _, label := range issue.Labels {
		converted.Labels = append(converted.Labels, Label{
			Name:  label.GetName(),
			Color: label.GetColor(),
		})
	}

	return converted
}
