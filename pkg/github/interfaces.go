package github

import "time"

// APIClient defines the interface for GitHub API operations used by the
// status page. Implementations must expose optimistic-concurrency semantics
// for file updates (the caller supplies the blob SHA of the revision it read).
type APIClient interface {
	// Authenticated user
	AuthenticatedLogin() (string, error)

	// Repository operations
	GetRepository(owner, name string) (*Repository, error)
	CreateRepository(org, name, description string, private bool) (*Repository, error)
	SetDefaultBranch(owner, name, branch string) error

	// Label operations
	ListLabels(owner, name string) ([]Label, error)
	CreateLabel(owner, name string, label Label) error
	DeleteLabel(owner, name, labelName string) error

	// Issue operations
	ListIssues(owner, name string, since time.Time) ([]Issue, error)
	ListComments(owner, name string, issueNumber int) ([]Comment, error)
	ListCollaboratorLogins(owner, name string) ([]string, error)

	// Content operations
	ListRootFiles(owner, name, ref string) ([]string, error)
	GetFile(owner, name, path, ref string) (*RepoFile, error)
	CreateFile(owner, name, path, branch, message string, content []byte) error
	UpdateFile(owner, name, path, branch, message, sha string, content []byte) error

	// Reference operations
	GetBranchSHA(owner, name, branch string) (string, error)
	CreateBranch(owner, name, branch, fromSHA string) error
}
