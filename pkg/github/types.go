package github

import "time"

// Repository represents a GitHub repository
type Repository struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	Owner         string `json:"owner"`
	Description   string `json:"description"`
	Private       bool   `json:"private"`
	DefaultBranch string `json:"default_branch"`
	HTMLURL       string `json:"html_url"`
}

// Label represents a repository label. Identity is the name, the color is a
// hex string without the leading "#".
type Label struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Issue represents a repository issue with its labels. Comments are fetched
// separately via APIClient.ListComments.
type Issue struct {
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	State     string    `json:"state"` // open, closed
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	Labels    []Label   `json:"labels"`
}

// IsOpen reports whether the issue is in the open state.
func (i Issue) IsOpen() bool {
	return i.State == "open"
}

// Comment represents a single issue comment
type Comment struct {
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// RepoFile represents a file fetched from a repository, with its content
// already Base64-decoded. SHA is the blob SHA required for updates.
type RepoFile struct {
	Path    string `json:"path"`
	SHA     string `json:"sha"`
	Content []byte `json:"-"`
}
