package page

import (
	"statuspage/pkg/github"
)

// Result describes what Publish did with the rendered content.
type Result string

const (
	// Unchanged means the remote file already holds identical content and no
	// write was performed.
	Unchanged Result = "unchanged"
	// Created means the file did not exist and was committed fresh.
	Created Result = "created"
	// Updated means the file existed with different content and was updated
	// at its previous revision.
	Updated Result = "updated"
)

// ContentStore is the slice of the GitHub client publishing needs.
type ContentStore interface {
	GetFile(owner, name, path, ref string) (*github.RepoFile, error)
	CreateFile(owner, name, path, branch, message string, content []byte) error
	UpdateFile(owner, name, path, branch, message, sha string, content []byte) error
}

// Publish commits content to path on branch only if it differs from what is
// already there. Updates carry the SHA of the blob that was read, so a
// concurrent commit to the same file fails instead of being overwritten.
func Publish(store ContentStore, owner, repo, branch, path string, content []byte, createMessage, updateMessage string) (Result, error) {
	existing, err := store.GetFile(owner, repo, path, branch)
	if err != nil {
		if github.IsNotFound(err) {
			if err := store.CreateFile(owner, repo, path, branch, createMessage, content); err != nil {
				return "", err
			}
			return Created, nil
		}
		return "", err
	}

	if SameContent(content, existing.Content) {
		return Unchanged, nil
	}

	if err := store.UpdateFile(owner, repo, path, branch, updateMessage, existing.SHA, content); err != nil {
		return "", err
	}
	return Updated, nil
}
