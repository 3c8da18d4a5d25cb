package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"statuspage/pkg/github"
)

// MockContentStore is a mock implementation of ContentStore for testing
type MockContentStore struct {
	mock.Mock
}

func (m *MockContentStore) GetFile(owner, name, path, ref string) (*github.RepoFile, error) {
	args := m.Called(owner, name, path, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*github.RepoFile), args.Error(1)
}

func (m *MockContentStore) CreateFile(owner, name, path, branch, message string, content []byte) error {
	args := m.Called(owner, name, path, branch, message, content)
	return args.Error(0)
}

func (m *MockContentStore) UpdateFile(owner, name, path, branch, message, sha string, content []byte) error {
	args := m.Called(owner, name, path, branch, message, sha, content)
	return args.Error(0)
}

func notFoundErr() error {
	return &github.GitHubError{Type: github.ErrorTypeNotFound, Message: "File not found"}
}

func TestPublishUnchangedPerformsNoWrite(t *testing.T) {
	store := &MockContentStore{}
	content := []byte("<html>ok</html>")

	store.On("GetFile", "acme", "status", "index.html", "gh-pages").
		Return(&github.RepoFile{Path: "index.html", SHA: "abc123", Content: content}, nil)

	result, err := Publish(store, "acme", "status", "gh-pages", "index.html", content, "initial", "update index")
	require.NoError(t, err)
	assert.Equal(t, Unchanged, result)

	store.AssertNotCalled(t, "CreateFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "UpdateFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPublishCreatesWhenMissing(t *testing.T) {
	store := &MockContentStore{}
	content := []byte("<html>ok</html>")

	store.On("GetFile", "acme", "status", "index.html", "gh-pages").Return(nil, notFoundErr())
	store.On("CreateFile", "acme", "status", "index.html", "gh-pages", "initial", content).Return(nil)

	result, err := Publish(store, "acme", "status", "gh-pages", "index.html", content, "initial", "update index")
	require.NoError(t, err)
	assert.Equal(t, Created, result)

	store.AssertNumberOfCalls(t, "CreateFile", 1)
	store.AssertNotCalled(t, "UpdateFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPublishUpdatesWithPriorRevision(t *testing.T) {
	store := &MockContentStore{}

	store.On("GetFile", "acme", "status", "index.html", "gh-pages").
		Return(&github.RepoFile{Path: "index.html", SHA: "abc123", Content: []byte("old")}, nil)
	store.On("UpdateFile", "acme", "status", "index.html", "gh-pages", "update index", "abc123", []byte("new")).Return(nil)

	result, err := Publish(store, "acme", "status", "gh-pages", "index.html", []byte("new"), "initial", "update index")
	require.NoError(t, err)
	assert.Equal(t, Updated, result)

	store.AssertNumberOfCalls(t, "UpdateFile", 1)
	store.AssertNotCalled(t, "CreateFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPublishPropagatesFetchError(t *testing.T) {
	store := &MockContentStore{}

	store.On("GetFile", "acme", "status", "index.html", "gh-pages").
		Return(nil, &github.GitHubError{Type: github.ErrorTypeAuth, Message: "bad token"})

	_, err := Publish(store, "acme", "status", "gh-pages", "index.html", []byte("x"), "initial", "update index")
	require.Error(t, err)
}
