package github

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	gh "github.com/google/go-github/v66/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apiError(message string, statusCode int, errs ...gh.Error) *gh.ErrorResponse {
	return &gh.ErrorResponse{
		Response: &http.Response{StatusCode: statusCode},
		Message:  message,
		Errors:   errs,
	}
}

func TestWrapGitHubErrorNotFound(t *testing.T) {
	err := WrapGitHubError(apiError("Not Found", http.StatusNotFound), "file index.html in acme/status")

	assert.Equal(t, ErrorTypeNotFound, err.Type)
	assert.False(t, err.Retryable)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "file index.html in acme/status")
}

func TestWrapGitHubErrorLabelConflict(t *testing.T) {
	// The label API reports duplicates as 422 + already_exists.
	err := WrapGitHubError(
		apiError("Validation Failed", http.StatusUnprocessableEntity, gh.Error{Code: "already_exists", Field: "name"}),
		`label "API" for acme/status`,
	)

	assert.Equal(t, ErrorTypeConflict, err.Type)
	assert.True(t, IsConflict(err))
	assert.False(t, err.Retryable)
}

func TestWrapGitHubErrorPlainConflict(t *testing.T) {
	err := WrapGitHubError(apiError("name already exists", http.StatusConflict), "repository status")

	assert.Equal(t, ErrorTypeConflict, err.Type)
	assert.True(t, IsConflict(err))
}

func TestWrapGitHubErrorAuth(t *testing.T) {
	err := WrapGitHubError(apiError("Bad credentials", http.StatusUnauthorized), "repository acme/status")

	assert.Equal(t, ErrorTypeAuth, err.Type)
	assert.False(t, err.Retryable)
	assert.False(t, IsNotFound(err))
	assert.False(t, IsConflict(err))
}

func TestWrapGitHubErrorServerErrorIsRetryable(t *testing.T) {
	err := WrapGitHubError(apiError("boom", http.StatusBadGateway), "issues for acme/status")

	assert.Equal(t, ErrorTypeNetwork, err.Type)
	assert.True(t, err.Retryable)
}

func TestWrapGitHubErrorNetwork(t *testing.T) {
	err := WrapGitHubError(fmt.Errorf("dial tcp 10.0.0.1:443: i/o timeout"), "labels for acme/status")

	assert.Equal(t, ErrorTypeNetwork, err.Type)
	assert.True(t, err.Retryable)
}

func TestWrapGitHubErrorKeepsExisting(t *testing.T) {
	original := &GitHubError{Type: ErrorTypeNotFound, Message: "gone"}

	wrapped := WrapGitHubError(original, "file x in acme/status")
	assert.Same(t, original, wrapped)
	assert.Equal(t, "file x in acme/status", wrapped.Resource)
}

func TestGitHubErrorUnwrap(t *testing.T) {
	cause := apiError("Not Found", http.StatusNotFound)
	err := WrapGitHubError(cause, "branch gh-pages of acme/status")

	var target *gh.ErrorResponse
	assert.True(t, errors.As(err, &target))
}

func fastRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:    2,
		InitialDelay:  time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
		BackoffFactor: 2.0,
	}
}

func TestWithRetryStopsOnNonRetryable(t *testing.T) {
	calls := 0
	err := WithRetry(func() error {
		calls++
		return &GitHubError{Type: ErrorTypeAuth, Message: "bad token"}
	}, fastRetryConfig())

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetryRecoversTransientFailure(t *testing.T) {
	calls := 0
	err := WithRetry(func() error {
		calls++
		if calls < 2 {
			return &GitHubError{Type: ErrorTypeNetwork, Message: "flaky", Retryable: true}
		}
		return nil
	}, fastRetryConfig())

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestWithRetryExhaustsRetries(t *testing.T) {
	calls := 0
	err := WithRetry(func() error {
		calls++
		return &GitHubError{Type: ErrorTypeNetwork, Message: "down", Retryable: true}
	}, fastRetryConfig())

	require.Error(t, err)
	assert.Equal(t, 3, calls) // initial attempt + 2 retries
	assert.Contains(t, err.Error(), "after 2 retries")
}
