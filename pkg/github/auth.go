package github

import (
	"fmt"
	"os"
	"strings"
)

// ResolveToken picks the GitHub token to use: the explicit flag value first,
// then the GITHUB_TOKEN environment variable, then the token stored in the
// tool configuration. An empty result is an error; callers may still fall
// back to an interactive prompt before giving up.
func ResolveToken(flagToken, configToken string) (string, error) {
	if flagToken != "" {
		return strings.TrimSpace(flagToken), nil
	}

	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return strings.TrimSpace(token), nil
	}

	if configToken != "" {
		return strings.TrimSpace(configToken), nil
	}

	return "", fmt.Errorf("no GitHub token found: pass --token, set GITHUB_TOKEN, or configure a token in ~/.statuspage/config.yaml")
}
