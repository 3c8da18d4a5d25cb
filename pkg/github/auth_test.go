package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTokenFlagWins(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "from-env")

	token, err := ResolveToken("  from-flag  ", "from-config")
	require.NoError(t, err)
	assert.Equal(t, "from-flag", token)
}

func TestResolveTokenEnvBeforeConfig(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "from-env")

	token, err := ResolveToken("", "from-config")
	require.NoError(t, err)
	assert.Equal(t, "from-env", token)
}

func TestResolveTokenConfigFallback(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")

	token, err := ResolveToken("", "from-config")
	require.NoError(t, err)
	assert.Equal(t, "from-config", token)
}

func TestResolveTokenMissing(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")

	_, err := ResolveToken("", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GITHUB_TOKEN")
}
