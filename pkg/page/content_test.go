package page

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameContent(t *testing.T) {
	a := []byte("<html>status</html>")
	b := []byte("<html>status</html>")
	c := []byte("<html>outage</html>")

	// Reflexive, symmetric, deterministic.
	assert.True(t, SameContent(a, a))
	assert.True(t, SameContent(a, b))
	assert.True(t, SameContent(b, a))
	assert.False(t, SameContent(a, c))
	assert.False(t, SameContent(c, a))
}

func TestSameContentAfterBase64RoundTrip(t *testing.T) {
	// Remote content arrives Base64-encoded; after decoding it must compare
	// equal to freshly rendered bytes regardless of the decoding path.
	fresh := []byte("körper — unicode content\n")

	encoded := base64.StdEncoding.EncodeToString(fresh)
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)

	assert.True(t, SameContent(fresh, decoded))
}

func TestSameContentEmpty(t *testing.T) {
	assert.True(t, SameContent(nil, []byte{}))
	assert.False(t, SameContent(nil, []byte("x")))
}
