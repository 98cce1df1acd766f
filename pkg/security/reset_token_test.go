package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateResetToken(t *testing.T) {
	raw, digest, err := GenerateResetToken()
	require.NoError(t, err)

	assert.Len(t, raw, 64, "32 random bytes hex encoded")
	assert.NotEqual(t, raw, digest)
	assert.Equal(t, DigestToken(raw), digest, "digest must be re-derivable from the raw value")

	raw2, _, err := GenerateResetToken()
	require.NoError(t, err)
	assert.NotEqual(t, raw, raw2)
}

func TestDigestTokenDeterministic(t *testing.T) {
	assert.Equal(t, DigestToken("abc"), DigestToken("abc"))
	assert.NotEqual(t, DigestToken("abc"), DigestToken("abd"))
}
