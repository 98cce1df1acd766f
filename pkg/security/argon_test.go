package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testArgon() *ArgonHash {
	// Small params so the suite stays fast
	return &ArgonHash{
		Memory:      8 * 1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}
}

func TestGenerateFromPasswordSalted(t *testing.T) {
	a := testArgon()

	h1, err := a.GenerateFromPassword("secret1")
	require.NoError(t, err)

	h2, err := a.GenerateFromPassword("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "same password should never produce the same encoded hash")
}

func TestVerifyPasswd(t *testing.T) {
	a := testArgon()

	hash, err := a.GenerateFromPassword("secret1")
	require.NoError(t, err)

	ok, err := a.VerifyPasswd("secret1", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.VerifyPasswd("wrong", hash)
	require.NoError(t, err, "a mismatch must not be an error")
	assert.False(t, ok)
}

func TestVerifyPasswdBrokenHash(t *testing.T) {
	a := testArgon()

	_, err := a.VerifyPasswd("secret1", "not-a-phc-hash")
	assert.Error(t, err)
}

func TestVerifyPasswdDifferentParams(t *testing.T) {
	// The stored hash carries its own cost params, a verifier with
	// different defaults must still accept it
	hash, err := testArgon().GenerateFromPassword("secret1")
	require.NoError(t, err)

	ok, err := NewArgon().VerifyPasswd("secret1", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}
