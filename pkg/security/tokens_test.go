package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIssuer() *TokenIssuer {
	return NewTokenIssuer(TokenConfig{
		AccessSecret:  "access-secret-for-tests",
		RefreshSecret: "refresh-secret-for-tests",
		AccessExpiry:  time.Hour,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestAccessTokenRoundtrip(t *testing.T) {
	issuer := testIssuer()

	token, err := issuer.IssueAccess("user-1")
	require.NoError(t, err)

	id, err := issuer.VerifyAccess(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
}

func TestRefreshTokenRoundtrip(t *testing.T) {
	issuer := testIssuer()

	token, err := issuer.IssueRefresh("user-1")
	require.NoError(t, err)

	id, err := issuer.VerifyRefresh(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
}

func TestTokenClassesAreNotInterchangeable(t *testing.T) {
	issuer := testIssuer()

	access, err := issuer.IssueAccess("user-1")
	require.NoError(t, err)

	refresh, err := issuer.IssueRefresh("user-1")
	require.NoError(t, err)

	_, err = issuer.VerifyRefresh(access)
	assert.ErrorIs(t, err, ErrTokenInvalid, "access token must not mint refresh sessions")

	_, err = issuer.VerifyAccess(refresh)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestExpiredTokenInvalid(t *testing.T) {
	issuer := NewTokenIssuer(TokenConfig{
		AccessSecret:  "access-secret-for-tests",
		RefreshSecret: "refresh-secret-for-tests",
		AccessExpiry:  -time.Minute,
		RefreshExpiry: -time.Minute,
	})

	token, err := issuer.IssueAccess("user-1")
	require.NoError(t, err)

	_, err = issuer.VerifyAccess(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestMalformedTokenInvalid(t *testing.T) {
	issuer := testIssuer()

	for _, garbage := range []string{"", "nonsense", "a.b.c"} {
		_, err := issuer.VerifyAccess(garbage)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	}
}

func TestForeignSignatureInvalid(t *testing.T) {
	other := NewTokenIssuer(TokenConfig{
		AccessSecret:  "some-other-secret",
		RefreshSecret: "another-other-secret",
		AccessExpiry:  time.Hour,
		RefreshExpiry: time.Hour,
	})

	token, err := other.IssueAccess("user-1")
	require.NoError(t, err)

	_, err = testIssuer().VerifyAccess(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
