package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid covers every verification failure. Callers must not
// be able to tell a forged token from an expired one
var ErrTokenInvalid = errors.New("token invalid")

// TokenConfig holds the signing secrets and lifetimes. Access and
// refresh tokens are signed with different secrets so a leaked access
// token can't be replayed to mint new refresh tokens
type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type TokenIssuer struct {
	cfg TokenConfig
}

func NewTokenIssuer(cfg TokenConfig) *TokenIssuer {
	return &TokenIssuer{cfg: cfg}
}

// IssueAccess creates a signed access token carrying only the user ID
func (t *TokenIssuer) IssueAccess(userID string) (string, error) {
	return t.issue(userID, t.cfg.AccessSecret, t.cfg.AccessExpiry)
}

// IssueRefresh creates a signed refresh token carrying only the user ID
func (t *TokenIssuer) IssueRefresh(userID string) (string, error) {
	return t.issue(userID, t.cfg.RefreshSecret, t.cfg.RefreshExpiry)
}

func (t *TokenIssuer) issue(userID, secret string, expiry time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyAccess checks signature and expiry of an access token and
// returns the user ID it was issued for
func (t *TokenIssuer) VerifyAccess(tokenStr string) (string, error) {
	return t.verify(tokenStr, t.cfg.AccessSecret)
}

// VerifyRefresh checks signature and expiry of a refresh token and
// returns the user ID it was issued for
func (t *TokenIssuer) VerifyRefresh(tokenStr string) (string, error) {
	return t.verify(tokenStr, t.cfg.RefreshSecret)
}

func (t *TokenIssuer) verify(tokenStr, secret string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(tk *jwt.Token) (interface{}, error) {
		if tk.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, ErrTokenInvalid
		}

		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrTokenInvalid
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrTokenInvalid
	}

	return claims.Subject, nil
}
