package service

import (
	"path/filepath"
	"testing"
	"time"

	"stralshund/dog-api/internal/model"
	"stralshund/dog-api/pkg/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		model.User{},
		model.Dog{},
		model.Meetup{},
		model.MeetupParticipant{},
	))

	return db
}

func testAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()

	db := testDB(t)

	argon := &security.ArgonHash{
		Memory:      8 * 1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}

	tokens := security.NewTokenIssuer(security.TokenConfig{
		AccessSecret:  "access-secret-for-tests",
		RefreshSecret: "refresh-secret-for-tests",
		AccessExpiry:  time.Hour,
		RefreshExpiry: 24 * time.Hour,
	})

	auth, err := NewAuthService(db, argon, tokens, NewMailer(), 10*time.Minute)
	require.NoError(t, err)

	return auth, db
}

func registerUser(t *testing.T, auth *AuthService, email, password, username string) *Session {
	t.Helper()

	session, err := auth.Register(&RegisterRequest{
		Email:    email,
		Password: password,
		Username: username,
	})
	require.NoError(t, err)

	return session
}

func TestRegisterIssuesSession(t *testing.T) {
	auth, db := testAuthService(t)

	session := registerUser(t, auth, "a@x.com", "secret1", "userA")

	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	require.NotNil(t, session.User)
	assert.Equal(t, "a@x.com", session.User.Email)

	var stored model.User
	require.NoError(t, db.Where("email = ?", "a@x.com").First(&stored).Error)

	assert.NotEqual(t, "secret1", stored.PasswordHash, "password must never be stored in plaintext")
	require.NotNil(t, stored.RefreshToken)
	assert.Equal(t, session.RefreshToken, *stored.RefreshToken)
	assert.NotNil(t, stored.VerificationTokenHash)
	assert.NotNil(t, stored.LastLogin)
}

func TestRegisterDuplicateIdentity(t *testing.T) {
	auth, db := testAuthService(t)

	registerUser(t, auth, "a@x.com", "secret1", "userA")

	_, err := auth.Register(&RegisterRequest{Email: "a@x.com", Password: "secret2", Username: "other"})
	assert.ErrorIs(t, err, ErrDuplicateIdentity)

	_, err = auth.Register(&RegisterRequest{Email: "b@x.com", Password: "secret2", Username: "userA"})
	assert.ErrorIs(t, err, ErrDuplicateIdentity)

	// Email uniqueness is case insensitive
	_, err = auth.Register(&RegisterRequest{Email: "A@X.com", Password: "secret2", Username: "userB"})
	assert.ErrorIs(t, err, ErrDuplicateIdentity)

	// A row created behind the service's back, like a registration
	// that raced this one, maps to the same error
	require.NoError(t, db.Create(&model.User{ID: "raced", Email: "raced@x.com", Username: "raced"}).Error)
	_, err = auth.Register(&RegisterRequest{Email: "raced@x.com", Password: "secret2", Username: "userC"})
	assert.ErrorIs(t, err, ErrDuplicateIdentity)
}

func TestLogin(t *testing.T) {
	auth, _ := testAuthService(t)

	registerUser(t, auth, "a@x.com", "secret1", "userA")

	session, err := auth.Login("a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "userA", session.User.Username)

	// Mixed case lookup hits the same account
	_, err = auth.Login("A@X.com", "secret1")
	require.NoError(t, err)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	auth, _ := testAuthService(t)

	registerUser(t, auth, "a@x.com", "secret1", "userA")

	_, wrongPass := auth.Login("a@x.com", "wrong")
	_, unknownMail := auth.Login("nobody@x.com", "secret1")

	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownMail, ErrInvalidCredentials)
	assert.Equal(t, wrongPass, unknownMail, "wrong password and unknown email must be the same error")
}

func TestRefresh(t *testing.T) {
	auth, _ := testAuthService(t)

	session := registerUser(t, auth, "a@x.com", "secret1", "userA")

	accessToken, err := auth.Refresh(session.RefreshToken)
	require.NoError(t, err)

	id, err := auth.tokens.VerifyAccess(accessToken)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, id)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	auth, _ := testAuthService(t)

	for _, token := range []string{"", "nonsense", "a.b.c"} {
		_, err := auth.Refresh(token)
		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	}
}

func TestSecondLoginInvalidatesFirstSession(t *testing.T) {
	auth, _ := testAuthService(t)

	registerUser(t, auth, "a@x.com", "secret1", "userA")

	first, err := auth.Login("a@x.com", "secret1")
	require.NoError(t, err)

	_, err = auth.Refresh(first.RefreshToken)
	require.NoError(t, err)

	second, err := auth.Login("a@x.com", "secret1")
	require.NoError(t, err)

	// The well-signed first token is superseded by the second login
	_, err = auth.Refresh(first.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	_, err = auth.Refresh(second.RefreshToken)
	require.NoError(t, err)
}

func TestLogout(t *testing.T) {
	auth, _ := testAuthService(t)

	session := registerUser(t, auth, "a@x.com", "secret1", "userA")

	require.NoError(t, auth.Logout(session.User.ID))

	_, err := auth.Refresh(session.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	// Logging out again is a no-op success
	require.NoError(t, auth.Logout(session.User.ID))
}

func TestForgotPassword(t *testing.T) {
	auth, db := testAuthService(t)

	registerUser(t, auth, "a@x.com", "secret1", "userA")

	// An unknown email is not an error, callers can't probe addresses
	require.NoError(t, auth.ForgotPassword("nobody@x.com"))

	require.NoError(t, auth.ForgotPassword("a@x.com"))

	var user model.User
	require.NoError(t, db.Where("email = ?", "a@x.com").First(&user).Error)

	require.NotNil(t, user.ResetTokenHash)
	require.NotNil(t, user.ResetTokenExpiry)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), *user.ResetTokenExpiry, time.Minute)
}

// plantResetToken stores a known reset digest directly so the raw
// secret is available to the test, normally it only leaves by mail
func plantResetToken(t *testing.T, db *gorm.DB, email string, expiry time.Time) string {
	t.Helper()

	raw, digest, err := security.GenerateResetToken()
	require.NoError(t, err)

	require.NoError(t, db.Model(&model.User{}).
		Where("email = ?", email).
		Updates(map[string]any{
			"reset_token_hash":   digest,
			"reset_token_expiry": expiry,
		}).
		Error)

	return raw
}

func TestResetPassword(t *testing.T) {
	auth, db := testAuthService(t)

	registerUser(t, auth, "a@x.com", "secret1", "userA")

	raw := plantResetToken(t, db, "a@x.com", time.Now().Add(10*time.Minute))

	session, err := auth.ResetPassword(raw, "newsecret")
	require.NoError(t, err)
	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)

	_, err = auth.Login("a@x.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "old password must stop working")

	_, err = auth.Login("a@x.com", "newsecret")
	require.NoError(t, err)
}

func TestResetPasswordSingleUse(t *testing.T) {
	auth, db := testAuthService(t)

	registerUser(t, auth, "a@x.com", "secret1", "userA")

	raw := plantResetToken(t, db, "a@x.com", time.Now().Add(10*time.Minute))

	_, err := auth.ResetPassword(raw, "newsecret")
	require.NoError(t, err)

	_, err = auth.ResetPassword(raw, "evennewer")
	assert.ErrorIs(t, err, ErrInvalidOrExpiredToken)
}

func TestResetPasswordExpired(t *testing.T) {
	auth, db := testAuthService(t)

	registerUser(t, auth, "a@x.com", "secret1", "userA")

	raw := plantResetToken(t, db, "a@x.com", time.Now().Add(-time.Second))

	_, err := auth.ResetPassword(raw, "newsecret")
	assert.ErrorIs(t, err, ErrInvalidOrExpiredToken, "matching digest must not help once expired")

	// The failed attempt must not have touched the stored fields
	var user model.User
	require.NoError(t, db.Where("email = ?", "a@x.com").First(&user).Error)
	assert.NotNil(t, user.ResetTokenHash)
	assert.NotNil(t, user.ResetTokenExpiry)
}

func TestResetPasswordUnknownToken(t *testing.T) {
	auth, _ := testAuthService(t)

	_, err := auth.ResetPassword("completely-made-up", "newsecret")
	assert.ErrorIs(t, err, ErrInvalidOrExpiredToken)
}
