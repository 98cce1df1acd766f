package service

import (
	"errors"
	"strings"
	"time"

	"stralshund/dog-api/internal/model"
	"stralshund/dog-api/pkg/security"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const userIDSize = 16

// AuthService owns the whole credential and session token lifecycle:
// registration, login, refresh, logout and the password reset flow
type AuthService struct {
	db     *gorm.DB
	argon  *security.ArgonHash
	tokens *security.TokenIssuer
	mailer *Mailer

	resetExpiry time.Duration

	// Hash of a throwaway password, verified against when the email
	// doesn't match so a login miss costs the same as a wrong password
	decoyHash string
}

// Session is what a successful register, login or password reset
// hands back to the client
type Session struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	User         *model.User `json:"user"`
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required,userpassword"`
	Username  string `json:"username" binding:"required,username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func NewAuthService(db *gorm.DB, argon *security.ArgonHash, tokens *security.TokenIssuer, mailer *Mailer, resetExpiry time.Duration) (*AuthService, error) {
	decoy, err := argon.GenerateFromPassword("decoy-password-for-timing")
	if err != nil {
		return nil, err
	}

	return &AuthService{
		db:          db,
		argon:       argon,
		tokens:      tokens,
		mailer:      mailer,
		resetExpiry: resetExpiry,
		decoyHash:   decoy,
	}, nil
}

// Register creates a new user and logs them in right away. Email
// uniqueness is case insensitive, the address is lowercased before
// it is stored
func (s *AuthService) Register(req *RegisterRequest) (*Session, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := s.argon.GenerateFromPassword(req.Password)
	if err != nil {
		return nil, err
	}

	userID, err := gonanoid.New(userIDSize)
	if err != nil {
		return nil, err
	}

	rawVerif, verifDigest, err := security.GenerateResetToken()
	if err != nil {
		return nil, err
	}

	user := model.User{
		ID:                    userID,
		Email:                 email,
		Username:              req.Username,
		PasswordHash:          hash,
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		VerificationTokenHash: &verifDigest,
	}

	// The unique indexes are the source of truth for duplicates. Two
	// racing registrations can't both get past them
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateIdentity
		}

		return nil, err
	}

	if err := s.mailer.SendVerificationMail(&user, rawVerif); err != nil {
		// Account creation already happened, a failed mail shouldn't
		// undo the registration
		zap.L().Error("Failed to send verification mail", zap.Error(err))
	}

	return s.issueSession(&user)
}

// Login verifies the credentials and rotates the stored refresh
// token, which invalidates any previous session for the user
func (s *AuthService) Login(email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user model.User

	err := s.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// Burn the same hashing cost as a real check
			s.argon.VerifyPasswd(password, s.decoyHash)
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if user.PasswordHash == "" {
		// OAuth-only account, there is no password to check
		s.argon.VerifyPasswd(password, s.decoyHash)
		return nil, ErrInvalidCredentials
	}

	ok, err := s.argon.VerifyPasswd(password, user.PasswordHash)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, ErrInvalidCredentials
	}

	return s.issueSession(&user)
}

// Refresh trades a valid refresh token for a new access token. The
// refresh token itself is not rotated. A token that was superseded by
// a later login fails the stored comparison even if its signature is
// still good
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", ErrInvalidRefreshToken
	}

	userID, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	var user model.User

	err = s.db.Where("id = ?", userID).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", ErrInvalidRefreshToken
		}

		return "", err
	}

	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return "", ErrInvalidRefreshToken
	}

	return s.tokens.IssueAccess(user.ID)
}

// Logout clears the stored refresh token. Logging out twice is fine
func (s *AuthService) Logout(userID string) error {
	return s.db.Model(&model.User{}).
		Where("id = ?", userID).
		Update("refresh_token", nil).
		Error
}

// ForgotPassword stores a reset token digest for the account behind
// email and mails the raw secret. The response is the same whether or
// not the email exists so addresses can't be enumerated
func (s *AuthService) ForgotPassword(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	var user model.User

	err := s.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}

		return err
	}

	raw, digest, err := security.GenerateResetToken()
	if err != nil {
		return err
	}

	expiry := time.Now().Add(s.resetExpiry)

	err = s.db.Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"reset_token_hash":   digest,
			"reset_token_expiry": expiry,
		}).
		Error
	if err != nil {
		return err
	}

	if err := s.mailer.SendResetMail(&user, raw); err != nil {
		zap.L().Error("Failed to send password reset mail", zap.Error(err))
	}

	return nil
}

// ResetPassword redeems a raw reset token for a new password. The
// digest lookup plus expiry check makes the token single use, both
// reset fields are cleared in the same update that sets the new hash
func (s *AuthService) ResetPassword(rawToken, newPassword string) (*Session, error) {
	digest := security.DigestToken(rawToken)

	var user model.User

	err := s.db.
		Where("reset_token_hash = ? AND reset_token_expiry > ?", digest, time.Now()).
		First(&user).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInvalidOrExpiredToken
		}

		return nil, err
	}

	hash, err := s.argon.GenerateFromPassword(newPassword)
	if err != nil {
		return nil, err
	}

	err = s.db.Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"password_hash":      hash,
			"reset_token_hash":   nil,
			"reset_token_expiry": nil,
		}).
		Error
	if err != nil {
		return nil, err
	}

	user.PasswordHash = hash
	user.ResetTokenHash = nil
	user.ResetTokenExpiry = nil

	return s.issueSession(&user)
}

// issueSession mints a fresh access and refresh token pair and
// persists the refresh token. Whoever logs in last wins the single
// session slot
func (s *AuthService) issueSession(user *model.User) (*Session, error) {
	accessToken, err := s.tokens.IssueAccess(user.ID)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.tokens.IssueRefresh(user.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	err = s.db.Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"refresh_token": refreshToken,
			"last_login":    now,
		}).
		Error
	if err != nil {
		return nil, err
	}

	user.RefreshToken = &refreshToken
	user.LastLogin = &now

	return &Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}
