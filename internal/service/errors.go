package service

import "errors"

// The auth operations collapse their failures into these kinds so
// nothing about the store or crypto layer leaks to a client. Wrong
// password and unknown email are deliberately the same error
var (
	ErrDuplicateIdentity     = errors.New("user with this email or username already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidRefreshToken   = errors.New("invalid refresh token")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
)

var (
	ErrMeetupFull     = errors.New("meetup is full")
	ErrMeetupClosed   = errors.New("meetup is not open for joining")
	ErrAlreadyJoined  = errors.New("already joined this meetup")
	ErrMeetupNotFound = errors.New("meetup not found")
)
