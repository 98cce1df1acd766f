// Package model contains the gorm models used by the app
package model

import "time"

// Account types. Host accounts may list their own dog spots,
// premium_plus includes hosting on top of the premium features
const (
	AccountStandard    = "standard"
	AccountPremium     = "premium"
	AccountHost        = "host"
	AccountPremiumPlus = "premium_plus"
)

// Account statuses. Anything other than active fails every
// authenticated request regardless of token validity
const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
	StatusDeleted   = "deleted"
)

// Premium holds the paid membership state. Expiry is only checked
// lazily when a premium gated endpoint is hit
type Premium struct {
	Active    bool       `json:"active"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

type UserStats struct {
	TotalRoutes    int     `json:"totalRoutes"`
	TotalDistance  float64 `json:"totalDistance"`
	TotalMeetups   int     `json:"totalMeetups"`
	SchnuffelScore int     `json:"schnuffelScore"`
}

type User struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`

	// Exactly one of PasswordHash or OAuthProvider is set per user
	PasswordHash  string  `json:"-"`
	OAuthProvider *string `json:"-"`
	OAuthID       *string `json:"-"`

	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Avatar    string   `json:"avatar"`
	Bio       string   `json:"bio"`
	City      string   `json:"city"`
	Country   string   `gorm:"default:Germany" json:"country"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	AccountType string    `gorm:"default:standard" json:"accountType"`
	Status      string    `gorm:"default:active" json:"status"`
	Premium     Premium   `gorm:"embedded;embeddedPrefix:premium_" json:"premium"`
	Stats       UserStats `gorm:"embedded;embeddedPrefix:stats_" json:"stats"`

	EmailVerified         bool    `json:"emailVerified"`
	VerificationTokenHash *string `json:"-"`

	// At most one refresh token is honored at a time. A new login
	// overwrites it and kills the previous session
	RefreshToken *string `json:"-"`

	ResetTokenHash   *string    `json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`

	LastLogin *time.Time `json:"lastLogin"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`

	Dogs []Dog `gorm:"foreignKey:OwnerID" json:"dogs"`
}

// FullName mirrors the profile display name shown in the app
func (u *User) FullName() string {
	n := u.FirstName + " " + u.LastName
	if n == " " {
		return u.Username
	}

	return n
}
