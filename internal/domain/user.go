package domain

import (
	"context"
	"strings"
	"time"
)

// User is an attendee account, keyed by the identity provider's subject.
// swagger:model User
type User struct {
	ID              string    `json:"id" db:"id"`
	Email           *string   `json:"email,omitempty" db:"email"`
	FirstName       *string   `json:"firstName,omitempty" db:"first_name"`
	LastName        *string   `json:"lastName,omitempty" db:"last_name"`
	ProfileImageURL *string   `json:"profileImageUrl,omitempty" db:"profile_image_url"`
	CallSign        *string   `json:"callSign,omitempty" db:"call_sign"`
	BadgeNumber     *string   `json:"badgeNumber,omitempty" db:"badge_number"`
	LicenseClass    *string   `json:"licenseClass,omitempty" db:"license_class"`
	IsRegistered    bool      `json:"isRegistered" db:"is_registered"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

// UnknownUserName is the display name used when nothing better is known.
const UnknownUserName = "Unknown User"

// DisplayName joins first and last name, or returns UnknownUserName when both are empty.
func DisplayName(firstName, lastName string) string {
	name := strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))
	if name == "" {
		return UnknownUserName
	}
	return name
}

// UserProfile is the attendee-facing view of a user.
// swagger:model UserProfile
type UserProfile struct {
	CallSign     string `json:"callSign"`
	Name         string `json:"name"`
	BadgeNumber  string `json:"badgeNumber"`
	LicenseClass string `json:"licenseClass"`
	IsRegistered bool   `json:"isRegistered"`
}

// ProfileFromUser derives the profile view of u. A nil user yields the unknown profile.
func ProfileFromUser(u *User) *UserProfile {
	if u == nil {
		return &UserProfile{Name: UnknownUserName}
	}
	return &UserProfile{
		CallSign:     deref(u.CallSign),
		Name:         DisplayName(deref(u.FirstName), deref(u.LastName)),
		BadgeNumber:  deref(u.BadgeNumber),
		LicenseClass: deref(u.LicenseClass),
		IsRegistered: u.IsRegistered,
	}
}

// ProfilePatch holds the attendee-editable profile fields. Nil fields are left unchanged.
type ProfilePatch struct {
	CallSign     *string `json:"callSign"`
	BadgeNumber  *string `json:"badgeNumber"`
	LicenseClass *string `json:"licenseClass"`
	IsRegistered *bool   `json:"isRegistered"`
}

// Empty reports whether the patch changes nothing.
func (p ProfilePatch) Empty() bool {
	return p.CallSign == nil && p.BadgeNumber == nil && p.LicenseClass == nil && p.IsRegistered == nil
}

// IdentityClaims are the verified claims of a bearer token.
type IdentityClaims struct {
	Subject         string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}

// User builds a minimal user from the claims alone.
func (c *IdentityClaims) User() *User {
	return &User{
		ID:              c.Subject,
		Email:           optional(c.Email),
		FirstName:       optional(c.FirstName),
		LastName:        optional(c.LastName),
		ProfileImageURL: optional(c.ProfileImageURL),
	}
}

// Profile builds a profile from the claims alone.
func (c *IdentityClaims) Profile() *UserProfile {
	return &UserProfile{Name: DisplayName(c.FirstName, c.LastName)}
}

// TokenIssuer issues signed identity tokens.
type TokenIssuer interface {
	Issue(claims IdentityClaims, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns its identity claims.
type TokenVerifier interface {
	Verify(token string) (*IdentityClaims, error)
}

// UserRepository defines user storage.
type UserRepository interface {
	GetUser(ctx context.Context, id string) (*User, error)
	// UpsertUser inserts u or refreshes its identity fields when it already exists.
	UpsertUser(ctx context.Context, u *User) (*User, error)
	// GetUserProfile never returns ErrNotFound: a missing user yields the "Unknown User" profile.
	GetUserProfile(ctx context.Context, userID string) (*UserProfile, error)
	UpdateUserProfile(ctx context.Context, userID string, patch ProfilePatch) (*UserProfile, error)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
