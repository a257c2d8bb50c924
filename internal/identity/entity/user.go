package entity

import "time"

// User is an account identified by a unique email and username.
//
// Users are created at registration (or on first federated login) and are
// never deleted by the auth flow.
type User struct {
	ID         int64
	Email      string
	Username   string
	Role       string
	IsVerified bool
	GoogleID   string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	OTP OTPState
}

// OTPState is the ephemeral login code state embedded in a User.
//
// Code and ExpiresAt are set and cleared together: a cleared state means no
// login challenge is outstanding.
type OTPState struct {
	Code      string
	ExpiresAt time.Time
}

// Present reports whether a code is currently stored.
func (s OTPState) Present() bool {
	return s.Code != "" && !s.ExpiresAt.IsZero()
}

// NewUser is the payload for inserting a user row.
type NewUser struct {
	ID         int64
	Email      string
	Username   string
	Role       string
	IsVerified bool
	GoogleID   string
}
