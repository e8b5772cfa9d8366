package domain

import "time"

type User struct {
	UserID           string
	Username         string
	PasswordHash     string
	OrganizationName string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Identity is the owner resolved from a valid session token.
type Identity struct {
	UserID           string
	Username         string
	OrganizationName string
	CreatedAt        time.Time

	TokenID string
}

type SessionToken struct {
	Token     string
	ExpiresAt time.Time
}
