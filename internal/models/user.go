package models

import "time"

// User is the persisted form of a system user. The password and refresh
// token are stored only as hashes.
type User struct {
	UserID             string     `json:"user_id"`
	Username           string     `json:"username"`
	Name               string     `json:"name"`
	PasswordHash       string     `json:"password_hash"`
	Role               string     `json:"role"`
	RefreshTokenHash   string     `json:"refresh_token_hash,omitempty"`
	RefreshTokenExpiry *time.Time `json:"refresh_token_expiry,omitempty"`
	GoogleID           string     `json:"google_id,omitempty"`
	Email              string     `json:"email,omitempty"`
	LastLoginAt        *time.Time `json:"last_login,omitempty"`
	Active             bool       `json:"active"`
	AuditFields
}
