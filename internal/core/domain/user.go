package domain

import "time"

// UserRole defines the flat role hierarchy of the system.
type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleStaff    UserRole = "STAFF"
	RoleCustomer UserRole = "CUSTOMER"
)

// roleRank orders roles for minimum-role checks. Higher is stronger.
var roleRank = map[UserRole]int{
	RoleCustomer: 1,
	RoleStaff:    2,
	RoleAdmin:    3,
}

// IsValid reports whether the role is one of the known roles.
func (r UserRole) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether the role satisfies a required minimum role.
func (r UserRole) AtLeast(required UserRole) bool {
	return roleRank[r] >= roleRank[required]
}

// User represents an account holder of the system.
type User struct {
	UserID       string   `json:"userID"` // Primary key (UUID)
	Username     string   `json:"username"`
	Name         string   `json:"name"`
	PasswordHash string   `json:"-"` // bcrypt hash, never serialized outward
	Role         UserRole `json:"role"`

	// Rotating refresh token, stored hashed.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	// Set for users provisioned through Google sign-in.
	GoogleID string `json:"googleID,omitempty"`
	Email    string `json:"email,omitempty"`

	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	IsActive    bool       `json:"isActive"`
	AuditFields
}

// GoogleUserInfo holds the profile returned by Google's userinfo endpoint.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
	Locale        string `json:"locale"`
}
