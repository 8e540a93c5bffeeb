package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/apperrors"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	portsrepo "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/repositories"
	portssvc "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/services"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/dto"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/utils"
)

// Default administrator account seeded on first run.
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
	defaultAdminName     = "Administrator"
)

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 6

// userService provides account management and credential checks.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

// Ensure userService implements the portssvc.UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser creates a new user. Staff and admin accounts may only be
// created by an administrator; self-service registration (no creator)
// is restricted to customer accounts.
// Implements portssvc.UserSvcFacade
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	role := domain.UserRole(req.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", apperrors.ErrValidation, minPasswordLength)
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", apperrors.ErrValidation)
	}

	if role != domain.RoleCustomer {
		if creatorUserID == "" {
			return nil, fmt.Errorf("%w: self-service registration is limited to customer accounts", apperrors.ErrForbidden)
		}
		if err := requireAdmin(ctx, s, creatorUserID); err != nil {
			return nil, err
		}
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password for new user")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	newUserID := uuid.NewString()

	// A self-registered user is their own creator in the audit trail.
	createdBy := creatorUserID
	if createdBy == "" {
		createdBy = newUserID
	}

	user := domain.User{
		UserID:       newUserID,
		Username:     username,
		Name:         req.Name,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     createdBy,
			LastUpdatedAt: now,
			LastUpdatedBy: createdBy,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: username %s is taken", apperrors.ErrDuplicate, username)
		}
		s.LogError(ctx, err, "Failed to save new user", slog.String("username", username))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User created", slog.String("user_id", user.UserID), slog.String("role", string(role)))
	return &user, nil
}

// GetUserByID retrieves a user by ID.
// Implements portssvc.UserSvcFacade
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

// GetUserByUsername retrieves a user by username.
// Implements portssvc.UserSvcFacade
func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

// ListUsers retrieves all active users.
// Implements portssvc.UserSvcFacade
func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

// UpdateUser updates a user's profile. Users may rename themselves; role
// changes require an administrator.
// Implements portssvc.UserSvcFacade
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user for update: %w", err)
	}

	if userID != requestingUserID {
		if err := requireAdmin(ctx, s, requestingUserID); err != nil {
			return nil, err
		}
	}

	// Apply updates from request DTO
	updated := false
	if req.Name != nil {
		user.Name = *req.Name
		updated = true
	}
	if req.Role != nil {
		role := domain.UserRole(*req.Role)
		if !role.IsValid() {
			return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, *req.Role)
		}
		if err := requireAdmin(ctx, s, requestingUserID); err != nil {
			return nil, err
		}
		user.Role = role
		updated = true
	}

	if !updated {
		s.LogDebug(ctx, "No fields provided for user update", slog.String("user_id", userID))
		return user, nil
	}

	now := time.Now().UTC()
	user.LastUpdatedAt = now
	user.LastUpdatedBy = requestingUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to save user update", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save user update: %w", err)
	}

	s.LogInfo(ctx, "User updated", slog.String("user_id", userID))
	return user, nil
}

// ChangePassword replaces the caller's password after verifying the
// current one.
// Implements portssvc.UserSvcFacade
func (s *userService) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to find user for password change: %w", err)
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return fmt.Errorf("%w: current password does not match", apperrors.ErrUnauthorized)
	}
	if len(req.NewPassword) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", apperrors.ErrValidation, minPasswordLength)
	}

	newHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash new password", slog.String("user_id", userID))
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user.PasswordHash = newHash
	user.LastUpdatedAt = now
	user.LastUpdatedBy = userID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to save password change", slog.String("user_id", userID))
		return fmt.Errorf("failed to save password change: %w", err)
	}

	s.LogInfo(ctx, "Password changed", slog.String("user_id", userID))
	return nil
}

// UpdateRefreshToken stores the hash and expiry of a freshly issued
// refresh token, replacing any previous one.
// Implements portssvc.UserSvcFacade
func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to find user for refresh token update: %w", err)
	}

	user.RefreshTokenHash = refreshTokenHash
	user.RefreshTokenExpiryTime = &refreshTokenExpiryTime
	user.LastUpdatedAt = time.Now().UTC()
	user.LastUpdatedBy = userID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to store refresh token", slog.String("user_id", userID))
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

// ClearRefreshToken drops the stored refresh token, ending the session.
// Implements portssvc.UserSvcFacade
func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to find user for refresh token clearing: %w", err)
	}

	user.RefreshTokenHash = ""
	user.RefreshTokenExpiryTime = nil
	user.LastUpdatedAt = time.Now().UTC()
	user.LastUpdatedBy = userID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to clear refresh token", slog.String("user_id", userID))
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

// MarkLoginSuccess records the time of a successful login.
// Implements portssvc.UserSvcFacade
func (s *userService) MarkLoginSuccess(ctx context.Context, userID string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to find user for login bookkeeping: %w", err)
	}

	now := time.Now().UTC()
	user.LastLoginAt = &now

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to record login time", slog.String("user_id", userID))
		return fmt.Errorf("failed to record login time: %w", err)
	}
	return nil
}

// EnsureAdminUser seeds the default administrator account when no active
// admin exists, so a fresh installation is usable immediately.
// Implements portssvc.UserSvcFacade
func (s *userService) EnsureAdminUser(ctx context.Context) error {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users during admin seeding")
		return fmt.Errorf("failed to list users: %w", err)
	}
	for _, user := range users {
		if user.Role == domain.RoleAdmin {
			return nil
		}
	}

	passwordHash, err := utils.HashPassword(defaultAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	now := time.Now().UTC()
	admin := domain.User{
		UserID:       uuid.NewString(),
		Username:     defaultAdminUsername,
		Name:         defaultAdminName,
		PasswordHash: passwordHash,
		Role:         domain.RoleAdmin,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "system",
			LastUpdatedAt: now,
			LastUpdatedBy: "system",
		},
	}

	if err := s.userRepo.SaveUser(ctx, admin); err != nil {
		s.LogError(ctx, err, "Failed to seed default admin user")
		return fmt.Errorf("failed to seed default admin user: %w", err)
	}

	s.LogInfo(ctx, "Seeded default admin user", slog.String("username", defaultAdminUsername))
	return nil
}

// FindOrCreateGoogleUser resolves a user from a verified Google profile.
// A first sign-in is linked to an existing account with the same username
// when one exists, otherwise a customer account is provisioned.
// Implements portssvc.UserSvcFacade
func (s *userService) FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	if info.ID == "" || info.Email == "" {
		return nil, fmt.Errorf("%w: google profile is missing id or email", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByGoogleID(ctx, info.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up google user: %w", err)
	}

	// Link the Google identity to an existing local account registered
	// under the same email address.
	existing, err := s.userRepo.FindUserByUsername(ctx, info.Email)
	if err == nil {
		existing.GoogleID = info.ID
		if existing.Email == "" {
			existing.Email = info.Email
		}
		existing.LastUpdatedAt = time.Now().UTC()
		existing.LastUpdatedBy = existing.UserID
		if err := s.userRepo.UpdateUser(ctx, *existing); err != nil {
			return nil, fmt.Errorf("failed to link google account: %w", err)
		}
		s.LogInfo(ctx, "Linked google identity to existing user", slog.String("user_id", existing.UserID))
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	now := time.Now().UTC()
	newUserID := uuid.NewString()
	name := info.Name
	if name == "" {
		name = info.Email
	}

	// No password hash is stored; the account authenticates through
	// Google only until a password is set.
	newUser := domain.User{
		UserID:   newUserID,
		Username: info.Email,
		Name:     name,
		Role:     domain.RoleCustomer,
		GoogleID: info.ID,
		Email:    info.Email,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		s.LogError(ctx, err, "Failed to provision google user")
		return nil, fmt.Errorf("failed to provision google user: %w", err)
	}

	s.LogInfo(ctx, "Provisioned user from google sign-in", slog.String("user_id", newUser.UserID))
	return &newUser, nil
}

// DeactivateUser marks a user as deleted. Administrators only, and never
// against the acting account.
// Implements portssvc.UserSvcFacade
func (s *userService) DeactivateUser(ctx context.Context, userID string, requestingUserID string) error {
	if err := requireAdmin(ctx, s, requestingUserID); err != nil {
		s.LogWarn(ctx, "User deactivation denied",
			slog.String("target_user_id", userID),
			slog.String("user_id", requestingUserID))
		return err
	}
	if userID == requestingUserID {
		return fmt.Errorf("%w: cannot deactivate the account you are logged in with", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	if err := s.userRepo.MarkUserInactive(ctx, userID, now, requestingUserID); err != nil {
		return fmt.Errorf("failed to deactivate user %s: %w", userID, err)
	}

	s.LogInfo(ctx, "User deactivated", slog.String("user_id", userID))
	return nil
}

// AuthenticateUser checks a username and password pair. Unknown usernames
// and wrong passwords fail the same way so neither can be probed.
// Implements portssvc.UserSvcFacade
func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up user during authentication")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}
