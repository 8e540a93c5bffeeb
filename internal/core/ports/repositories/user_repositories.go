package repositories

import (
	"context"
	"time"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves an active user by ID.
	// Returns apperrors.ErrNotFound if no active user matches.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	// FindUserByUsername retrieves an active user by username.
	// Returns apperrors.ErrNotFound if no active user matches.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindUserByGoogleID retrieves an active user by linked Google account ID.
	// Returns apperrors.ErrNotFound if no active user matches.
	FindUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error)
	// ListUsers retrieves all active users in insertion order.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser appends a new user to the collection.
	SaveUser(ctx context.Context, user domain.User) error
	// UpdateUser replaces the stored user matching user.UserID.
	// Returns apperrors.ErrNotFound if no active user matches.
	UpdateUser(ctx context.Context, user domain.User) error
}

// UserLifecycleManager defines operations for retiring users.
type UserLifecycleManager interface {
	// MarkUserInactive soft-deletes a user.
	// Returns apperrors.ErrNotFound if no active user matches.
	MarkUserInactive(ctx context.Context, userID string, deactivatedAt time.Time, deactivatedBy string) error
}

// UserRepositoryFacade combines all user repository capabilities.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserLifecycleManager
}
