package jsonfile

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/apperrors"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	portsrepo "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/repositories"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/models"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/utils/mapping"
)

const usersCollection = "users"

// UserRepository stores user accounts.
type UserRepository struct {
	store Backend
	mu    sync.RWMutex
}

// NewUserRepository creates a new repository for user data.
func NewUserRepository(store Backend) *UserRepository {
	return &UserRepository{store: store}
}

// Ensure UserRepository implements the facade.
var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

func (r *UserRepository) load() ([]models.User, error) {
	var records []models.User
	if err := r.store.Load(usersCollection, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// FindUserByID retrieves an active user by ID.
func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, m := range records {
		if m.UserID == userID && m.Active {
			user := mapping.ToDomainUser(m)
			return &user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// FindUserByUsername retrieves an active user by username. The match is
// case-insensitive.
func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, m := range records {
		if strings.EqualFold(m.Username, username) && m.Active {
			user := mapping.ToDomainUser(m)
			return &user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// FindUserByGoogleID retrieves an active user by linked Google account ID.
func (r *UserRepository) FindUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, m := range records {
		if m.GoogleID != "" && m.GoogleID == googleID && m.Active {
			user := mapping.ToDomainUser(m)
			return &user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListUsers retrieves all active users in insertion order.
func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}
	active := make([]models.User, 0, len(records))
	for _, m := range records {
		if m.Active {
			active = append(active, m)
		}
	}
	return mapping.ToDomainUsers(active), nil
}

// SaveUser appends a new user. Usernames are unique among active users, the
// way a database unique index would enforce it.
func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}
	for _, m := range records {
		if strings.EqualFold(m.Username, user.Username) && m.Active {
			return apperrors.ErrDuplicate
		}
	}
	records = append(records, mapping.ToModelUser(user))
	return r.store.Save(usersCollection, records)
}

// UpdateUser replaces the stored user matching user.UserID.
func (r *UserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}
	for i, m := range records {
		if m.UserID == user.UserID && m.Active {
			records[i] = mapping.ToModelUser(user)
			return r.store.Save(usersCollection, records)
		}
	}
	return apperrors.ErrNotFound
}

// MarkUserInactive soft-deletes a user.
func (r *UserRepository) MarkUserInactive(ctx context.Context, userID string, deactivatedAt time.Time, deactivatedBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}
	for i, m := range records {
		if m.UserID == userID && m.Active {
			records[i].Active = false
			records[i].LastUpdatedAt = deactivatedAt
			records[i].LastUpdatedBy = deactivatedBy
			return r.store.Save(usersCollection, records)
		}
	}
	return apperrors.ErrNotFound
}
