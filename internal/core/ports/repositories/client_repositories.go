package repositories

import (
	"context"
	"time"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
)

// ClientReader defines read operations for client data.
type ClientReader interface {
	// FindClientByID retrieves an active client by ID.
	// Returns apperrors.ErrNotFound if no active client matches.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	// FindClientByEmail retrieves an active client by email.
	// Returns apperrors.ErrNotFound if no active client matches.
	FindClientByEmail(ctx context.Context, email string) (*domain.Client, error)
	// ListClients retrieves all active clients in insertion order.
	ListClients(ctx context.Context) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data.
type ClientWriter interface {
	// CreateClient assigns the next sequential client ID and appends the
	// client. IDs of inactive clients are never reissued. Returns the stored
	// client.
	CreateClient(ctx context.Context, client domain.Client) (*domain.Client, error)
	// UpdateClient replaces the stored client matching client.ClientID.
	// Returns apperrors.ErrNotFound if no active client matches.
	UpdateClient(ctx context.Context, client domain.Client) error
}

// ClientLifecycleManager defines operations for retiring clients.
type ClientLifecycleManager interface {
	// MarkClientInactive soft-deletes a client.
	// Returns apperrors.ErrNotFound if no active client matches.
	MarkClientInactive(ctx context.Context, clientID string, deactivatedAt time.Time, deactivatedBy string) error
}

// ClientRepositoryFacade combines all client repository capabilities.
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
	ClientLifecycleManager
}
