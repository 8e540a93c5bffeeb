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

const (
	clientsCollection = "clients"
	clientIDPrefix    = "CLI"
)

// ClientRepository stores business clients.
type ClientRepository struct {
	store Backend
	mu    sync.RWMutex
}

// NewClientRepository creates a new repository for client data.
func NewClientRepository(store Backend) *ClientRepository {
	return &ClientRepository{store: store}
}

// Ensure ClientRepository implements the facade.
var _ portsrepo.ClientRepositoryFacade = (*ClientRepository)(nil)

func (r *ClientRepository) load() ([]models.Client, error) {
	var records []models.Client
	if err := r.store.Load(clientsCollection, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// FindClientByID retrieves an active client by ID.
func (r *ClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, m := range records {
		if m.ClientID == clientID && m.Active {
			client := mapping.ToDomainClient(m)
			return &client, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// FindClientByEmail retrieves an active client by email. The match is
// case-insensitive; clients without an email never match.
func (r *ClientRepository) FindClientByEmail(ctx context.Context, email string) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, m := range records {
		if m.Email != "" && strings.EqualFold(m.Email, email) && m.Active {
			client := mapping.ToDomainClient(m)
			return &client, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListClients retrieves all active clients in insertion order.
func (r *ClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}
	active := make([]models.Client, 0, len(records))
	for _, m := range records {
		if m.Active {
			active = append(active, m)
		}
	}
	return mapping.ToDomainClients(active), nil
}

// CreateClient assigns the next sequential ID and appends the client.
// The scan covers inactive records too, so retired IDs stay retired.
func (r *ClientRepository) CreateClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(records))
	for i, m := range records {
		ids[i] = m.ClientID
	}
	client.ClientID = nextSequentialID(clientIDPrefix, ids)

	records = append(records, mapping.ToModelClient(client))
	if err := r.store.Save(clientsCollection, records); err != nil {
		return nil, err
	}
	return &client, nil
}

// UpdateClient replaces the stored client matching client.ClientID.
func (r *ClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}
	for i, m := range records {
		if m.ClientID == client.ClientID && m.Active {
			records[i] = mapping.ToModelClient(client)
			return r.store.Save(clientsCollection, records)
		}
	}
	return apperrors.ErrNotFound
}

// MarkClientInactive soft-deletes a client.
func (r *ClientRepository) MarkClientInactive(ctx context.Context, clientID string, deactivatedAt time.Time, deactivatedBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}
	for i, m := range records {
		if m.ClientID == clientID && m.Active {
			records[i].Active = false
			records[i].LastUpdatedAt = deactivatedAt
			records[i].LastUpdatedBy = deactivatedBy
			return r.store.Save(clientsCollection, records)
		}
	}
	return apperrors.ErrNotFound
}
