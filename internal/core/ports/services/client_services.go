package services

import (
	"context"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/dto"
)

// ClientReaderSvc defines read operations for client data
type ClientReaderSvc interface {
	// GetClientByID retrieves a specific client by ID.
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves all active clients, optionally narrowed by a
	// case-insensitive name search.
	ListClients(ctx context.Context, nameSearch string) ([]domain.Client, error)
}

// ClientWriterSvc defines write operations for client data
type ClientWriterSvc interface {
	// CreateClient registers a new client.
	CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error)

	// UpdateClient applies partial changes to a client.
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, updaterUserID string) (*domain.Client, error)
}

// ClientLifecycleSvc defines operations for retiring clients
type ClientLifecycleSvc interface {
	// DeactivateClient soft-deletes a client.
	DeactivateClient(ctx context.Context, clientID string, requestingUserID string) error
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
	ClientLifecycleSvc
}
