package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/apperrors"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	portsrepo "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/repositories"
	portssvc "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/services"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/dto"
)

// clientService provides operations for managing the client register.
type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
	userSvc    portssvc.UserReaderSvc
}

// NewClientService creates a new ClientService.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade, userSvc portssvc.UserReaderSvc) portssvc.ClientSvcFacade {
	return &clientService{
		clientRepo: clientRepo,
		userSvc:    userSvc,
	}
}

// Ensure clientService implements the portssvc.ClientSvcFacade interface
var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// GetClientByID retrieves a specific client by ID.
// Implements portssvc.ClientSvcFacade
func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client %s: %w", clientID, err)
	}
	return client, nil
}

// ListClients retrieves all active clients, optionally narrowed by a
// case-insensitive name search.
// Implements portssvc.ClientSvcFacade
func (s *clientService) ListClients(ctx context.Context, nameSearch string) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients")
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	nameSearch = strings.TrimSpace(nameSearch)
	out := make([]domain.Client, 0, len(clients))
	for _, client := range clients {
		if nameSearch != "" && !containsFold(client.Name, nameSearch) {
			continue
		}
		out = append(out, client)
	}
	return out, nil
}

// CreateClient registers a new client. An email address, when given, must
// not belong to another client.
// Implements portssvc.ClientSvcFacade
func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}

	email := strings.TrimSpace(req.Email)
	if email != "" {
		if err := s.checkEmailFree(ctx, email); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	client := domain.Client{
		Name:     name,
		Email:    email,
		Phone:    strings.TrimSpace(req.Phone),
		Address:  strings.TrimSpace(req.Address),
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	created, err := s.clientRepo.CreateClient(ctx, client)
	if err != nil {
		s.LogError(ctx, err, "Failed to create client", slog.String("name", name))
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	s.LogInfo(ctx, "Client created", slog.String("client_id", created.ClientID), slog.String("name", created.Name))
	return created, nil
}

// UpdateClient applies partial changes to a client.
// Implements portssvc.ClientSvcFacade
func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, updaterUserID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client %s: %w", clientID, err)
	}

	// Apply updates from request DTO
	updated := false
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be blank", apperrors.ErrValidation)
		}
		client.Name = name
		updated = true
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email != "" && !strings.EqualFold(email, client.Email) {
			if err := s.checkEmailFree(ctx, email); err != nil {
				return nil, err
			}
		}
		client.Email = email
		updated = true
	}
	if req.Phone != nil {
		client.Phone = strings.TrimSpace(*req.Phone)
		updated = true
	}
	if req.Address != nil {
		client.Address = strings.TrimSpace(*req.Address)
		updated = true
	}

	if !updated {
		s.LogDebug(ctx, "No fields provided for client update", slog.String("client_id", clientID))
		return client, nil
	}

	now := time.Now().UTC()
	client.LastUpdatedAt = now
	client.LastUpdatedBy = updaterUserID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "Failed to save client update", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to save client update: %w", err)
	}

	s.LogInfo(ctx, "Client updated", slog.String("client_id", clientID))
	return client, nil
}

// DeactivateClient soft-deletes a client. Administrators only. Orders
// already placed keep their snapshot of the client's name.
// Implements portssvc.ClientSvcFacade
func (s *clientService) DeactivateClient(ctx context.Context, clientID string, requestingUserID string) error {
	if err := requireAdmin(ctx, s.userSvc, requestingUserID); err != nil {
		s.LogWarn(ctx, "Client deactivation denied",
			slog.String("client_id", clientID),
			slog.String("user_id", requestingUserID))
		return err
	}

	now := time.Now().UTC()
	if err := s.clientRepo.MarkClientInactive(ctx, clientID, now, requestingUserID); err != nil {
		return fmt.Errorf("failed to deactivate client %s: %w", clientID, err)
	}

	s.LogInfo(ctx, "Client deactivated", slog.String("client_id", clientID))
	return nil
}

// checkEmailFree returns ErrDuplicate when an active client already uses
// the email address.
func (s *clientService) checkEmailFree(ctx context.Context, email string) error {
	if _, err := s.clientRepo.FindClientByEmail(ctx, email); err == nil {
		return fmt.Errorf("%w: a client with email %s already exists", apperrors.ErrDuplicate, email)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check client email: %w", err)
	}
	return nil
}
