package dto

import (
	"time"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
)

// CreateClientRequest defines the data needed to register a client.
type CreateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateClientRequest defines the data allowed for updating a client.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateClientRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID      string    `json:"clientID"`
	Name          string    `json:"name"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ListClientsResponse wraps the list of clients.
type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
	Count   int              `json:"count"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO.
func ToClientResponse(cl *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:      cl.ClientID,
		Name:          cl.Name,
		Email:         cl.Email,
		Phone:         cl.Phone,
		Address:       cl.Address,
		IsActive:      cl.IsActive,
		CreatedAt:     cl.CreatedAt,
		CreatedBy:     cl.CreatedBy,
		LastUpdatedAt: cl.LastUpdatedAt,
		LastUpdatedBy: cl.LastUpdatedBy,
	}
}

// ToListClientsResponse converts a slice of domain.Client to ListClientsResponse DTO.
func ToListClientsResponse(clients []domain.Client) ListClientsResponse {
	responses := make([]ClientResponse, len(clients))
	for i, cl := range clients {
		responses[i] = ToClientResponse(&cl)
	}
	return ListClientsResponse{Clients: responses, Count: len(responses)}
}
