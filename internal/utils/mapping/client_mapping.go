package mapping

import (
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/models"
)

// ToModelClient converts a domain Client to its persisted form.
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:    d.ClientID,
		Name:        d.Name,
		Email:       d.Email,
		Phone:       d.Phone,
		Address:     d.Address,
		Active:      d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainClient converts a persisted Client to the domain form.
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:    m.ClientID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		Address:     m.Address,
		IsActive:    m.Active,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainClients converts a persisted collection in order.
func ToDomainClients(ms []models.Client) []domain.Client {
	ds := make([]domain.Client, 0, len(ms))
	for _, m := range ms {
		ds = append(ds, ToDomainClient(m))
	}
	return ds
}
