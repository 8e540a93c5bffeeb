package mapping

import (
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/models"
)

// ToModelUser converts a domain User to its persisted form.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:             d.UserID,
		Username:           d.Username,
		Name:               d.Name,
		PasswordHash:       d.PasswordHash,
		Role:               string(d.Role),
		RefreshTokenHash:   d.RefreshTokenHash,
		RefreshTokenExpiry: d.RefreshTokenExpiryTime,
		GoogleID:           d.GoogleID,
		Email:              d.Email,
		LastLoginAt:        d.LastLoginAt,
		Active:             d.IsActive,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a persisted User to the domain form.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:                 m.UserID,
		Username:               m.Username,
		Name:                   m.Name,
		PasswordHash:           m.PasswordHash,
		Role:                   domain.UserRole(m.Role),
		RefreshTokenHash:       m.RefreshTokenHash,
		RefreshTokenExpiryTime: m.RefreshTokenExpiry,
		GoogleID:               m.GoogleID,
		Email:                  m.Email,
		LastLoginAt:            m.LastLoginAt,
		IsActive:               m.Active,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainUsers converts a persisted collection in order.
func ToDomainUsers(ms []models.User) []domain.User {
	ds := make([]domain.User, 0, len(ms))
	for _, m := range ms {
		ds = append(ds, ToDomainUser(m))
	}
	return ds
}
