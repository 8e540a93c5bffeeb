package mapping

import (
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/models"
)

// ToModelCategory converts a domain Category to its persisted form.
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		Code:        d.Code,
		Kind:        string(d.Kind),
		DisplayName: d.DisplayName,
		Nature:      string(d.Nature),
		Tag:         d.Tag,
	}
}

// ToDomainCategory converts a persisted Category to the domain form.
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		Code:        m.Code,
		Kind:        domain.LedgerKind(m.Kind),
		DisplayName: m.DisplayName,
		Nature:      domain.CategoryNature(m.Nature),
		Tag:         m.Tag,
	}
}

// ToModelCategories converts a registry in order.
func ToModelCategories(ds []domain.Category) []models.Category {
	ms := make([]models.Category, 0, len(ds))
	for _, d := range ds {
		ms = append(ms, ToModelCategory(d))
	}
	return ms
}

// ToDomainCategories converts a persisted registry in order.
func ToDomainCategories(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, 0, len(ms))
	for _, m := range ms {
		ds = append(ds, ToDomainCategory(m))
	}
	return ds
}
