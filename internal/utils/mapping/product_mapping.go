package mapping

import (
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/models"
)

// ToModelProduct converts a domain Product to its persisted form.
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		Code:        d.Code,
		Name:        d.Name,
		Category:    d.Category,
		UnitPrice:   d.UnitPrice,
		Quantity:    d.Quantity,
		MinStock:    d.MinStock,
		Active:      d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a persisted Product to the domain form.
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		Code:        m.Code,
		Name:        m.Name,
		Category:    m.Category,
		UnitPrice:   m.UnitPrice,
		Quantity:    m.Quantity,
		MinStock:    m.MinStock,
		IsActive:    m.Active,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProducts converts a persisted collection in order.
func ToDomainProducts(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, 0, len(ms))
	for _, m := range ms {
		ds = append(ds, ToDomainProduct(m))
	}
	return ds
}

// ToModelStockMovement converts a domain StockMovement to its persisted form.
func ToModelStockMovement(d domain.StockMovement) models.StockMovement {
	return models.StockMovement{
		ID:            d.MovementID,
		ProductCode:   d.ProductCode,
		ProductName:   d.ProductName,
		Type:          string(d.Type),
		Quantity:      d.Quantity,
		PreviousStock: d.PreviousStock,
		CurrentStock:  d.CurrentStock,
		Note:          d.Note,
		RecordedBy:    d.RecordedBy,
		RecordedAt:    d.RecordedAt,
	}
}

// ToDomainStockMovement converts a persisted StockMovement to the domain form.
func ToDomainStockMovement(m models.StockMovement) domain.StockMovement {
	return domain.StockMovement{
		MovementID:    m.ID,
		ProductCode:   m.ProductCode,
		ProductName:   m.ProductName,
		Type:          domain.MovementType(m.Type),
		Quantity:      m.Quantity,
		PreviousStock: m.PreviousStock,
		CurrentStock:  m.CurrentStock,
		Note:          m.Note,
		RecordedBy:    m.RecordedBy,
		RecordedAt:    m.RecordedAt,
	}
}

// ToDomainStockMovements converts a persisted collection in order.
func ToDomainStockMovements(ms []models.StockMovement) []domain.StockMovement {
	ds := make([]domain.StockMovement, 0, len(ms))
	for _, m := range ms {
		ds = append(ds, ToDomainStockMovement(m))
	}
	return ds
}
