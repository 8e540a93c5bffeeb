package mapping

import (
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/models"
)

// ToModelOrder converts a domain Order to its persisted form.
func ToModelOrder(d domain.Order) models.Order {
	items := make([]models.OrderItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, models.OrderItem{
			ProductCode: it.ProductCode,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return models.Order{
		Code:        d.Code,
		ClientID:    d.ClientID,
		ClientName:  d.ClientName,
		Items:       items,
		Subtotal:    d.Subtotal,
		Total:       d.Total,
		Notes:       d.Notes,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOrder converts a persisted Order to the domain form.
func ToDomainOrder(m models.Order) domain.Order {
	items := make([]domain.OrderItem, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, domain.OrderItem{
			ProductCode: it.ProductCode,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return domain.Order{
		Code:        m.Code,
		ClientID:    m.ClientID,
		ClientName:  m.ClientName,
		Items:       items,
		Subtotal:    m.Subtotal,
		Total:       m.Total,
		Notes:       m.Notes,
		Status:      domain.OrderStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainOrders converts a persisted collection in order.
func ToDomainOrders(ms []models.Order) []domain.Order {
	ds := make([]domain.Order, 0, len(ms))
	for _, m := range ms {
		ds = append(ds, ToDomainOrder(m))
	}
	return ds
}
