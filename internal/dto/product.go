package dto

import (
	"time"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to register a product.
type CreateProductRequest struct {
	Name      string          `json:"name" binding:"required"`
	Category  string          `json:"category" binding:"required"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"required"`
	Quantity  int             `json:"quantity" binding:"gte=0"`
	MinStock  *int            `json:"minStock" binding:"omitempty,gte=0"` // Defaults when omitted
}

// UpdateProductRequest defines the data allowed for updating a product.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateProductRequest struct {
	Name      *string          `json:"name"`
	Category  *string          `json:"category"`
	UnitPrice *decimal.Decimal `json:"unitPrice"`
	MinStock  *int             `json:"minStock" binding:"omitempty,gte=0"`
}

// RecordMovementRequest defines the data needed to adjust a product's stock.
type RecordMovementRequest struct {
	Type     string `json:"type" binding:"required,oneof=IN OUT"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
	Note     string `json:"note"` // Optional
}

// ProductFilters defines query parameters for listing products.
type ProductFilters struct {
	Category string `form:"category"`
	Name     string `form:"name"`   // Case-insensitive substring match
	Search   string `form:"search"` // Case-insensitive substring over code, name and category
	LowStock bool   `form:"lowStock"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Quantity      int             `json:"quantity"`
	MinStock      int             `json:"minStock"`
	LowStock      bool            `json:"lowStock"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ListProductsResponse wraps the list of products.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
	Count    int               `json:"count"`
}

// MovementResponse defines the data returned for a stock movement.
type MovementResponse struct {
	MovementID    int       `json:"movementID"`
	ProductCode   string    `json:"productCode"`
	ProductName   string    `json:"productName"`
	Type          string    `json:"type"`
	Quantity      int       `json:"quantity"`
	PreviousStock int       `json:"previousStock"`
	CurrentStock  int       `json:"currentStock"`
	Note          string    `json:"note,omitempty"`
	RecordedBy    string    `json:"recordedBy"`
	RecordedAt    time.Time `json:"recordedAt"`
}

// ListMovementsResponse wraps the stock movement log.
type ListMovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		Code:          p.Code,
		Name:          p.Name,
		Category:      p.Category,
		UnitPrice:     p.UnitPrice,
		Quantity:      p.Quantity,
		MinStock:      p.MinStock,
		LowStock:      p.IsLowStock(),
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
		LastUpdatedAt: p.LastUpdatedAt,
		LastUpdatedBy: p.LastUpdatedBy,
	}
}

// ToListProductsResponse converts a slice of domain.Product to ListProductsResponse DTO.
func ToListProductsResponse(products []domain.Product) ListProductsResponse {
	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = ToProductResponse(&p)
	}
	return ListProductsResponse{Products: responses, Count: len(responses)}
}

// ToMovementResponse converts a domain.StockMovement to MovementResponse DTO.
func ToMovementResponse(m *domain.StockMovement) MovementResponse {
	return MovementResponse{
		MovementID:    m.MovementID,
		ProductCode:   m.ProductCode,
		ProductName:   m.ProductName,
		Type:          string(m.Type),
		Quantity:      m.Quantity,
		PreviousStock: m.PreviousStock,
		CurrentStock:  m.CurrentStock,
		Note:          m.Note,
		RecordedBy:    m.RecordedBy,
		RecordedAt:    m.RecordedAt,
	}
}

// ToListMovementsResponse converts a slice of domain.StockMovement to ListMovementsResponse DTO.
func ToListMovementsResponse(movements []domain.StockMovement) ListMovementsResponse {
	responses := make([]MovementResponse, len(movements))
	for i, m := range movements {
		responses[i] = ToMovementResponse(&m)
	}
	return ListMovementsResponse{Movements: responses}
}
