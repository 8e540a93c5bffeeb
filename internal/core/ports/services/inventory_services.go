package services

import (
	"context"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/dto"
)

// ProductReaderSvc defines read operations for catalog data
type ProductReaderSvc interface {
	// GetProductByCode retrieves a specific product by its code.
	GetProductByCode(ctx context.Context, code string) (*domain.Product, error)

	// ListProducts retrieves all active products, optionally narrowed by filters.
	ListProducts(ctx context.Context, filters dto.ProductFilters) ([]domain.Product, error)

	// ListLowStockProducts retrieves active products at or below their minimum stock.
	ListLowStockProducts(ctx context.Context) ([]domain.Product, error)
}

// ProductWriterSvc defines write operations for catalog data
type ProductWriterSvc interface {
	// CreateProduct registers a new product.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error)

	// UpdateProduct applies partial changes to a product.
	UpdateProduct(ctx context.Context, code string, req dto.UpdateProductRequest, updaterUserID string) (*domain.Product, error)

	// RecordMovement adjusts a product's stock and appends to the movement log.
	RecordMovement(ctx context.Context, code string, req dto.RecordMovementRequest, recorderUserID string) (*domain.StockMovement, error)
}

// ProductLifecycleSvc defines operations for retiring products
type ProductLifecycleSvc interface {
	// DeactivateProduct soft-deletes a product.
	DeactivateProduct(ctx context.Context, code string, requestingUserID string) error
}

// MovementReaderSvc defines read operations for the stock movement log
type MovementReaderSvc interface {
	// ListMovements retrieves movements, most recent first. A limit of zero or
	// less returns the full log.
	ListMovements(ctx context.Context, limit int) ([]domain.StockMovement, error)

	// ListMovementsByProduct retrieves the movements of one product, most recent first.
	ListMovementsByProduct(ctx context.Context, productCode string, limit int) ([]domain.StockMovement, error)
}

// InventorySvcFacade combines all catalog and stock-related service interfaces
type InventorySvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
	ProductLifecycleSvc
	MovementReaderSvc
}
