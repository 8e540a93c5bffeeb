package repositories

import (
	"context"
	"time"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
)

// ProductReader defines read operations for catalog data.
type ProductReader interface {
	// FindProductByCode retrieves an active product by code.
	// Returns apperrors.ErrNotFound if no active product matches.
	FindProductByCode(ctx context.Context, code string) (*domain.Product, error)
	// FindProductByName retrieves an active product by exact name.
	// Returns apperrors.ErrNotFound if no active product matches.
	FindProductByName(ctx context.Context, name string) (*domain.Product, error)
	// ListProducts retrieves all active products in insertion order.
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// ProductWriter defines write operations for catalog data.
type ProductWriter interface {
	// CreateProduct assigns the next sequential product code and appends the
	// product. Codes of inactive products are never reissued. Returns the
	// stored product.
	CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error)
	// UpdateProduct replaces the stored product matching product.Code.
	// Returns apperrors.ErrNotFound if no active product matches.
	UpdateProduct(ctx context.Context, product domain.Product) error
}

// ProductLifecycleManager defines operations for retiring products.
type ProductLifecycleManager interface {
	// MarkProductInactive soft-deletes a product.
	// Returns apperrors.ErrNotFound if no active product matches.
	MarkProductInactive(ctx context.Context, code string, deactivatedAt time.Time, deactivatedBy string) error
}

// ProductRepositoryFacade combines all product repository capabilities.
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
	ProductLifecycleManager
}

// MovementReader defines read operations for the stock movement log.
type MovementReader interface {
	// ListMovements retrieves movements ordered most recent first. A limit of
	// zero or less returns the full log.
	ListMovements(ctx context.Context, limit int) ([]domain.StockMovement, error)
	// ListMovementsByProduct retrieves movements for one product, most recent first.
	ListMovementsByProduct(ctx context.Context, productCode string, limit int) ([]domain.StockMovement, error)
}

// MovementWriter defines write operations for the stock movement log.
type MovementWriter interface {
	// AppendMovement assigns the next sequential movement number and appends
	// the movement. The log is append-only. Returns the stored movement.
	AppendMovement(ctx context.Context, movement domain.StockMovement) (*domain.StockMovement, error)
}

// MovementRepositoryFacade combines all stock movement repository capabilities.
type MovementRepositoryFacade interface {
	MovementReader
	MovementWriter
}
