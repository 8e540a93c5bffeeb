package services

import (
	"context"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
)

// CategoryReaderSvc defines read operations for the category registry
type CategoryReaderSvc interface {
	// ListCategories retrieves the categories of one ledger side in declared order.
	ListCategories(ctx context.Context, kind domain.LedgerKind) ([]domain.Category, error)

	// ResolveCategory retrieves a single category by side and code.
	ResolveCategory(ctx context.Context, kind domain.LedgerKind, code string) (*domain.Category, error)
}

// CategoryWriterSvc defines write operations for the category registry
type CategoryWriterSvc interface {
	// EnsureDefaultCategories seeds the default registry for any side whose
	// stored registry is empty. Existing registries are left untouched.
	EnsureDefaultCategories(ctx context.Context) error
}

// CategorySvcFacade combines all category-related service interfaces
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
}
