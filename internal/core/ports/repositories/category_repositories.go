package repositories

import (
	"context"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
)

// CategoryReader defines read operations for the category registry.
type CategoryReader interface {
	// FindCategories retrieves the registered categories for one ledger side
	// in their declared order.
	FindCategories(ctx context.Context, kind domain.LedgerKind) ([]domain.Category, error)
	// FindCategoryByCode retrieves a single category by side and code.
	// Returns apperrors.ErrUnknownCategory if no category matches.
	FindCategoryByCode(ctx context.Context, kind domain.LedgerKind, code string) (*domain.Category, error)
}

// CategoryWriter defines write operations for the category registry.
type CategoryWriter interface {
	// SaveCategories replaces the stored registry for one ledger side.
	SaveCategories(ctx context.Context, kind domain.LedgerKind, categories []domain.Category) error
}

// CategoryRepositoryFacade combines all category repository capabilities.
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
