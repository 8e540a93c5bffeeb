package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	portsrepo "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/repositories"
	portssvc "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/services"
)

// categoryService serves the static category registry used to label ledger
// entries on both sides.
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

// Ensure categoryService implements the CategorySvcFacade interface
var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

// ListCategories retrieves the categories of one ledger side in declared order.
func (s *categoryService) ListCategories(ctx context.Context, kind domain.LedgerKind) ([]domain.Category, error) {
	categories, err := s.categoryRepo.FindCategories(ctx, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	// Return empty slice if no categories found, not nil
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

// ResolveCategory retrieves a single category by side and code.
func (s *categoryService) ResolveCategory(ctx context.Context, kind domain.LedgerKind, code string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByCode(ctx, kind, code)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve category %s: %w", code, err)
	}
	return category, nil
}

// EnsureDefaultCategories seeds the built-in registry for any side whose
// stored registry is empty. Sides that already have categories are left
// untouched so local edits survive restarts.
func (s *categoryService) EnsureDefaultCategories(ctx context.Context) error {
	for _, kind := range []domain.LedgerKind{domain.KindPayable, domain.KindReceivable} {
		existing, err := s.categoryRepo.FindCategories(ctx, kind)
		if err != nil {
			s.LogError(ctx, err, "Failed to read category registry during seeding", slog.String("kind", string(kind)))
			return fmt.Errorf("failed to read category registry: %w", err)
		}
		if len(existing) > 0 {
			continue
		}

		defaults := domain.DefaultCategories(kind)
		if err := s.categoryRepo.SaveCategories(ctx, kind, defaults); err != nil {
			s.LogError(ctx, err, "Failed to seed default categories", slog.String("kind", string(kind)))
			return fmt.Errorf("failed to seed default categories: %w", err)
		}
		s.LogInfo(ctx, "Seeded default categories", slog.String("kind", string(kind)), slog.Int("count", len(defaults)))
	}
	return nil
}
