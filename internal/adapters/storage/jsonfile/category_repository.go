package jsonfile

import (
	"context"
	"sync"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/apperrors"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	portsrepo "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/repositories"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/models"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/utils/mapping"
)

const categoriesCollection = "categories"

// CategoryRepository stores the category registries of both ledger sides in
// one collection file.
type CategoryRepository struct {
	store Backend
	mu    sync.RWMutex
}

// NewCategoryRepository creates a new repository for category data.
func NewCategoryRepository(store Backend) *CategoryRepository {
	return &CategoryRepository{store: store}
}

// Ensure CategoryRepository implements the facade.
var _ portsrepo.CategoryRepositoryFacade = (*CategoryRepository)(nil)

func (r *CategoryRepository) load() ([]models.Category, error) {
	var records []models.Category
	if err := r.store.Load(categoriesCollection, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// FindCategories retrieves the registered categories of one ledger side in
// their stored order.
func (r *CategoryRepository) FindCategories(ctx context.Context, kind domain.LedgerKind) ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}
	matching := make([]models.Category, 0, len(records))
	for _, m := range records {
		if m.Kind == string(kind) {
			matching = append(matching, m)
		}
	}
	return mapping.ToDomainCategories(matching), nil
}

// FindCategoryByCode retrieves a single category by side and code.
func (r *CategoryRepository) FindCategoryByCode(ctx context.Context, kind domain.LedgerKind, code string) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, m := range records {
		if m.Kind == string(kind) && m.Code == code {
			cat := mapping.ToDomainCategory(m)
			return &cat, nil
		}
	}
	return nil, apperrors.ErrUnknownCategory
}

// SaveCategories replaces the stored registry of one ledger side, leaving
// the other side untouched.
func (r *CategoryRepository) SaveCategories(ctx context.Context, kind domain.LedgerKind, categories []domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}
	kept := make([]models.Category, 0, len(records)+len(categories))
	for _, m := range records {
		if m.Kind != string(kind) {
			kept = append(kept, m)
		}
	}
	kept = append(kept, mapping.ToModelCategories(categories)...)
	return r.store.Save(categoriesCollection, kept)
}
