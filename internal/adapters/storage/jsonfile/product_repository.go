package jsonfile

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/apperrors"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	portsrepo "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/repositories"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/models"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/utils/mapping"
)

const (
	productsCollection = "products"
	productCodePrefix  = "PRD"
)

// ProductRepository stores the product catalog.
type ProductRepository struct {
	store Backend
	mu    sync.RWMutex
}

// NewProductRepository creates a new repository for catalog data.
func NewProductRepository(store Backend) *ProductRepository {
	return &ProductRepository{store: store}
}

// Ensure ProductRepository implements the facade.
var _ portsrepo.ProductRepositoryFacade = (*ProductRepository)(nil)

func (r *ProductRepository) load() ([]models.Product, error) {
	var records []models.Product
	if err := r.store.Load(productsCollection, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// FindProductByCode retrieves an active product by code.
func (r *ProductRepository) FindProductByCode(ctx context.Context, code string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, m := range records {
		if m.Code == code && m.Active {
			product := mapping.ToDomainProduct(m)
			return &product, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// FindProductByName retrieves an active product by name. The match is
// case-insensitive.
func (r *ProductRepository) FindProductByName(ctx context.Context, name string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, m := range records {
		if strings.EqualFold(m.Name, name) && m.Active {
			product := mapping.ToDomainProduct(m)
			return &product, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListProducts retrieves all active products in insertion order.
func (r *ProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}
	active := make([]models.Product, 0, len(records))
	for _, m := range records {
		if m.Active {
			active = append(active, m)
		}
	}
	return mapping.ToDomainProducts(active), nil
}

// CreateProduct assigns the next sequential code and appends the product.
// The scan covers inactive records too, so retired codes stay retired.
func (r *ProductRepository) CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}

	codes := make([]string, len(records))
	for i, m := range records {
		codes[i] = m.Code
	}
	product.Code = nextSequentialID(productCodePrefix, codes)

	records = append(records, mapping.ToModelProduct(product))
	if err := r.store.Save(productsCollection, records); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct replaces the stored product matching product.Code.
func (r *ProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}
	for i, m := range records {
		if m.Code == product.Code && m.Active {
			records[i] = mapping.ToModelProduct(product)
			return r.store.Save(productsCollection, records)
		}
	}
	return apperrors.ErrNotFound
}

// MarkProductInactive soft-deletes a product.
func (r *ProductRepository) MarkProductInactive(ctx context.Context, code string, deactivatedAt time.Time, deactivatedBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}
	for i, m := range records {
		if m.Code == code && m.Active {
			records[i].Active = false
			records[i].LastUpdatedAt = deactivatedAt
			records[i].LastUpdatedBy = deactivatedBy
			return r.store.Save(productsCollection, records)
		}
	}
	return apperrors.ErrNotFound
}
