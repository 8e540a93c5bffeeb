package jsonfile

import (
	"context"
	"sync"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	portsrepo "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/repositories"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/models"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/utils/mapping"
)

const movementsCollection = "stock_movements"

// MovementRepository stores the append-only stock movement log.
type MovementRepository struct {
	store Backend
	mu    sync.RWMutex
}

// NewMovementRepository creates a new repository for the stock movement log.
func NewMovementRepository(store Backend) *MovementRepository {
	return &MovementRepository{store: store}
}

// Ensure MovementRepository implements the facade.
var _ portsrepo.MovementRepositoryFacade = (*MovementRepository)(nil)

func (r *MovementRepository) load() ([]models.StockMovement, error) {
	var records []models.StockMovement
	if err := r.store.Load(movementsCollection, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// recentFirst reverses the stored insertion order and applies the limit.
func recentFirst(records []models.StockMovement, limit int) []models.StockMovement {
	out := make([]models.StockMovement, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		out = append(out, records[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// ListMovements retrieves movements, most recent first.
func (r *MovementRepository) ListMovements(ctx context.Context, limit int) ([]domain.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainStockMovements(recentFirst(records, limit)), nil
}

// ListMovementsByProduct retrieves the movements of one product, most recent first.
func (r *MovementRepository) ListMovementsByProduct(ctx context.Context, productCode string, limit int) ([]domain.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}
	matching := make([]models.StockMovement, 0, len(records))
	for _, m := range records {
		if m.ProductCode == productCode {
			matching = append(matching, m)
		}
	}
	return mapping.ToDomainStockMovements(recentFirst(matching, limit)), nil
}

// AppendMovement assigns the next sequential number and appends the movement.
func (r *MovementRepository) AppendMovement(ctx context.Context, movement domain.StockMovement) (*domain.StockMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}

	max := 0
	for _, m := range records {
		if m.ID > max {
			max = m.ID
		}
	}
	movement.MovementID = max + 1

	records = append(records, mapping.ToModelStockMovement(movement))
	if err := r.store.Save(movementsCollection, records); err != nil {
		return nil, err
	}
	return &movement, nil
}
