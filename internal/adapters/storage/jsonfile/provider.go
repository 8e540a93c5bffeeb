package jsonfile

import (
	portsrepo "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/repositories"
)

// NewRepositoryProvider assembles all repository facades over one store.
func NewRepositoryProvider(store Backend) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo:   NewLedgerRepository(store),
		CategoryRepo: NewCategoryRepository(store),
		UserRepo:     NewUserRepository(store),
		ProductRepo:  NewProductRepository(store),
		MovementRepo: NewMovementRepository(store),
		ClientRepo:   NewClientRepository(store),
		OrderRepo:    NewOrderRepository(store),
	}
}
