package services

import (
	portsrepo "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/repositories"
	portssvc "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/services"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	// Create the container structure first
	container := &portssvc.ServiceContainer{}

	// Category and user services come first since most others depend on them
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.User = NewUserService(repos.UserRepo)

	container.Ledger = NewLedgerService(repos.LedgerRepo, container.Category, container.User)
	container.Inventory = NewInventoryService(repos.ProductRepo, repos.MovementRepo, container.User)
	container.Client = NewClientService(repos.ClientRepo, container.User)
	container.Order = NewOrderService(repos.OrderRepo, container.Client, container.Inventory)

	container.Reporting = NewReportService(
		repos.LedgerRepo,
		repos.CategoryRepo,
		WithStockData(repos.ProductRepo),
		WithSalesData(repos.OrderRepo),
	)
	container.Export = NewExportService(container.Reporting, container.Order, container.Client)

	// Initialize TokenService
	container.Token = NewTokenService(cfg, container.User)

	// Initialize GoogleOAuthHandlerSvcFacade
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}
