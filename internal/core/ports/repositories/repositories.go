package repositories

// RepositoryProvider holds all repository facades required by the service
// layer. It is assembled once at startup from a storage adapter and handed to
// the service constructors.
type RepositoryProvider struct {
	LedgerRepo   LedgerRepositoryFacade
	CategoryRepo CategoryRepositoryFacade
	UserRepo     UserRepositoryFacade
	ProductRepo  ProductRepositoryFacade
	MovementRepo MovementRepositoryFacade
	ClientRepo   ClientRepositoryFacade
	OrderRepo    OrderRepositoryFacade
}
