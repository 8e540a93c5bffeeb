package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/apperrors"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	portsrepo "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/repositories"
	portssvc "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/services"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/dto"
)

// initialStockNote labels the movement recorded for stock registered
// together with a new product.
const initialStockNote = "Initial stock"

// inventoryService provides catalog and stock movement operations.
// Product quantities only ever change through recorded movements, so the
// movement log replays to the current stock level of every product.
type inventoryService struct {
	BaseService
	productRepo  portsrepo.ProductRepositoryFacade
	movementRepo portsrepo.MovementRepositoryFacade
	userSvc      portssvc.UserReaderSvc
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(productRepo portsrepo.ProductRepositoryFacade, movementRepo portsrepo.MovementRepositoryFacade, userSvc portssvc.UserReaderSvc) portssvc.InventorySvcFacade {
	return &inventoryService{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		userSvc:      userSvc,
	}
}

// Ensure inventoryService implements the portssvc.InventorySvcFacade interface
var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

// GetProductByCode retrieves a specific product by its code.
// Implements portssvc.InventorySvcFacade
func (s *inventoryService) GetProductByCode(ctx context.Context, code string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to find product %s: %w", code, err)
	}
	return product, nil
}

// ListProducts retrieves the active products, narrowed by the given
// filters, sorted by name.
// Implements portssvc.InventorySvcFacade
func (s *inventoryService) ListProducts(ctx context.Context, filters dto.ProductFilters) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	out := make([]domain.Product, 0, len(products))
	for _, product := range products {
		if !matchesProductFilters(product, filters) {
			continue
		}
		out = append(out, product)
	}

	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

// ListLowStockProducts retrieves the active products at or below their
// minimum stock, sorted by name.
// Implements portssvc.InventorySvcFacade
func (s *inventoryService) ListLowStockProducts(ctx context.Context) ([]domain.Product, error) {
	return s.ListProducts(ctx, dto.ProductFilters{LowStock: true})
}

// CreateProduct registers a new product. The product starts at zero stock;
// any initial quantity is booked as the first movement so the log stays
// complete.
// Implements portssvc.InventorySvcFacade
func (s *inventoryService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", apperrors.ErrValidation)
	}
	if req.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: unitPrice cannot be negative", apperrors.ErrValidation)
	}
	if req.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative", apperrors.ErrValidation)
	}

	// Product names are unique, ignoring case.
	if _, err := s.productRepo.FindProductByName(ctx, name); err == nil {
		return nil, fmt.Errorf("%w: a product named %s already exists", apperrors.ErrDuplicate, name)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check product name: %w", err)
	}

	minStock := domain.DefaultMinStock
	if req.MinStock != nil {
		if *req.MinStock < 0 {
			return nil, fmt.Errorf("%w: minStock cannot be negative", apperrors.ErrValidation)
		}
		minStock = *req.MinStock
	}

	now := time.Now().UTC()
	product := domain.Product{
		Name:      name,
		Category:  category,
		UnitPrice: req.UnitPrice,
		Quantity:  0,
		MinStock:  minStock,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	created, err := s.productRepo.CreateProduct(ctx, product)
	if err != nil {
		s.LogError(ctx, err, "Failed to create product", slog.String("name", name))
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.LogInfo(ctx, "Product created", slog.String("code", created.Code), slog.String("name", created.Name))

	if req.Quantity > 0 {
		movementReq := dto.RecordMovementRequest{
			Type:     string(domain.MovementIn),
			Quantity: req.Quantity,
			Note:     initialStockNote,
		}
		if _, err := s.RecordMovement(ctx, created.Code, movementReq, creatorUserID); err != nil {
			s.LogError(ctx, err, "Failed to book initial stock", slog.String("code", created.Code))
			return nil, fmt.Errorf("failed to book initial stock: %w", err)
		}
		created.Quantity = req.Quantity
	}

	return created, nil
}

// UpdateProduct applies partial changes to a product. Stock levels are not
// editable here; they only move through RecordMovement.
// Implements portssvc.InventorySvcFacade
func (s *inventoryService) UpdateProduct(ctx context.Context, code string, req dto.UpdateProductRequest, updaterUserID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to find product %s: %w", code, err)
	}

	// Apply updates from request DTO
	updated := false
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be blank", apperrors.ErrValidation)
		}
		if !strings.EqualFold(name, product.Name) {
			if _, err := s.productRepo.FindProductByName(ctx, name); err == nil {
				return nil, fmt.Errorf("%w: a product named %s already exists", apperrors.ErrDuplicate, name)
			} else if !errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("failed to check product name: %w", err)
			}
		}
		product.Name = name
		updated = true
	}
	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if category == "" {
			return nil, fmt.Errorf("%w: category cannot be blank", apperrors.ErrValidation)
		}
		product.Category = category
		updated = true
	}
	if req.UnitPrice != nil {
		if req.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: unitPrice cannot be negative", apperrors.ErrValidation)
		}
		product.UnitPrice = *req.UnitPrice
		updated = true
	}
	if req.MinStock != nil {
		if *req.MinStock < 0 {
			return nil, fmt.Errorf("%w: minStock cannot be negative", apperrors.ErrValidation)
		}
		product.MinStock = *req.MinStock
		updated = true
	}

	if !updated {
		s.LogDebug(ctx, "No fields provided for product update", slog.String("code", code))
		return product, nil
	}

	now := time.Now().UTC()
	product.LastUpdatedAt = now
	product.LastUpdatedBy = updaterUserID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to save product update", slog.String("code", code))
		return nil, fmt.Errorf("failed to save product update: %w", err)
	}

	s.LogInfo(ctx, "Product updated", slog.String("code", code))
	return product, nil
}

// RecordMovement adjusts a product's stock and appends to the movement
// log, snapshotting the stock level before and after. An outgoing movement
// larger than the current stock is rejected.
// Implements portssvc.InventorySvcFacade
func (s *inventoryService) RecordMovement(ctx context.Context, code string, req dto.RecordMovementRequest, recorderUserID string) (*domain.StockMovement, error) {
	movementType := domain.MovementType(req.Type)
	if !movementType.IsValid() {
		return nil, fmt.Errorf("%w: type must be IN or OUT", apperrors.ErrValidation)
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}

	product, err := s.productRepo.FindProductByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to find product %s: %w", code, err)
	}

	previousStock := product.Quantity
	currentStock := previousStock + req.Quantity
	if movementType == domain.MovementOut {
		if previousStock < req.Quantity {
			return nil, fmt.Errorf("%w: insufficient stock, %d available", apperrors.ErrValidation, previousStock)
		}
		currentStock = previousStock - req.Quantity
	}

	now := time.Now().UTC()
	product.Quantity = currentStock
	product.LastUpdatedAt = now
	product.LastUpdatedBy = recorderUserID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to save stock change", slog.String("code", code))
		return nil, fmt.Errorf("failed to save stock change: %w", err)
	}

	movement := domain.StockMovement{
		ProductCode:   product.Code,
		ProductName:   product.Name,
		Type:          movementType,
		Quantity:      req.Quantity,
		PreviousStock: previousStock,
		CurrentStock:  currentStock,
		Note:          req.Note,
		RecordedBy:    recorderUserID,
		RecordedAt:    now,
	}

	recorded, err := s.movementRepo.AppendMovement(ctx, movement)
	if err != nil {
		s.LogError(ctx, err, "Failed to append stock movement", slog.String("code", code))
		return nil, fmt.Errorf("failed to append stock movement: %w", err)
	}

	s.LogInfo(ctx, "Stock movement recorded",
		slog.String("code", product.Code),
		slog.String("type", string(movementType)),
		slog.Int("quantity", req.Quantity),
		slog.Int("current_stock", currentStock))

	if product.IsLowStock() {
		s.LogWarn(ctx, "Product stock at or below minimum",
			slog.String("code", product.Code),
			slog.Int("quantity", product.Quantity),
			slog.Int("min_stock", product.MinStock))
	}

	return recorded, nil
}

// DeactivateProduct soft-deletes a product. Administrators only.
// Implements portssvc.InventorySvcFacade
func (s *inventoryService) DeactivateProduct(ctx context.Context, code string, requestingUserID string) error {
	if err := requireAdmin(ctx, s.userSvc, requestingUserID); err != nil {
		s.LogWarn(ctx, "Product deactivation denied",
			slog.String("code", code),
			slog.String("user_id", requestingUserID))
		return err
	}

	now := time.Now().UTC()
	if err := s.productRepo.MarkProductInactive(ctx, code, now, requestingUserID); err != nil {
		return fmt.Errorf("failed to deactivate product %s: %w", code, err)
	}

	s.LogInfo(ctx, "Product deactivated", slog.String("code", code))
	return nil
}

// ListMovements retrieves movements, most recent first.
// Implements portssvc.InventorySvcFacade
func (s *inventoryService) ListMovements(ctx context.Context, limit int) ([]domain.StockMovement, error) {
	movements, err := s.movementRepo.ListMovements(ctx, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list stock movements")
		return nil, fmt.Errorf("failed to list stock movements: %w", err)
	}
	if movements == nil {
		return []domain.StockMovement{}, nil
	}
	return movements, nil
}

// ListMovementsByProduct retrieves the movements of one product, most
// recent first.
// Implements portssvc.InventorySvcFacade
func (s *inventoryService) ListMovementsByProduct(ctx context.Context, productCode string, limit int) ([]domain.StockMovement, error) {
	movements, err := s.movementRepo.ListMovementsByProduct(ctx, productCode, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list stock movements for product", slog.String("code", productCode))
		return nil, fmt.Errorf("failed to list stock movements: %w", err)
	}
	if movements == nil {
		return []domain.StockMovement{}, nil
	}
	return movements, nil
}

// matchesProductFilters reports whether a product passes every requested
// filter.
func matchesProductFilters(product domain.Product, filters dto.ProductFilters) bool {
	if filters.Category != "" && !strings.EqualFold(product.Category, filters.Category) {
		return false
	}
	if filters.Name != "" && !containsFold(product.Name, filters.Name) {
		return false
	}
	if filters.Search != "" {
		if !containsFold(product.Code, filters.Search) &&
			!containsFold(product.Name, filters.Search) &&
			!containsFold(product.Category, filters.Search) {
			return false
		}
	}
	if filters.LowStock && !product.IsLowStock() {
		return false
	}
	return true
}
