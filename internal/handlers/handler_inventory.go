package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/apperrors"
	portssvc "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/services"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/dto"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/middleware"

	"github.com/gin-gonic/gin"
)

// defaultMovementLimit bounds movement listings when no limit is given.
const defaultMovementLimit = 50

// inventoryHandler handles HTTP requests related to products and stock
// movements
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

// newInventoryHandler creates a new inventoryHandler
func newInventoryHandler(is portssvc.InventorySvcFacade) *inventoryHandler {
	return &inventoryHandler{
		inventoryService: is,
	}
}

// registerInventoryRoutes registers the product and movement routes
func registerInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := newInventoryHandler(inventoryService)

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/low-stock", h.listLowStockProducts)
		products.GET("/:code", h.getProduct)
		products.PUT("/:code", h.updateProduct)
		products.DELETE("/:code", h.deactivateProduct)
		products.POST("/:code/movements", h.recordMovement)
		products.GET("/:code/movements", h.listProductMovements)
	}

	movements := rg.Group("/movements")
	{
		movements.GET("", h.listMovements)
	}
}

// createProduct godoc
// @Summary Register a product
// @Description Registers a new product; a starting quantity is booked as an initial stock movement
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Product name already taken"
// @Failure 500 {object} map[string]string "Failed to create product"
// @Security BearerAuth
// @Router /products [post]
func (h *inventoryHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create product request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("product_name", req.Name), slog.String("creator_user_id", creatorUserID))

	product, err := h.inventoryService.CreateProduct(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Product name already taken")
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating product", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create product in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		}
		return
	}

	logger.Info("Product created successfully", slog.String("product_code", product.Code))
	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// listProducts godoc
// @Summary List products
// @Description Retrieves the active products sorted by name, narrowed by filters
// @Tags inventory
// @Produce  json
// @Param   category query string false "Filter by category (exact, case-insensitive)"
// @Param   name query string false "Name substring filter"
// @Param   search query string false "Substring search over code, name and category"
// @Param   lowStock query bool false "Only products at or below their minimum"
// @Success 200 {object} dto.ListProductsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list products"
// @Security BearerAuth
// @Router /products [get]
func (h *inventoryHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var filters dto.ProductFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		logger.Warn("Failed to bind query params for list products", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	products, err := h.inventoryService.ListProducts(c.Request.Context(), filters)
	if err != nil {
		logger.Error("Failed to list products from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListProductsResponse(products))
}

// listLowStockProducts godoc
// @Summary List low stock products
// @Description Retrieves the active products at or below their minimum stock level
// @Tags inventory
// @Produce  json
// @Success 200 {object} dto.ListProductsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list products"
// @Security BearerAuth
// @Router /products/low-stock [get]
func (h *inventoryHandler) listLowStockProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	products, err := h.inventoryService.ListLowStockProducts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list low stock products from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListProductsResponse(products))
}

// getProduct godoc
// @Summary Get a product
// @Description Retrieves a single product by its code
// @Tags inventory
// @Produce  json
// @Param   code path string true "Product code"
// @Success 200 {object} dto.ProductResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to retrieve product"
// @Security BearerAuth
// @Router /products/{code} [get]
func (h *inventoryHandler) getProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	product, err := h.inventoryService.GetProductByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Product not found", slog.String("product_code", code))
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		logger.Error("Failed to get product from service", slog.String("error", err.Error()), slog.String("product_code", code))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// updateProduct godoc
// @Summary Update a product
// @Description Applies partial changes to a product's descriptive fields. Stock changes go through movements.
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   code path string true "Product code"
// @Param   product body dto.UpdateProductRequest true "Fields to update"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 409 {object} map[string]string "Product name already taken"
// @Failure 500 {object} map[string]string "Failed to update product"
// @Security BearerAuth
// @Router /products/{code} [put]
func (h *inventoryHandler) updateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update product request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("product_code", code), slog.String("updater_user_id", updaterUserID))

	product, err := h.inventoryService.UpdateProduct(c.Request.Context(), code, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Product not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Product name already taken")
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error updating product", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update product in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		}
		return
	}

	logger.Info("Product updated successfully")
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// deactivateProduct godoc
// @Summary Deactivate a product
// @Description Soft-deletes a product so it leaves the catalog (administrators only). Its movement history stays.
// @Tags inventory
// @Produce  json
// @Param   code path string true "Product code"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to deactivate product"
// @Security BearerAuth
// @Router /products/{code} [delete]
func (h *inventoryHandler) deactivateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Requesting user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("product_code", code), slog.String("requesting_user_id", requestingUserID))

	if err := h.inventoryService.DeactivateProduct(c.Request.Context(), code, requestingUserID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			logger.Warn("Product deactivation forbidden")
			c.JSON(http.StatusForbidden, gin.H{"error": "Administrator role required"})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Product not found for deactivation")
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		default:
			logger.Error("Failed to deactivate product in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate product"})
		}
		return
	}

	logger.Info("Product deactivated successfully")
	c.Status(http.StatusNoContent)
}

// recordMovement godoc
// @Summary Record a stock movement
// @Description Books an IN or OUT movement against a product and updates its stock level
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   code path string true "Product code"
// @Param   movement body dto.RecordMovementRequest true "Movement details"
// @Success 201 {object} dto.MovementResponse
// @Failure 400 {object} map[string]string "Invalid input or insufficient stock"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to record movement"
// @Security BearerAuth
// @Router /products/{code}/movements [post]
func (h *inventoryHandler) recordMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	var req dto.RecordMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for record movement request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	recorderUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Recorder user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(
		slog.String("product_code", code),
		slog.String("movement_type", req.Type),
		slog.String("recorder_user_id", recorderUserID),
	)

	movement, err := h.inventoryService.RecordMovement(c.Request.Context(), code, req, recorderUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Product not found for movement")
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error recording movement", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to record movement in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record movement"})
		}
		return
	}

	logger.Info("Movement recorded successfully", slog.Int("movement_id", movement.MovementID), slog.Int("current_stock", movement.CurrentStock))
	c.JSON(http.StatusCreated, dto.ToMovementResponse(movement))
}

// listProductMovements godoc
// @Summary List a product's movements
// @Description Retrieves the movement history of one product, most recent first
// @Tags inventory
// @Produce  json
// @Param   code path string true "Product code"
// @Param   limit query int false "Maximum entries to return" default(50)
// @Success 200 {object} dto.ListMovementsResponse
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to list movements"
// @Security BearerAuth
// @Router /products/{code}/movements [get]
func (h *inventoryHandler) listProductMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	limit, ok := h.parseLimit(c, logger)
	if !ok {
		return
	}

	movements, err := h.inventoryService.ListMovementsByProduct(c.Request.Context(), code, limit)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Product not found for movement listing", slog.String("product_code", code))
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		logger.Error("Failed to list product movements from service", slog.String("error", err.Error()), slog.String("product_code", code))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list movements"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListMovementsResponse(movements))
}

// listMovements godoc
// @Summary List stock movements
// @Description Retrieves the movement log across all products, most recent first
// @Tags inventory
// @Produce  json
// @Param   limit query int false "Maximum entries to return" default(50)
// @Success 200 {object} dto.ListMovementsResponse
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list movements"
// @Security BearerAuth
// @Router /movements [get]
func (h *inventoryHandler) listMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, ok := h.parseLimit(c, logger)
	if !ok {
		return
	}

	movements, err := h.inventoryService.ListMovements(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Failed to list movements from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list movements"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListMovementsResponse(movements))
}

// parseLimit reads the limit query parameter. Responds with 400 and returns
// ok=false when it is not a positive number.
func (h *inventoryHandler) parseLimit(c *gin.Context, logger *slog.Logger) (int, bool) {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(defaultMovementLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		logger.Warn("Invalid limit for movement listing", slog.String("limit", limitStr))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'limit' must be a positive number"})
		return 0, false
	}
	return limit, true
}
