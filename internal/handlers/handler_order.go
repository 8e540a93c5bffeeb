package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/apperrors"
	portssvc "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/services"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/dto"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/middleware"

	"github.com/gin-gonic/gin"
)

// orderHandler handles HTTP requests related to orders
type orderHandler struct {
	orderService  portssvc.OrderSvcFacade
	exportService portssvc.ExportSvcFacade
}

// newOrderHandler creates a new orderHandler
func newOrderHandler(os portssvc.OrderSvcFacade, es portssvc.ExportSvcFacade) *orderHandler {
	return &orderHandler{
		orderService:  os,
		exportService: es,
	}
}

// registerOrderRoutes registers the order routes
func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade, exportService portssvc.ExportSvcFacade) {
	h := newOrderHandler(orderService, exportService)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("", h.listOrders)
		orders.GET("/:code", h.getOrder)
		orders.PUT("/:code/status", h.updateOrderStatus)
		orders.GET("/:code/receipt", h.downloadReceipt)
	}
}

// createOrder godoc
// @Summary Register an order
// @Description Registers a new order for a client, pricing every line from the product catalog
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   order body dto.CreateOrderRequest true "Order details"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown client/product"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create order"
// @Security BearerAuth
// @Router /orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create order request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("client_id", req.ClientID), slog.String("creator_user_id", creatorUserID))

	order, err := h.orderService.CreateOrder(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		// A missing client or product makes the order body invalid, not the path.
		case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating order", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create order in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		}
		return
	}

	logger.Info("Order created successfully", slog.String("order_code", order.Code))
	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// listOrders godoc
// @Summary List orders
// @Description Retrieves orders most recent first, narrowed by filters
// @Tags orders
// @Produce  json
// @Param   status query string false "Filter by status" Enums(PENDING, APPROVED, CANCELLED, COMPLETED)
// @Param   clientID query string false "Filter by client"
// @Param   search query string false "Substring search over code and client name"
// @Success 200 {object} dto.ListOrdersResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list orders"
// @Security BearerAuth
// @Router /orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var filters dto.OrderFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		logger.Warn("Failed to bind query params for list orders", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), filters)
	if err != nil {
		logger.Error("Failed to list orders from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListOrdersResponse(orders))
}

// getOrder godoc
// @Summary Get an order
// @Description Retrieves a single order by its code
// @Tags orders
// @Produce  json
// @Param   code path string true "Order code"
// @Success 200 {object} dto.OrderResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 500 {object} map[string]string "Failed to retrieve order"
// @Security BearerAuth
// @Router /orders/{code} [get]
func (h *orderHandler) getOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	order, err := h.orderService.GetOrderByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Order not found", slog.String("order_code", code))
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		logger.Error("Failed to get order from service", slog.String("error", err.Error()), slog.String("order_code", code))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// updateOrderStatus godoc
// @Summary Update an order's status
// @Description Moves an order to a new status
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   code path string true "Order code"
// @Param   status body dto.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 500 {object} map[string]string "Failed to update order"
// @Security BearerAuth
// @Router /orders/{code}/status [put]
func (h *orderHandler) updateOrderStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update order status request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(
		slog.String("order_code", code),
		slog.String("new_status", req.Status),
		slog.String("updater_user_id", updaterUserID),
	)

	order, err := h.orderService.UpdateOrderStatus(c.Request.Context(), code, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Order not found for status update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error updating order status", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update order status in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		}
		return
	}

	logger.Info("Order status updated successfully")
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// downloadReceipt godoc
// @Summary Download an order receipt
// @Description Renders a printable PDF receipt for one order
// @Tags orders
// @Produce application/pdf
// @Param   code path string true "Order code"
// @Success 200 {file} binary "Receipt download"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 500 {object} map[string]string "Failed to generate receipt"
// @Security BearerAuth
// @Router /orders/{code}/receipt [get]
func (h *orderHandler) downloadReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	data, filename, err := h.exportService.OrderReceiptPDF(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Order not found for receipt", slog.String("order_code", code))
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		logger.Error("Failed to generate receipt", slog.String("error", err.Error()), slog.String("order_code", code))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate receipt"})
		return
	}

	logger.Info("Receipt generated successfully", slog.String("order_code", code), slog.Int("size_bytes", len(data)))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
