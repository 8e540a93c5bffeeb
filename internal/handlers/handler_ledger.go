package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/apperrors"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	portssvc "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/services"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/dto"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/middleware"

	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for both ledger sides. Every route
// exists twice, under /payables and /receivables, bound to its kind.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
	}
}

// RegisterLedgerRoutes registers the payable and receivable routes.
func RegisterLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	sides := []struct {
		path string
		kind domain.LedgerKind
	}{
		{"/payables", domain.KindPayable},
		{"/receivables", domain.KindReceivable},
	}
	for _, side := range sides {
		group := rg.Group(side.path)
		kind := side.kind
		{
			group.POST("", h.createEntry(kind))
			group.GET("", h.listEntries(kind))
			group.GET("/alerts", h.getDueAlerts(kind))
			group.GET("/:id", h.getEntry(kind))
			group.PUT("/:id", h.updateEntry(kind))
			group.POST("/:id/settle", h.settleEntry(kind))
			group.DELETE("/:id", h.deactivateEntry(kind))
		}
	}
}

// createEntry godoc
// @Summary Create a ledger entry
// @Description Registers a new entry on one side of the ledger
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateLedgerEntryRequest true "Entry details"
// @Success 201 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown category"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create entry"
// @Security BearerAuth
// @Router /payables [post]
// @Router /receivables [post]
func (h *ledgerHandler) createEntry(kind domain.LedgerKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())

		var req dto.CreateLedgerEntryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind JSON for create entry request", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}

		creatorUserID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			logger.Error("Creator user ID not found in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		logger = logger.With(slog.String("kind", string(kind)), slog.String("creator_user_id", creatorUserID))

		entry, err := h.ledgerService.CreateEntry(c.Request.Context(), kind, req, creatorUserID)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrUnknownCategory):
				logger.Warn("Unknown category on entry creation", slog.String("error", err.Error()))
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, apperrors.ErrValidation):
				logger.Warn("Validation error creating entry", slog.String("error", err.Error()))
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				logger.Error("Failed to create entry in service", slog.String("error", err.Error()))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create entry"})
			}
			return
		}

		logger.Info("Entry created successfully", slog.String("entry_id", entry.EntryID))
		c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(entry))
	}
}

// listEntries godoc
// @Summary List ledger entries
// @Description Retrieves the active entries of one side, with urgency derived, narrowed by filters
// @Tags ledger
// @Produce  json
// @Param   status query string false "Filter by status" Enums(PENDING, SETTLED)
// @Param   category query string false "Filter by category code"
// @Param   urgency query string false "Filter by urgency" Enums(OVERDUE, DUE_TODAY, DUE_SOON, ON_TRACK)
// @Param   counterpart query string false "Counterpart substring filter"
// @Param   search query string false "Substring search over id, counterpart and description"
// @Param   dueFrom query string false "Earliest due date (YYYY-MM-DD)"
// @Param   dueTo query string false "Latest due date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListLedgerEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Security BearerAuth
// @Router /payables [get]
// @Router /receivables [get]
func (h *ledgerHandler) listEntries(kind domain.LedgerKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())

		var filters dto.LedgerEntryFilters
		if err := c.ShouldBindQuery(&filters); err != nil {
			logger.Warn("Failed to bind query params for list entries", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
			return
		}

		entries, err := h.ledgerService.ListEntries(c.Request.Context(), kind, filters)
		if err != nil {
			if errors.Is(err, apperrors.ErrValidation) {
				logger.Warn("Validation error listing entries", slog.String("error", err.Error()))
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logger.Error("Failed to list entries from service", slog.String("error", err.Error()), slog.String("kind", string(kind)))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
			return
		}

		c.JSON(http.StatusOK, dto.ToListLedgerEntriesResponse(entries))
	}
}

// getDueAlerts godoc
// @Summary Due alerts
// @Description Groups the pending entries of one side by urgency for the alert panel
// @Tags ledger
// @Produce  json
// @Success 200 {object} dto.DueAlertsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build alerts"
// @Security BearerAuth
// @Router /payables/alerts [get]
// @Router /receivables/alerts [get]
func (h *ledgerHandler) getDueAlerts(kind domain.LedgerKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())

		alerts, err := h.ledgerService.GetDueAlerts(c.Request.Context(), kind)
		if err != nil {
			logger.Error("Failed to build due alerts", slog.String("error", err.Error()), slog.String("kind", string(kind)))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build alerts"})
			return
		}

		c.JSON(http.StatusOK, dto.ToDueAlertsResponse(alerts))
	}
}

// getEntry godoc
// @Summary Get a ledger entry
// @Description Retrieves a single entry by its identifier, with urgency derived
// @Tags ledger
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve entry"
// @Security BearerAuth
// @Router /payables/{id} [get]
// @Router /receivables/{id} [get]
func (h *ledgerHandler) getEntry(kind domain.LedgerKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		entryID := c.Param("id")

		entry, err := h.ledgerService.GetEntryByID(c.Request.Context(), kind, entryID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Entry not found", slog.String("entry_id", entryID), slog.String("kind", string(kind)))
				c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
				return
			}
			logger.Error("Failed to get entry from service", slog.String("error", err.Error()), slog.String("entry_id", entryID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve entry"})
			return
		}

		c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
	}
}

// updateEntry godoc
// @Summary Update a ledger entry
// @Description Applies partial changes to a pending entry. Settled entries are frozen.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   id path string true "Entry ID"
// @Param   entry body dto.UpdateLedgerEntryRequest true "Fields to update"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown category"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry already settled"
// @Failure 500 {object} map[string]string "Failed to update entry"
// @Security BearerAuth
// @Router /payables/{id} [put]
// @Router /receivables/{id} [put]
func (h *ledgerHandler) updateEntry(kind domain.LedgerKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		entryID := c.Param("id")

		var req dto.UpdateLedgerEntryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for update entry request", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}

		updaterUserID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			logger.Error("Updater user ID not found in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		logger = logger.With(slog.String("entry_id", entryID), slog.String("updater_user_id", updaterUserID))

		entry, err := h.ledgerService.UpdateEntry(c.Request.Context(), kind, entryID, req, updaterUserID)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrNotFound):
				logger.Warn("Entry not found for update")
				c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			case errors.Is(err, apperrors.ErrAlreadySettled):
				logger.Warn("Update rejected, entry already settled")
				c.JSON(http.StatusConflict, gin.H{"error": "Settled entries cannot be modified"})
			case errors.Is(err, apperrors.ErrUnknownCategory), errors.Is(err, apperrors.ErrValidation):
				logger.Warn("Validation error updating entry", slog.String("error", err.Error()))
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				logger.Error("Failed to update entry in service", slog.String("error", err.Error()))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update entry"})
			}
			return
		}

		logger.Info("Entry updated successfully")
		c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
	}
}

// settleEntry godoc
// @Summary Settle a ledger entry
// @Description Marks a pending entry as settled. Settlement is one way; the date defaults to today.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   id path string true "Entry ID"
// @Param   settlement body dto.SettleLedgerEntryRequest false "Settlement date override"
// @Success 200 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Entry already settled"
// @Failure 500 {object} map[string]string "Failed to settle entry"
// @Security BearerAuth
// @Router /payables/{id}/settle [post]
// @Router /receivables/{id}/settle [post]
func (h *ledgerHandler) settleEntry(kind domain.LedgerKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		entryID := c.Param("id")

		// The body is optional; settling with no body uses today's date.
		var req dto.SettleLedgerEntryRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			logger.Warn("Failed to bind JSON for settle entry request", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}

		settlerUserID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			logger.Error("Settler user ID not found in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		logger = logger.With(slog.String("entry_id", entryID), slog.String("settler_user_id", settlerUserID))

		entry, err := h.ledgerService.SettleEntry(c.Request.Context(), kind, entryID, req, settlerUserID)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrNotFound):
				logger.Warn("Entry not found for settlement")
				c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			case errors.Is(err, apperrors.ErrAlreadySettled):
				logger.Warn("Entry already settled")
				c.JSON(http.StatusConflict, gin.H{"error": "Entry already settled"})
			case errors.Is(err, apperrors.ErrValidation):
				logger.Warn("Validation error settling entry", slog.String("error", err.Error()))
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				logger.Error("Failed to settle entry in service", slog.String("error", err.Error()))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to settle entry"})
			}
			return
		}

		logger.Info("Entry settled successfully")
		c.JSON(http.StatusOK, dto.ToLedgerEntryResponse(entry))
	}
}

// deactivateEntry godoc
// @Summary Deactivate a ledger entry
// @Description Soft-deletes an entry so it leaves listings and report totals (administrators only)
// @Tags ledger
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to deactivate entry"
// @Security BearerAuth
// @Router /payables/{id} [delete]
// @Router /receivables/{id} [delete]
func (h *ledgerHandler) deactivateEntry(kind domain.LedgerKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		entryID := c.Param("id")

		requestingUserID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			logger.Error("Requesting user ID not found in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		logger = logger.With(slog.String("entry_id", entryID), slog.String("requesting_user_id", requestingUserID))

		if err := h.ledgerService.DeactivateEntry(c.Request.Context(), kind, entryID, requestingUserID); err != nil {
			switch {
			case errors.Is(err, apperrors.ErrForbidden):
				logger.Warn("Entry deactivation forbidden")
				c.JSON(http.StatusForbidden, gin.H{"error": "Administrator role required"})
			case errors.Is(err, apperrors.ErrNotFound):
				logger.Warn("Entry not found for deactivation")
				c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			default:
				logger.Error("Failed to deactivate entry in service", slog.String("error", err.Error()))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate entry"})
			}
			return
		}

		logger.Info("Entry deactivated successfully")
		c.Status(http.StatusNoContent)
	}
}
