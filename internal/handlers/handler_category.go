package handlers

import (
	"log/slog"
	"net/http"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
	portssvc "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/services"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/dto"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/middleware"

	"github.com/gin-gonic/gin"
)

type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

func newCategoryHandler(cs portssvc.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{
		categoryService: cs,
	}
}

// registerCategoryRoutes registers the category routes.
func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := newCategoryHandler(categoryService)
	rg.GET("/categories", h.listCategories)
}

// listCategories godoc
// @Summary List categories
// @Description Retrieves the categories of one side of the ledger, sorted by code
// @Tags categories
// @Produce  json
// @Param   kind query string true "Ledger side" Enums(PAYABLE, RECEIVABLE)
// @Success 200 {object} dto.ListCategoriesResponse
// @Failure 400 {object} map[string]string "Invalid kind"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list categories"
// @Security BearerAuth
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	kind := domain.LedgerKind(c.Query("kind"))
	if !kind.IsValid() {
		logger.Warn("Invalid ledger kind for category listing", slog.String("kind", string(kind)))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'kind' must be PAYABLE or RECEIVABLE"})
		return
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), kind)
	if err != nil {
		logger.Error("Failed to list categories from service", slog.String("error", err.Error()), slog.String("kind", string(kind)))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCategoriesResponse(categories))
}
