package cart

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"recipebox-backend/internal/shared/server/respond"
)

// SharedHandler serves the token-scoped endpoints. These routes carry no
// authentication on purpose: possession of a valid token is the whole
// authorization model, so they are registered outside the auth middleware.
type SharedHandler struct {
	Svc *Service
}

// NewSharedHandler constructs a SharedHandler.
func NewSharedHandler(svc *Service) *SharedHandler {
	return &SharedHandler{Svc: svc}
}

// RegisterRoutes attaches shared-cart routes to an unauthenticated group.
func (h *SharedHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/shared/:token", h.read)
	rg.PUT("/shared/:token/checked-items", h.updateCheckedItems)
}

func (h *SharedHandler) read(c *gin.Context) {
	token := strings.TrimSpace(c.Param("token"))
	if token == "" {
		respond.Error(c, http.StatusNotFound, "not_found", "shared cart not found", nil)
		return
	}

	shared, err := h.Svc.ReadShared(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "shared cart not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch shared cart", nil)
		return
	}

	respond.JSON(c, http.StatusOK, toSharedResponse(shared))
}

func (h *SharedHandler) updateCheckedItems(c *gin.Context) {
	token := strings.TrimSpace(c.Param("token"))
	if token == "" {
		respond.Error(c, http.StatusNotFound, "not_found", "shared cart not found", nil)
		return
	}

	var req checkedItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if err := h.Svc.UpdateShared(c.Request.Context(), token, req.CheckedItems); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "shared cart not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update shared cart", nil)
		return
	}

	c.Status(http.StatusNoContent)
}
