package cart

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipebox-backend/internal/shared/server/middleware"
	"recipebox-backend/internal/shared/server/respond"
	"recipebox-backend/internal/shoppinglist"
)

// Handler wires the authenticated cart endpoints to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches cart routes to the authenticated router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/cart", h.get)
	rg.PUT("/cart", h.save)
	rg.DELETE("/cart", h.delete)
	rg.PUT("/cart/checked-items", h.updateCheckedItems)
	rg.POST("/cart/share", h.share)
	rg.DELETE("/cart/share", h.unshare)
}

func (h *Handler) get(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	cart, err := h.Svc.Get(c.Request.Context(), ownerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "cart not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch cart", nil)
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(cart))
}

type saveCartRequest struct {
	RecipeIDs    []string                          `json:"recipeIds"`
	ShoppingList shoppinglist.ShoppingListResponse `json:"shoppingList"`
	CheckedItems []string                          `json:"checkedItems"`
}

func (h *Handler) save(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	var req saveCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	cart, err := h.Svc.Save(c.Request.Context(), ownerID, req.RecipeIDs, req.ShoppingList, req.CheckedItems)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "recipeIds is required", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save cart", nil)
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(cart))
}

func (h *Handler) delete(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), ownerID); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete cart", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

type checkedItemsRequest struct {
	CheckedItems []string `json:"checkedItems"`
}

func (h *Handler) updateCheckedItems(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	var req checkedItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	cart, err := h.Svc.UpdateCheckedItems(c.Request.Context(), ownerID, req.CheckedItems)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "cart not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update checked items", nil)
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(cart))
}

func (h *Handler) share(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	token, err := h.Svc.Share(c.Request.Context(), ownerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "cart not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to share cart", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"shareToken": token})
}

func (h *Handler) unshare(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	if err := h.Svc.Unshare(c.Request.Context(), ownerID); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to unshare cart", nil)
		return
	}

	c.Status(http.StatusNoContent)
}
