package shoppinglist

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"recipebox-backend/internal/shared/metrics"
	"recipebox-backend/internal/shared/server/middleware"
	"recipebox-backend/internal/shared/server/respond"
)

// RecipeResolver turns recipe ids into ingredient lists. Ids that do not
// resolve must still come back as entries with empty ingredients so the
// generated list counts them as missing.
type RecipeResolver interface {
	ResolveIngredients(ctx context.Context, ownerID string, ids []string) ([]RecipeIngredients, error)
}

// Handler exposes the shopping list generation endpoint.
type Handler struct {
	Resolver RecipeResolver
}

// NewHandler constructs a Handler.
func NewHandler(resolver RecipeResolver) *Handler {
	return &Handler{Resolver: resolver}
}

// RegisterRoutes attaches shopping list routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/shopping-list/generate", h.generate)
}

type generateRequest struct {
	RecipeIDs []string `json:"recipeIds"`
}

func (h *Handler) generate(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	ids := distinctIDs(req.RecipeIDs)
	if len(ids) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "recipeIds is required", nil)
		return
	}

	recipes, err := h.Resolver.ResolveIngredients(c.Request.Context(), ownerID, ids)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to resolve recipes", nil)
		return
	}

	resp, err := Generate(recipes)
	if err != nil {
		if errors.Is(err, ErrNoRecipes) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "recipeIds is required", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate shopping list", nil)
		return
	}

	metrics.IncShoppingListGenerated()
	respond.JSON(c, http.StatusOK, resp)
}

// distinctIDs trims and dedupes ids preserving first-seen order.
func distinctIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
