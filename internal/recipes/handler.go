package recipes

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recipebox-backend/internal/shared/server/middleware"
	"recipebox-backend/internal/shared/server/respond"
)

const maxImportSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches recipe routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/recipes", h.create)
	rg.POST("/recipes/clip", h.clip)
	rg.POST("/recipes/import", h.importFile)
	rg.GET("/recipes", h.list)
	rg.GET("/recipes/:id", h.get)
	rg.DELETE("/recipes/:id", h.delete)
}

type createRecipeRequest struct {
	DishName    string   `json:"dishName"`
	SourceURL   string   `json:"sourceUrl"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

func (h *Handler) create(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	var req createRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	recipe, err := h.Svc.Create(c.Request.Context(), ownerID, Recipe{
		DishName:    req.DishName,
		SourceURL:   req.SourceURL,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "dishName and ingredients are required", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create recipe", nil)
		return
	}

	c.Set("recipeId", recipe.ID)
	respond.JSON(c, http.StatusCreated, toResponse(recipe))
}

type clipRequest struct {
	URL string `json:"url"`
}

func (h *Handler) clip(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	var req clipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	recipe, err := h.Svc.Clip(c.Request.Context(), ownerID, req.URL)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "a valid http(s) url is required", nil)
		case errors.Is(err, ErrClipFailed):
			respond.Error(c, http.StatusUnprocessableEntity, "clip_failed", "could not extract a recipe from the page", nil)
		default:
			respond.Error(c, http.StatusBadGateway, "fetch_failed", "failed to fetch the page", nil)
		}
		return
	}

	c.Set("recipeId", recipe.ID)
	respond.JSON(c, http.StatusCreated, toResponse(recipe))
}

func (h *Handler) importFile(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	recipe, err := h.Svc.Import(c.Request.Context(), ownerID, fileHeader.Filename, data)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "file did not contain a dish name and ingredients", nil)
			return
		}
		respond.Error(c, http.StatusUnprocessableEntity, "import_failed", "could not extract a recipe from the file", nil)
		return
	}

	c.Set("recipeId", recipe.ID)
	respond.JSON(c, http.StatusCreated, toResponse(recipe))
}

func (h *Handler) get(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)
	recipeID := c.Param("id")

	recipe, err := h.Svc.Get(c.Request.Context(), ownerID, recipeID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "recipe not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch recipe", nil)
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(recipe))
}

func (h *Handler) list(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 100 {
		limit = 100
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	recipes, err := h.Svc.List(c.Request.Context(), ownerID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list recipes", nil)
		return
	}

	resp := make([]RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		resp = append(resp, toResponse(recipe))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) delete(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)
	recipeID := c.Param("id")

	if err := h.Svc.Delete(c.Request.Context(), ownerID, recipeID); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete recipe", nil)
		return
	}

	c.Status(http.StatusNoContent)
}
