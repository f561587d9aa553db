package recipes

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"recipebox-backend/internal/shared/metrics"
	"recipebox-backend/internal/shoppinglist"
)

// Service contains business logic for recipes.
type Service struct {
	Repo     Repo
	Clipper  *Clipper
	Importer *Importer
}

// Create validates and stores a manually entered recipe.
func (s *Service) Create(ctx context.Context, ownerID string, draft Recipe) (Recipe, error) {
	draft.DishName = strings.TrimSpace(draft.DishName)
	draft.Ingredients = trimLines(draft.Ingredients)
	draft.Steps = trimLines(draft.Steps)

	if draft.DishName == "" || len(draft.Ingredients) == 0 {
		return Recipe{}, ErrInvalidInput
	}

	recipe := Recipe{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		DishName:    draft.DishName,
		SourceURL:   strings.TrimSpace(draft.SourceURL),
		Ingredients: draft.Ingredients,
		Steps:       draft.Steps,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, recipe); err != nil {
		return Recipe{}, err
	}
	return recipe, nil
}

// Clip fetches a URL, extracts a recipe from the page and stores it.
func (s *Service) Clip(ctx context.Context, ownerID, rawURL string) (Recipe, error) {
	if s.Clipper == nil {
		return Recipe{}, ErrClipFailed
	}
	start := metrics.NowMillis()
	draft, err := s.Clipper.Clip(ctx, rawURL)
	if err != nil {
		return Recipe{}, err
	}
	metrics.ObserveClipDurationMs(metrics.NowMillis() - start)
	recipe, err := s.Create(ctx, ownerID, draft)
	if err != nil {
		return Recipe{}, err
	}
	metrics.IncRecipeClipped()
	return recipe, nil
}

// Import extracts a recipe from an uploaded text or PDF payload and stores it.
func (s *Service) Import(ctx context.Context, ownerID, fileName string, data []byte) (Recipe, error) {
	if s.Importer == nil {
		return Recipe{}, ErrInvalidInput
	}
	draft, err := s.Importer.Import(ctx, fileName, data)
	if err != nil {
		return Recipe{}, err
	}
	recipe, err := s.Create(ctx, ownerID, draft)
	if err != nil {
		return Recipe{}, err
	}
	metrics.IncRecipeImported()
	return recipe, nil
}

// Get returns a single recipe owned by ownerID.
func (s *Service) Get(ctx context.Context, ownerID, recipeID string) (Recipe, error) {
	return s.Repo.GetByID(ctx, ownerID, recipeID)
}

// List returns the owner's recipes, newest first.
func (s *Service) List(ctx context.Context, ownerID string, limit, offset int) ([]Recipe, error) {
	return s.Repo.ListByOwner(ctx, ownerID, limit, offset)
}

// Delete removes a recipe; deleting an absent recipe succeeds.
func (s *Service) Delete(ctx context.Context, ownerID, recipeID string) error {
	return s.Repo.Delete(ctx, ownerID, recipeID)
}

// ResolveIngredients maps recipe ids to ingredient lists for the shopping
// list engine. Every requested id yields an entry: unknown ids come back
// with no ingredients so the engine reports them as missing rather than
// failing the request.
func (s *Service) ResolveIngredients(ctx context.Context, ownerID string, recipeIDs []string) ([]shoppinglist.RecipeIngredients, error) {
	found, err := s.Repo.GetManyByIDs(ctx, ownerID, recipeIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]Recipe, len(found))
	for _, recipe := range found {
		byID[recipe.ID] = recipe
	}

	out := make([]shoppinglist.RecipeIngredients, 0, len(recipeIDs))
	for _, id := range recipeIDs {
		recipe, ok := byID[id]
		if !ok {
			out = append(out, shoppinglist.RecipeIngredients{ID: id})
			continue
		}
		out = append(out, shoppinglist.RecipeIngredients{
			ID:          recipe.ID,
			DishName:    recipe.DishName,
			Ingredients: recipe.Ingredients,
		})
	}
	return out, nil
}

func trimLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
