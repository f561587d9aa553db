package recipes

import "context"

// Repo defines persistence operations for recipes.
type Repo interface {
	Create(ctx context.Context, recipe Recipe) error
	GetByID(ctx context.Context, ownerID, recipeID string) (Recipe, error)
	// GetManyByIDs returns the subset of requested recipes that exist for
	// the owner; missing ids are simply omitted.
	GetManyByIDs(ctx context.Context, ownerID string, recipeIDs []string) ([]Recipe, error)
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]Recipe, error)
	// Delete is idempotent: deleting an absent recipe is not an error.
	Delete(ctx context.Context, ownerID, recipeID string) error
}
