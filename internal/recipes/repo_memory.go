package recipes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Recipe // ownerID -> recipes
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string][]Recipe)}
}

// Create stores a recipe for its owner.
func (r *MemoryRepo) Create(ctx context.Context, recipe Recipe) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[recipe.OwnerID] = append(r.data[recipe.OwnerID], recipe)
	return nil
}

// GetByID returns a recipe by id for an owner.
func (r *MemoryRepo) GetByID(ctx context.Context, ownerID, recipeID string) (Recipe, error) {
	if err := ctx.Err(); err != nil {
		return Recipe{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, recipe := range r.data[ownerID] {
		if recipe.ID == recipeID {
			return recipe, nil
		}
	}
	return Recipe{}, ErrNotFound
}

// GetManyByIDs returns the owner's recipes matching the given ids; missing
// ids are omitted.
func (r *MemoryRepo) GetManyByIDs(ctx context.Context, ownerID string, recipeIDs []string) ([]Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	byID := make(map[string]Recipe, len(r.data[ownerID]))
	for _, recipe := range r.data[ownerID] {
		byID[recipe.ID] = recipe
	}
	out := make([]Recipe, 0, len(recipeIDs))
	for _, id := range recipeIDs {
		if recipe, ok := byID[id]; ok {
			out = append(out, recipe)
		}
	}
	return out, nil
}

// ListByOwner returns recipes for an owner, newest first, honoring limit/offset.
func (r *MemoryRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	owned := r.data[ownerID]
	r.mu.RUnlock()

	if len(owned) == 0 || offset >= len(owned) {
		return []Recipe{}, nil
	}

	out := make([]Recipe, len(owned))
	copy(out, owned)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	end := len(out)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return out[offset:end], nil
}

// Delete removes a recipe; absent recipes are not an error.
func (r *MemoryRepo) Delete(ctx context.Context, ownerID, recipeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	owned := r.data[ownerID]
	for i := range owned {
		if owned[i].ID == recipeID {
			r.data[ownerID] = append(owned[:i], owned[i+1:]...)
			return nil
		}
	}
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
