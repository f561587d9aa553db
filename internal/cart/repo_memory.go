package cart

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo. A single mutex scopes
// all mutations, so per-owner updates are linearizable.
type MemoryRepo struct {
	mu      sync.RWMutex
	byOwner map[string]Cart
	byToken map[string]string // shareToken -> ownerID
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byOwner: make(map[string]Cart),
		byToken: make(map[string]string),
	}
}

// GetByOwner returns the owner's cart.
func (r *MemoryRepo) GetByOwner(ctx context.Context, ownerID string) (Cart, error) {
	if err := ctx.Err(); err != nil {
		return Cart{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byOwner[ownerID]
	if !ok {
		return Cart{}, ErrNotFound
	}
	return cloneCart(c), nil
}

// Replace stores the cart, dropping any previous record and its token.
func (r *MemoryRepo) Replace(ctx context.Context, c Cart) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.byOwner[c.OwnerID]; ok && prev.ShareToken != "" {
		delete(r.byToken, prev.ShareToken)
	}
	stored := cloneCart(c)
	r.byOwner[c.OwnerID] = stored
	if stored.ShareToken != "" {
		r.byToken[stored.ShareToken] = c.OwnerID
	}
	return nil
}

// UpdateCheckedItems replaces the checked set only.
func (r *MemoryRepo) UpdateCheckedItems(ctx context.Context, ownerID string, checked []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byOwner[ownerID]
	if !ok {
		return ErrNotFound
	}
	c.CheckedItems = append([]string(nil), checked...)
	r.byOwner[ownerID] = c
	return nil
}

// DeleteByOwner removes the cart and invalidates its token.
func (r *MemoryRepo) DeleteByOwner(ctx context.Context, ownerID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.byOwner[ownerID]; ok {
		if c.ShareToken != "" {
			delete(r.byToken, c.ShareToken)
		}
		delete(r.byOwner, ownerID)
	}
	return nil
}

// EnsureShareToken sets candidate if the cart is unshared and returns the
// token in effect.
func (r *MemoryRepo) EnsureShareToken(ctx context.Context, ownerID, candidate string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byOwner[ownerID]
	if !ok {
		return "", ErrNotFound
	}
	if c.ShareToken != "" {
		return c.ShareToken, nil
	}
	c.ShareToken = candidate
	r.byOwner[ownerID] = c
	r.byToken[candidate] = ownerID
	return candidate, nil
}

// ClearShareToken revokes the token if one exists.
func (r *MemoryRepo) ClearShareToken(ctx context.Context, ownerID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byOwner[ownerID]
	if !ok || c.ShareToken == "" {
		return nil
	}
	delete(r.byToken, c.ShareToken)
	c.ShareToken = ""
	r.byOwner[ownerID] = c
	return nil
}

// GetByShareToken resolves a token to the live cart.
func (r *MemoryRepo) GetByShareToken(ctx context.Context, token string) (Cart, error) {
	if err := ctx.Err(); err != nil {
		return Cart{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	ownerID, ok := r.byToken[token]
	if !ok {
		return Cart{}, ErrNotFound
	}
	c, ok := r.byOwner[ownerID]
	if !ok || c.ShareToken != token {
		return Cart{}, ErrNotFound
	}
	return cloneCart(c), nil
}

func cloneCart(c Cart) Cart {
	out := c
	out.RecipeIDs = append([]string(nil), c.RecipeIDs...)
	out.CheckedItems = append([]string(nil), c.CheckedItems...)
	return out
}

var _ Repo = (*MemoryRepo)(nil)
