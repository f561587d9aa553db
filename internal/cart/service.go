package cart

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"recipebox-backend/internal/shared/metrics"
	"recipebox-backend/internal/shared/util"
	"recipebox-backend/internal/shoppinglist"
)

// NameResolver supplies a human-readable name for a cart owner, for display
// on shared carts. Implementations must never fail; unknown owners get a
// generic fallback.
type NameResolver interface {
	DisplayName(ctx context.Context, ownerID string) string
}

// Service contains business logic for carts and their sharing lifecycle.
type Service struct {
	Repo  Repo
	Names NameResolver
}

// SharedCart is the token-scoped view of a cart: no owner id, no recipe ids,
// just what an unauthenticated link bearer may see.
type SharedCart struct {
	ShoppingList shoppinglist.ShoppingListResponse
	CheckedItems []string
	OwnerName    string
}

// Get returns the owner's active cart.
func (s *Service) Get(ctx context.Context, ownerID string) (Cart, error) {
	return s.Repo.GetByOwner(ctx, ownerID)
}

// Save replaces the owner's cart in full: new id, new createdAt, share token
// reset. The shopping list is stored as-is — a snapshot that later recipe
// edits do not touch.
func (s *Service) Save(ctx context.Context, ownerID string, recipeIDs []string, list shoppinglist.ShoppingListResponse, checkedItems []string) (Cart, error) {
	ids := trimNonEmpty(recipeIDs)
	if len(ids) == 0 {
		return Cart{}, ErrInvalidInput
	}

	c := Cart{
		ID:           uuid.NewString(),
		OwnerID:      ownerID,
		RecipeIDs:    ids,
		ShoppingList: list,
		CheckedItems: sanitizeCheckedItems(checkedItems, list),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Replace(ctx, c); err != nil {
		return Cart{}, err
	}
	return c, nil
}

// UpdateCheckedItems replaces the checked set, leaving everything else
// untouched. Keys that do not reference a slot in the stored snapshot are
// dropped rather than rejected.
func (s *Service) UpdateCheckedItems(ctx context.Context, ownerID string, checkedItems []string) (Cart, error) {
	c, err := s.Repo.GetByOwner(ctx, ownerID)
	if err != nil {
		return Cart{}, err
	}
	checked := sanitizeCheckedItems(checkedItems, c.ShoppingList)
	if err := s.Repo.UpdateCheckedItems(ctx, ownerID, checked); err != nil {
		return Cart{}, err
	}
	c.CheckedItems = checked
	return c, nil
}

// Delete removes the owner's cart; deleting an absent cart succeeds.
func (s *Service) Delete(ctx context.Context, ownerID string) error {
	return s.Repo.DeleteByOwner(ctx, ownerID)
}

// Share returns the cart's share token, minting one on first call.
// Re-sharing an already-shared cart returns the existing token unchanged.
func (s *Service) Share(ctx context.Context, ownerID string) (string, error) {
	token, err := s.Repo.EnsureShareToken(ctx, ownerID, util.RandomToken(32))
	if err != nil {
		return "", err
	}
	metrics.IncCartShared()
	return token, nil
}

// Unshare revokes the share token, killing all outstanding links. Unsharing
// an unshared or absent cart is a no-op.
func (s *Service) Unshare(ctx context.Context, ownerID string) error {
	return s.Repo.ClearShareToken(ctx, ownerID)
}

// ReadShared resolves a token to the live cart. Possession of the token is
// the only authorization; there is deliberately no ownership check here.
func (s *Service) ReadShared(ctx context.Context, token string) (SharedCart, error) {
	c, err := s.Repo.GetByShareToken(ctx, token)
	if err != nil {
		return SharedCart{}, err
	}
	name := "Someone"
	if s.Names != nil {
		if resolved := s.Names.DisplayName(ctx, c.OwnerID); resolved != "" {
			name = resolved
		}
	}
	return SharedCart{
		ShoppingList: c.ShoppingList,
		CheckedItems: c.CheckedItems,
		OwnerName:    name,
	}, nil
}

// UpdateShared lets any token bearer write checked-item state. The token is
// resolved on every call so revoked links fail immediately.
func (s *Service) UpdateShared(ctx context.Context, token string, checkedItems []string) error {
	c, err := s.Repo.GetByShareToken(ctx, token)
	if err != nil {
		return err
	}
	checked := sanitizeCheckedItems(checkedItems, c.ShoppingList)
	return s.Repo.UpdateCheckedItems(ctx, c.OwnerID, checked)
}

// sanitizeCheckedItems keeps only well-formed "sectionIndex-ingredientIndex"
// keys that land inside the snapshot, deduplicated and sorted so stored state
// is canonical.
func sanitizeCheckedItems(items []string, list shoppinglist.ShoppingListResponse) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.TrimSpace(item)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		if !keyInSnapshot(key, list) {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

func keyInSnapshot(key string, list shoppinglist.ShoppingListResponse) bool {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return false
	}
	sectionIdx, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	ingredientIdx, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	if sectionIdx < 0 || sectionIdx >= len(list.Sections) {
		return false
	}
	return ingredientIdx >= 0 && ingredientIdx < len(list.Sections[sectionIdx].Ingredients)
}

func trimNonEmpty(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
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
