package cart

import "context"

// Repo defines persistence operations for carts. At most one cart exists per
// owner; Replace swaps it wholesale. Share tokens resolve to the live cart on
// every lookup so revocation takes effect immediately.
type Repo interface {
	GetByOwner(ctx context.Context, ownerID string) (Cart, error)
	// Replace stores the cart for cart.OwnerID, discarding any prior record
	// (including its share token).
	Replace(ctx context.Context, c Cart) error
	// UpdateCheckedItems swaps only the checked-item set, leaving the
	// snapshot, recipe ids and share token untouched.
	UpdateCheckedItems(ctx context.Context, ownerID string, checked []string) error
	// DeleteByOwner is idempotent: deleting an absent cart is not an error.
	DeleteByOwner(ctx context.Context, ownerID string) error
	// EnsureShareToken sets candidate as the cart's share token if it has
	// none, and returns the token now in effect.
	EnsureShareToken(ctx context.Context, ownerID, candidate string) (string, error)
	// ClearShareToken removes the share token. Clearing an unshared or
	// absent cart is a no-op.
	ClearShareToken(ctx context.Context, ownerID string) error
	GetByShareToken(ctx context.Context, token string) (Cart, error)
}
