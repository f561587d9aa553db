package cart

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. The recipe-id set, the shopping
// list snapshot and the checked set are stored as JSON text columns; the
// owner_id unique constraint enforces single-cart-per-owner, and share_token
// carries its own unique index for token resolution.
type PGRepo struct {
	DB *sql.DB
}

const cartColumns = `id, owner_id, recipe_ids, shopping_list, checked_items, share_token, created_at`

// GetByOwner returns the owner's cart.
func (r *PGRepo) GetByOwner(ctx context.Context, ownerID string) (Cart, error) {
	const query = `
SELECT ` + cartColumns + `
FROM shopping_carts
WHERE owner_id = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, ownerID))
}

// Replace upserts the cart for its owner, discarding the prior record and
// share token in a single statement.
func (r *PGRepo) Replace(ctx context.Context, c Cart) error {
	recipeIDs, list, checked, err := marshalCart(c)
	if err != nil {
		return err
	}
	var token sql.NullString
	if c.ShareToken != "" {
		token = sql.NullString{String: c.ShareToken, Valid: true}
	}
	const query = `
INSERT INTO shopping_carts (id, owner_id, recipe_ids, shopping_list, checked_items, share_token, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (owner_id) DO UPDATE SET
  id = EXCLUDED.id,
  recipe_ids = EXCLUDED.recipe_ids,
  shopping_list = EXCLUDED.shopping_list,
  checked_items = EXCLUDED.checked_items,
  share_token = EXCLUDED.share_token,
  created_at = EXCLUDED.created_at`
	_, err = r.DB.ExecContext(ctx, query, c.ID, c.OwnerID, recipeIDs, list, checked, token, c.CreatedAt)
	return err
}

// UpdateCheckedItems swaps only the checked set.
func (r *PGRepo) UpdateCheckedItems(ctx context.Context, ownerID string, checkedItems []string) error {
	checked, err := json.Marshal(emptyIfNil(checkedItems))
	if err != nil {
		return fmt.Errorf("marshal checked items: %w", err)
	}
	const query = `
UPDATE shopping_carts
SET checked_items = $1
WHERE owner_id = $2`
	res, err := r.DB.ExecContext(ctx, query, string(checked), ownerID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByOwner removes the cart; absent rows are not an error.
func (r *PGRepo) DeleteByOwner(ctx context.Context, ownerID string) error {
	const query = `DELETE FROM shopping_carts WHERE owner_id = $1`
	_, err := r.DB.ExecContext(ctx, query, ownerID)
	return err
}

// EnsureShareToken sets candidate only when the cart is unshared, then reads
// back whichever token is in effect.
func (r *PGRepo) EnsureShareToken(ctx context.Context, ownerID, candidate string) (string, error) {
	const update = `
UPDATE shopping_carts
SET share_token = $1
WHERE owner_id = $2 AND share_token IS NULL`
	if _, err := r.DB.ExecContext(ctx, update, candidate, ownerID); err != nil {
		return "", err
	}
	const query = `SELECT share_token FROM shopping_carts WHERE owner_id = $1 LIMIT 1`
	var token sql.NullString
	if err := r.DB.QueryRowContext(ctx, query, ownerID).Scan(&token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	if !token.Valid || token.String == "" {
		return "", ErrNotFound
	}
	return token.String, nil
}

// ClearShareToken revokes the token; a no-op for unshared or absent carts.
func (r *PGRepo) ClearShareToken(ctx context.Context, ownerID string) error {
	const query = `
UPDATE shopping_carts
SET share_token = NULL
WHERE owner_id = $1`
	_, err := r.DB.ExecContext(ctx, query, ownerID)
	return err
}

// GetByShareToken resolves a token to the live cart.
func (r *PGRepo) GetByShareToken(ctx context.Context, token string) (Cart, error) {
	const query = `
SELECT ` + cartColumns + `
FROM shopping_carts
WHERE share_token = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, token))
}

func (r *PGRepo) scanOne(row *sql.Row) (Cart, error) {
	var c Cart
	var recipeIDs, list, checked string
	var token sql.NullString
	err := row.Scan(&c.ID, &c.OwnerID, &recipeIDs, &list, &checked, &token, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Cart{}, ErrNotFound
		}
		return Cart{}, err
	}
	if token.Valid {
		c.ShareToken = token.String
	}
	if err := json.Unmarshal([]byte(recipeIDs), &c.RecipeIDs); err != nil {
		return Cart{}, fmt.Errorf("unmarshal recipe ids: %w", err)
	}
	if err := json.Unmarshal([]byte(list), &c.ShoppingList); err != nil {
		return Cart{}, fmt.Errorf("unmarshal shopping list: %w", err)
	}
	if err := json.Unmarshal([]byte(checked), &c.CheckedItems); err != nil {
		return Cart{}, fmt.Errorf("unmarshal checked items: %w", err)
	}
	return c, nil
}

func marshalCart(c Cart) (recipeIDs, list, checked string, err error) {
	ids, err := json.Marshal(emptyIfNil(c.RecipeIDs))
	if err != nil {
		return "", "", "", fmt.Errorf("marshal recipe ids: %w", err)
	}
	snapshot, err := json.Marshal(c.ShoppingList)
	if err != nil {
		return "", "", "", fmt.Errorf("marshal shopping list: %w", err)
	}
	items, err := json.Marshal(emptyIfNil(c.CheckedItems))
	if err != nil {
		return "", "", "", fmt.Errorf("marshal checked items: %w", err)
	}
	return string(ids), string(snapshot), string(items), nil
}

func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

var _ Repo = (*PGRepo)(nil)
