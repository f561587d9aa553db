package recipes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// PGRepo implements Repo using Postgres. Ingredient and step lines are
// stored as JSON text columns.
type PGRepo struct {
	DB *sql.DB
}

const recipeColumns = `id, owner_id, dish_name, source_url, ingredients, steps, created_at`

// Create inserts a new recipe.
func (r *PGRepo) Create(ctx context.Context, recipe Recipe) error {
	ingredients, err := json.Marshal(emptyIfNil(recipe.Ingredients))
	if err != nil {
		return fmt.Errorf("marshal ingredients: %w", err)
	}
	steps, err := json.Marshal(emptyIfNil(recipe.Steps))
	if err != nil {
		return fmt.Errorf("marshal steps: %w", err)
	}

	var sourceURL sql.NullString
	if recipe.SourceURL != "" {
		sourceURL = sql.NullString{String: recipe.SourceURL, Valid: true}
	}

	const query = `
INSERT INTO recipes (id, owner_id, dish_name, source_url, ingredients, steps, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.DB.ExecContext(ctx, query,
		recipe.ID,
		recipe.OwnerID,
		recipe.DishName,
		sourceURL,
		string(ingredients),
		string(steps),
		recipe.CreatedAt,
	)
	return err
}

// GetByID fetches a recipe by id for an owner.
func (r *PGRepo) GetByID(ctx context.Context, ownerID, recipeID string) (Recipe, error) {
	const query = `
SELECT ` + recipeColumns + `
FROM recipes
WHERE owner_id = $1 AND id = $2
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, ownerID, recipeID)
	recipe, err := scanRecipe(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Recipe{}, ErrNotFound
		}
		return Recipe{}, err
	}
	return recipe, nil
}

// GetManyByIDs returns the owner's recipes among the requested ids, in the
// requested order; missing ids are omitted.
func (r *PGRepo) GetManyByIDs(ctx context.Context, ownerID string, recipeIDs []string) ([]Recipe, error) {
	if len(recipeIDs) == 0 {
		return []Recipe{}, nil
	}

	placeholders := make([]string, len(recipeIDs))
	args := make([]any, 0, len(recipeIDs)+1)
	args = append(args, ownerID)
	for i, id := range recipeIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+2)
		args = append(args, id)
	}

	query := `
SELECT ` + recipeColumns + `
FROM recipes
WHERE owner_id = $1 AND id IN (` + strings.Join(placeholders, ", ") + `)`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[string]Recipe, len(recipeIDs))
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		byID[recipe.ID] = recipe
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]Recipe, 0, len(byID))
	for _, id := range recipeIDs {
		if recipe, ok := byID[id]; ok {
			out = append(out, recipe)
		}
	}
	return out, nil
}

// ListByOwner lists recipes ordered newest-first.
func (r *PGRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]Recipe, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT ` + recipeColumns + `
FROM recipes
WHERE owner_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, recipe)
	}
	return out, rows.Err()
}

// Delete removes a recipe; absent rows are not an error.
func (r *PGRepo) Delete(ctx context.Context, ownerID, recipeID string) error {
	const query = `DELETE FROM recipes WHERE owner_id = $1 AND id = $2`
	_, err := r.DB.ExecContext(ctx, query, ownerID, recipeID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (Recipe, error) {
	var recipe Recipe
	var sourceURL sql.NullString
	var ingredients, steps string
	if err := row.Scan(
		&recipe.ID,
		&recipe.OwnerID,
		&recipe.DishName,
		&sourceURL,
		&ingredients,
		&steps,
		&recipe.CreatedAt,
	); err != nil {
		return Recipe{}, err
	}
	if sourceURL.Valid {
		recipe.SourceURL = sourceURL.String
	}
	if err := json.Unmarshal([]byte(ingredients), &recipe.Ingredients); err != nil {
		return Recipe{}, fmt.Errorf("unmarshal ingredients: %w", err)
	}
	if err := json.Unmarshal([]byte(steps), &recipe.Steps); err != nil {
		return Recipe{}, fmt.Errorf("unmarshal steps: %w", err)
	}
	return recipe, nil
}

func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

var _ Repo = (*PGRepo)(nil)
