package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/cdelavallette-lang/healthapp/internal/domain"
)

// SQLiteStore persists recipes. It implements domain.RecipeRepository; the
// analysis core itself never touches persistence.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at dbPath and ensures the
// schema exists. Use ":memory:" for an ephemeral store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS recipes (
        id TEXT PRIMARY KEY,
        name TEXT NOT NULL,
        tags TEXT NOT NULL,
        per_serving TEXT NOT NULL
    );

    CREATE TABLE IF NOT EXISTS ingredients (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        recipe_id TEXT NOT NULL,
        name TEXT NOT NULL,
        source TEXT NOT NULL,
        amount REAL NOT NULL,
        unit TEXT NOT NULL,
        FOREIGN KEY (recipe_id) REFERENCES recipes(id) ON DELETE CASCADE
    );

    CREATE INDEX IF NOT EXISTS idx_ingredients_recipe_id ON ingredients(recipe_id);
    `

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Save stores a recipe, assigning a uuid when the id is empty. An existing
// recipe with the same id is replaced.
func (s *SQLiteStore) Save(ctx context.Context, recipe *domain.Recipe) error {
	if recipe.ID == "" {
		recipe.ID = uuid.NewString()
	}

	perServing, err := json.Marshal(recipe.PerServing)
	if err != nil {
		return fmt.Errorf("failed to encode nutrients: %w", err)
	}
	// Tags are stored as a json array; tag text is unconstrained.
	tags, err := json.Marshal(recipe.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO recipes (id, name, tags, per_serving) VALUES (?, ?, ?, ?)`,
		recipe.ID, recipe.Name, string(tags), string(perServing))
	if err != nil {
		return fmt.Errorf("failed to insert recipe: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM ingredients WHERE recipe_id = ?`, recipe.ID); err != nil {
		return fmt.Errorf("failed to clear ingredients: %w", err)
	}
	for _, ing := range recipe.Ingredients {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO ingredients (recipe_id, name, source, amount, unit) VALUES (?, ?, ?, ?, ?)`,
			recipe.ID, ing.Name, string(ing.Source), ing.Amount, ing.Unit)
		if err != nil {
			return fmt.Errorf("failed to insert ingredient: %w", err)
		}
	}

	return tx.Commit()
}

// GetByID loads one recipe with its ingredients.
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, tags, per_serving FROM recipes WHERE id = ?`, id)

	recipe, err := scanRecipe(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe: %w", err)
	}

	if err := s.loadIngredients(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// List returns all recipes, ingredients included, ordered by name.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Recipe, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, tags, per_serving FROM recipes ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	var recipes []domain.Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, *recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipes: %w", err)
	}

	for i := range recipes {
		if err := s.loadIngredients(ctx, &recipes[i]); err != nil {
			return nil, err
		}
	}
	return recipes, nil
}

// Delete removes a recipe and its ingredients.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, id)
	}
	// Cascade is not always enabled in sqlite; clear explicitly.
	if _, err := s.db.ExecContext(ctx, `DELETE FROM ingredients WHERE recipe_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete ingredients: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (*domain.Recipe, error) {
	var recipe domain.Recipe
	var tags, perServing string
	if err := row.Scan(&recipe.ID, &recipe.Name, &tags, &perServing); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(tags), &recipe.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	if err := json.Unmarshal([]byte(perServing), &recipe.PerServing); err != nil {
		return nil, fmt.Errorf("failed to decode nutrients: %w", err)
	}
	return &recipe, nil
}

func (s *SQLiteStore) loadIngredients(ctx context.Context, recipe *domain.Recipe) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, source, amount, unit FROM ingredients WHERE recipe_id = ? ORDER BY id`, recipe.ID)
	if err != nil {
		return fmt.Errorf("failed to load ingredients: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ing domain.Ingredient
		var source string
		if err := rows.Scan(&ing.Name, &source, &ing.Amount, &ing.Unit); err != nil {
			return fmt.Errorf("failed to scan ingredient: %w", err)
		}
		ing.Source = domain.SourceTag(source)
		recipe.Ingredients = append(recipe.Ingredients, ing)
	}
	return rows.Err()
}
