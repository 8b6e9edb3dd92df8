package domain

import "context"

// RecipeRepository defines the interface for recipe persistence. The
// analysis core never calls it directly; the delivery layer resolves
// recipe references through it before invoking the core.
type RecipeRepository interface {
	Save(ctx context.Context, recipe *Recipe) error
	GetByID(ctx context.Context, id string) (*Recipe, error)
	List(ctx context.Context) ([]Recipe, error)
	Delete(ctx context.Context, id string) error
}
