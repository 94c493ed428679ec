package category

import (
	"context"

	"github.com/google/uuid"

	"courseplatform-backend/internal/domains/category/model"
)

// CategoryRepository is the data access contract for categories.
type CategoryRepository interface {
	// List returns all categories ordered by name ascending.
	List(ctx context.Context) ([]model.Category, error)

	// ExistsByID reports whether a category row exists.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
