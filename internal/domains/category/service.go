package category

import (
	"context"

	"courseplatform-backend/internal/domains/category/model"
)

// CategoryService is the business contract for categories.
type CategoryService interface {
	List(ctx context.Context) ([]model.Category, error)
}
