package category

import "errors"

var (
	// ErrCategoryNotFound is returned when a referenced category id does
	// not exist.
	ErrCategoryNotFound = errors.New("category not found")
)
