package model

import "github.com/google/uuid"

// Category is read-only reference data; rows are managed by seeding.
type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}
