package domain

import "context"

// Category groups events for browsing. EventCount is a cached aggregate
// maintained by the store, not an authoritative value.
type Category struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Icon        string  `json:"icon"`
	EventCount  int     `json:"eventCount"`
}

// InsertCategory is the caller-supplied field set for creating a category.
type InsertCategory struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Icon        string  `json:"icon" validate:"required"`
}

// CategoryRepository defines storage operations for categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]*Category, error)
	GetByID(ctx context.Context, id string) (*Category, error)
	Create(ctx context.Context, in InsertCategory) (*Category, error)
	// UpdateEventCount overwrites the cached event count. It is a no-op when
	// the category does not exist.
	UpdateEventCount(ctx context.Context, id string, count int) error
}

// CategoryService defines category-facing business operations.
type CategoryService interface {
	List(ctx context.Context) ([]*Category, error)
	Create(ctx context.Context, in InsertCategory) (*Category, error)
}
