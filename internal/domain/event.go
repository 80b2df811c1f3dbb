package domain

import (
	"context"
	"time"
)

// Event is a listed event. Price is kept as its canonical decimal string
// representation ("0" when the creator supplied none). Attendees is a cached
// aggregate maintained by the store.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CategoryID  string    `json:"categoryId"`
	OrganizerID string    `json:"organizerId"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Price       string    `json:"price"`
	Capacity    *int      `json:"capacity"`
	Attendees   int       `json:"attendees"`
	IsFeatured  bool      `json:"isFeatured"`
	ImageURL    *string   `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// InsertEvent is the caller-supplied field set for creating an event.
// Price arrives as a number and is converted to its decimal string form by
// the store; capacity must be at least 1 when present.
type InsertEvent struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	CategoryID  string   `json:"categoryId" validate:"required"`
	OrganizerID string   `json:"organizerId" validate:"required"`
	Date        string   `json:"date" validate:"required"`
	Time        string   `json:"time" validate:"required"`
	Location    string   `json:"location" validate:"required"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Capacity    *int     `json:"capacity" validate:"omitempty,gte=1"`
	IsFeatured  *bool    `json:"isFeatured"`
	ImageURL    *string  `json:"imageUrl"`
}

// EventPatch carries a partial event update. Nil fields are left unchanged.
type EventPatch struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	CategoryID  *string  `json:"categoryId"`
	OrganizerID *string  `json:"organizerId"`
	Date        *string  `json:"date"`
	Time        *string  `json:"time"`
	Location    *string  `json:"location"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Capacity    *int     `json:"capacity" validate:"omitempty,gte=1"`
	IsFeatured  *bool    `json:"isFeatured"`
	ImageURL    *string  `json:"imageUrl"`
}

// EventFilter narrows an event listing. FeaturedOnly takes precedence over
// CategoryID when both are set.
type EventFilter struct {
	CategoryID   string
	FeaturedOnly bool
}

// EventRepository defines storage operations for events.
type EventRepository interface {
	List(ctx context.Context) ([]*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	ListByCategory(ctx context.Context, categoryID string) ([]*Event, error)
	ListFeatured(ctx context.Context) ([]*Event, error)
	Create(ctx context.Context, in InsertEvent) (*Event, error)
	Update(ctx context.Context, id string, patch EventPatch) (*Event, error)
	Delete(ctx context.Context, id string) error
}

// EventService defines event-facing business operations.
type EventService interface {
	List(ctx context.Context, filter EventFilter) ([]*Event, error)
	Get(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, in InsertEvent) (*Event, error)
	Update(ctx context.Context, id string, patch EventPatch) (*Event, error)
	Delete(ctx context.Context, id string) error
}
