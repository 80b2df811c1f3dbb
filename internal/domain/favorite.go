package domain

import (
	"context"
	"time"
)

// Favorite marks an event as saved by a user.
type Favorite struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	EventID   string    `json:"eventId"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertFavorite is the caller-supplied field set for saving a favorite.
type InsertFavorite struct {
	UserID  string `json:"userId" validate:"required"`
	EventID string `json:"eventId" validate:"required"`
}

// FavoriteRepository defines storage operations for favorites.
type FavoriteRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*Favorite, error)
	Add(ctx context.Context, in InsertFavorite) (*Favorite, error)
	// Remove deletes the first matching favorite; no-op when nothing matches.
	Remove(ctx context.Context, userID, eventID string) error
}

// FavoriteService defines favorite-facing business operations.
type FavoriteService interface {
	ListByUser(ctx context.Context, userID string) ([]*Favorite, error)
	Add(ctx context.Context, in InsertFavorite) (*Favorite, error)
	Remove(ctx context.Context, userID, eventID string) error
}
