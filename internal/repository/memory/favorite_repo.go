package memory

import (
	"context"
	"time"

	"eventlane/internal/domain"
)

type favoriteRepository struct {
	store *Store
}

// NewFavoriteRepository returns a favorite repository backed by the store.
func NewFavoriteRepository(store *Store) domain.FavoriteRepository {
	return &favoriteRepository{store: store}
}

// ListByUser returns the user's favorites in creation order.
func (r *favoriteRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.Favorite, 0)
	for _, f := range r.store.favorites.values() {
		if f.UserID == userID {
			out = append(out, cloneFavorite(f))
		}
	}
	return out, nil
}

// Add assigns id and createdAt and stores the favorite.
func (r *favoriteRepository) Add(ctx context.Context, in domain.InsertFavorite) (*domain.Favorite, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	f := &domain.Favorite{
		ID:        newID(),
		UserID:    in.UserID,
		EventID:   in.EventID,
		CreatedAt: time.Now().UTC(),
	}
	r.store.favorites.put(f.ID, f)
	return cloneFavorite(f), nil
}

// Remove deletes the first favorite matching (userID, eventID); no-op when
// nothing matches.
func (r *favoriteRepository) Remove(ctx context.Context, userID, eventID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, f := range r.store.favorites.values() {
		if f.UserID == userID && f.EventID == eventID {
			r.store.favorites.delete(f.ID)
			return nil
		}
	}
	return nil
}

func cloneFavorite(f *domain.Favorite) *domain.Favorite {
	out := *f
	return &out
}
