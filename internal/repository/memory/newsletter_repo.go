package memory

import (
	"context"
	"time"

	"eventlane/internal/domain"
)

type newsletterRepository struct {
	store *Store
}

// NewNewsletterRepository returns a subscription repository backed by the
// store.
func NewNewsletterRepository(store *Store) domain.NewsletterRepository {
	return &newsletterRepository{store: store}
}

// Subscribe assigns id and subscribedAt and stores the subscription without
// checking for an existing one; that check belongs to the service layer.
func (r *newsletterRepository) Subscribe(ctx context.Context, in domain.InsertNewsletterSubscription) (*domain.NewsletterSubscription, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sub := &domain.NewsletterSubscription{
		ID:           newID(),
		Email:        in.Email,
		SubscribedAt: time.Now().UTC(),
	}
	r.store.subscriptions.put(sub.ID, sub)
	return cloneSubscription(sub), nil
}

// GetByEmail scans for the first subscription with the given email.
func (r *newsletterRepository) GetByEmail(ctx context.Context, email string) (*domain.NewsletterSubscription, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, sub := range r.store.subscriptions.values() {
		if sub.Email == email {
			return cloneSubscription(sub), nil
		}
	}
	return nil, domain.ErrNotFound
}

func cloneSubscription(sub *domain.NewsletterSubscription) *domain.NewsletterSubscription {
	out := *sub
	return &out
}
