package domain

import (
	"context"
	"time"
)

// NewsletterSubscription records one subscribed email address.
type NewsletterSubscription struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

// InsertNewsletterSubscription is the caller-supplied field set for
// subscribing to the newsletter.
type InsertNewsletterSubscription struct {
	Email string `json:"email" validate:"required,email"`
}

// NewsletterRepository defines storage operations for subscriptions.
// Subscribe stores unconditionally; the duplicate check is the service
// layer's responsibility.
type NewsletterRepository interface {
	Subscribe(ctx context.Context, in InsertNewsletterSubscription) (*NewsletterSubscription, error)
	GetByEmail(ctx context.Context, email string) (*NewsletterSubscription, error)
}

// NewsletterService defines newsletter-facing business operations.
type NewsletterService interface {
	// Subscribe returns ErrDuplicateEmail when the address is already
	// subscribed.
	Subscribe(ctx context.Context, in InsertNewsletterSubscription) (*NewsletterSubscription, error)
}
