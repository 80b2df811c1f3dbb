package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"eventlane/internal/domain"
)

type newsletterService struct {
	newsletterRepo domain.NewsletterRepository
	mailer         domain.Mailer
	logger         *slog.Logger
}

// NewNewsletterService creates a NewsletterService. The mailer is used for a
// best-effort welcome email; sending failures never fail the subscription.
func NewNewsletterService(newsletterRepo domain.NewsletterRepository, mailer domain.Mailer, logger *slog.Logger) domain.NewsletterService {
	return &newsletterService{
		newsletterRepo: newsletterRepo,
		mailer:         mailer,
		logger:         logger,
	}
}

// Subscribe rejects an already-subscribed address with ErrDuplicateEmail.
// The store itself does not enforce uniqueness; this is the layering
// contract the HTTP 409 depends on.
func (s *newsletterService) Subscribe(ctx context.Context, in domain.InsertNewsletterSubscription) (*domain.NewsletterSubscription, error) {
	if _, err := s.newsletterRepo.GetByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get subscription: %w", err)
	}

	sub, err := s.newsletterRepo.Subscribe(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("subscribe newsletter: %w", err)
	}

	if err := s.mailer.Send(
		sub.Email,
		"Welcome to the newsletter",
		"<p>Thanks for subscribing! You'll hear about upcoming events soon.</p>",
		"Thanks for subscribing! You'll hear about upcoming events soon.",
	); err != nil {
		s.logger.Warn("welcome email failed", "email", sub.Email, "err", err)
	}

	return sub, nil
}
