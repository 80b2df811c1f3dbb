package services

import (
	"context"
	"errors"
	"fmt"

	"eventlane/internal/domain"
)

type eventService struct {
	eventRepo domain.EventRepository
}

// NewEventService creates an EventService backed by the given repository.
func NewEventService(eventRepo domain.EventRepository) domain.EventService {
	return &eventService{eventRepo: eventRepo}
}

// List applies the filter: featured takes precedence over category.
func (s *eventService) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	var (
		events []*domain.Event
		err    error
	)
	switch {
	case filter.FeaturedOnly:
		events, err = s.eventRepo.ListFeatured(ctx)
	case filter.CategoryID != "":
		events, err = s.eventRepo.ListByCategory(ctx, filter.CategoryID)
	default:
		events, err = s.eventRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	ev, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return ev, nil
}

func (s *eventService) Create(ctx context.Context, in domain.InsertEvent) (*domain.Event, error) {
	ev, err := s.eventRepo.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return ev, nil
}

func (s *eventService) Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	ev, err := s.eventRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return ev, nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
