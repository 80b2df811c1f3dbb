package services

import (
	"context"
	"fmt"

	"eventlane/internal/domain"
)

type attendeeService struct {
	attendeeRepo domain.EventAttendeeRepository
}

// NewAttendeeService creates an AttendeeService backed by the given
// repository.
func NewAttendeeService(attendeeRepo domain.EventAttendeeRepository) domain.AttendeeService {
	return &attendeeService{attendeeRepo: attendeeRepo}
}

func (s *attendeeService) ListByEvent(ctx context.Context, eventID string) ([]*domain.EventAttendee, error) {
	regs, err := s.attendeeRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	return regs, nil
}

func (s *attendeeService) Register(ctx context.Context, in domain.InsertEventAttendee) (*domain.EventAttendee, error) {
	reg, err := s.attendeeRepo.Add(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("add attendee: %w", err)
	}
	return reg, nil
}

func (s *attendeeService) Unregister(ctx context.Context, eventID, userID string) error {
	if err := s.attendeeRepo.Remove(ctx, eventID, userID); err != nil {
		return fmt.Errorf("remove attendee: %w", err)
	}
	return nil
}
