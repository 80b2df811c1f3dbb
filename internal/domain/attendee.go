package domain

import (
	"context"
	"time"
)

// EventAttendee represents one registration of a user for an event.
type EventAttendee struct {
	ID           string    `json:"id"`
	EventID      string    `json:"eventId"`
	UserID       string    `json:"userId"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// InsertEventAttendee is the caller-supplied field set for a registration.
type InsertEventAttendee struct {
	EventID string `json:"eventId" validate:"required"`
	UserID  string `json:"userId" validate:"required"`
}

// EventAttendeeRepository defines storage operations for registrations.
type EventAttendeeRepository interface {
	ListByEvent(ctx context.Context, eventID string) ([]*EventAttendee, error)
	// Add stores the registration and increments the event's attendee counter
	// when the event exists; the row is stored either way.
	Add(ctx context.Context, in InsertEventAttendee) (*EventAttendee, error)
	// Remove deletes the first matching registration and decrements the
	// event's attendee counter, never below zero. No-op when nothing matches.
	Remove(ctx context.Context, eventID, userID string) error
}

// AttendeeService defines attendee-facing business operations.
type AttendeeService interface {
	ListByEvent(ctx context.Context, eventID string) ([]*EventAttendee, error)
	Register(ctx context.Context, in InsertEventAttendee) (*EventAttendee, error)
	Unregister(ctx context.Context, eventID, userID string) error
}
