package memory

import (
	"context"
	"time"

	"eventlane/internal/domain"
)

type attendeeRepository struct {
	store *Store
}

// NewEventAttendeeRepository returns a registration repository backed by the
// store.
func NewEventAttendeeRepository(store *Store) domain.EventAttendeeRepository {
	return &attendeeRepository{store: store}
}

// ListByEvent returns the registrations for the event in creation order.
func (r *attendeeRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.EventAttendee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.EventAttendee, 0)
	for _, a := range r.store.attendees.values() {
		if a.EventID == eventID {
			out = append(out, cloneAttendee(a))
		}
	}
	return out, nil
}

// Add assigns id and registeredAt and stores the registration. When the
// referenced event exists its attendee counter is incremented in the same
// locked step; when it doesn't, the row is stored anyway and the counter
// update is skipped.
func (r *attendeeRepository) Add(ctx context.Context, in domain.InsertEventAttendee) (*domain.EventAttendee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	a := &domain.EventAttendee{
		ID:           newID(),
		EventID:      in.EventID,
		UserID:       in.UserID,
		RegisteredAt: time.Now().UTC(),
	}
	r.store.attendees.put(a.ID, a)

	if ev, ok := r.store.events.get(in.EventID); ok {
		ev.Attendees++
	}
	return cloneAttendee(a), nil
}

// Remove deletes the first registration matching (eventID, userID) and
// decrements the event's attendee counter, never below zero. Nothing happens
// when no registration matches.
func (r *attendeeRepository) Remove(ctx context.Context, eventID, userID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, a := range r.store.attendees.values() {
		if a.EventID == eventID && a.UserID == userID {
			r.store.attendees.delete(a.ID)
			if ev, ok := r.store.events.get(eventID); ok && ev.Attendees > 0 {
				ev.Attendees--
			}
			return nil
		}
	}
	return nil
}

func cloneAttendee(a *domain.EventAttendee) *domain.EventAttendee {
	out := *a
	return &out
}
