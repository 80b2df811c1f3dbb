package memory

import (
	"context"
	"strconv"
	"time"

	"eventlane/internal/domain"
)

type eventRepository struct {
	store *Store
}

// NewEventRepository returns an event repository backed by the store.
func NewEventRepository(store *Store) domain.EventRepository {
	return &eventRepository{store: store}
}

// List returns all events in creation order.
func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return cloneEvents(r.store.events.values()), nil
}

// GetByID returns the event with the given id or domain.ErrNotFound.
func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ev, ok := r.store.events.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneEvent(ev), nil
}

// ListByCategory returns the events whose categoryId matches, in creation
// order.
func (r *eventRepository) ListByCategory(ctx context.Context, categoryID string) ([]*domain.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.Event, 0)
	for _, ev := range r.store.events.values() {
		if ev.CategoryID == categoryID {
			out = append(out, cloneEvent(ev))
		}
	}
	return out, nil
}

// ListFeatured returns the events flagged as featured, in creation order.
func (r *eventRepository) ListFeatured(ctx context.Context) ([]*domain.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.Event, 0)
	for _, ev := range r.store.events.values() {
		if ev.IsFeatured {
			out = append(out, cloneEvent(ev))
		}
	}
	return out, nil
}

// Create assigns id, attendees=0 and createdAt, converts the price to its
// decimal string form ("0" when absent), stores the event, then recomputes
// the owning category's cached event count. The recount and the insert run
// under one lock so the aggregate can't observe a half-applied write.
func (r *eventRepository) Create(ctx context.Context, in domain.InsertEvent) (*domain.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ev := &domain.Event{
		ID:          newID(),
		Title:       in.Title,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		OrganizerID: in.OrganizerID,
		Date:        in.Date,
		Time:        in.Time,
		Location:    in.Location,
		Price:       formatPrice(in.Price),
		Capacity:    in.Capacity,
		Attendees:   0,
		IsFeatured:  in.IsFeatured != nil && *in.IsFeatured,
		ImageURL:    in.ImageURL,
		CreatedAt:   time.Now().UTC(),
	}
	r.store.events.put(ev.ID, ev)
	r.store.setCategoryEventCount(ev.CategoryID, r.store.countEventsInCategory(ev.CategoryID))
	return cloneEvent(ev), nil
}

// Update merges the non-nil patch fields over the stored event. The owning
// category's event count is deliberately not recomputed, even when the
// categoryId changes; see DESIGN.md.
func (r *eventRepository) Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ev, ok := r.store.events.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if patch.Title != nil {
		ev.Title = *patch.Title
	}
	if patch.Description != nil {
		ev.Description = *patch.Description
	}
	if patch.CategoryID != nil {
		ev.CategoryID = *patch.CategoryID
	}
	if patch.OrganizerID != nil {
		ev.OrganizerID = *patch.OrganizerID
	}
	if patch.Date != nil {
		ev.Date = *patch.Date
	}
	if patch.Time != nil {
		ev.Time = *patch.Time
	}
	if patch.Location != nil {
		ev.Location = *patch.Location
	}
	if patch.Price != nil {
		ev.Price = formatPrice(patch.Price)
	}
	if patch.Capacity != nil {
		ev.Capacity = patch.Capacity
	}
	if patch.IsFeatured != nil {
		ev.IsFeatured = *patch.IsFeatured
	}
	if patch.ImageURL != nil {
		ev.ImageURL = patch.ImageURL
	}
	return cloneEvent(ev), nil
}

// Delete removes the event unconditionally. No category recount happens
// here either; see DESIGN.md.
func (r *eventRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.events.delete(id)
	return nil
}

// formatPrice renders a price as its shortest decimal string, "0" for nil.
func formatPrice(p *float64) string {
	if p == nil {
		return "0"
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

func cloneEvent(ev *domain.Event) *domain.Event {
	out := *ev
	return &out
}

func cloneEvents(evs []*domain.Event) []*domain.Event {
	out := make([]*domain.Event, 0, len(evs))
	for _, ev := range evs {
		out = append(out, cloneEvent(ev))
	}
	return out
}
