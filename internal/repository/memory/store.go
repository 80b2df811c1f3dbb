// Package memory implements every repository interface on keyed in-memory
// maps. Nothing is persisted; process exit discards all state.
package memory

import (
	"sync"

	"github.com/google/uuid"

	"eventlane/internal/domain"
)

// collection is a keyed map that preserves insertion order, so listings come
// back in the order records were created.
type collection[T any] struct {
	order []string
	items map[string]T
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{items: make(map[string]T)}
}

func (c *collection[T]) get(id string) (T, bool) {
	v, ok := c.items[id]
	return v, ok
}

func (c *collection[T]) put(id string, v T) {
	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = v
}

func (c *collection[T]) delete(id string) {
	if _, exists := c.items[id]; !exists {
		return
	}
	delete(c.items, id)
	for i, key := range c.order {
		if key == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *collection[T]) values() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// Store owns all entity collections. A single mutex guards every operation
// so multi-step writes (event creation plus category recount, registration
// plus attendee counter) stay consistent under concurrent requests.
type Store struct {
	mu sync.RWMutex

	users         *collection[*domain.User]
	categories    *collection[*domain.Category]
	events        *collection[*domain.Event]
	attendees     *collection[*domain.EventAttendee]
	favorites     *collection[*domain.Favorite]
	subscriptions *collection[*domain.NewsletterSubscription]
}

// NewStore returns an empty store seeded with the default categories.
func NewStore() *Store {
	s := &Store{
		users:         newCollection[*domain.User](),
		categories:    newCollection[*domain.Category](),
		events:        newCollection[*domain.Event](),
		attendees:     newCollection[*domain.EventAttendee](),
		favorites:     newCollection[*domain.Favorite](),
		subscriptions: newCollection[*domain.NewsletterSubscription](),
	}
	s.seedCategories()
	return s
}

func (s *Store) seedCategories() {
	defaults := []struct {
		name        string
		description string
		icon        string
	}{
		{"Technology", "Tech conferences and workshops", "laptop-code"},
		{"Business", "Business networking and seminars", "briefcase"},
		{"Music", "Concerts and music festivals", "music"},
		{"Arts", "Art exhibitions and creative workshops", "palette"},
		{"Sports", "Sports events and fitness activities", "running"},
		{"Food", "Food festivals and culinary events", "utensils"},
		{"Health", "Health and wellness events", "heart"},
		{"Education", "Educational workshops and seminars", "graduation-cap"},
	}
	for _, d := range defaults {
		desc := d.description
		cat := &domain.Category{
			ID:          uuid.NewString(),
			Name:        d.name,
			Description: &desc,
			Icon:        d.icon,
			EventCount:  0,
		}
		s.categories.put(cat.ID, cat)
	}
}

// setCategoryEventCount overwrites the cached aggregate. No-op when the
// category is absent. Callers must hold mu.
func (s *Store) setCategoryEventCount(id string, count int) {
	if cat, ok := s.categories.get(id); ok {
		cat.EventCount = count
	}
}

// countEventsInCategory recounts events by membership. Callers must hold mu.
func (s *Store) countEventsInCategory(categoryID string) int {
	n := 0
	for _, ev := range s.events.values() {
		if ev.CategoryID == categoryID {
			n++
		}
	}
	return n
}

func newID() string {
	return uuid.NewString()
}
