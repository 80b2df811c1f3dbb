package memory

import (
	"context"

	"eventlane/internal/domain"
)

type categoryRepository struct {
	store *Store
}

// NewCategoryRepository returns a category repository backed by the store.
func NewCategoryRepository(store *Store) domain.CategoryRepository {
	return &categoryRepository{store: store}
}

// List returns all categories in creation order.
func (r *categoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	cats := r.store.categories.values()
	out := make([]*domain.Category, 0, len(cats))
	for _, c := range cats {
		out = append(out, cloneCategory(c))
	}
	return out, nil
}

// GetByID returns the category with the given id or domain.ErrNotFound.
func (r *categoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.categories.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneCategory(c), nil
}

// Create assigns an id, initializes the event count to zero, and stores the
// category.
func (r *categoryRepository) Create(ctx context.Context, in domain.InsertCategory) (*domain.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c := &domain.Category{
		ID:          newID(),
		Name:        in.Name,
		Description: in.Description,
		Icon:        in.Icon,
		EventCount:  0,
	}
	r.store.categories.put(c.ID, c)
	return cloneCategory(c), nil
}

// UpdateEventCount overwrites the cached count for an existing category and
// silently does nothing when the category is absent.
func (r *categoryRepository) UpdateEventCount(ctx context.Context, id string, count int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.setCategoryEventCount(id, count)
	return nil
}

func cloneCategory(c *domain.Category) *domain.Category {
	out := *c
	return &out
}
