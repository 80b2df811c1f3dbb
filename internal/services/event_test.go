package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"eventlane/internal/domain"
)

type mockEventRepository struct {
	all      []*domain.Event
	byCat    map[string][]*domain.Event
	featured []*domain.Event
}

func (m *mockEventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	return m.all, nil
}

func (m *mockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	for _, ev := range m.all {
		if ev.ID == id {
			return ev, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockEventRepository) ListByCategory(ctx context.Context, categoryID string) ([]*domain.Event, error) {
	return m.byCat[categoryID], nil
}

func (m *mockEventRepository) ListFeatured(ctx context.Context) ([]*domain.Event, error) {
	return m.featured, nil
}

func (m *mockEventRepository) Create(ctx context.Context, in domain.InsertEvent) (*domain.Event, error) {
	return &domain.Event{ID: "e-new", Title: in.Title}, nil
}

func (m *mockEventRepository) Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	return nil, domain.ErrNotFound
}

func (m *mockEventRepository) Delete(ctx context.Context, id string) error {
	return nil
}

func TestEventService_ListFilterPrecedence(t *testing.T) {
	ctx := context.Background()
	repo := &mockEventRepository{
		all:      []*domain.Event{{ID: "e1"}, {ID: "e2"}, {ID: "e3"}},
		byCat:    map[string][]*domain.Event{"cat-1": {{ID: "e2"}}},
		featured: []*domain.Event{{ID: "e3"}},
	}
	svc := NewEventService(repo)

	tests := []struct {
		name    string
		filter  domain.EventFilter
		wantIDs []string
	}{
		{"no filter", domain.EventFilter{}, []string{"e1", "e2", "e3"}},
		{"category", domain.EventFilter{CategoryID: "cat-1"}, []string{"e2"}},
		{"featured", domain.EventFilter{FeaturedOnly: true}, []string{"e3"}},
		{"featured wins over category", domain.EventFilter{CategoryID: "cat-1", FeaturedOnly: true}, []string{"e3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := svc.List(ctx, tt.filter)
			require.NoError(t, err)
			ids := make([]string, 0, len(events))
			for _, ev := range events {
				ids = append(ids, ev.ID)
			}
			require.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestEventService_GetNotFound(t *testing.T) {
	svc := NewEventService(&mockEventRepository{})
	_, err := svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventService_UpdateNotFound(t *testing.T) {
	svc := NewEventService(&mockEventRepository{})
	_, err := svc.Update(context.Background(), "missing", domain.EventPatch{})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
