package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"eventlane/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func insertEventFixture(categoryID string) domain.InsertEvent {
	return domain.InsertEvent{
		Title:       "Jazz Night",
		Description: "An evening of live jazz",
		CategoryID:  categoryID,
		OrganizerID: "organizer-1",
		Date:        "2024-03-22",
		Time:        "19:30",
		Location:    "Blue Note Club",
	}
}

func TestEventRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewEventRepository(store)

	in := insertEventFixture("cat-1")
	in.Price = ptr(25.5)
	in.Capacity = ptr(120)
	in.IsFeatured = ptr(true)
	in.ImageURL = ptr("https://img.example/jazz.jpg")

	created, err := repo.Create(ctx, in)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())
	require.Zero(t, created.Attendees)
	require.Equal(t, "25.5", created.Price)
	require.Equal(t, 120, *created.Capacity)
	require.True(t, created.IsFeatured)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestEventRepository_CreateDefaults(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository(NewStore())

	created, err := repo.Create(ctx, insertEventFixture("cat-1"))
	require.NoError(t, err)
	require.Equal(t, "0", created.Price)
	require.Nil(t, created.Capacity)
	require.False(t, created.IsFeatured)
	require.Nil(t, created.ImageURL)
}

func TestEventRepository_GetByID_NotFound(t *testing.T) {
	repo := NewEventRepository(NewStore())
	_, err := repo.GetByID(context.Background(), "nope")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventRepository_CreateRecountsCategory(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	events := NewEventRepository(store)
	categories := NewCategoryRepository(store)

	cat, err := categories.Create(ctx, domain.InsertCategory{Name: "Jazz", Icon: "music"})
	require.NoError(t, err)
	require.Zero(t, cat.EventCount)

	const n = 3
	for i := 0; i < n; i++ {
		_, err := events.Create(ctx, insertEventFixture(cat.ID))
		require.NoError(t, err)
	}

	got, err := categories.GetByID(ctx, cat.ID)
	require.NoError(t, err)
	require.Equal(t, n, got.EventCount)
}

func TestEventRepository_CreateWithUnknownCategory(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository(NewStore())

	// The store performs no referential checks; the event is stored and the
	// recount is a no-op against the absent category.
	created, err := repo.Create(ctx, insertEventFixture("no-such-category"))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "no-such-category", got.CategoryID)
}

func TestEventRepository_DeleteDoesNotRecount(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	events := NewEventRepository(store)
	categories := NewCategoryRepository(store)

	cat, err := categories.Create(ctx, domain.InsertCategory{Name: "Pop-ups", Icon: "store"})
	require.NoError(t, err)

	created, err := events.Create(ctx, insertEventFixture(cat.ID))
	require.NoError(t, err)

	require.NoError(t, events.Delete(ctx, created.ID))

	_, err = events.GetByID(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	// The cached aggregate keeps its stale value after a delete.
	got, err := categories.GetByID(ctx, cat.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.EventCount)
}

func TestEventRepository_UpdateMergesPartialFields(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	events := NewEventRepository(store)
	categories := NewCategoryRepository(store)

	catA, err := categories.Create(ctx, domain.InsertCategory{Name: "A", Icon: "a"})
	require.NoError(t, err)
	catB, err := categories.Create(ctx, domain.InsertCategory{Name: "B", Icon: "b"})
	require.NoError(t, err)

	created, err := events.Create(ctx, insertEventFixture(catA.ID))
	require.NoError(t, err)

	updated, err := events.Update(ctx, created.ID, domain.EventPatch{
		Title:      ptr("Jazz Night — Extended"),
		Price:      ptr(40.0),
		CategoryID: ptr(catB.ID),
	})
	require.NoError(t, err)
	require.Equal(t, "Jazz Night — Extended", updated.Title)
	require.Equal(t, "40", updated.Price)
	require.Equal(t, catB.ID, updated.CategoryID)
	// Untouched fields survive the merge.
	require.Equal(t, created.Description, updated.Description)
	require.Equal(t, created.Date, updated.Date)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)

	// Moving categories does not recount either side.
	gotA, err := categories.GetByID(ctx, catA.ID)
	require.NoError(t, err)
	require.Equal(t, 1, gotA.EventCount)
	gotB, err := categories.GetByID(ctx, catB.ID)
	require.NoError(t, err)
	require.Zero(t, gotB.EventCount)
}

func TestEventRepository_UpdateNotFound(t *testing.T) {
	repo := NewEventRepository(NewStore())
	_, err := repo.Update(context.Background(), "nope", domain.EventPatch{Title: ptr("x")})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventRepository_DeleteAbsentIsNoError(t *testing.T) {
	repo := NewEventRepository(NewStore())
	require.NoError(t, repo.Delete(context.Background(), "nope"))
}

func TestEventRepository_Filters(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewEventRepository(store)

	a := insertEventFixture("cat-a")
	b := insertEventFixture("cat-b")
	b.Title = "Food Fair"
	b.IsFeatured = ptr(true)
	c := insertEventFixture("cat-a")
	c.Title = "Tech Meetup"

	for _, in := range []domain.InsertEvent{a, b, c} {
		_, err := repo.Create(ctx, in)
		require.NoError(t, err)
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "Jazz Night", all[0].Title)
	require.Equal(t, "Food Fair", all[1].Title)
	require.Equal(t, "Tech Meetup", all[2].Title)

	byCat, err := repo.ListByCategory(ctx, "cat-a")
	require.NoError(t, err)
	require.Len(t, byCat, 2)
	require.Equal(t, "Jazz Night", byCat[0].Title)
	require.Equal(t, "Tech Meetup", byCat[1].Title)

	featured, err := repo.ListFeatured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	require.Equal(t, "Food Fair", featured[0].Title)
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name string
		in   *float64
		want string
	}{
		{"nil defaults to zero", nil, "0"},
		{"whole number", ptr(25.0), "25"},
		{"fractional", ptr(25.5), "25.5"},
		{"zero", ptr(0.0), "0"},
		{"two decimals", ptr(19.99), "19.99"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, formatPrice(tt.in))
		})
	}
}
