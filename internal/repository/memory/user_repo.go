package memory

import (
	"context"
	"time"

	"eventlane/internal/domain"
)

type userRepository struct {
	store *Store
}

// NewUserRepository returns a user repository backed by the store.
func NewUserRepository(store *Store) domain.UserRepository {
	return &userRepository{store: store}
}

// GetByID returns the user with the given id or domain.ErrNotFound.
func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users.get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneUser(u), nil
}

// GetByUsername scans for the user with the given username.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users.values() {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrNotFound
}

// GetByEmail scans for the user with the given email.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users.values() {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create assigns id and createdAt and stores the user. Absent optional name
// fields stay nil, serializing as explicit JSON null.
func (r *userRepository) Create(ctx context.Context, in domain.InsertUser) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u := &domain.User{
		ID:        newID(),
		Username:  in.Username,
		Email:     in.Email,
		Password:  in.Password,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		CreatedAt: time.Now().UTC(),
	}
	r.store.users.put(u.ID, u)
	return cloneUser(u), nil
}

func cloneUser(u *domain.User) *domain.User {
	out := *u
	return &out
}
