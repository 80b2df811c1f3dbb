package domain

import (
	"context"
	"time"
)

// User represents a registered account. The password is stored hashed and is
// excluded from JSON serialization so it can never leak through a response.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FirstName *string   `json:"firstName"`
	LastName  *string   `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertUser is the caller-supplied field set for creating a user.
// ID and createdAt are assigned by the store.
type InsertUser struct {
	Username  string  `json:"username" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// UserRepository defines storage operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, in InsertUser) (*User, error)
}

// UserService defines user-facing business operations.
type UserService interface {
	Get(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, in InsertUser) (*User, error)
}
