package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"eventlane/internal/domain"
)

type userService struct {
	userRepo domain.UserRepository
}

// NewUserService creates a UserService backed by the given repository.
func NewUserService(userRepo domain.UserRepository) domain.UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Get(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// Create hashes the password before it reaches the store, so only the hash
// is ever held in memory alongside the record.
func (s *userService) Create(ctx context.Context, in domain.InsertUser) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	in.Password = string(hash)

	u, err := s.userRepo.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}
