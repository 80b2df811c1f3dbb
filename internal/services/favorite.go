package services

import (
	"context"
	"fmt"

	"eventlane/internal/domain"
)

type favoriteService struct {
	favoriteRepo domain.FavoriteRepository
}

// NewFavoriteService creates a FavoriteService backed by the given
// repository.
func NewFavoriteService(favoriteRepo domain.FavoriteRepository) domain.FavoriteService {
	return &favoriteService{favoriteRepo: favoriteRepo}
}

func (s *favoriteService) ListByUser(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	favs, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favs, nil
}

func (s *favoriteService) Add(ctx context.Context, in domain.InsertFavorite) (*domain.Favorite, error) {
	fav, err := s.favoriteRepo.Add(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("add favorite: %w", err)
	}
	return fav, nil
}

func (s *favoriteService) Remove(ctx context.Context, userID, eventID string) error {
	if err := s.favoriteRepo.Remove(ctx, userID, eventID); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}
