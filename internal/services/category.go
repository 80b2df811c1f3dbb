package services

import (
	"context"
	"fmt"

	"eventlane/internal/domain"
)

type categoryService struct {
	categoryRepo domain.CategoryRepository
}

// NewCategoryService creates a CategoryService backed by the given repository.
func NewCategoryService(categoryRepo domain.CategoryRepository) domain.CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) List(ctx context.Context) ([]*domain.Category, error) {
	cats, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

func (s *categoryService) Create(ctx context.Context, in domain.InsertCategory) (*domain.Category, error) {
	cat, err := s.categoryRepo.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return cat, nil
}
