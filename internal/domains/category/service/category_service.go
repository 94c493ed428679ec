package service

import (
	"context"
	"fmt"

	"courseplatform-backend/internal/domains/category"
	"courseplatform-backend/internal/domains/category/model"
)

type categoryServiceImpl struct {
	repository category.CategoryRepository
}

func NewCategoryService(repo category.CategoryRepository) category.CategoryService {
	return &categoryServiceImpl{
		repository: repo,
	}
}

func (s *categoryServiceImpl) List(ctx context.Context) ([]model.Category, error) {
	categories, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
