package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

// CategoryService implements category use cases.
type CategoryService struct {
	categories ports.CategoryRepository
	log        zerolog.Logger
}

func NewCategoryService(categories ports.CategoryRepository, log zerolog.Logger) *CategoryService {
	return &CategoryService{categories: categories, log: log}
}

func (s *CategoryService) Create(ctx context.Context, input ports.CategoryInput) (*domain.Category, error) {
	created, err := s.categories.Create(ctx, &domain.Category{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("category_id", created.ID).Str("name", created.Name).Msg("category created")
	return created, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *CategoryService) GetAll(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.FindAll(ctx)
}

func (s *CategoryService) Update(ctx context.Context, id string, input ports.CategoryInput) (*domain.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = input.Name
	category.Description = input.Description

	return s.categories.Update(ctx, category)
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		return err
	}
	return s.categories.Delete(ctx, id)
}
