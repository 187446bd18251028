package service

import (
	"context"
	"errors"
	"fmt"

	"menu-admin/menu-svc/internal/domain"

	"github.com/rs/zerolog/log"
)

type CategoryService struct {
	repo      CategoryRepository
	validator Validator
	publisher EventPublisher
}

func NewCategoryService(repo CategoryRepository, validator Validator, publisher EventPublisher) *CategoryService {
	return &CategoryService{repo: repo, validator: validator, publisher: publisher}
}

func (s *CategoryService) Create(ctx context.Context, input domain.CreateCategoryInput) (*domain.Category, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	category := &domain.Category{
		Name:         input.Name,
		Description:  input.Description,
		DisplayOrder: intOr(input.DisplayOrder, 0),
		IsActive:     boolOr(input.IsActive, true),
	}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		log.Error().Err(err).Str("name", input.Name).Msg("category creation failed")
		return nil, fmt.Errorf("create category: %w", err)
	}

	publish(ctx, s.publisher, domain.EventCreated, domain.EntityCategory, category.ID)
	return category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.ListActiveCategories(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list categories")
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	category, err := s.repo.GetCategory(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to get category")
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}
	return category, nil
}

// Update applies only the fields present in input. An input carrying nothing
// but the id still refreshes updated_at.
func (s *CategoryService) Update(ctx context.Context, input domain.UpdateCategoryInput) (*domain.Category, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	category, err := s.repo.UpdateCategory(ctx, input)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Error().Err(err).Int("id", input.ID).Msg("category update failed")
		return nil, fmt.Errorf("update category %d: %w", input.ID, err)
	}

	publish(ctx, s.publisher, domain.EventUpdated, domain.EntityCategory, category.ID)
	return category, nil
}

// Delete refuses while menu items reference the category. A foreign key
// violation from an item inserted concurrently is reported the same way.
func (s *CategoryService) Delete(ctx context.Context, id int) (bool, error) {
	deleted, dependents, err := s.repo.DeleteCategory(ctx, id)
	if errors.Is(err, domain.ErrForeignKey) {
		return false, &CategoryInUseError{CategoryID: id}
	}
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("category deletion failed")
		return false, fmt.Errorf("delete category %d: %w", id, err)
	}
	if dependents > 0 {
		return false, &CategoryInUseError{CategoryID: id, ItemCount: dependents}
	}

	if deleted {
		publish(ctx, s.publisher, domain.EventDeleted, domain.EntityCategory, id)
	}
	return deleted, nil
}
