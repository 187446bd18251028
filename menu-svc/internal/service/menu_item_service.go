package service

import (
	"context"
	"errors"
	"fmt"

	"menu-admin/menu-svc/internal/domain"

	"github.com/rs/zerolog/log"
)

type MenuItemService struct {
	repo       MenuItemRepository
	categories CategoryChecker
	validator  Validator
	publisher  EventPublisher
}

func NewMenuItemService(repo MenuItemRepository, categories CategoryChecker, validator Validator, publisher EventPublisher) *MenuItemService {
	return &MenuItemService{
		repo:       repo,
		categories: categories,
		validator:  validator,
		publisher:  publisher,
	}
}

func (s *MenuItemService) Create(ctx context.Context, input domain.CreateMenuItemInput) (*domain.MenuItem, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}
	if err := s.requireCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	labels := input.DietaryLabels
	if labels == nil {
		labels = []domain.DietaryLabel{}
	}

	item := &domain.MenuItem{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		Ingredients:   input.Ingredients,
		ImageURL:      input.ImageURL,
		DietaryLabels: labels,
		IsAvailable:   boolOr(input.IsAvailable, true),
		DisplayOrder:  intOr(input.DisplayOrder, 0),
		CategoryID:    input.CategoryID,
	}
	if err := s.repo.CreateMenuItem(ctx, item); err != nil {
		if errors.Is(err, domain.ErrForeignKey) {
			return nil, &CategoryNotFoundError{CategoryID: input.CategoryID}
		}
		log.Error().Err(err).Str("name", input.Name).Int("category_id", input.CategoryID).Msg("menu item creation failed")
		return nil, fmt.Errorf("create menu item: %w", err)
	}

	publish(ctx, s.publisher, domain.EventCreated, domain.EntityMenuItem, item.ID)
	return normalizeItem(item), nil
}

func (s *MenuItemService) List(ctx context.Context) ([]domain.MenuItem, error) {
	items, err := s.repo.ListMenuItems(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list menu items")
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	return normalizeItems(items), nil
}

// ListByCategory never fails on an unknown category; it just returns no items.
func (s *MenuItemService) ListByCategory(ctx context.Context, categoryID int) ([]domain.MenuItem, error) {
	items, err := s.repo.ListMenuItemsByCategory(ctx, categoryID)
	if err != nil {
		log.Error().Err(err).Int("category_id", categoryID).Msg("failed to list menu items by category")
		return nil, fmt.Errorf("list menu items for category %d: %w", categoryID, err)
	}
	return normalizeItems(items), nil
}

func (s *MenuItemService) GetByID(ctx context.Context, id int) (*domain.MenuItem, error) {
	item, err := s.repo.GetMenuItem(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("failed to get menu item")
		return nil, fmt.Errorf("get menu item %d: %w", id, err)
	}
	return normalizeItem(item), nil
}

func (s *MenuItemService) Update(ctx context.Context, input domain.UpdateMenuItemInput) (*domain.MenuItem, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	exists, err := s.repo.MenuItemExists(ctx, input.ID)
	if err != nil {
		log.Error().Err(err).Int("id", input.ID).Msg("failed to look up menu item")
		return nil, fmt.Errorf("update menu item %d: %w", input.ID, err)
	}
	if !exists {
		return nil, nil
	}

	if input.CategoryID != nil {
		if err := s.requireCategory(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	item, err := s.repo.UpdateMenuItem(ctx, input)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, nil
	case errors.Is(err, domain.ErrForeignKey) && input.CategoryID != nil:
		return nil, &CategoryNotFoundError{CategoryID: *input.CategoryID}
	case err != nil:
		log.Error().Err(err).Int("id", input.ID).Msg("menu item update failed")
		return nil, fmt.Errorf("update menu item %d: %w", input.ID, err)
	}

	publish(ctx, s.publisher, domain.EventUpdated, domain.EntityMenuItem, item.ID)
	return normalizeItem(item), nil
}

func (s *MenuItemService) Delete(ctx context.Context, id int) (bool, error) {
	rows, err := s.repo.DeleteMenuItem(ctx, id)
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("menu item deletion failed")
		return false, fmt.Errorf("delete menu item %d: %w", id, err)
	}
	if rows == 0 {
		return false, nil
	}

	publish(ctx, s.publisher, domain.EventDeleted, domain.EntityMenuItem, id)
	return true, nil
}

func (s *MenuItemService) requireCategory(ctx context.Context, categoryID int) error {
	ok, err := s.categories.CategoryExists(ctx, categoryID)
	if err != nil {
		log.Error().Err(err).Int("category_id", categoryID).Msg("failed to check category")
		return fmt.Errorf("check category %d: %w", categoryID, err)
	}
	if !ok {
		return &CategoryNotFoundError{CategoryID: categoryID}
	}
	return nil
}

func normalizeItem(item *domain.MenuItem) *domain.MenuItem {
	if item != nil && item.DietaryLabels == nil {
		item.DietaryLabels = []domain.DietaryLabel{}
	}
	return item
}

func normalizeItems(items []domain.MenuItem) []domain.MenuItem {
	if items == nil {
		return []domain.MenuItem{}
	}
	for i := range items {
		normalizeItem(&items[i])
	}
	return items
}
