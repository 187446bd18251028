package service

import (
	"context"
	"errors"
	"fmt"

	"menu-admin/menu-svc/internal/domain"

	"github.com/rs/zerolog/log"
)

// MenuThemeService keeps at most one theme active. The repository does the
// deactivate-then-write sequence inside one transaction, so the guarantee
// holds across service instances. cache may be nil.
type MenuThemeService struct {
	repo      MenuThemeRepository
	cache     ThemeCache
	validator Validator
	publisher EventPublisher
}

func NewMenuThemeService(repo MenuThemeRepository, cache ThemeCache, validator Validator, publisher EventPublisher) *MenuThemeService {
	return &MenuThemeService{repo: repo, cache: cache, validator: validator, publisher: publisher}
}

func (s *MenuThemeService) Create(ctx context.Context, input domain.CreateMenuThemeInput) (*domain.MenuTheme, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	theme := &domain.MenuTheme{
		RestaurantName:  input.RestaurantName,
		ButtonColor:     input.ButtonColor,
		ButtonShape:     input.ButtonShape,
		BackgroundType:  input.BackgroundType,
		BackgroundValue: input.BackgroundValue,
		BorderRadius:    *input.BorderRadius,
		PrimaryColor:    input.PrimaryColor,
		TextColor:       input.TextColor,
		IsActive:        boolOr(input.IsActive, true),
	}
	if err := s.repo.CreateTheme(ctx, theme); err != nil {
		log.Error().Err(err).Str("restaurant_name", input.RestaurantName).Msg("menu theme creation failed")
		return nil, fmt.Errorf("create menu theme: %w", err)
	}
	s.invalidate(ctx)

	publish(ctx, s.publisher, domain.EventCreated, domain.EntityMenuTheme, theme.ID)
	if theme.IsActive {
		publish(ctx, s.publisher, domain.EventActivated, domain.EntityMenuTheme, theme.ID)
	}
	return theme, nil
}

func (s *MenuThemeService) List(ctx context.Context) ([]domain.MenuTheme, error) {
	themes, err := s.repo.ListThemes(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list menu themes")
		return nil, fmt.Errorf("list menu themes: %w", err)
	}
	if themes == nil {
		themes = []domain.MenuTheme{}
	}
	return themes, nil
}

// GetActive serves from the cache when it holds the current generation and
// falls back to the repository on a miss or a cache failure.
func (s *MenuThemeService) GetActive(ctx context.Context) (*domain.MenuTheme, error) {
	generation, cacheable := int64(0), false
	if s.cache != nil {
		gen, err := s.cache.Generation(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("active theme cache unavailable")
		} else {
			generation, cacheable = gen, true
			cached, err := s.cache.ActiveTheme(ctx, gen)
			if err != nil {
				log.Warn().Err(err).Int64("generation", gen).Msg("failed to read cached active theme")
			} else if cached != nil {
				return cached, nil
			}
		}
	}

	theme, err := s.repo.GetActiveTheme(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to get active menu theme")
		return nil, fmt.Errorf("get active menu theme: %w", err)
	}

	if cacheable {
		if err := s.cache.StoreActiveTheme(ctx, generation, theme); err != nil {
			log.Warn().Err(err).Int("id", theme.ID).Msg("failed to cache active theme")
		}
	}
	return theme, nil
}

func (s *MenuThemeService) Update(ctx context.Context, input domain.UpdateMenuThemeInput) (*domain.MenuTheme, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	theme, err := s.repo.UpdateTheme(ctx, input)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Error().Err(err).Int("id", input.ID).Msg("menu theme update failed")
		return nil, fmt.Errorf("update menu theme %d: %w", input.ID, err)
	}
	s.invalidate(ctx)

	publish(ctx, s.publisher, domain.EventUpdated, domain.EntityMenuTheme, theme.ID)
	if input.IsActive != nil && *input.IsActive {
		publish(ctx, s.publisher, domain.EventActivated, domain.EntityMenuTheme, theme.ID)
	}
	return theme, nil
}

// Delete has no guard; removing the active theme leaves none active.
func (s *MenuThemeService) Delete(ctx context.Context, id int) (bool, error) {
	rows, err := s.repo.DeleteTheme(ctx, id)
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("menu theme deletion failed")
		return false, fmt.Errorf("delete menu theme %d: %w", id, err)
	}
	if rows == 0 {
		return false, nil
	}
	s.invalidate(ctx)

	publish(ctx, s.publisher, domain.EventDeleted, domain.EntityMenuTheme, id)
	return true, nil
}

// invalidate runs after every committed write. A failure leaves the old
// entry readable until its TTL runs out.
func (s *MenuThemeService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate active theme cache")
	}
}
