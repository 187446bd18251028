package tests

import (
	"context"
	"errors"
	"testing"

	"menu-admin/menu-svc/internal/domain"
	"menu-admin/menu-svc/internal/mocks"
	"menu-admin/menu-svc/internal/service"
	"menu-admin/menu-svc/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func isEvent(eventType domain.EventType) interface{} {
	return mock.MatchedBy(func(e domain.MenuEvent) bool { return e.Type == eventType })
}

func TestMenuThemeService_Create(t *testing.T) {
	repository := mocks.NewMenuThemeRepository(t)
	publisher := mocks.NewEventPublisher(t)
	svc := service.NewMenuThemeService(repository, nil, validation.New(), publisher)

	ctx := context.Background()

	tests := []struct {
		name          string
		input         func() domain.CreateMenuThemeInput
		prepareMocks  func()
		expectedError bool
		expectActive  bool
	}{
		{
			name:  "defaults_to_active",
			input: validTheme,
			prepareMocks: func() {
				repository.On("CreateTheme", ctx, mock.MatchedBy(func(theme *domain.MenuTheme) bool {
					return theme.IsActive && theme.BorderRadius == 10
				})).Return(nil).Once()
				publisher.On("Publish", ctx, isEvent(domain.EventCreated)).Return(nil).Once()
				publisher.On("Publish", ctx, isEvent(domain.EventActivated)).Return(nil).Once()
			},
			expectActive: true,
		},
		{
			name: "inactive_leaves_others_alone",
			input: func() domain.CreateMenuThemeInput {
				in := validTheme()
				in.IsActive = boolPtr(false)
				return in
			},
			prepareMocks: func() {
				repository.On("CreateTheme", ctx, mock.MatchedBy(func(theme *domain.MenuTheme) bool {
					return !theme.IsActive
				})).Return(nil).Once()
				publisher.On("Publish", ctx, isEvent(domain.EventCreated)).Return(nil).Once()
			},
		},
		{
			name: "invalid_color",
			input: func() domain.CreateMenuThemeInput {
				in := validTheme()
				in.PrimaryColor = "red"
				return in
			},
			prepareMocks:  func() {},
			expectedError: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			theme, err := svc.Create(ctx, testCase.input())
			if testCase.expectedError {
				var verr *validation.Error
				assert.ErrorAs(t, err, &verr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expectActive, theme.IsActive)
		})
	}
}

func TestMenuThemeService_GetActive(t *testing.T) {
	repository := mocks.NewMenuThemeRepository(t)
	svc := service.NewMenuThemeService(repository, nil, validation.New(), nil)

	ctx := context.Background()

	repository.On("GetActiveTheme", ctx).Return(nil, domain.ErrNotFound).Once()
	theme, err := svc.GetActive(ctx)
	assert.NoError(t, err)
	assert.Nil(t, theme)

	repository.On("GetActiveTheme", ctx).Return(&domain.MenuTheme{ID: 3, IsActive: true}, nil).Once()
	theme, err = svc.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, theme.ID)
}

func TestMenuThemeService_Update(t *testing.T) {
	repository := mocks.NewMenuThemeRepository(t)
	publisher := mocks.NewEventPublisher(t)
	svc := service.NewMenuThemeService(repository, nil, validation.New(), publisher)

	ctx := context.Background()

	repository.On("UpdateTheme", ctx, domain.UpdateMenuThemeInput{ID: 2, IsActive: boolPtr(true)}).
		Return(&domain.MenuTheme{ID: 2, IsActive: true}, nil).Once()
	publisher.On("Publish", ctx, isEvent(domain.EventUpdated)).Return(nil).Once()
	publisher.On("Publish", ctx, isEvent(domain.EventActivated)).Return(nil).Once()

	theme, err := svc.Update(ctx, domain.UpdateMenuThemeInput{ID: 2, IsActive: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, theme.IsActive)

	repository.On("UpdateTheme", ctx, mock.MatchedBy(func(in domain.UpdateMenuThemeInput) bool {
		return in.ID == 999999
	})).Return(nil, domain.ErrNotFound).Once()
	theme, err = svc.Update(ctx, domain.UpdateMenuThemeInput{ID: 999999, RestaurantName: strPtr("X")})
	assert.NoError(t, err)
	assert.Nil(t, theme)
}

func TestMenuThemeService_Delete(t *testing.T) {
	repository := mocks.NewMenuThemeRepository(t)
	svc := service.NewMenuThemeService(repository, nil, validation.New(), nil)

	ctx := context.Background()

	repository.On("DeleteTheme", ctx, 1).Return(int64(1), nil).Once()
	deleted, err := svc.Delete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	repository.On("DeleteTheme", ctx, 2).Return(int64(0), nil).Once()
	deleted, err = svc.Delete(ctx, 2)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMenuThemeService_GetActiveCached(t *testing.T) {
	repository := mocks.NewMenuThemeRepository(t)
	cache := mocks.NewThemeCache(t)
	svc := service.NewMenuThemeService(repository, cache, validation.New(), nil)

	ctx := context.Background()
	active := &domain.MenuTheme{ID: 3, IsActive: true}

	cache.On("Generation", ctx).Return(int64(7), nil).Twice()
	cache.On("ActiveTheme", ctx, int64(7)).Return(nil, nil).Once()
	repository.On("GetActiveTheme", ctx).Return(active, nil).Once()
	cache.On("StoreActiveTheme", ctx, int64(7), active).Return(nil).Once()

	theme, err := svc.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, theme.ID)

	cache.On("ActiveTheme", ctx, int64(7)).Return(active, nil).Once()
	theme, err = svc.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, theme.ID)
}

func TestMenuThemeService_GetActiveCacheDown(t *testing.T) {
	repository := mocks.NewMenuThemeRepository(t)
	cache := mocks.NewThemeCache(t)
	svc := service.NewMenuThemeService(repository, cache, validation.New(), nil)

	ctx := context.Background()

	cache.On("Generation", ctx).Return(int64(0), errors.New("connection refused")).Once()
	repository.On("GetActiveTheme", ctx).Return(&domain.MenuTheme{ID: 4, IsActive: true}, nil).Once()

	theme, err := svc.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, theme.ID)
	cache.AssertNotCalled(t, "StoreActiveTheme", mock.Anything, mock.Anything, mock.Anything)
}

func TestMenuThemeService_WritesInvalidateCache(t *testing.T) {
	repository := mocks.NewMenuThemeRepository(t)
	cache := mocks.NewThemeCache(t)
	svc := service.NewMenuThemeService(repository, cache, validation.New(), nil)

	ctx := context.Background()

	repository.On("CreateTheme", ctx, mock.Anything).Return(nil).Once()
	repository.On("UpdateTheme", ctx, domain.UpdateMenuThemeInput{ID: 2, IsActive: boolPtr(true)}).
		Return(&domain.MenuTheme{ID: 2, IsActive: true}, nil).Once()
	repository.On("DeleteTheme", ctx, 2).Return(int64(1), nil).Once()
	repository.On("DeleteTheme", ctx, 3).Return(int64(0), nil).Once()
	cache.On("Invalidate", ctx).Return(nil).Times(2)
	cache.On("Invalidate", ctx).Return(errors.New("connection refused")).Once()

	_, err := svc.Create(ctx, validTheme())
	require.NoError(t, err)
	_, err = svc.Update(ctx, domain.UpdateMenuThemeInput{ID: 2, IsActive: boolPtr(true)})
	require.NoError(t, err)
	deleted, err := svc.Delete(ctx, 2)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Delete(ctx, 3)
	require.NoError(t, err)
	assert.False(t, deleted)
}
