package tests

import (
	"context"
	"sync"
	"testing"

	"menu-admin/menu-svc/internal/domain"
	"menu-admin/menu-svc/internal/service"
	"menu-admin/menu-svc/internal/validation"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type menuServices struct {
	store      *memStore
	categories *service.CategoryService
	items      *service.MenuItemService
	themes     *service.MenuThemeService
	qrCodes    *service.QRCodeService
}

func newMenuServices() menuServices {
	store := newMemStore()
	v := validation.New()
	return menuServices{
		store:      store,
		categories: service.NewCategoryService(store, v, nil),
		items:      service.NewMenuItemService(store, store, v, nil),
		themes:     service.NewMenuThemeService(store, nil, v, nil),
		qrCodes:    service.NewQRCodeService(store, service.NewTemplateQRGenerator("", 0), v, nil),
	}
}

func (s menuServices) mustCategory(t *testing.T, name string, order int) *domain.Category {
	t.Helper()
	category, err := s.categories.Create(context.Background(),
		domain.CreateCategoryInput{Name: name, DisplayOrder: intPtr(order)})
	require.NoError(t, err)
	return category
}

func (s menuServices) mustItem(t *testing.T, categoryID int, name string, order int) *domain.MenuItem {
	t.Helper()
	item, err := s.items.Create(context.Background(), domain.CreateMenuItemInput{
		Name: name, Price: decimal.RequireFromString("9.50"), CategoryID: categoryID, DisplayOrder: intPtr(order),
	})
	require.NoError(t, err)
	return item
}

func TestScenario_CategoryDeleteGuard(t *testing.T) {
	s := newMenuServices()
	ctx := context.Background()

	category := s.mustCategory(t, "Mains", 1)
	first := s.mustItem(t, category.ID, "Steak", 1)
	s.mustItem(t, category.ID, "Fish", 2)

	deleted, err := s.categories.Delete(ctx, category.ID)
	assert.ErrorIs(t, err, service.ErrConflict)
	assert.Contains(t, err.Error(), "has 2 menu items")
	assert.False(t, deleted)

	stillThere, err := s.categories.GetByID(ctx, category.ID)
	require.NoError(t, err)
	assert.NotNil(t, stillThere)
	items, err := s.items.ListByCategory(ctx, category.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	empty := s.mustCategory(t, "Specials", 2)
	deleted, err = s.categories.Delete(ctx, empty.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	gone, err := s.categories.GetByID(ctx, empty.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	deleted, err = s.items.Delete(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestScenario_SingleActiveTheme(t *testing.T) {
	s := newMenuServices()
	ctx := context.Background()

	assert.Equal(t, 0, s.store.activeThemeCount())

	inactive := validTheme()
	inactive.IsActive = boolPtr(false)
	dormant, err := s.themes.Create(ctx, inactive)
	require.NoError(t, err)
	assert.Equal(t, 0, s.store.activeThemeCount())

	first, err := s.themes.Create(ctx, validTheme())
	require.NoError(t, err)
	assert.Equal(t, 1, s.store.activeThemeCount())

	second, err := s.themes.Create(ctx, validTheme())
	require.NoError(t, err)
	assert.Equal(t, 1, s.store.activeThemeCount())

	active, err := s.themes.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)

	_, err = s.themes.Update(ctx, domain.UpdateMenuThemeInput{ID: dormant.ID, IsActive: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, 1, s.store.activeThemeCount())

	// Re-activating the already active theme keeps exactly one active.
	_, err = s.themes.Update(ctx, domain.UpdateMenuThemeInput{ID: dormant.ID, IsActive: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, 1, s.store.activeThemeCount())

	_, err = s.themes.Update(ctx, domain.UpdateMenuThemeInput{ID: first.ID, RestaurantName: strPtr("Renamed")})
	require.NoError(t, err)
	active, err = s.themes.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, dormant.ID, active.ID)

	var wg sync.WaitGroup
	for _, id := range []int{first.ID, second.ID, dormant.ID} {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_, _ = s.themes.Update(ctx, domain.UpdateMenuThemeInput{ID: id, IsActive: boolPtr(true)})
		}(id)
	}
	wg.Wait()
	assert.Equal(t, 1, s.store.activeThemeCount())

	themes, err := s.themes.List(ctx)
	require.NoError(t, err)
	require.Len(t, themes, 3)
	assert.Equal(t, second.ID, themes[0].ID)
	assert.Equal(t, dormant.ID, themes[2].ID)

	active, err = s.themes.GetActive(ctx)
	require.NoError(t, err)
	deleted, err := s.themes.Delete(ctx, active.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	active, err = s.themes.GetActive(ctx)
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestScenario_PriceRoundTrip(t *testing.T) {
	s := newMenuServices()
	ctx := context.Background()
	category := s.mustCategory(t, "Drinks", 1)

	for _, price := range []string{"12.99", "0.01", "999.99", "12345678.90"} {
		t.Run(price, func(t *testing.T) {
			created, err := s.items.Create(ctx, domain.CreateMenuItemInput{
				Name: "Item " + price, Price: decimal.RequireFromString(price), CategoryID: category.ID,
			})
			require.NoError(t, err)

			found, err := s.items.GetByID(ctx, created.ID)
			require.NoError(t, err)
			assert.True(t, found.Price.Equal(decimal.RequireFromString(price)),
				"expected %s, got %s", price, found.Price)
		})
	}
}

func TestScenario_PartialUpdateAndLabels(t *testing.T) {
	s := newMenuServices()
	ctx := context.Background()
	category := s.mustCategory(t, "Starters", 1)

	plain, err := s.items.Create(ctx, domain.CreateMenuItemInput{
		Name: "Bread", Description: strPtr("D"), Price: decimal.RequireFromString("3"), CategoryID: category.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.DietaryLabel{}, plain.DietaryLabels)

	updated, err := s.items.Update(ctx, domain.UpdateMenuItemInput{ID: plain.ID, Name: strPtr("X")})
	require.NoError(t, err)
	assert.Equal(t, "X", updated.Name)
	assert.Equal(t, "D", *updated.Description)

	cleared, err := s.items.Update(ctx, domain.UpdateMenuItemInput{ID: plain.ID, Description: domain.NullOf[string]()})
	require.NoError(t, err)
	assert.Nil(t, cleared.Description)
	assert.Equal(t, "X", cleared.Name)

	vegan, err := s.items.Create(ctx, domain.CreateMenuItemInput{
		Name: "Hummus", Price: decimal.RequireFromString("6"), CategoryID: category.ID,
		DietaryLabels: []domain.DietaryLabel{domain.Vegan},
	})
	require.NoError(t, err)
	found, err := s.items.GetByID(ctx, vegan.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.DietaryLabel{domain.Vegan}, found.DietaryLabels)

	emptied, err := s.items.Update(ctx, domain.UpdateMenuItemInput{ID: vegan.ID, DietaryLabels: &[]domain.DietaryLabel{}})
	require.NoError(t, err)
	assert.Equal(t, []domain.DietaryLabel{}, emptied.DietaryLabels)
}

func TestScenario_QRRegenerationUniqueness(t *testing.T) {
	s := newMenuServices()
	ctx := context.Background()

	qr, err := s.qrCodes.Create(ctx, domain.CreateQRCodeInput{Name: "Table 1", MenuURL: "https://menu.example.com/t/1"})
	require.NoError(t, err)

	first, err := s.qrCodes.Regenerate(ctx, qr.ID)
	require.NoError(t, err)
	second, err := s.qrCodes.Regenerate(ctx, qr.ID)
	require.NoError(t, err)

	assert.NotEqual(t, qr.QRCodeURL, first.QRCodeURL)
	assert.NotEqual(t, qr.QRCodeURL, second.QRCodeURL)
	assert.NotEqual(t, first.QRCodeURL, second.QRCodeURL)
	assert.Equal(t, qr.MenuURL, second.MenuURL)
	assert.Equal(t, qr.Name, second.Name)
	assert.Equal(t, qr.IsActive, second.IsActive)
	assert.Equal(t, qr.CreatedAt, second.CreatedAt)
	assert.True(t, first.UpdatedAt.After(qr.UpdatedAt))
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))

	moved, err := s.qrCodes.Update(ctx, domain.UpdateQRCodeInput{ID: qr.ID, MenuURL: strPtr("https://menu.example.com/t/2")})
	require.NoError(t, err)
	assert.Equal(t, service.NewTemplateQRGenerator("", 0).ImageURL("https://menu.example.com/t/2"), moved.QRCodeURL)

	touched, err := s.qrCodes.Update(ctx, domain.UpdateQRCodeInput{ID: qr.ID})
	require.NoError(t, err)
	assert.True(t, touched.UpdatedAt.After(moved.UpdatedAt))
	assert.Equal(t, moved.QRCodeURL, touched.QRCodeURL)
}

func TestScenario_QRRegenerationAcrossInstances(t *testing.T) {
	s := newMenuServices()
	ctx := context.Background()
	generator := service.NewTemplateQRGenerator("", 0)

	qr, err := s.qrCodes.Create(ctx, domain.CreateQRCodeInput{Name: "Table 1", MenuURL: "https://m.example.com/1"})
	require.NoError(t, err)

	first, err := s.qrCodes.Regenerate(ctx, qr.ID)
	require.NoError(t, err)

	restarted := service.NewQRCodeService(s.store, generator, validation.New(), nil)
	second, err := restarted.Regenerate(ctx, qr.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.QRCodeURL, second.QRCodeURL)

	moved, err := restarted.Update(ctx, domain.UpdateQRCodeInput{ID: qr.ID, MenuURL: strPtr("https://m.example.com/NEW")})
	require.NoError(t, err)
	third, err := s.qrCodes.Regenerate(ctx, qr.ID)
	require.NoError(t, err)
	assert.Equal(t, generator.RevisionURL(moved.MenuURL, 3), third.QRCodeURL)
	assert.NotEqual(t, second.QRCodeURL, third.QRCodeURL)
}

func TestScenario_UnknownIDUpdatesReturnNil(t *testing.T) {
	s := newMenuServices()
	ctx := context.Background()

	category, err := s.categories.Update(ctx, domain.UpdateCategoryInput{ID: 999999, Name: strPtr("X")})
	assert.NoError(t, err)
	assert.Nil(t, category)

	item, err := s.items.Update(ctx, domain.UpdateMenuItemInput{ID: 999999, Name: strPtr("X")})
	assert.NoError(t, err)
	assert.Nil(t, item)

	theme, err := s.themes.Update(ctx, domain.UpdateMenuThemeInput{ID: 999999, RestaurantName: strPtr("X")})
	assert.NoError(t, err)
	assert.Nil(t, theme)

	qr, err := s.qrCodes.Update(ctx, domain.UpdateQRCodeInput{ID: 999999, Name: strPtr("X")})
	assert.NoError(t, err)
	assert.Nil(t, qr)

	qr, err = s.qrCodes.Regenerate(ctx, 999999)
	assert.NoError(t, err)
	assert.Nil(t, qr)
}

func TestScenario_CategoryCheckPrecedesWrite(t *testing.T) {
	s := newMenuServices()
	ctx := context.Background()

	item, err := s.items.Create(ctx, domain.CreateMenuItemInput{
		Name: "Orphan", Price: decimal.RequireFromString("1"), CategoryID: 999999,
	})
	assert.Nil(t, item)
	assert.ErrorIs(t, err, service.ErrConflict)
	assert.Contains(t, err.Error(), "999999")

	items, err := s.items.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestScenario_ListOrdering(t *testing.T) {
	s := newMenuServices()
	ctx := context.Background()

	mains := s.mustCategory(t, "Mains", 2)
	appetizers := s.mustCategory(t, "Appetizers", 1)
	second := s.mustItem(t, appetizers.ID, "Olives", 2)
	first := s.mustItem(t, appetizers.ID, "Soup", 1)
	steak := s.mustItem(t, mains.ID, "Steak", 0)

	byCategory, err := s.items.ListByCategory(ctx, appetizers.ID)
	require.NoError(t, err)
	require.Len(t, byCategory, 2)
	assert.Equal(t, first.ID, byCategory[0].ID)
	assert.Equal(t, second.ID, byCategory[1].ID)

	all, err := s.items.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int{first.ID, second.ID, steak.ID}, []int{all[0].ID, all[1].ID, all[2].ID})

	categories, err := s.categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, appetizers.ID, categories[0].ID)

	_, err = s.categories.Update(ctx, domain.UpdateCategoryInput{ID: mains.ID, IsActive: boolPtr(false)})
	require.NoError(t, err)
	categories, err = s.categories.List(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 1)

	unknown, err := s.items.ListByCategory(ctx, 999999)
	require.NoError(t, err)
	assert.NotNil(t, unknown)
	assert.Empty(t, unknown)
}
