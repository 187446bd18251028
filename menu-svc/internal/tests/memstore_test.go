package tests

import (
	"context"
	"sort"
	"sync"
	"time"

	"menu-admin/menu-svc/internal/domain"
)

// memStore is an in-memory stand-in for PostgresRepository used by the
// scenario tests. It keeps the same contracts: ErrNotFound for missing rows,
// ErrForeignKey for dangling category ids, and one active theme at most.
type memStore struct {
	mu         sync.Mutex
	nextID     int
	clock      time.Time
	categories map[int]domain.Category
	items      map[int]domain.MenuItem
	themes     map[int]domain.MenuTheme
	qrCodes    map[int]domain.QRCode
	revisions  map[int]int64
}

func newMemStore() *memStore {
	return &memStore{
		clock:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		categories: map[int]domain.Category{},
		items:      map[int]domain.MenuItem{},
		themes:     map[int]domain.MenuTheme{},
		qrCodes:    map[int]domain.QRCode{},
		revisions:  map[int]int64{},
	}
}

func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Microsecond)
	return m.clock
}

func (m *memStore) id() int {
	m.nextID++
	return m.nextID
}

func (m *memStore) CategoryExists(_ context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.categories[id]
	return ok, nil
}

func (m *memStore) CreateCategory(_ context.Context, category *domain.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.tick()
	category.ID, category.CreatedAt, category.UpdatedAt = m.id(), now, now
	m.categories[category.ID] = *category
	return nil
}

func (m *memStore) ListActiveCategories(_ context.Context) ([]domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Category{}
	for _, c := range m.categories {
		if c.IsActive {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memStore) GetCategory(_ context.Context, id int) (*domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (m *memStore) UpdateCategory(_ context.Context, input domain.UpdateCategoryInput) (*domain.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.categories[input.ID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.Description.Set {
		c.Description = input.Description.Ptr()
	}
	if input.DisplayOrder != nil {
		c.DisplayOrder = *input.DisplayOrder
	}
	if input.IsActive != nil {
		c.IsActive = *input.IsActive
	}
	c.UpdatedAt = m.tick()
	m.categories[c.ID] = c
	return &c, nil
}

func (m *memStore) DeleteCategory(_ context.Context, id int) (bool, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[id]; !ok {
		return false, 0, nil
	}
	dependents := 0
	for _, item := range m.items {
		if item.CategoryID == id {
			dependents++
		}
	}
	if dependents > 0 {
		return false, dependents, nil
	}
	delete(m.categories, id)
	return true, 0, nil
}

func (m *memStore) CreateMenuItem(_ context.Context, item *domain.MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[item.CategoryID]; !ok {
		return domain.ErrForeignKey
	}
	now := m.tick()
	item.ID, item.CreatedAt, item.UpdatedAt = m.id(), now, now
	item.Price = item.Price.Round(2)
	item.DietaryLabels = append([]domain.DietaryLabel{}, item.DietaryLabels...)
	m.items[item.ID] = *item
	return nil
}

func (m *memStore) sortedItems(keep func(domain.MenuItem) bool) []domain.MenuItem {
	out := []domain.MenuItem{}
	for _, item := range m.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ci, cj := m.categories[out[i].CategoryID].DisplayOrder, m.categories[out[j].CategoryID].DisplayOrder
		if ci != cj {
			return ci < cj
		}
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (m *memStore) ListMenuItems(_ context.Context) ([]domain.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sortedItems(func(domain.MenuItem) bool { return true }), nil
}

func (m *memStore) ListMenuItemsByCategory(_ context.Context, categoryID int) ([]domain.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sortedItems(func(item domain.MenuItem) bool { return item.CategoryID == categoryID }), nil
}

func (m *memStore) GetMenuItem(_ context.Context, id int) (*domain.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &item, nil
}

func (m *memStore) MenuItemExists(_ context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.items[id]
	return ok, nil
}

func (m *memStore) UpdateMenuItem(_ context.Context, input domain.UpdateMenuItemInput) (*domain.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[input.ID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if input.CategoryID != nil {
		if _, ok := m.categories[*input.CategoryID]; !ok {
			return nil, domain.ErrForeignKey
		}
		item.CategoryID = *input.CategoryID
	}
	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description.Set {
		item.Description = input.Description.Ptr()
	}
	if input.Price != nil {
		item.Price = input.Price.Round(2)
	}
	if input.Ingredients.Set {
		item.Ingredients = input.Ingredients.Ptr()
	}
	if input.ImageURL.Set {
		item.ImageURL = input.ImageURL.Ptr()
	}
	if input.DietaryLabels != nil {
		item.DietaryLabels = append([]domain.DietaryLabel{}, *input.DietaryLabels...)
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}
	if input.DisplayOrder != nil {
		item.DisplayOrder = *input.DisplayOrder
	}
	item.UpdatedAt = m.tick()
	m.items[item.ID] = item
	return &item, nil
}

func (m *memStore) DeleteMenuItem(_ context.Context, id int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return 0, nil
	}
	delete(m.items, id)
	return 1, nil
}

func (m *memStore) deactivateThemes(keepID int) {
	for id, theme := range m.themes {
		if id != keepID && theme.IsActive {
			theme.IsActive = false
			theme.UpdatedAt = m.tick()
			m.themes[id] = theme
		}
	}
}

func (m *memStore) CreateTheme(_ context.Context, theme *domain.MenuTheme) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if theme.IsActive {
		m.deactivateThemes(0)
	}
	now := m.tick()
	theme.ID, theme.CreatedAt, theme.UpdatedAt = m.id(), now, now
	m.themes[theme.ID] = *theme
	return nil
}

func (m *memStore) ListThemes(_ context.Context) ([]domain.MenuTheme, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.MenuTheme{}
	for _, theme := range m.themes {
		out = append(out, theme)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) GetActiveTheme(_ context.Context) (*domain.MenuTheme, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, theme := range m.themes {
		if theme.IsActive {
			return &theme, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memStore) UpdateTheme(_ context.Context, input domain.UpdateMenuThemeInput) (*domain.MenuTheme, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	theme, ok := m.themes[input.ID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if input.IsActive != nil && *input.IsActive {
		m.deactivateThemes(input.ID)
	}
	if input.RestaurantName != nil {
		theme.RestaurantName = *input.RestaurantName
	}
	if input.ButtonColor != nil {
		theme.ButtonColor = *input.ButtonColor
	}
	if input.BorderRadius != nil {
		theme.BorderRadius = *input.BorderRadius
	}
	if input.IsActive != nil {
		theme.IsActive = *input.IsActive
	}
	theme.UpdatedAt = m.tick()
	m.themes[theme.ID] = theme
	return &theme, nil
}

func (m *memStore) DeleteTheme(_ context.Context, id int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.themes[id]; !ok {
		return 0, nil
	}
	delete(m.themes, id)
	return 1, nil
}

func (m *memStore) activeThemeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, theme := range m.themes {
		if theme.IsActive {
			n++
		}
	}
	return n
}

func (m *memStore) CreateQRCode(_ context.Context, qr *domain.QRCode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.tick()
	qr.ID, qr.CreatedAt, qr.UpdatedAt = m.id(), now, now
	m.qrCodes[qr.ID] = *qr
	return nil
}

func (m *memStore) ListQRCodes(_ context.Context) ([]domain.QRCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.QRCode{}
	for _, qr := range m.qrCodes {
		out = append(out, qr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) GetQRCode(_ context.Context, id int) (*domain.QRCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	qr, ok := m.qrCodes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &qr, nil
}

func (m *memStore) UpdateQRCode(_ context.Context, input domain.UpdateQRCodeInput, qrCodeURL *string) (*domain.QRCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	qr, ok := m.qrCodes[input.ID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if input.Name != nil {
		qr.Name = *input.Name
	}
	if input.MenuURL != nil {
		qr.MenuURL = *input.MenuURL
	}
	if qrCodeURL != nil {
		qr.QRCodeURL = *qrCodeURL
	}
	if input.IsActive != nil {
		qr.IsActive = *input.IsActive
	}
	qr.UpdatedAt = m.tick()
	m.qrCodes[qr.ID] = qr
	return &qr, nil
}

func (m *memStore) RegenerateQRCode(_ context.Context, id int, build func(string, int64) string) (*domain.QRCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	qr, ok := m.qrCodes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	m.revisions[id]++
	qr.QRCodeURL = build(qr.MenuURL, m.revisions[id])
	qr.UpdatedAt = m.tick()
	m.qrCodes[id] = qr
	return &qr, nil
}

func (m *memStore) DeleteQRCode(_ context.Context, id int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.qrCodes[id]; !ok {
		return 0, nil
	}
	delete(m.qrCodes, id)
	return 1, nil
}
