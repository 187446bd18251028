package service

import (
	"context"

	"menu-admin/menu-svc/internal/domain"
)

type CategoryServiceInterface interface {
	Create(ctx context.Context, input domain.CreateCategoryInput) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int) (*domain.Category, error)
	Update(ctx context.Context, input domain.UpdateCategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type MenuItemServiceInterface interface {
	Create(ctx context.Context, input domain.CreateMenuItemInput) (*domain.MenuItem, error)
	List(ctx context.Context) ([]domain.MenuItem, error)
	ListByCategory(ctx context.Context, categoryID int) ([]domain.MenuItem, error)
	GetByID(ctx context.Context, id int) (*domain.MenuItem, error)
	Update(ctx context.Context, input domain.UpdateMenuItemInput) (*domain.MenuItem, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type MenuThemeServiceInterface interface {
	Create(ctx context.Context, input domain.CreateMenuThemeInput) (*domain.MenuTheme, error)
	List(ctx context.Context) ([]domain.MenuTheme, error)
	GetActive(ctx context.Context) (*domain.MenuTheme, error)
	Update(ctx context.Context, input domain.UpdateMenuThemeInput) (*domain.MenuTheme, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type QRCodeServiceInterface interface {
	Create(ctx context.Context, input domain.CreateQRCodeInput) (*domain.QRCode, error)
	List(ctx context.Context) ([]domain.QRCode, error)
	GetByID(ctx context.Context, id int) (*domain.QRCode, error)
	Update(ctx context.Context, input domain.UpdateQRCodeInput) (*domain.QRCode, error)
	Regenerate(ctx context.Context, id int) (*domain.QRCode, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// Repositories return domain.ErrNotFound for missing rows; services turn that
// into a nil result.

// CategoryChecker is the only thing menu items need from categories.
type CategoryChecker interface {
	CategoryExists(ctx context.Context, id int) (bool, error)
}

type CategoryRepository interface {
	CategoryChecker
	CreateCategory(ctx context.Context, category *domain.Category) error
	ListActiveCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int) (*domain.Category, error)
	UpdateCategory(ctx context.Context, input domain.UpdateCategoryInput) (*domain.Category, error)
	// DeleteCategory removes an unreferenced category. It reports the number
	// of dependent menu items when it refuses.
	DeleteCategory(ctx context.Context, id int) (deleted bool, dependents int, err error)
}

type MenuItemRepository interface {
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	ListMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	ListMenuItemsByCategory(ctx context.Context, categoryID int) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error)
	MenuItemExists(ctx context.Context, id int) (bool, error)
	UpdateMenuItem(ctx context.Context, input domain.UpdateMenuItemInput) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int) (int64, error)
}

type MenuThemeRepository interface {
	// CreateTheme deactivates every other theme in the same transaction when
	// theme.IsActive is set.
	CreateTheme(ctx context.Context, theme *domain.MenuTheme) error
	ListThemes(ctx context.Context) ([]domain.MenuTheme, error)
	GetActiveTheme(ctx context.Context) (*domain.MenuTheme, error)
	UpdateTheme(ctx context.Context, input domain.UpdateMenuThemeInput) (*domain.MenuTheme, error)
	DeleteTheme(ctx context.Context, id int) (int64, error)
}

type QRCodeRepository interface {
	CreateQRCode(ctx context.Context, qr *domain.QRCode) error
	ListQRCodes(ctx context.Context) ([]domain.QRCode, error)
	GetQRCode(ctx context.Context, id int) (*domain.QRCode, error)
	// UpdateQRCode writes qrCodeURL only when it is non-nil.
	UpdateQRCode(ctx context.Context, input domain.UpdateQRCodeInput, qrCodeURL *string) (*domain.QRCode, error)
	// RegenerateQRCode stores build(menuURL, revision) as qr_code_url, where
	// menuURL is read under the same row lock and revision is the row's
	// previous revision plus one.
	RegenerateQRCode(ctx context.Context, id int, build func(menuURL string, revision int64) string) (*domain.QRCode, error)
	DeleteQRCode(ctx context.Context, id int) (int64, error)
}

// ThemeCache holds the active theme between writes. Entries are keyed by a
// generation that Invalidate moves forward.
type ThemeCache interface {
	Generation(ctx context.Context) (int64, error)
	ActiveTheme(ctx context.Context, generation int64) (*domain.MenuTheme, error)
	StoreActiveTheme(ctx context.Context, generation int64, theme *domain.MenuTheme) error
	Invalidate(ctx context.Context) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.MenuEvent) error
}

type Validator interface {
	Struct(input interface{}) error
}

var (
	_ CategoryServiceInterface  = (*CategoryService)(nil)
	_ MenuItemServiceInterface  = (*MenuItemService)(nil)
	_ MenuThemeServiceInterface = (*MenuThemeService)(nil)
	_ QRCodeServiceInterface    = (*QRCodeService)(nil)
)
