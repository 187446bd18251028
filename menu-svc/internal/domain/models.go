package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices are exposed as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

var (
	ErrNotFound        = errors.New("record not found")
	ErrForeignKey      = errors.New("foreign key violation")
	ErrUniqueViolation = errors.New("unique constraint violation")
)

type DietaryLabel string

const (
	Vegetarian DietaryLabel = "vegetarian"
	Vegan      DietaryLabel = "vegan"
	GlutenFree DietaryLabel = "gluten-free"
	DairyFree  DietaryLabel = "dairy-free"
	NutFree    DietaryLabel = "nut-free"
	Keto       DietaryLabel = "keto"
	LowCarb    DietaryLabel = "low-carb"
	Halal      DietaryLabel = "halal"
	Kosher     DietaryLabel = "kosher"
	Spicy      DietaryLabel = "spicy"
	Organic    DietaryLabel = "organic"
)

type ButtonShape string

const (
	ButtonRounded ButtonShape = "rounded"
	ButtonSquare  ButtonShape = "square"
	ButtonPill    ButtonShape = "pill"
)

type BackgroundType string

const (
	BackgroundColor BackgroundType = "color"
	BackgroundImage BackgroundType = "image"
)

type Category struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type MenuItem struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Description   *string         `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Ingredients   *string         `json:"ingredients"`
	ImageURL      *string         `json:"image_url"`
	DietaryLabels []DietaryLabel  `json:"dietary_labels"`
	IsAvailable   bool            `json:"is_available"`
	DisplayOrder  int             `json:"display_order"`
	CategoryID    int             `json:"category_id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type MenuTheme struct {
	ID              int            `json:"id"`
	RestaurantName  string         `json:"restaurant_name"`
	ButtonColor     string         `json:"button_color"`
	ButtonShape     ButtonShape    `json:"button_shape"`
	BackgroundType  BackgroundType `json:"background_type"`
	BackgroundValue string         `json:"background_value"`
	BorderRadius    int            `json:"border_radius"`
	PrimaryColor    string         `json:"primary_color"`
	TextColor       string         `json:"text_color"`
	IsActive        bool           `json:"is_active"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

type QRCode struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	MenuURL   string    `json:"menu_url"`
	QRCodeURL string    `json:"qr_code_url"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
