package domain

import "github.com/shopspring/decimal"

// Create inputs use pointers for optional fields so defaults can be applied
// when a field is absent. Update inputs leave every field but ID optional;
// nullable columns use Nullable so an explicit null clears the value.

type CreateCategoryInput struct {
	Name         string  `json:"name" validate:"required"`
	Description  *string `json:"description"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

type UpdateCategoryInput struct {
	ID           int              `json:"id" validate:"gt=0"`
	Name         *string          `json:"name" validate:"omitempty,min=1"`
	Description  Nullable[string] `json:"description"`
	DisplayOrder *int             `json:"display_order"`
	IsActive     *bool            `json:"is_active"`
}

type CreateMenuItemInput struct {
	Name          string          `json:"name" validate:"required"`
	Description   *string         `json:"description"`
	Price         decimal.Decimal `json:"price" validate:"price"`
	Ingredients   *string         `json:"ingredients"`
	ImageURL      *string         `json:"image_url" validate:"omitempty,url"`
	DietaryLabels []DietaryLabel  `json:"dietary_labels" validate:"omitempty,dive,dietary_label"`
	IsAvailable   *bool           `json:"is_available"`
	DisplayOrder  *int            `json:"display_order"`
	CategoryID    int             `json:"category_id" validate:"gt=0"`
}

type UpdateMenuItemInput struct {
	ID            int              `json:"id" validate:"gt=0"`
	Name          *string          `json:"name" validate:"omitempty,min=1"`
	Description   Nullable[string] `json:"description"`
	Price         *decimal.Decimal `json:"price" validate:"omitempty,price"`
	Ingredients   Nullable[string] `json:"ingredients"`
	ImageURL      Nullable[string] `json:"image_url" validate:"omitempty,url"`
	DietaryLabels *[]DietaryLabel  `json:"dietary_labels" validate:"omitempty,dive,dietary_label"`
	IsAvailable   *bool            `json:"is_available"`
	DisplayOrder  *int             `json:"display_order"`
	CategoryID    *int             `json:"category_id" validate:"omitempty,gt=0"`
}

type CreateMenuThemeInput struct {
	RestaurantName  string         `json:"restaurant_name" validate:"required"`
	ButtonColor     string         `json:"button_color" validate:"required,hex_rgb"`
	ButtonShape     ButtonShape    `json:"button_shape" validate:"required,oneof=rounded square pill"`
	BackgroundType  BackgroundType `json:"background_type" validate:"required,oneof=color image"`
	BackgroundValue string         `json:"background_value" validate:"required"`
	BorderRadius    *int           `json:"border_radius" validate:"required,min=0,max=50"`
	PrimaryColor    string         `json:"primary_color" validate:"required,hex_rgb"`
	TextColor       string         `json:"text_color" validate:"required,hex_rgb"`
	IsActive        *bool          `json:"is_active"`
}

type UpdateMenuThemeInput struct {
	ID              int             `json:"id" validate:"gt=0"`
	RestaurantName  *string         `json:"restaurant_name" validate:"omitempty,min=1"`
	ButtonColor     *string         `json:"button_color" validate:"omitempty,hex_rgb"`
	ButtonShape     *ButtonShape    `json:"button_shape" validate:"omitempty,oneof=rounded square pill"`
	BackgroundType  *BackgroundType `json:"background_type" validate:"omitempty,oneof=color image"`
	BackgroundValue *string         `json:"background_value" validate:"omitempty,min=1"`
	BorderRadius    *int            `json:"border_radius" validate:"omitempty,min=0,max=50"`
	PrimaryColor    *string         `json:"primary_color" validate:"omitempty,hex_rgb"`
	TextColor       *string         `json:"text_color" validate:"omitempty,hex_rgb"`
	IsActive        *bool           `json:"is_active"`
}

// QR code inputs deliberately have no qr_code_url field: it is derived from
// menu_url inside the service.
type CreateQRCodeInput struct {
	Name     string `json:"name" validate:"required"`
	MenuURL  string `json:"menu_url" validate:"required,url,qr_payload"`
	IsActive *bool  `json:"is_active"`
}

type UpdateQRCodeInput struct {
	ID       int     `json:"id" validate:"gt=0"`
	Name     *string `json:"name" validate:"omitempty,min=1"`
	MenuURL  *string `json:"menu_url" validate:"omitempty,url,qr_payload"`
	IsActive *bool   `json:"is_active"`
}
