package storage

import (
	"context"
	"time"

	"menu-admin/menu-svc/internal/domain"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// themeActivationLock is the advisory lock key that serializes theme
// activations across connections and service instances.
const themeActivationLock int64 = 0x6d656e75

var themeColumns = []string{
	"id", "restaurant_name", "button_color", "button_shape", "background_type", "background_value",
	"border_radius", "primary_color", "text_color", "is_active", "created_at", "updated_at",
}

type themeRow struct {
	ID              int       `db:"id"`
	RestaurantName  string    `db:"restaurant_name"`
	ButtonColor     string    `db:"button_color"`
	ButtonShape     string    `db:"button_shape"`
	BackgroundType  string    `db:"background_type"`
	BackgroundValue string    `db:"background_value"`
	BorderRadius    int       `db:"border_radius"`
	PrimaryColor    string    `db:"primary_color"`
	TextColor       string    `db:"text_color"`
	IsActive        bool      `db:"is_active"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (row themeRow) toDomain() domain.MenuTheme {
	return domain.MenuTheme{
		ID:              row.ID,
		RestaurantName:  row.RestaurantName,
		ButtonColor:     row.ButtonColor,
		ButtonShape:     domain.ButtonShape(row.ButtonShape),
		BackgroundType:  domain.BackgroundType(row.BackgroundType),
		BackgroundValue: row.BackgroundValue,
		BorderRadius:    row.BorderRadius,
		PrimaryColor:    row.PrimaryColor,
		TextColor:       row.TextColor,
		IsActive:        row.IsActive,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

// deactivateOthers takes the activation lock and clears is_active on every
// theme except keepID. Pass 0 to clear all of them.
func deactivateOthers(ctx context.Context, tx *sqlx.Tx, keepID int) error {
	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", themeActivationLock); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx,
		"UPDATE menu_themes SET is_active = false, updated_at = GREATEST(now(), updated_at + interval '1 microsecond') WHERE is_active AND id <> $1", keepID)
	return err
}

func (r *PostgresRepository) CreateTheme(ctx context.Context, theme *domain.MenuTheme) error {
	query, args, err := psql.Insert("menu_themes").
		Columns("restaurant_name", "button_color", "button_shape", "background_type", "background_value",
			"border_radius", "primary_color", "text_color", "is_active").
		Values(theme.RestaurantName, theme.ButtonColor, string(theme.ButtonShape), string(theme.BackgroundType),
			theme.BackgroundValue, theme.BorderRadius, theme.PrimaryColor, theme.TextColor, theme.IsActive).
		Suffix("RETURNING " + columnList(themeColumns)).
		ToSql()
	if err != nil {
		return err
	}

	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		if theme.IsActive {
			if err := deactivateOthers(ctx, tx, 0); err != nil {
				return err
			}
		}

		var row themeRow
		if err := tx.GetContext(ctx, &row, query, args...); err != nil {
			return classify(err)
		}
		*theme = row.toDomain()
		return nil
	})
}

func (r *PostgresRepository) ListThemes(ctx context.Context) ([]domain.MenuTheme, error) {
	query, args, err := psql.Select(themeColumns...).
		From("menu_themes").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []themeRow
	if err := r.DB.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	themes := make([]domain.MenuTheme, 0, len(rows))
	for _, row := range rows {
		themes = append(themes, row.toDomain())
	}
	return themes, nil
}

// GetActiveTheme tolerates more than one active row left behind by older
// data and returns the most recently updated one.
func (r *PostgresRepository) GetActiveTheme(ctx context.Context) (*domain.MenuTheme, error) {
	query, args, err := psql.Select(themeColumns...).
		From("menu_themes").
		Where(sq.Eq{"is_active": true}).
		OrderBy("updated_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row themeRow
	if err := r.DB.GetContext(ctx, &row, query, args...); err != nil {
		return nil, classify(err)
	}
	theme := row.toDomain()
	return &theme, nil
}

func (r *PostgresRepository) UpdateTheme(ctx context.Context, input domain.UpdateMenuThemeInput) (*domain.MenuTheme, error) {
	builder := psql.Update("menu_themes").Set("updated_at", touch)
	if input.RestaurantName != nil {
		builder = builder.Set("restaurant_name", *input.RestaurantName)
	}
	if input.ButtonColor != nil {
		builder = builder.Set("button_color", *input.ButtonColor)
	}
	if input.ButtonShape != nil {
		builder = builder.Set("button_shape", string(*input.ButtonShape))
	}
	if input.BackgroundType != nil {
		builder = builder.Set("background_type", string(*input.BackgroundType))
	}
	if input.BackgroundValue != nil {
		builder = builder.Set("background_value", *input.BackgroundValue)
	}
	if input.BorderRadius != nil {
		builder = builder.Set("border_radius", *input.BorderRadius)
	}
	if input.PrimaryColor != nil {
		builder = builder.Set("primary_color", *input.PrimaryColor)
	}
	if input.TextColor != nil {
		builder = builder.Set("text_color", *input.TextColor)
	}
	if input.IsActive != nil {
		builder = builder.Set("is_active", *input.IsActive)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": input.ID}).
		Suffix("RETURNING " + columnList(themeColumns)).
		ToSql()
	if err != nil {
		return nil, err
	}

	activate := input.IsActive != nil && *input.IsActive

	// When the target does not exist the UPDATE finds no row and the
	// rollback restores the themes deactivated above it.
	var theme domain.MenuTheme
	err = r.withTx(ctx, func(tx *sqlx.Tx) error {
		if activate {
			if err := deactivateOthers(ctx, tx, input.ID); err != nil {
				return err
			}
		}

		var row themeRow
		if err := tx.GetContext(ctx, &row, query, args...); err != nil {
			return classify(err)
		}
		theme = row.toDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &theme, nil
}

func (r *PostgresRepository) DeleteTheme(ctx context.Context, id int) (int64, error) {
	return r.deleteByID(ctx, "menu_themes", id)
}
