package storage

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"menu-admin/menu-svc/internal/domain"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var categoryColumns = []string{"id", "name", "description", "display_order", "is_active", "created_at", "updated_at"}

type categoryRow struct {
	ID           int            `db:"id"`
	Name         string         `db:"name"`
	Description  sql.NullString `db:"description"`
	DisplayOrder int            `db:"display_order"`
	IsActive     bool           `db:"is_active"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (row categoryRow) toDomain() domain.Category {
	return domain.Category{
		ID:           row.ID,
		Name:         row.Name,
		Description:  nullString(row.Description),
		DisplayOrder: row.DisplayOrder,
		IsActive:     row.IsActive,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, category *domain.Category) error {
	query, args, err := psql.Insert("categories").
		Columns("name", "description", "display_order", "is_active").
		Values(category.Name, category.Description, category.DisplayOrder, category.IsActive).
		Suffix("RETURNING " + columnList(categoryColumns)).
		ToSql()
	if err != nil {
		return err
	}

	var row categoryRow
	if err := r.DB.GetContext(ctx, &row, query, args...); err != nil {
		return classify(err)
	}
	*category = row.toDomain()
	return nil
}

func (r *PostgresRepository) ListActiveCategories(ctx context.Context) ([]domain.Category, error) {
	query, args, err := psql.Select(categoryColumns...).
		From("categories").
		Where(sq.Eq{"is_active": true}).
		OrderBy("display_order ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []categoryRow
	if err := r.DB.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, row.toDomain())
	}
	return categories, nil
}

func (r *PostgresRepository) GetCategory(ctx context.Context, id int) (*domain.Category, error) {
	query, args, err := psql.Select(categoryColumns...).
		From("categories").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row categoryRow
	if err := r.DB.GetContext(ctx, &row, query, args...); err != nil {
		return nil, classify(err)
	}
	category := row.toDomain()
	return &category, nil
}

func (r *PostgresRepository) CategoryExists(ctx context.Context, id int) (bool, error) {
	return r.exists(ctx, "categories", id)
}

func (r *PostgresRepository) UpdateCategory(ctx context.Context, input domain.UpdateCategoryInput) (*domain.Category, error) {
	builder := psql.Update("categories").Set("updated_at", touch)
	if input.Name != nil {
		builder = builder.Set("name", *input.Name)
	}
	if input.Description.Set {
		builder = builder.Set("description", input.Description.Ptr())
	}
	if input.DisplayOrder != nil {
		builder = builder.Set("display_order", *input.DisplayOrder)
	}
	if input.IsActive != nil {
		builder = builder.Set("is_active", *input.IsActive)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": input.ID}).
		Suffix("RETURNING " + columnList(categoryColumns)).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row categoryRow
	if err := r.DB.GetContext(ctx, &row, query, args...); err != nil {
		return nil, classify(err)
	}
	category := row.toDomain()
	return &category, nil
}

// DeleteCategory locks the category row, counts dependents and deletes in a
// single transaction. Inserting a menu item takes a key-share lock on the
// same row, so a concurrent insert waits or makes the delete fail with a
// foreign key violation.
func (r *PostgresRepository) DeleteCategory(ctx context.Context, id int) (bool, int, error) {
	var deleted bool
	var dependents int

	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var locked int
		err := tx.QueryRowxContext(ctx, "SELECT id FROM categories WHERE id = $1 FOR UPDATE", id).Scan(&locked)
		if err == sql.ErrNoRows {
			return nil
		}
		if err != nil {
			return err
		}

		if err := tx.QueryRowxContext(ctx,
			"SELECT COUNT(*) FROM menu_items WHERE category_id = $1", id).Scan(&dependents); err != nil {
			return err
		}
		if dependents > 0 {
			return nil
		}

		result, err := tx.ExecContext(ctx, "DELETE FROM categories WHERE id = $1", id)
		if err != nil {
			return classify(err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return err
		}
		deleted = n > 0
		return nil
	})
	if err != nil {
		return false, 0, err
	}
	return deleted, dependents, nil
}

func columnList(columns []string) string {
	return strings.Join(columns, ", ")
}
