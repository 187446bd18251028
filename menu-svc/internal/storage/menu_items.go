package storage

import (
	"context"
	"database/sql"
	"time"

	"menu-admin/menu-svc/internal/domain"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

var menuItemColumns = []string{
	"id", "name", "description", "price", "ingredients", "image_url", "dietary_labels",
	"is_available", "display_order", "category_id", "created_at", "updated_at",
}

type menuItemRow struct {
	ID            int             `db:"id"`
	Name          string          `db:"name"`
	Description   sql.NullString  `db:"description"`
	Price         decimal.Decimal `db:"price"`
	Ingredients   sql.NullString  `db:"ingredients"`
	ImageURL      sql.NullString  `db:"image_url"`
	DietaryLabels pq.StringArray  `db:"dietary_labels"`
	IsAvailable   bool            `db:"is_available"`
	DisplayOrder  int             `db:"display_order"`
	CategoryID    int             `db:"category_id"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

func (row menuItemRow) toDomain() domain.MenuItem {
	labels := make([]domain.DietaryLabel, 0, len(row.DietaryLabels))
	for _, l := range row.DietaryLabels {
		labels = append(labels, domain.DietaryLabel(l))
	}
	return domain.MenuItem{
		ID:            row.ID,
		Name:          row.Name,
		Description:   nullString(row.Description),
		Price:         row.Price,
		Ingredients:   nullString(row.Ingredients),
		ImageURL:      nullString(row.ImageURL),
		DietaryLabels: labels,
		IsAvailable:   row.IsAvailable,
		DisplayOrder:  row.DisplayOrder,
		CategoryID:    row.CategoryID,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func labelArray(labels []domain.DietaryLabel) interface{} {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		out = append(out, string(l))
	}
	return pq.Array(out)
}

func (r *PostgresRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	query, args, err := psql.Insert("menu_items").
		Columns("name", "description", "price", "ingredients", "image_url", "dietary_labels",
			"is_available", "display_order", "category_id").
		Values(item.Name, item.Description, item.Price, item.Ingredients, item.ImageURL,
			labelArray(item.DietaryLabels), item.IsAvailable, item.DisplayOrder, item.CategoryID).
		Suffix("RETURNING " + columnList(menuItemColumns)).
		ToSql()
	if err != nil {
		return err
	}

	var row menuItemRow
	if err := r.DB.GetContext(ctx, &row, query, args...); err != nil {
		return classify(err)
	}
	*item = row.toDomain()
	return nil
}

// ListMenuItems orders by the owning category first, then by the item.
func (r *PostgresRepository) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	columns := make([]string, len(menuItemColumns))
	for i, c := range menuItemColumns {
		columns[i] = "m." + c
	}

	query, args, err := psql.Select(columns...).
		From("menu_items m").
		Join("categories c ON c.id = m.category_id").
		OrderBy("c.display_order ASC", "m.display_order ASC", "m.id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.selectMenuItems(ctx, query, args)
}

func (r *PostgresRepository) ListMenuItemsByCategory(ctx context.Context, categoryID int) ([]domain.MenuItem, error) {
	query, args, err := psql.Select(menuItemColumns...).
		From("menu_items").
		Where(sq.Eq{"category_id": categoryID}).
		OrderBy("display_order ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.selectMenuItems(ctx, query, args)
}

func (r *PostgresRepository) selectMenuItems(ctx context.Context, query string, args []interface{}) ([]domain.MenuItem, error) {
	var rows []menuItemRow
	if err := r.DB.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	items := make([]domain.MenuItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toDomain())
	}
	return items, nil
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	query, args, err := psql.Select(menuItemColumns...).
		From("menu_items").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row menuItemRow
	if err := r.DB.GetContext(ctx, &row, query, args...); err != nil {
		return nil, classify(err)
	}
	item := row.toDomain()
	return &item, nil
}

func (r *PostgresRepository) MenuItemExists(ctx context.Context, id int) (bool, error) {
	return r.exists(ctx, "menu_items", id)
}

func (r *PostgresRepository) UpdateMenuItem(ctx context.Context, input domain.UpdateMenuItemInput) (*domain.MenuItem, error) {
	builder := psql.Update("menu_items").Set("updated_at", touch)
	if input.Name != nil {
		builder = builder.Set("name", *input.Name)
	}
	if input.Description.Set {
		builder = builder.Set("description", input.Description.Ptr())
	}
	if input.Price != nil {
		builder = builder.Set("price", *input.Price)
	}
	if input.Ingredients.Set {
		builder = builder.Set("ingredients", input.Ingredients.Ptr())
	}
	if input.ImageURL.Set {
		builder = builder.Set("image_url", input.ImageURL.Ptr())
	}
	if input.DietaryLabels != nil {
		builder = builder.Set("dietary_labels", labelArray(*input.DietaryLabels))
	}
	if input.IsAvailable != nil {
		builder = builder.Set("is_available", *input.IsAvailable)
	}
	if input.DisplayOrder != nil {
		builder = builder.Set("display_order", *input.DisplayOrder)
	}
	if input.CategoryID != nil {
		builder = builder.Set("category_id", *input.CategoryID)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": input.ID}).
		Suffix("RETURNING " + columnList(menuItemColumns)).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row menuItemRow
	if err := r.DB.GetContext(ctx, &row, query, args...); err != nil {
		return nil, classify(err)
	}
	item := row.toDomain()
	return &item, nil
}

func (r *PostgresRepository) DeleteMenuItem(ctx context.Context, id int) (int64, error) {
	return r.deleteByID(ctx, "menu_items", id)
}
