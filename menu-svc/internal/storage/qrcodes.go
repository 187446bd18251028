package storage

import (
	"context"
	"time"

	"menu-admin/menu-svc/internal/domain"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var qrCodeColumns = []string{"id", "name", "menu_url", "qr_code_url", "is_active", "created_at", "updated_at"}

type qrCodeRow struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	MenuURL   string    `db:"menu_url"`
	QRCodeURL string    `db:"qr_code_url"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (row qrCodeRow) toDomain() domain.QRCode {
	return domain.QRCode(row)
}

func (r *PostgresRepository) CreateQRCode(ctx context.Context, qr *domain.QRCode) error {
	query, args, err := psql.Insert("qr_codes").
		Columns("name", "menu_url", "qr_code_url", "is_active").
		Values(qr.Name, qr.MenuURL, qr.QRCodeURL, qr.IsActive).
		Suffix("RETURNING " + columnList(qrCodeColumns)).
		ToSql()
	if err != nil {
		return err
	}

	var row qrCodeRow
	if err := r.DB.GetContext(ctx, &row, query, args...); err != nil {
		return classify(err)
	}
	*qr = row.toDomain()
	return nil
}

func (r *PostgresRepository) ListQRCodes(ctx context.Context) ([]domain.QRCode, error) {
	query, args, err := psql.Select(qrCodeColumns...).
		From("qr_codes").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []qrCodeRow
	if err := r.DB.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	codes := make([]domain.QRCode, 0, len(rows))
	for _, row := range rows {
		codes = append(codes, row.toDomain())
	}
	return codes, nil
}

func (r *PostgresRepository) GetQRCode(ctx context.Context, id int) (*domain.QRCode, error) {
	query, args, err := psql.Select(qrCodeColumns...).
		From("qr_codes").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.getQRCode(ctx, query, args)
}

func (r *PostgresRepository) UpdateQRCode(ctx context.Context, input domain.UpdateQRCodeInput, qrCodeURL *string) (*domain.QRCode, error) {
	builder := psql.Update("qr_codes").Set("updated_at", touch)
	if input.Name != nil {
		builder = builder.Set("name", *input.Name)
	}
	if input.MenuURL != nil {
		builder = builder.Set("menu_url", *input.MenuURL)
	}
	if qrCodeURL != nil {
		builder = builder.Set("qr_code_url", *qrCodeURL)
	}
	if input.IsActive != nil {
		builder = builder.Set("is_active", *input.IsActive)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": input.ID}).
		Suffix("RETURNING " + columnList(qrCodeColumns)).
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.getQRCode(ctx, query, args)
}

// RegenerateQRCode locks the row, bumps qr_revision and stores the URL that
// build returns for the locked menu_url and the new revision. A concurrent
// menu_url update waits on the lock, so the stored URL always encodes the
// current menu_url.
func (r *PostgresRepository) RegenerateQRCode(ctx context.Context, id int, build func(menuURL string, revision int64) string) (*domain.QRCode, error) {
	var qr domain.QRCode
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var current struct {
			MenuURL  string `db:"menu_url"`
			Revision int64  `db:"qr_revision"`
		}
		if err := tx.GetContext(ctx, &current,
			"SELECT menu_url, qr_revision FROM qr_codes WHERE id = $1 FOR UPDATE", id); err != nil {
			return classify(err)
		}

		revision := current.Revision + 1
		query, args, err := psql.Update("qr_codes").
			Set("updated_at", touch).
			Set("qr_revision", revision).
			Set("qr_code_url", build(current.MenuURL, revision)).
			Where(sq.Eq{"id": id}).
			Suffix("RETURNING " + columnList(qrCodeColumns)).
			ToSql()
		if err != nil {
			return err
		}

		var row qrCodeRow
		if err := tx.GetContext(ctx, &row, query, args...); err != nil {
			return classify(err)
		}
		qr = row.toDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &qr, nil
}

func (r *PostgresRepository) getQRCode(ctx context.Context, query string, args []interface{}) (*domain.QRCode, error) {
	var row qrCodeRow
	if err := r.DB.GetContext(ctx, &row, query, args...); err != nil {
		return nil, classify(err)
	}
	qr := row.toDomain()
	return &qr, nil
}

func (r *PostgresRepository) DeleteQRCode(ctx context.Context, id int) (int64, error) {
	return r.deleteByID(ctx, "qr_codes", id)
}
