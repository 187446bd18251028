package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"menu-admin/menu-svc/internal/domain"
	"menu-admin/menu-svc/internal/service"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// touch keeps updated_at strictly increasing per row even when two writes
// land inside the same clock tick.
var touch = sq.Expr("GREATEST(now(), updated_at + interval '1 microsecond')")

var (
	_ service.CategoryRepository  = (*PostgresRepository)(nil)
	_ service.MenuItemRepository  = (*PostgresRepository)(nil)
	_ service.MenuThemeRepository = (*PostgresRepository)(nil)
	_ service.QRCodeRepository    = (*PostgresRepository)(nil)
)

type PostgresRepository struct {
	DB *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) withTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", classify(err))
	}
	return nil
}

// classify maps driver errors onto the domain sentinels services match on.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %w", domain.ErrForeignKey, err)
		case pgUniqueViolation:
			return fmt.Errorf("%w: %w", domain.ErrUniqueViolation, err)
		}
	}
	return err
}

func (r *PostgresRepository) exists(ctx context.Context, table string, id int) (bool, error) {
	var exists bool
	err := r.DB.QueryRowxContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM "+table+" WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) deleteByID(ctx context.Context, table string, id int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return 0, classify(err)
	}
	return result.RowsAffected()
}

var schemaStatements = []string{
	`DO $$ BEGIN
		CREATE TYPE button_shape AS ENUM ('rounded', 'square', 'pill');
	EXCEPTION WHEN duplicate_object THEN NULL;
	END $$`,
	`DO $$ BEGIN
		CREATE TYPE background_type AS ENUM ('color', 'image');
	EXCEPTION WHEN duplicate_object THEN NULL;
	END $$`,
	`CREATE TABLE IF NOT EXISTS categories (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		display_order INTEGER NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		price NUMERIC(10, 2) NOT NULL CHECK (price > 0),
		ingredients TEXT,
		image_url TEXT,
		dietary_labels TEXT[] DEFAULT '{}',
		is_available BOOLEAN NOT NULL DEFAULT TRUE,
		display_order INTEGER NOT NULL DEFAULT 0,
		category_id INTEGER NOT NULL REFERENCES categories (id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	"CREATE INDEX IF NOT EXISTS menu_items_category_order_idx ON menu_items (category_id, display_order)",
	`CREATE TABLE IF NOT EXISTS menu_themes (
		id SERIAL PRIMARY KEY,
		restaurant_name TEXT NOT NULL,
		button_color TEXT NOT NULL,
		button_shape button_shape NOT NULL,
		background_type background_type NOT NULL,
		background_value TEXT NOT NULL,
		border_radius INTEGER NOT NULL DEFAULT 10 CHECK (border_radius BETWEEN 0 AND 50),
		primary_color TEXT NOT NULL,
		text_color TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	"CREATE UNIQUE INDEX IF NOT EXISTS menu_themes_single_active_idx ON menu_themes (is_active) WHERE is_active",
	`CREATE TABLE IF NOT EXISTS qr_codes (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		menu_url TEXT NOT NULL,
		qr_code_url TEXT NOT NULL,
		qr_revision BIGINT NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	"ALTER TABLE qr_codes ADD COLUMN IF NOT EXISTS qr_revision BIGINT NOT NULL DEFAULT 0",
}

// EnsureSchema creates the enums, tables and indexes if they are missing.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
