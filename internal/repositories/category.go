package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/review-catalog/internal/logger"
	"github.com/sbilibin2017/review-catalog/internal/models"
)

type CategoryReadRepository struct {
	db *sqlx.DB
}

func NewCategoryReadRepository(db *sqlx.DB) *CategoryReadRepository {
	return &CategoryReadRepository{db: db}
}

func (r *CategoryReadRepository) List(ctx context.Context) ([]models.CategoryDB, error) {
	const query = `
		SELECT category_id, name, slug, created_at, updated_at
		FROM categories
		ORDER BY name DESC
	`

	categories := make([]models.CategoryDB, 0)
	err := r.db.SelectContext(ctx, &categories, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(categories),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *CategoryReadRepository) GetBySlug(ctx context.Context, slug string) (*models.CategoryDB, error) {
	const query = `
		SELECT category_id, name, slug, created_at, updated_at
		FROM categories
		WHERE slug = $1
	`

	var category models.CategoryDB
	err := r.db.GetContext(ctx, &category, query, slug)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{slug},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &category, nil
}

type CategoryWriteRepository struct {
	db *sqlx.DB
}

func NewCategoryWriteRepository(db *sqlx.DB) *CategoryWriteRepository {
	return &CategoryWriteRepository{db: db}
}

func (r *CategoryWriteRepository) Create(ctx context.Context, name, slug string) (*models.CategoryDB, error) {
	const query = `
		INSERT INTO categories (name, slug, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING category_id, name, slug, created_at, updated_at
	`

	var created models.CategoryDB
	err := r.db.GetContext(ctx, &created, query, name, slug)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, slug},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *CategoryWriteRepository) Delete(ctx context.Context, slug string) (bool, error) {
	const query = `
		DELETE FROM categories
		WHERE slug = $1
	`

	res, err := r.db.ExecContext(ctx, query, slug)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{slug},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
