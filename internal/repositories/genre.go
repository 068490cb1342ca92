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

type GenreReadRepository struct {
	db *sqlx.DB
}

func NewGenreReadRepository(db *sqlx.DB) *GenreReadRepository {
	return &GenreReadRepository{db: db}
}

func (r *GenreReadRepository) List(ctx context.Context) ([]models.GenreDB, error) {
	const query = `
		SELECT genre_id, name, slug, created_at, updated_at
		FROM genres
		ORDER BY name DESC
	`

	genres := make([]models.GenreDB, 0)
	err := r.db.SelectContext(ctx, &genres, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(genres),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return genres, nil
}

func (r *GenreReadRepository) GetBySlug(ctx context.Context, slug string) (*models.GenreDB, error) {
	const query = `
		SELECT genre_id, name, slug, created_at, updated_at
		FROM genres
		WHERE slug = $1
	`

	var genre models.GenreDB
	err := r.db.GetContext(ctx, &genre, query, slug)

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

	return &genre, nil
}

// GetBySlugs resolves a set of slugs, preserving no particular order. A
// missing slug simply yields a shorter result set.
func (r *GenreReadRepository) GetBySlugs(ctx context.Context, slugs []string) ([]models.GenreDB, error) {
	const query = `
		SELECT genre_id, name, slug, created_at, updated_at
		FROM genres
		WHERE slug = ANY($1)
	`

	genres := make([]models.GenreDB, 0, len(slugs))
	err := r.db.SelectContext(ctx, &genres, query, slugs)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{slugs},
		"count", len(genres),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return genres, nil
}

type GenreWriteRepository struct {
	db *sqlx.DB
}

func NewGenreWriteRepository(db *sqlx.DB) *GenreWriteRepository {
	return &GenreWriteRepository{db: db}
}

func (r *GenreWriteRepository) Create(ctx context.Context, name, slug string) (*models.GenreDB, error) {
	const query = `
		INSERT INTO genres (name, slug, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING genre_id, name, slug, created_at, updated_at
	`

	var created models.GenreDB
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

func (r *GenreWriteRepository) Delete(ctx context.Context, slug string) (bool, error) {
	const query = `
		DELETE FROM genres
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
