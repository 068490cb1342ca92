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

// titleSelect joins the owning category and derives the rating as the mean
// review score, NULL when no reviews exist. The rating is never persisted.
const titleSelect = `
	SELECT t.title_id, t.name, t.year, t.description, t.category_id,
	       t.created_at, t.updated_at,
	       c.name AS category_name, c.slug AS category_slug,
	       AVG(r.score)::FLOAT8 AS rating
	FROM titles t
	JOIN categories c ON c.category_id = t.category_id
	LEFT JOIN reviews r ON r.title_id = t.title_id
`

type TitleReadRepository struct {
	db *sqlx.DB
}

func NewTitleReadRepository(db *sqlx.DB) *TitleReadRepository {
	return &TitleReadRepository{db: db}
}

func (r *TitleReadRepository) List(ctx context.Context) ([]models.TitleWithRating, error) {
	const query = titleSelect + `
		GROUP BY t.title_id, c.category_id
		ORDER BY t.title_id
	`

	titles := make([]models.TitleWithRating, 0)
	err := r.db.SelectContext(ctx, &titles, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(titles),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	if err := r.attachGenres(ctx, titles); err != nil {
		return nil, err
	}

	return titles, nil
}

func (r *TitleReadRepository) GetByID(ctx context.Context, id int64) (*models.TitleWithRating, error) {
	const query = titleSelect + `
		WHERE t.title_id = $1
		GROUP BY t.title_id, c.category_id
	`

	var title models.TitleWithRating
	err := r.db.GetContext(ctx, &title, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	titles := []models.TitleWithRating{title}
	if err := r.attachGenres(ctx, titles); err != nil {
		return nil, err
	}

	return &titles[0], nil
}

// attachGenres loads the genre sets of the given titles in one batched query.
func (r *TitleReadRepository) attachGenres(ctx context.Context, titles []models.TitleWithRating) error {
	if len(titles) == 0 {
		return nil
	}

	const query = `
		SELECT tg.title_id, g.genre_id, g.name, g.slug, g.created_at, g.updated_at
		FROM title_genres tg
		JOIN genres g ON g.genre_id = tg.genre_id
		WHERE tg.title_id = ANY($1)
		ORDER BY g.name DESC
	`

	ids := make([]int64, 0, len(titles))
	for i := range titles {
		titles[i].Genres = make([]models.GenreDB, 0)
		ids = append(ids, titles[i].TitleID)
	}

	var rows []struct {
		TitleID int64 `db:"title_id"`
		models.GenreDB
	}
	err := r.db.SelectContext(ctx, &rows, query, ids)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ids},
		"count", len(rows),
		"error", err,
	)

	if err != nil {
		return err
	}

	byTitle := make(map[int64]*models.TitleWithRating, len(titles))
	for i := range titles {
		byTitle[titles[i].TitleID] = &titles[i]
	}
	for _, row := range rows {
		if t, ok := byTitle[row.TitleID]; ok {
			t.Genres = append(t.Genres, row.GenreDB)
		}
	}

	return nil
}

type TitleWriteRepository struct {
	db *sqlx.DB
}

func NewTitleWriteRepository(db *sqlx.DB) *TitleWriteRepository {
	return &TitleWriteRepository{db: db}
}

// Create inserts the title and its genre links in one transaction.
func (r *TitleWriteRepository) Create(ctx context.Context, title models.TitleWrite) (int64, error) {
	const insertTitle = `
		INSERT INTO titles (name, year, description, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING title_id
	`
	const insertGenre = `
		INSERT INTO title_genres (title_id, genre_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var id int64
	if err := tx.GetContext(ctx, &id, insertTitle,
		title.Name, title.Year, title.Description, title.CategoryID); err != nil {
		logger.Log.Infow(
			"query", strings.Join(strings.Fields(insertTitle), " "),
			"args", []any{title.Name, title.Year, title.CategoryID},
			"error", err,
		)
		return 0, err
	}

	for _, genreID := range title.GenreIDs {
		if _, err := tx.ExecContext(ctx, insertGenre, id, genreID); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(insertTitle), " "),
		"args", []any{title.Name, title.Year, title.CategoryID},
		"result", id,
	)

	return id, nil
}

// Update applies the non-nil fields; a non-nil GenreIDs replaces the genre
// set. Reports false when no title matches the id.
func (r *TitleWriteRepository) Update(ctx context.Context, id int64, upd models.TitleUpdate) (bool, error) {
	const updateTitle = `
		UPDATE titles
		SET name = COALESCE($2, name),
		    year = COALESCE($3, year),
		    description = COALESCE($4, description),
		    category_id = COALESCE($5, category_id),
		    updated_at = NOW()
		WHERE title_id = $1
	`
	const deleteGenres = `
		DELETE FROM title_genres
		WHERE title_id = $1
	`
	const insertGenre = `
		INSERT INTO title_genres (title_id, genre_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, updateTitle,
		id, upd.Name, upd.Year, upd.Description, upd.CategoryID)
	if err != nil {
		logger.Log.Infow(
			"query", strings.Join(strings.Fields(updateTitle), " "),
			"args", []any{id},
			"error", err,
		)
		return false, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return false, nil
	}

	if upd.GenreIDs != nil {
		if _, err := tx.ExecContext(ctx, deleteGenres, id); err != nil {
			return false, err
		}
		for _, genreID := range *upd.GenreIDs {
			if _, err := tx.ExecContext(ctx, insertGenre, id, genreID); err != nil {
				return false, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(updateTitle), " "),
		"args", []any{id},
		"result", rowsAffected,
	)

	return true, nil
}

// Delete removes the title; reviews and their comments cascade at the
// storage layer.
func (r *TitleWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `
		DELETE FROM titles
		WHERE title_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
