package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/review-catalog/internal/logger"
	"github.com/sbilibin2017/review-catalog/internal/models"
)

const reviewSelect = `
	SELECT r.review_id, r.title_id, r.author_id, u.username AS author_username,
	       r.score, r.text, r.pub_date
	FROM reviews r
	JOIN users u ON u.user_id = r.author_id
`

type ReviewReadRepository struct {
	db *sqlx.DB
}

func NewReviewReadRepository(db *sqlx.DB) *ReviewReadRepository {
	return &ReviewReadRepository{db: db}
}

func (r *ReviewReadRepository) ListByTitle(ctx context.Context, titleID int64) ([]models.ReviewDB, error) {
	const query = reviewSelect + `
		WHERE r.title_id = $1
		ORDER BY r.pub_date DESC
	`

	reviews := make([]models.ReviewDB, 0)
	err := r.db.SelectContext(ctx, &reviews, query, titleID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{titleID},
		"count", len(reviews),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return reviews, nil
}

func (r *ReviewReadRepository) GetByID(ctx context.Context, titleID, reviewID int64) (*models.ReviewDB, error) {
	const query = reviewSelect + `
		WHERE r.title_id = $1
		  AND r.review_id = $2
	`

	var review models.ReviewDB
	err := r.db.GetContext(ctx, &review, query, titleID, reviewID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{titleID, reviewID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &review, nil
}

func (r *ReviewReadRepository) ExistsForAuthor(ctx context.Context, titleID int64, authorID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM reviews
			WHERE title_id = $1
			  AND author_id = $2
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, titleID, authorID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{titleID, authorID},
		"result", exists,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return exists, nil
}

type ReviewWriteRepository struct {
	db *sqlx.DB
}

func NewReviewWriteRepository(db *sqlx.DB) *ReviewWriteRepository {
	return &ReviewWriteRepository{db: db}
}

// Create inserts the review with a server-assigned pub_date. The unique
// (title_id, author_id) constraint surfaces duplicates raced past the
// service-level existence check.
func (r *ReviewWriteRepository) Create(ctx context.Context, review models.ReviewWrite) (*models.ReviewDB, error) {
	const query = `
		WITH inserted AS (
			INSERT INTO reviews (title_id, author_id, score, text, pub_date)
			VALUES ($1, $2, $3, $4, NOW())
			RETURNING review_id, title_id, author_id, score, text, pub_date
		)
		SELECT i.review_id, i.title_id, i.author_id, u.username AS author_username,
		       i.score, i.text, i.pub_date
		FROM inserted i
		JOIN users u ON u.user_id = i.author_id
	`

	var created models.ReviewDB
	err := r.db.GetContext(ctx, &created, query,
		review.TitleID, review.AuthorID, review.Score, review.Text)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{review.TitleID, review.AuthorID, review.Score},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &created, nil
}

// Update applies the non-nil fields; pub_date is never touched.
func (r *ReviewWriteRepository) Update(ctx context.Context, reviewID int64, score *int, text *string) (bool, error) {
	const query = `
		UPDATE reviews
		SET score = COALESCE($2, score),
		    text = COALESCE($3, text)
		WHERE review_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, reviewID, score, text)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{reviewID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

// Delete removes the review; its comments cascade at the storage layer.
func (r *ReviewWriteRepository) Delete(ctx context.Context, reviewID int64) (bool, error) {
	const query = `
		DELETE FROM reviews
		WHERE review_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, reviewID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{reviewID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
