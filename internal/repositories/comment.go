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

const commentSelect = `
	SELECT c.comment_id, c.review_id, c.author_id, u.username AS author_username,
	       c.text, c.pub_date
	FROM comments c
	JOIN users u ON u.user_id = c.author_id
`

type CommentReadRepository struct {
	db *sqlx.DB
}

func NewCommentReadRepository(db *sqlx.DB) *CommentReadRepository {
	return &CommentReadRepository{db: db}
}

func (r *CommentReadRepository) ListByReview(ctx context.Context, reviewID int64) ([]models.CommentDB, error) {
	const query = commentSelect + `
		WHERE c.review_id = $1
		ORDER BY c.pub_date DESC
	`

	comments := make([]models.CommentDB, 0)
	err := r.db.SelectContext(ctx, &comments, query, reviewID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{reviewID},
		"count", len(comments),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return comments, nil
}

func (r *CommentReadRepository) GetByID(ctx context.Context, reviewID, commentID int64) (*models.CommentDB, error) {
	const query = commentSelect + `
		WHERE c.review_id = $1
		  AND c.comment_id = $2
	`

	var comment models.CommentDB
	err := r.db.GetContext(ctx, &comment, query, reviewID, commentID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{reviewID, commentID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

type CommentWriteRepository struct {
	db *sqlx.DB
}

func NewCommentWriteRepository(db *sqlx.DB) *CommentWriteRepository {
	return &CommentWriteRepository{db: db}
}

func (r *CommentWriteRepository) Create(ctx context.Context, comment models.CommentWrite) (*models.CommentDB, error) {
	const query = `
		WITH inserted AS (
			INSERT INTO comments (review_id, author_id, text, pub_date)
			VALUES ($1, $2, $3, NOW())
			RETURNING comment_id, review_id, author_id, text, pub_date
		)
		SELECT i.comment_id, i.review_id, i.author_id, u.username AS author_username,
		       i.text, i.pub_date
		FROM inserted i
		JOIN users u ON u.user_id = i.author_id
	`

	var created models.CommentDB
	err := r.db.GetContext(ctx, &created, query,
		comment.ReviewID, comment.AuthorID, comment.Text)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{comment.ReviewID, comment.AuthorID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *CommentWriteRepository) Update(ctx context.Context, commentID int64, text string) (bool, error) {
	const query = `
		UPDATE comments
		SET text = $2
		WHERE comment_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, commentID, text)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{commentID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func (r *CommentWriteRepository) Delete(ctx context.Context, commentID int64) (bool, error) {
	const query = `
		DELETE FROM comments
		WHERE comment_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, commentID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{commentID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
