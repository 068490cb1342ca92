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

const userColumns = `
	user_id, username, email, first_name, last_name, bio, role,
	is_superuser, confirmation_code, confirmation_code_active,
	created_at, updated_at
`

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

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

	return &user, nil
}

func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY username
	`

	users := make([]models.UserDB, 0)
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// SaveConfirmationCode upserts the user identified by email and activates a
// fresh confirmation-code hash. New users get the email as their initial
// username.
func (r *UserWriteRepository) SaveConfirmationCode(ctx context.Context, email, codeHash string) error {
	const query = `
		INSERT INTO users (username, email, confirmation_code, confirmation_code_active, created_at, updated_at)
		VALUES ($1, $1, $2, TRUE, NOW(), NOW())
		ON CONFLICT (email) DO UPDATE
		SET confirmation_code = EXCLUDED.confirmation_code,
		    confirmation_code_active = TRUE,
		    updated_at = NOW()
	`
	args := []any{email, codeHash}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// ConsumeConfirmationCode deactivates the user's code in a single
// conditional update. It reports false when no active code remained, which
// closes the double-use race at the storage boundary.
func (r *UserWriteRepository) ConsumeConfirmationCode(ctx context.Context, email string) (bool, error) {
	const query = `
		UPDATE users
		SET confirmation_code_active = FALSE,
		    updated_at = NOW()
		WHERE email = $1
		  AND confirmation_code_active
	`

	res, err := r.db.ExecContext(ctx, query, email)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func (r *UserWriteRepository) Create(ctx context.Context, user models.UserWrite) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (username, email, first_name, last_name, bio, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + userColumns

	var created models.UserDB
	err := r.db.GetContext(ctx, &created, query,
		user.Username, user.Email, user.FirstName, user.LastName, user.Bio, user.Role)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{user.Username, user.Email, user.Role},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &created, nil
}

// Update applies the non-nil fields and returns the updated record, or nil
// when no user matches the username.
func (r *UserWriteRepository) Update(ctx context.Context, username string, upd models.UserUpdate) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET email = COALESCE($2, email),
		    first_name = COALESCE($3, first_name),
		    last_name = COALESCE($4, last_name),
		    bio = COALESCE($5, bio),
		    role = COALESCE($6, role),
		    updated_at = NOW()
		WHERE username = $1
		RETURNING ` + userColumns

	var updated models.UserDB
	err := r.db.GetContext(ctx, &updated, query,
		username, upd.Email, upd.FirstName, upd.LastName, upd.Bio, upd.Role)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *UserWriteRepository) Delete(ctx context.Context, username string) (bool, error) {
	const query = `
		DELETE FROM users
		WHERE username = $1
	`

	res, err := r.db.ExecContext(ctx, query, username)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
