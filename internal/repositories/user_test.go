package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/review-catalog/internal/models"
	"github.com/sbilibin2017/review-catalog/internal/policy"
)

func TestUserRepository_ConfirmationCodeFlow(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	reader := NewUserReadRepository(db)
	writer := NewUserWriteRepository(db)
	ctx := context.Background()

	t.Run("first contact creates the user", func(t *testing.T) {
		err := writer.SaveConfirmationCode(ctx, "alice@example.com", "hash-1")
		require.NoError(t, err)

		user, err := reader.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "hash-1", *user.ConfirmationCode)
		assert.True(t, user.ConfirmationCodeActive)
		assert.Equal(t, policy.RoleUser, user.Role)
	})

	t.Run("repeat request overwrites the code", func(t *testing.T) {
		err := writer.SaveConfirmationCode(ctx, "alice@example.com", "hash-2")
		require.NoError(t, err)

		user, err := reader.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, "hash-2", *user.ConfirmationCode)
		assert.True(t, user.ConfirmationCodeActive)
	})

	t.Run("consume succeeds exactly once", func(t *testing.T) {
		ok, err := writer.ConsumeConfirmationCode(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = writer.ConsumeConfirmationCode(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown email reads as nil", func(t *testing.T) {
		user, err := reader.GetByEmail(ctx, "ghost@example.com")
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserRepository_CRUD(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	reader := NewUserReadRepository(db)
	writer := NewUserWriteRepository(db)
	ctx := context.Background()

	created, err := writer.Create(ctx, models.UserWrite{
		Username: "bob",
		Email:    "bob@example.com",
		Bio:      "hi",
		Role:     policy.RoleModerator,
	})
	require.NoError(t, err)
	assert.Equal(t, policy.RoleModerator, created.Role)

	t.Run("duplicate username is a unique violation", func(t *testing.T) {
		_, err := writer.Create(ctx, models.UserWrite{
			Username: "bob",
			Email:    "other@example.com",
			Role:     policy.RoleUser,
		})
		assert.True(t, IsUniqueViolation(err))
	})

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		bio := "updated"

		updated, err := writer.Update(ctx, "bob", models.UserUpdate{Bio: &bio})
		require.NoError(t, err)
		assert.Equal(t, "updated", updated.Bio)
		assert.Equal(t, "bob@example.com", updated.Email)
		assert.Equal(t, policy.RoleModerator, updated.Role)
	})

	t.Run("list is ordered by username", func(t *testing.T) {
		_, err := writer.Create(ctx, models.UserWrite{Username: "anna", Email: "anna@example.com", Role: policy.RoleUser})
		require.NoError(t, err)

		users, err := reader.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "anna", users[0].Username)
		assert.Equal(t, "bob", users[1].Username)
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := writer.Delete(ctx, "anna")
		require.NoError(t, err)
		assert.True(t, deleted)

		user, err := reader.GetByUsername(ctx, "anna")
		require.NoError(t, err)
		assert.Nil(t, user)

		deleted, err = writer.Delete(ctx, "anna")
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
