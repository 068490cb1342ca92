package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/review-catalog/internal/models"
)

func TestCommentRepository(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	titleID := seedTitle(t, db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	ctx := context.Background()

	review, err := NewReviewWriteRepository(db).Create(ctx, models.ReviewWrite{
		TitleID:  titleID,
		AuthorID: alice.UserID,
		Score:    8,
		Text:     "solid",
	})
	require.NoError(t, err)

	reader := NewCommentReadRepository(db)
	writer := NewCommentWriteRepository(db)

	created, err := writer.Create(ctx, models.CommentWrite{
		ReviewID: review.ReviewID,
		AuthorID: bob.UserID,
		Text:     "agreed",
	})
	require.NoError(t, err)

	t.Run("create returns the joined author username", func(t *testing.T) {
		assert.Equal(t, "bob", created.AuthorUsername)
		assert.False(t, created.PubDate.IsZero())
	})

	t.Run("list is ordered newest first", func(t *testing.T) {
		later, err := writer.Create(ctx, models.CommentWrite{
			ReviewID: review.ReviewID,
			AuthorID: alice.UserID,
			Text:     "thanks",
		})
		require.NoError(t, err)

		comments, err := reader.ListByReview(ctx, review.ReviewID)
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, later.CommentID, comments[0].CommentID)
		assert.Equal(t, created.CommentID, comments[1].CommentID)
	})

	t.Run("get is scoped to the review", func(t *testing.T) {
		got, err := reader.GetByID(ctx, review.ReviewID, created.CommentID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "agreed", got.Text)

		got, err = reader.GetByID(ctx, review.ReviewID+1000, created.CommentID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("update", func(t *testing.T) {
		found, err := writer.Update(ctx, created.CommentID, "strongly agreed")
		require.NoError(t, err)
		assert.True(t, found)

		got, err := reader.GetByID(ctx, review.ReviewID, created.CommentID)
		require.NoError(t, err)
		assert.Equal(t, "strongly agreed", got.Text)

		found, err = writer.Update(ctx, created.CommentID+1000, "nope")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := writer.Delete(ctx, created.CommentID)
		require.NoError(t, err)
		assert.True(t, deleted)

		got, err := reader.GetByID(ctx, review.ReviewID, created.CommentID)
		require.NoError(t, err)
		assert.Nil(t, got)

		deleted, err = writer.Delete(ctx, created.CommentID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
