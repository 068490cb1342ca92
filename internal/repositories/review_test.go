package repositories

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/review-catalog/internal/models"
)

func seedTitle(t *testing.T, db *sqlx.DB) int64 {
	t.Helper()

	ctx := context.Background()

	category, err := NewCategoryWriteRepository(db).Create(ctx, "Movies", "movies")
	require.NoError(t, err)

	titleID, err := NewTitleWriteRepository(db).Create(ctx, models.TitleWrite{
		Name:       "Heat",
		Year:       1995,
		CategoryID: category.CategoryID,
	})
	require.NoError(t, err)

	return titleID
}

func TestReviewRepository(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	titleID := seedTitle(t, db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	reader := NewReviewReadRepository(db)
	writer := NewReviewWriteRepository(db)
	ctx := context.Background()

	created, err := writer.Create(ctx, models.ReviewWrite{
		TitleID:  titleID,
		AuthorID: alice.UserID,
		Score:    8,
		Text:     "solid",
	})
	require.NoError(t, err)

	t.Run("create returns the joined author username", func(t *testing.T) {
		assert.Equal(t, "alice", created.AuthorUsername)
		assert.Equal(t, 8, created.Score)
		assert.False(t, created.PubDate.IsZero())
	})

	t.Run("second review by the same author is a unique violation", func(t *testing.T) {
		_, err := writer.Create(ctx, models.ReviewWrite{
			TitleID:  titleID,
			AuthorID: alice.UserID,
			Score:    2,
			Text:     "changed my mind",
		})
		assert.True(t, IsUniqueViolation(err))
	})

	t.Run("exists for author", func(t *testing.T) {
		exists, err := reader.ExistsForAuthor(ctx, titleID, alice.UserID)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = reader.ExistsForAuthor(ctx, titleID, bob.UserID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("list is ordered newest first", func(t *testing.T) {
		later, err := writer.Create(ctx, models.ReviewWrite{
			TitleID:  titleID,
			AuthorID: bob.UserID,
			Score:    6,
			Text:     "ok",
		})
		require.NoError(t, err)

		reviews, err := reader.ListByTitle(ctx, titleID)
		require.NoError(t, err)
		require.Len(t, reviews, 2)
		assert.Equal(t, later.ReviewID, reviews[0].ReviewID)
		assert.Equal(t, created.ReviewID, reviews[1].ReviewID)
	})

	t.Run("get is scoped to the title", func(t *testing.T) {
		got, err := reader.GetByID(ctx, titleID, created.ReviewID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "solid", got.Text)

		got, err = reader.GetByID(ctx, titleID+1000, created.ReviewID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("partial update keeps the other field", func(t *testing.T) {
		score := 9

		found, err := writer.Update(ctx, created.ReviewID, &score, nil)
		require.NoError(t, err)
		assert.True(t, found)

		got, err := reader.GetByID(ctx, titleID, created.ReviewID)
		require.NoError(t, err)
		assert.Equal(t, 9, got.Score)
		assert.Equal(t, "solid", got.Text)
	})

	t.Run("delete cascades to comments", func(t *testing.T) {
		comment, err := NewCommentWriteRepository(db).Create(ctx, models.CommentWrite{
			ReviewID: created.ReviewID,
			AuthorID: bob.UserID,
			Text:     "agreed",
		})
		require.NoError(t, err)

		deleted, err := writer.Delete(ctx, created.ReviewID)
		require.NoError(t, err)
		assert.True(t, deleted)

		got, err := NewCommentReadRepository(db).GetByID(ctx, created.ReviewID, comment.CommentID)
		require.NoError(t, err)
		assert.Nil(t, got)

		deleted, err = writer.Delete(ctx, created.ReviewID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
