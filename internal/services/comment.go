package services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/review-catalog/internal/logger"
	"github.com/sbilibin2017/review-catalog/internal/models"
	"github.com/sbilibin2017/review-catalog/internal/policy"
)

// CommentReader defines read operations over comments.
type CommentReader interface {
	ListByReview(ctx context.Context, reviewID int64) ([]models.CommentDB, error)
	GetByID(ctx context.Context, reviewID, commentID int64) (*models.CommentDB, error)
}

// CommentWriter defines write operations over comments.
type CommentWriter interface {
	Create(ctx context.Context, comment models.CommentWrite) (*models.CommentDB, error)
	Update(ctx context.Context, commentID int64, text string) (bool, error)
	Delete(ctx context.Context, commentID int64) (bool, error)
}

// CommentService handles comments nested under a title's review, with the
// same ownership rules as reviews.
type CommentService struct {
	reviews ReviewReader
	reader  CommentReader
	writer  CommentWriter
	events  EventPublisher
}

// NewCommentService creates a new CommentService instance.
func NewCommentService(reviews ReviewReader, reader CommentReader, writer CommentWriter, events EventPublisher) *CommentService {
	return &CommentService{
		reviews: reviews,
		reader:  reader,
		writer:  writer,
		events:  events,
	}
}

// getReview resolves the parent review under its title, failing with
// ErrNotFound when either level of the path is absent.
func (svc *CommentService) getReview(ctx context.Context, titleID, reviewID int64) (*models.ReviewDB, error) {
	review, err := svc.reviews.GetByID(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrNotFound
	}
	return review, nil
}

func (svc *CommentService) ListByReview(ctx context.Context, titleID, reviewID int64) ([]models.CommentDB, error) {
	if _, err := svc.getReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	return svc.reader.ListByReview(ctx, reviewID)
}

func (svc *CommentService) Get(ctx context.Context, titleID, reviewID, commentID int64) (*models.CommentDB, error) {
	if _, err := svc.getReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	comment, err := svc.reader.GetByID(ctx, reviewID, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrNotFound
	}
	return comment, nil
}

func (svc *CommentService) Create(ctx context.Context, actor *models.UserDB, titleID, reviewID int64, text string) (*models.CommentDB, error) {
	if err := decide(actor, policy.ActionCreate, policy.ResourceFeedback, nil); err != nil {
		return nil, err
	}

	if _, err := svc.getReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}

	created, err := svc.writer.Create(ctx, models.CommentWrite{
		ReviewID: reviewID,
		AuthorID: actor.UserID,
		Text:     text,
	})
	if err != nil {
		logger.Log.Errorw("failed to create comment", "err", err)
		return nil, err
	}

	svc.events.Publish(ctx, "comment.created", map[string]any{
		"comment_id": created.CommentID,
		"review_id":  created.ReviewID,
		"author":     created.AuthorUsername,
	})

	return created, nil
}

func (svc *CommentService) Update(ctx context.Context, actor *models.UserDB, titleID, reviewID, commentID int64, text *string, partial bool) (*models.CommentDB, error) {
	comment, err := svc.Get(ctx, titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	action := policy.ActionUpdate
	if partial {
		action = policy.ActionPartialUpdate
	}
	if err := decide(actor, action, policy.ResourceFeedback, &comment.AuthorID); err != nil {
		return nil, err
	}

	if text == nil {
		if partial {
			return comment, nil
		}
		return nil, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}
	if *text == "" {
		return nil, fmt.Errorf("%w: text must not be empty", ErrInvalidInput)
	}

	if _, err := svc.writer.Update(ctx, commentID, *text); err != nil {
		logger.Log.Errorw("failed to update comment", "err", err)
		return nil, err
	}

	return svc.Get(ctx, titleID, reviewID, commentID)
}

func (svc *CommentService) Delete(ctx context.Context, actor *models.UserDB, titleID, reviewID, commentID int64) error {
	comment, err := svc.Get(ctx, titleID, reviewID, commentID)
	if err != nil {
		return err
	}

	if err := decide(actor, policy.ActionDelete, policy.ResourceFeedback, &comment.AuthorID); err != nil {
		return err
	}

	if _, err := svc.writer.Delete(ctx, commentID); err != nil {
		logger.Log.Errorw("failed to delete comment", "err", err)
		return err
	}

	return nil
}
