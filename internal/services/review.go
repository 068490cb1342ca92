package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sbilibin2017/review-catalog/internal/logger"
	"github.com/sbilibin2017/review-catalog/internal/models"
	"github.com/sbilibin2017/review-catalog/internal/policy"
	"github.com/sbilibin2017/review-catalog/internal/repositories"
)

// ReviewReader defines read operations over reviews.
type ReviewReader interface {
	ListByTitle(ctx context.Context, titleID int64) ([]models.ReviewDB, error)
	GetByID(ctx context.Context, titleID, reviewID int64) (*models.ReviewDB, error)
	ExistsForAuthor(ctx context.Context, titleID int64, authorID uuid.UUID) (bool, error)
}

// ReviewWriter defines write operations over reviews.
type ReviewWriter interface {
	Create(ctx context.Context, review models.ReviewWrite) (*models.ReviewDB, error)
	Update(ctx context.Context, reviewID int64, score *int, text *string) (bool, error)
	Delete(ctx context.Context, reviewID int64) (bool, error)
}

// ReviewUpdateInput carries the mutable review fields. Full replacement
// requires both.
type ReviewUpdateInput struct {
	Score *int
	Text  *string
}

// ReviewService enforces the one-review-per-author-per-title rule, the
// score domain and ownership-aware mutation rights.
type ReviewService struct {
	titles TitleReader
	reader ReviewReader
	writer ReviewWriter
	events EventPublisher
}

// NewReviewService creates a new ReviewService instance.
func NewReviewService(titles TitleReader, reader ReviewReader, writer ReviewWriter, events EventPublisher) *ReviewService {
	return &ReviewService{
		titles: titles,
		reader: reader,
		writer: writer,
		events: events,
	}
}

func (svc *ReviewService) ListByTitle(ctx context.Context, titleID int64) ([]models.ReviewDB, error) {
	title, err := svc.titles.GetByID(ctx, titleID)
	if err != nil {
		return nil, err
	}
	if title == nil {
		return nil, ErrNotFound
	}

	return svc.reader.ListByTitle(ctx, titleID)
}

func (svc *ReviewService) Get(ctx context.Context, titleID, reviewID int64) (*models.ReviewDB, error) {
	review, err := svc.reader.GetByID(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrNotFound
	}
	return review, nil
}

// Create persists a review with author and title bound server-side.
// Client-supplied author or title fields never reach this point.
func (svc *ReviewService) Create(ctx context.Context, actor *models.UserDB, titleID int64, score int, text string) (*models.ReviewDB, error) {
	if err := decide(actor, policy.ActionCreate, policy.ResourceFeedback, nil); err != nil {
		return nil, err
	}

	title, err := svc.titles.GetByID(ctx, titleID)
	if err != nil {
		return nil, err
	}
	if title == nil {
		return nil, ErrNotFound
	}

	if err := validateScore(score); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}

	duplicate := fmt.Errorf("%w: review from author %s on title %s already exists",
		ErrReviewExists, actor.Username, title.Name)

	exists, err := svc.reader.ExistsForAuthor(ctx, titleID, actor.UserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, duplicate
	}

	created, err := svc.writer.Create(ctx, models.ReviewWrite{
		TitleID:  titleID,
		AuthorID: actor.UserID,
		Score:    score,
		Text:     text,
	})
	if err != nil {
		// The unique constraint closes the check-then-insert race.
		if repositories.IsUniqueViolation(err) {
			return nil, duplicate
		}
		logger.Log.Errorw("failed to create review", "err", err)
		return nil, err
	}

	svc.events.Publish(ctx, "review.created", map[string]any{
		"review_id": created.ReviewID,
		"title_id":  created.TitleID,
		"author":    created.AuthorUsername,
	})

	return created, nil
}

func (svc *ReviewService) Update(ctx context.Context, actor *models.UserDB, titleID, reviewID int64, upd ReviewUpdateInput, partial bool) (*models.ReviewDB, error) {
	review, err := svc.Get(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	action := policy.ActionUpdate
	if partial {
		action = policy.ActionPartialUpdate
	}
	if err := decide(actor, action, policy.ResourceFeedback, &review.AuthorID); err != nil {
		return nil, err
	}

	if !partial && (upd.Score == nil || upd.Text == nil) {
		return nil, fmt.Errorf("%w: score and text are required", ErrInvalidInput)
	}
	if upd.Score != nil {
		if err := validateScore(*upd.Score); err != nil {
			return nil, err
		}
	}
	if upd.Text != nil && *upd.Text == "" {
		return nil, fmt.Errorf("%w: text must not be empty", ErrInvalidInput)
	}

	if _, err := svc.writer.Update(ctx, reviewID, upd.Score, upd.Text); err != nil {
		logger.Log.Errorw("failed to update review", "err", err)
		return nil, err
	}

	return svc.Get(ctx, titleID, reviewID)
}

func (svc *ReviewService) Delete(ctx context.Context, actor *models.UserDB, titleID, reviewID int64) error {
	review, err := svc.Get(ctx, titleID, reviewID)
	if err != nil {
		return err
	}

	if err := decide(actor, policy.ActionDelete, policy.ResourceFeedback, &review.AuthorID); err != nil {
		return err
	}

	if _, err := svc.writer.Delete(ctx, reviewID); err != nil {
		logger.Log.Errorw("failed to delete review", "err", err)
		return err
	}

	return nil
}

func validateScore(score int) error {
	if score < 1 {
		return ErrScoreTooLow
	}
	if score > 10 {
		return ErrScoreTooHigh
	}
	return nil
}
