package services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/review-catalog/internal/logger"
	"github.com/sbilibin2017/review-catalog/internal/models"
	"github.com/sbilibin2017/review-catalog/internal/policy"
)

// TitleReader defines read operations over titles with derived ratings.
type TitleReader interface {
	List(ctx context.Context) ([]models.TitleWithRating, error)
	GetByID(ctx context.Context, id int64) (*models.TitleWithRating, error)
}

// TitleWriter defines write operations over titles.
type TitleWriter interface {
	Create(ctx context.Context, title models.TitleWrite) (int64, error)
	Update(ctx context.Context, id int64, upd models.TitleUpdate) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// TitleInput carries the wire fields of a title creation; category and
// genres are referenced by slug.
type TitleInput struct {
	Name        string
	Year        int
	Description string
	Category    string
	Genres      []string
}

// TitleUpdateInput carries the wire fields of a partial title update.
type TitleUpdateInput struct {
	Name        *string
	Year        *int
	Description *string
	Category    *string
	Genres      *[]string
}

// TitleService handles titles: public reads with derived ratings and
// admin-gated mutations.
type TitleService struct {
	reader     TitleReader
	writer     TitleWriter
	categories CategoryReader
	genres     GenreReader
	events     EventPublisher
}

// NewTitleService creates a new TitleService instance.
func NewTitleService(reader TitleReader, writer TitleWriter, categories CategoryReader, genres GenreReader, events EventPublisher) *TitleService {
	return &TitleService{
		reader:     reader,
		writer:     writer,
		categories: categories,
		genres:     genres,
		events:     events,
	}
}

func (svc *TitleService) List(ctx context.Context) ([]models.TitleWithRating, error) {
	return svc.reader.List(ctx)
}

func (svc *TitleService) Get(ctx context.Context, id int64) (*models.TitleWithRating, error) {
	title, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if title == nil {
		return nil, ErrNotFound
	}
	return title, nil
}

func (svc *TitleService) Create(ctx context.Context, actor *models.UserDB, input TitleInput) (*models.TitleWithRating, error) {
	if err := decide(actor, policy.ActionCreate, policy.ResourceCatalog, nil); err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if input.Year <= 0 {
		return nil, fmt.Errorf("%w: year must be positive", ErrInvalidInput)
	}

	categoryID, err := svc.resolveCategory(ctx, input.Category)
	if err != nil {
		return nil, err
	}
	genreIDs, err := svc.resolveGenres(ctx, input.Genres)
	if err != nil {
		return nil, err
	}

	id, err := svc.writer.Create(ctx, models.TitleWrite{
		Name:        input.Name,
		Year:        input.Year,
		Description: input.Description,
		CategoryID:  categoryID,
		GenreIDs:    genreIDs,
	})
	if err != nil {
		logger.Log.Errorw("failed to create title", "err", err)
		return nil, err
	}

	return svc.Get(ctx, id)
}

func (svc *TitleService) Update(ctx context.Context, actor *models.UserDB, id int64, upd TitleUpdateInput) (*models.TitleWithRating, error) {
	if err := decide(actor, policy.ActionPartialUpdate, policy.ResourceCatalog, nil); err != nil {
		return nil, err
	}
	if upd.Name != nil && *upd.Name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}
	if upd.Year != nil && *upd.Year <= 0 {
		return nil, fmt.Errorf("%w: year must be positive", ErrInvalidInput)
	}

	var titleUpd models.TitleUpdate
	titleUpd.Name = upd.Name
	titleUpd.Year = upd.Year
	titleUpd.Description = upd.Description

	if upd.Category != nil {
		categoryID, err := svc.resolveCategory(ctx, *upd.Category)
		if err != nil {
			return nil, err
		}
		titleUpd.CategoryID = &categoryID
	}
	if upd.Genres != nil {
		genreIDs, err := svc.resolveGenres(ctx, *upd.Genres)
		if err != nil {
			return nil, err
		}
		titleUpd.GenreIDs = &genreIDs
	}

	updated, err := svc.writer.Update(ctx, id, titleUpd)
	if err != nil {
		logger.Log.Errorw("failed to update title", "err", err)
		return nil, err
	}
	if !updated {
		return nil, ErrNotFound
	}

	return svc.Get(ctx, id)
}

// Delete removes a title; its reviews and their comments cascade.
func (svc *TitleService) Delete(ctx context.Context, actor *models.UserDB, id int64) error {
	if err := decide(actor, policy.ActionDelete, policy.ResourceCatalog, nil); err != nil {
		return err
	}

	deleted, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete title", "err", err)
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	svc.events.Publish(ctx, "title.deleted", map[string]any{"title_id": id})
	return nil
}

func (svc *TitleService) resolveCategory(ctx context.Context, slug string) (int64, error) {
	category, err := svc.categories.GetBySlug(ctx, slug)
	if err != nil {
		return 0, err
	}
	if category == nil {
		return 0, fmt.Errorf("%w: category %q does not exist", ErrInvalidInput, slug)
	}
	return category.CategoryID, nil
}

func (svc *TitleService) resolveGenres(ctx context.Context, slugs []string) ([]int64, error) {
	if len(slugs) == 0 {
		return nil, nil
	}

	genres, err := svc.genres.GetBySlugs(ctx, slugs)
	if err != nil {
		return nil, err
	}

	found := make(map[string]int64, len(genres))
	for _, g := range genres {
		found[g.Slug] = g.GenreID
	}

	ids := make([]int64, 0, len(slugs))
	for _, slug := range slugs {
		id, ok := found[slug]
		if !ok {
			return nil, fmt.Errorf("%w: genre %q does not exist", ErrInvalidInput, slug)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
