package services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/review-catalog/internal/logger"
	"github.com/sbilibin2017/review-catalog/internal/models"
	"github.com/sbilibin2017/review-catalog/internal/policy"
	"github.com/sbilibin2017/review-catalog/internal/repositories"
)

// CategoryReader defines read operations over categories.
type CategoryReader interface {
	List(ctx context.Context) ([]models.CategoryDB, error)
	GetBySlug(ctx context.Context, slug string) (*models.CategoryDB, error)
}

// CategoryWriter defines write operations over categories.
type CategoryWriter interface {
	Create(ctx context.Context, name, slug string) (*models.CategoryDB, error)
	Delete(ctx context.Context, slug string) (bool, error)
}

// GenreReader defines read operations over genres.
type GenreReader interface {
	List(ctx context.Context) ([]models.GenreDB, error)
	GetBySlugs(ctx context.Context, slugs []string) ([]models.GenreDB, error)
}

// GenreWriter defines write operations over genres.
type GenreWriter interface {
	Create(ctx context.Context, name, slug string) (*models.GenreDB, error)
	Delete(ctx context.Context, slug string) (bool, error)
}

// CategoryService handles the category surface: public listing and
// admin-gated create/delete.
type CategoryService struct {
	reader CategoryReader
	writer CategoryWriter
}

// NewCategoryService creates a new CategoryService instance.
func NewCategoryService(reader CategoryReader, writer CategoryWriter) *CategoryService {
	return &CategoryService{reader: reader, writer: writer}
}

func (svc *CategoryService) List(ctx context.Context) ([]models.CategoryDB, error) {
	return svc.reader.List(ctx)
}

func (svc *CategoryService) Create(ctx context.Context, actor *models.UserDB, name, slug string) (*models.CategoryDB, error) {
	if err := decide(actor, policy.ActionCreate, policy.ResourceCatalog, nil); err != nil {
		return nil, err
	}
	if err := validateNameSlug(name, slug); err != nil {
		return nil, err
	}

	created, err := svc.writer.Create(ctx, name, slug)
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, ErrAlreadyExists
		}
		logger.Log.Errorw("failed to create category", "err", err)
		return nil, err
	}

	return created, nil
}

// Delete removes a category unless a title still references it.
func (svc *CategoryService) Delete(ctx context.Context, actor *models.UserDB, slug string) error {
	if err := decide(actor, policy.ActionDelete, policy.ResourceCatalog, nil); err != nil {
		return err
	}

	deleted, err := svc.writer.Delete(ctx, slug)
	if err != nil {
		if repositories.IsForeignKeyViolation(err) {
			return ErrProtected
		}
		logger.Log.Errorw("failed to delete category", "err", err)
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	return nil
}

// GenreService handles the genre surface, mirroring CategoryService.
type GenreService struct {
	reader GenreReader
	writer GenreWriter
}

// NewGenreService creates a new GenreService instance.
func NewGenreService(reader GenreReader, writer GenreWriter) *GenreService {
	return &GenreService{reader: reader, writer: writer}
}

func (svc *GenreService) List(ctx context.Context) ([]models.GenreDB, error) {
	return svc.reader.List(ctx)
}

func (svc *GenreService) Create(ctx context.Context, actor *models.UserDB, name, slug string) (*models.GenreDB, error) {
	if err := decide(actor, policy.ActionCreate, policy.ResourceCatalog, nil); err != nil {
		return nil, err
	}
	if err := validateNameSlug(name, slug); err != nil {
		return nil, err
	}

	created, err := svc.writer.Create(ctx, name, slug)
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, ErrAlreadyExists
		}
		logger.Log.Errorw("failed to create genre", "err", err)
		return nil, err
	}

	return created, nil
}

func (svc *GenreService) Delete(ctx context.Context, actor *models.UserDB, slug string) error {
	if err := decide(actor, policy.ActionDelete, policy.ResourceCatalog, nil); err != nil {
		return err
	}

	deleted, err := svc.writer.Delete(ctx, slug)
	if err != nil {
		if repositories.IsForeignKeyViolation(err) {
			return ErrProtected
		}
		logger.Log.Errorw("failed to delete genre", "err", err)
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	return nil
}

func validateNameSlug(name, slug string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("%w: slug must contain only letters, digits, hyphens and underscores", ErrInvalidInput)
	}
	return nil
}
