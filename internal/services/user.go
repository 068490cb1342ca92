package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/sbilibin2017/review-catalog/internal/logger"
	"github.com/sbilibin2017/review-catalog/internal/models"
	"github.com/sbilibin2017/review-catalog/internal/policy"
	"github.com/sbilibin2017/review-catalog/internal/repositories"
)

// reservedUsername collides with the self-management route.
const reservedUsername = "me"

// UserReader defines read operations over users.
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations over users.
type UserWriter interface {
	Create(ctx context.Context, user models.UserWrite) (*models.UserDB, error)
	Update(ctx context.Context, username string, upd models.UserUpdate) (*models.UserDB, error)
	Delete(ctx context.Context, username string) (bool, error)
}

// UserService handles admin user management plus the self ("me")
// sub-resource available to any authenticated actor.
type UserService struct {
	reader   UserReader
	writer   UserWriter
	validate *validator.Validate
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{
		reader:   reader,
		writer:   writer,
		validate: validator.New(),
	}
}

func (svc *UserService) List(ctx context.Context, actor *models.UserDB) ([]models.UserDB, error) {
	if err := decide(actor, policy.ActionList, policy.ResourceUsers, nil); err != nil {
		return nil, err
	}

	return svc.reader.List(ctx)
}

func (svc *UserService) Create(ctx context.Context, actor *models.UserDB, user models.UserWrite) (*models.UserDB, error) {
	if err := decide(actor, policy.ActionCreate, policy.ResourceUsers, nil); err != nil {
		return nil, err
	}

	if user.Username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if user.Username == reservedUsername {
		return nil, ErrUsernameReserved
	}
	if err := svc.validate.Var(user.Email, "required,email"); err != nil {
		return nil, ErrInvalidEmail
	}
	if user.Role == "" {
		user.Role = policy.RoleUser
	}
	if !user.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, user.Role)
	}

	created, err := svc.writer.Create(ctx, user)
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, ErrAlreadyExists
		}
		logger.Log.Errorw("failed to create user", "err", err)
		return nil, err
	}

	return created, nil
}

func (svc *UserService) Get(ctx context.Context, actor *models.UserDB, username string) (*models.UserDB, error) {
	if err := decide(actor, policy.ActionRetrieve, policy.ResourceUsers, nil); err != nil {
		return nil, err
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (svc *UserService) Update(ctx context.Context, actor *models.UserDB, username string, upd models.UserUpdate, partial bool) (*models.UserDB, error) {
	action := policy.ActionUpdate
	if partial {
		action = policy.ActionPartialUpdate
	}
	if err := decide(actor, action, policy.ResourceUsers, nil); err != nil {
		return nil, err
	}

	if err := svc.validateUpdate(upd); err != nil {
		return nil, err
	}

	updated, err := svc.writer.Update(ctx, username, upd)
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, ErrAlreadyExists
		}
		logger.Log.Errorw("failed to update user", "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	return updated, nil
}

func (svc *UserService) Delete(ctx context.Context, actor *models.UserDB, username string) error {
	if err := decide(actor, policy.ActionDelete, policy.ResourceUsers, nil); err != nil {
		return err
	}

	deleted, err := svc.writer.Delete(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "err", err)
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	return nil
}

// GetMe returns the actor's own record; any authenticated actor qualifies.
func (svc *UserService) GetMe(ctx context.Context, actor *models.UserDB) (*models.UserDB, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}

	user, err := svc.reader.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// UpdateMe partially updates the actor's own record. A non-admin actor
// writing the role field has it silently coerced to the current role: the
// request succeeds, the field is ignored.
func (svc *UserService) UpdateMe(ctx context.Context, actor *models.UserDB, upd models.UserUpdate) (*models.UserDB, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}

	if !actor.Actor().IsAdmin() {
		upd.Role = nil
	}

	if err := svc.validateUpdate(upd); err != nil {
		return nil, err
	}

	updated, err := svc.writer.Update(ctx, actor.Username, upd)
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, ErrAlreadyExists
		}
		logger.Log.Errorw("failed to update user", "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	return updated, nil
}

func (svc *UserService) validateUpdate(upd models.UserUpdate) error {
	if upd.Email != nil {
		if err := svc.validate.Var(*upd.Email, "required,email"); err != nil {
			return ErrInvalidEmail
		}
	}
	if upd.Role != nil && !upd.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, *upd.Role)
	}
	return nil
}
