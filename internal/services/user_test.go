package services

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/review-catalog/internal/models"
	"github.com/sbilibin2017/review-catalog/internal/policy"
)

func TestUserService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	admin := userWithRole(policy.RoleAdmin)
	regular := userWithRole(policy.RoleUser)
	superuser := &models.UserDB{UserID: uuid.New(), Role: policy.RoleUser, Superuser: true}

	tests := []struct {
		name        string
		actor       *models.UserDB
		user        models.UserWrite
		mockSetup   func() *UserService
		expectedErr error
	}{
		{
			name:  "admin_creates_user",
			actor: admin,
			user:  models.UserWrite{Username: "alice", Email: "alice@example.com"},
			mockSetup: func() *UserService {
				mockWriter := NewMockUserWriter(ctrl)
				mockWriter.EXPECT().
					Create(ctx, models.UserWrite{Username: "alice", Email: "alice@example.com", Role: policy.RoleUser}).
					Return(&models.UserDB{Username: "alice", Role: policy.RoleUser}, nil)
				return NewUserService(NewMockUserReader(ctrl), mockWriter)
			},
			expectedErr: nil,
		},
		{
			// a superuser acts as admin regardless of stored role
			name:  "superuser_creates_user",
			actor: superuser,
			user:  models.UserWrite{Username: "alice", Email: "alice@example.com", Role: policy.RoleModerator},
			mockSetup: func() *UserService {
				mockWriter := NewMockUserWriter(ctrl)
				mockWriter.EXPECT().
					Create(ctx, gomock.Any()).
					Return(&models.UserDB{Username: "alice", Role: policy.RoleModerator}, nil)
				return NewUserService(NewMockUserReader(ctrl), mockWriter)
			},
			expectedErr: nil,
		},
		{
			name:  "regular_user_forbidden",
			actor: regular,
			user:  models.UserWrite{Username: "alice", Email: "alice@example.com"},
			mockSetup: func() *UserService {
				return NewUserService(NewMockUserReader(ctrl), NewMockUserWriter(ctrl))
			},
			expectedErr: ErrForbidden,
		},
		{
			name:  "anonymous_unauthorized",
			actor: nil,
			user:  models.UserWrite{Username: "alice", Email: "alice@example.com"},
			mockSetup: func() *UserService {
				return NewUserService(NewMockUserReader(ctrl), NewMockUserWriter(ctrl))
			},
			expectedErr: ErrUnauthorized,
		},
		{
			name:  "reserved_username",
			actor: admin,
			user:  models.UserWrite{Username: "me", Email: "me@example.com"},
			mockSetup: func() *UserService {
				return NewUserService(NewMockUserReader(ctrl), NewMockUserWriter(ctrl))
			},
			expectedErr: ErrUsernameReserved,
		},
		{
			name:  "missing_username",
			actor: admin,
			user:  models.UserWrite{Email: "alice@example.com"},
			mockSetup: func() *UserService {
				return NewUserService(NewMockUserReader(ctrl), NewMockUserWriter(ctrl))
			},
			expectedErr: ErrInvalidInput,
		},
		{
			name:  "invalid_email",
			actor: admin,
			user:  models.UserWrite{Username: "alice", Email: "nope"},
			mockSetup: func() *UserService {
				return NewUserService(NewMockUserReader(ctrl), NewMockUserWriter(ctrl))
			},
			expectedErr: ErrInvalidEmail,
		},
		{
			name:  "unknown_role",
			actor: admin,
			user:  models.UserWrite{Username: "alice", Email: "alice@example.com", Role: "king"},
			mockSetup: func() *UserService {
				return NewUserService(NewMockUserReader(ctrl), NewMockUserWriter(ctrl))
			},
			expectedErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := tt.mockSetup()

			created, err := svc.Create(ctx, tt.actor, tt.user)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, created)
			}
		})
	}
}

func TestUserService_UpdateMe_RoleCoercion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	adminRole := policy.RoleAdmin
	bio := "hello"

	t.Run("non_admin_role_is_silently_dropped", func(t *testing.T) {
		actor := userWithRole(policy.RoleUser)

		mockWriter := NewMockUserWriter(ctrl)
		mockWriter.EXPECT().
			Update(ctx, actor.Username, models.UserUpdate{Bio: &bio}).
			Return(&models.UserDB{Username: actor.Username, Bio: bio, Role: policy.RoleUser}, nil)

		svc := NewUserService(NewMockUserReader(ctrl), mockWriter)

		updated, err := svc.UpdateMe(ctx, actor, models.UserUpdate{Bio: &bio, Role: &adminRole})
		assert.NoError(t, err)
		assert.Equal(t, policy.RoleUser, updated.Role)
	})

	t.Run("admin_keeps_role_field", func(t *testing.T) {
		actor := userWithRole(policy.RoleAdmin)

		mockWriter := NewMockUserWriter(ctrl)
		mockWriter.EXPECT().
			Update(ctx, actor.Username, models.UserUpdate{Role: &adminRole}).
			Return(&models.UserDB{Username: actor.Username, Role: policy.RoleAdmin}, nil)

		svc := NewUserService(NewMockUserReader(ctrl), mockWriter)

		_, err := svc.UpdateMe(ctx, actor, models.UserUpdate{Role: &adminRole})
		assert.NoError(t, err)
	})

	t.Run("anonymous_unauthorized", func(t *testing.T) {
		svc := NewUserService(NewMockUserReader(ctrl), NewMockUserWriter(ctrl))

		_, err := svc.UpdateMe(ctx, nil, models.UserUpdate{Bio: &bio})
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestUserService_GetMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	actor := userWithRole(policy.RoleUser)

	t.Run("success", func(t *testing.T) {
		mockReader := NewMockUserReader(ctrl)
		mockReader.EXPECT().GetByID(ctx, actor.UserID).Return(actor, nil)

		svc := NewUserService(mockReader, NewMockUserWriter(ctrl))

		me, err := svc.GetMe(ctx, actor)
		assert.NoError(t, err)
		assert.Equal(t, actor.UserID, me.UserID)
	})

	t.Run("anonymous_unauthorized", func(t *testing.T) {
		svc := NewUserService(NewMockUserReader(ctrl), NewMockUserWriter(ctrl))

		_, err := svc.GetMe(ctx, nil)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestUserService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	admin := userWithRole(policy.RoleAdmin)
	moderator := userWithRole(policy.RoleModerator)

	t.Run("admin_deletes_user", func(t *testing.T) {
		mockWriter := NewMockUserWriter(ctrl)
		mockWriter.EXPECT().Delete(ctx, "alice").Return(true, nil)

		svc := NewUserService(NewMockUserReader(ctrl), mockWriter)

		assert.NoError(t, svc.Delete(ctx, admin, "alice"))
	})

	t.Run("unknown_user", func(t *testing.T) {
		mockWriter := NewMockUserWriter(ctrl)
		mockWriter.EXPECT().Delete(ctx, "ghost").Return(false, nil)

		svc := NewUserService(NewMockUserReader(ctrl), mockWriter)

		assert.ErrorIs(t, svc.Delete(ctx, admin, "ghost"), ErrNotFound)
	})

	t.Run("moderator_forbidden", func(t *testing.T) {
		svc := NewUserService(NewMockUserReader(ctrl), NewMockUserWriter(ctrl))

		assert.ErrorIs(t, svc.Delete(ctx, moderator, "alice"), ErrForbidden)
	})
}
