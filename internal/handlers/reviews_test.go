package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/review-catalog/internal/models"
	"github.com/sbilibin2017/review-catalog/internal/policy"
	"github.com/sbilibin2017/review-catalog/internal/services"
)

func regularActor() *models.UserDB {
	return &models.UserDB{UserID: uuid.New(), Username: "reader", Role: policy.RoleUser}
}

func TestReviewListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockReviewProvider(ctrl)
	mockSvc.EXPECT().ListByTitle(gomock.Any(), int64(1)).Return([]models.ReviewDB{
		{ReviewID: 5, TitleID: 1, AuthorUsername: "reader", Score: 8, Text: "great"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/titles/1/reviews", nil)
	rr := serveWithActor(http.MethodGet, "/titles/{title_id}/reviews", NewReviewListHandler(mockSvc), req, nil)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []ReviewResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "reader", resp[0].Author)
}

func TestReviewCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actor := regularActor()

	tests := []struct {
		name           string
		body           string
		actor          *models.UserDB
		setupMocks     func(m *MockReviewProvider)
		expectedStatus int
	}{
		{
			name:  "created",
			body:  `{"score":8,"text":"great"}`,
			actor: actor,
			setupMocks: func(m *MockReviewProvider) {
				m.EXPECT().
					Create(gomock.Any(), actor, int64(1), 8, "great").
					Return(&models.ReviewDB{ReviewID: 5, TitleID: 1, AuthorUsername: "reader", Score: 8, Text: "great"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:  "score out of range",
			body:  `{"score":11,"text":"great"}`,
			actor: actor,
			setupMocks: func(m *MockReviewProvider) {
				m.EXPECT().
					Create(gomock.Any(), actor, int64(1), 11, "great").
					Return(nil, services.ErrScoreTooHigh)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "duplicate review",
			body:  `{"score":8,"text":"great"}`,
			actor: actor,
			setupMocks: func(m *MockReviewProvider) {
				m.EXPECT().
					Create(gomock.Any(), actor, int64(1), 8, "great").
					Return(nil, services.ErrReviewExists)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:  "anonymous",
			body:  `{"score":8,"text":"great"}`,
			actor: nil,
			setupMocks: func(m *MockReviewProvider) {
				m.EXPECT().
					Create(gomock.Any(), nil, int64(1), 8, "great").
					Return(nil, services.ErrUnauthorized)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockReviewProvider(ctrl)
			tt.setupMocks(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/titles/1/reviews", bytes.NewBufferString(tt.body))
			rr := serveWithActor(http.MethodPost, "/titles/{title_id}/reviews", NewReviewCreateHandler(mockSvc), req, tt.actor)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestReviewUpdateHandler_MethodSelectsPartial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actor := regularActor()
	score := 9

	stored := &models.ReviewDB{ReviewID: 5, TitleID: 1, AuthorUsername: "reader", Score: 9, Text: "great"}

	t.Run("patch is partial", func(t *testing.T) {
		mockSvc := NewMockReviewProvider(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), actor, int64(1), int64(5), services.ReviewUpdateInput{Score: &score}, true).
			Return(stored, nil)

		req := httptest.NewRequest(http.MethodPatch, "/titles/1/reviews/5", bytes.NewBufferString(`{"score":9}`))
		rr := serveWithActor(http.MethodPatch, "/titles/{title_id}/reviews/{review_id}", NewReviewUpdateHandler(mockSvc), req, actor)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("put is full replacement", func(t *testing.T) {
		mockSvc := NewMockReviewProvider(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), actor, int64(1), int64(5), gomock.Any(), false).
			Return(stored, nil)

		req := httptest.NewRequest(http.MethodPut, "/titles/1/reviews/5", bytes.NewBufferString(`{"score":9,"text":"great"}`))
		rr := serveWithActor(http.MethodPut, "/titles/{title_id}/reviews/{review_id}", NewReviewUpdateHandler(mockSvc), req, actor)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("foreign review forbidden", func(t *testing.T) {
		mockSvc := NewMockReviewProvider(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), actor, int64(1), int64(5), gomock.Any(), true).
			Return(nil, services.ErrForbidden)

		req := httptest.NewRequest(http.MethodPatch, "/titles/1/reviews/5", bytes.NewBufferString(`{"score":9}`))
		rr := serveWithActor(http.MethodPatch, "/titles/{title_id}/reviews/{review_id}", NewReviewUpdateHandler(mockSvc), req, actor)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestCommentHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actor := regularActor()

	t.Run("list", func(t *testing.T) {
		mockSvc := NewMockCommentProvider(ctrl)
		mockSvc.EXPECT().ListByReview(gomock.Any(), int64(1), int64(5)).Return([]models.CommentDB{
			{CommentID: 2, ReviewID: 5, AuthorUsername: "reader", Text: "agreed"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/titles/1/reviews/5/comments", nil)
		rr := serveWithActor(http.MethodGet, "/titles/{title_id}/reviews/{review_id}/comments", NewCommentListHandler(mockSvc), req, nil)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("create", func(t *testing.T) {
		mockSvc := NewMockCommentProvider(ctrl)
		mockSvc.EXPECT().
			Create(gomock.Any(), actor, int64(1), int64(5), "agreed").
			Return(&models.CommentDB{CommentID: 2, ReviewID: 5, AuthorUsername: "reader", Text: "agreed"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/titles/1/reviews/5/comments", bytes.NewBufferString(`{"text":"agreed"}`))
		rr := serveWithActor(http.MethodPost, "/titles/{title_id}/reviews/{review_id}/comments", NewCommentCreateHandler(mockSvc), req, actor)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("delete under missing review", func(t *testing.T) {
		mockSvc := NewMockCommentProvider(ctrl)
		mockSvc.EXPECT().
			Delete(gomock.Any(), actor, int64(1), int64(9), int64(2)).
			Return(services.ErrNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/titles/1/reviews/9/comments/2", nil)
		rr := serveWithActor(http.MethodDelete, "/titles/{title_id}/reviews/{review_id}/comments/{comment_id}", NewCommentDeleteHandler(mockSvc), req, actor)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
