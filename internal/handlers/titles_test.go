package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/review-catalog/internal/middlewares"
	"github.com/sbilibin2017/review-catalog/internal/models"
	"github.com/sbilibin2017/review-catalog/internal/policy"
	"github.com/sbilibin2017/review-catalog/internal/services"
)

func adminActor() *models.UserDB {
	return &models.UserDB{UserID: uuid.New(), Username: "admin", Role: policy.RoleAdmin}
}

// serveWithActor routes the request through a chi router so URL params
// resolve, with an optional authenticated actor in the context.
func serveWithActor(method, pattern string, handler http.HandlerFunc, req *http.Request, actor *models.UserDB) *httptest.ResponseRecorder {
	if actor != nil {
		req = req.WithContext(middlewares.SetActor(req.Context(), actor))
	}

	router := chi.NewRouter()
	router.Method(method, pattern, handler)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestTitleListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rating := 9.0
	mockSvc := NewMockTitleProvider(ctrl)
	mockSvc.EXPECT().List(gomock.Any()).Return([]models.TitleWithRating{
		{
			TitleDB:      models.TitleDB{TitleID: 1, Name: "Dune", Year: 1965},
			Rating:       &rating,
			CategoryName: "Books",
			CategorySlug: "books",
			Genres:       []models.GenreDB{{GenreID: 7, Name: "Sci-Fi", Slug: "sci-fi"}},
		},
		{
			TitleDB:      models.TitleDB{TitleID: 2, Name: "Solaris", Year: 1961},
			CategoryName: "Books",
			CategorySlug: "books",
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/titles", nil)
	rr := serveWithActor(http.MethodGet, "/titles", NewTitleListHandler(mockSvc), req, nil)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []TitleResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, 9.0, *resp[0].Rating)
	assert.Equal(t, "books", resp[0].Category.Slug)
	assert.Len(t, resp[0].Genre, 1)
	// a title with no reviews carries no rating
	assert.Nil(t, resp[1].Rating)
}

func TestTitleGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("found", func(t *testing.T) {
		mockSvc := NewMockTitleProvider(ctrl)
		mockSvc.EXPECT().Get(gomock.Any(), int64(1)).Return(&models.TitleWithRating{
			TitleDB:      models.TitleDB{TitleID: 1, Name: "Dune", Year: 1965},
			CategoryName: "Books",
			CategorySlug: "books",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/titles/1", nil)
		rr := serveWithActor(http.MethodGet, "/titles/{title_id}", NewTitleGetHandler(mockSvc), req, nil)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := NewMockTitleProvider(ctrl)
		mockSvc.EXPECT().Get(gomock.Any(), int64(9)).Return(nil, services.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/titles/9", nil)
		rr := serveWithActor(http.MethodGet, "/titles/{title_id}", NewTitleGetHandler(mockSvc), req, nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestTitleCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := adminActor()

	tests := []struct {
		name           string
		body           string
		actor          *models.UserDB
		setupMocks     func(m *MockTitleProvider)
		expectedStatus int
	}{
		{
			name:  "created",
			body:  `{"name":"Dune","year":1965,"category":"books","genre":["sci-fi"]}`,
			actor: admin,
			setupMocks: func(m *MockTitleProvider) {
				m.EXPECT().
					Create(gomock.Any(), admin, services.TitleInput{Name: "Dune", Year: 1965, Category: "books", Genres: []string{"sci-fi"}}).
					Return(&models.TitleWithRating{TitleDB: models.TitleDB{TitleID: 1, Name: "Dune", Year: 1965}}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:  "unknown category",
			body:  `{"name":"Dune","year":1965,"category":"ghost"}`,
			actor: admin,
			setupMocks: func(m *MockTitleProvider) {
				m.EXPECT().
					Create(gomock.Any(), admin, gomock.Any()).
					Return(nil, services.ErrInvalidInput)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "anonymous",
			body:  `{"name":"Dune","year":1965,"category":"books"}`,
			actor: nil,
			setupMocks: func(m *MockTitleProvider) {
				m.EXPECT().
					Create(gomock.Any(), nil, gomock.Any()).
					Return(nil, services.ErrUnauthorized)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed body",
			body:           `{`,
			actor:          admin,
			setupMocks:     func(m *MockTitleProvider) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockTitleProvider(ctrl)
			tt.setupMocks(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/titles", bytes.NewBufferString(tt.body))
			rr := serveWithActor(http.MethodPost, "/titles", NewTitleCreateHandler(mockSvc), req, tt.actor)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestTitleDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := adminActor()

	mockSvc := NewMockTitleProvider(ctrl)
	mockSvc.EXPECT().Delete(gomock.Any(), admin, int64(1)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/titles/1", nil)
	rr := serveWithActor(http.MethodDelete, "/titles/{title_id}", NewTitleDeleteHandler(mockSvc), req, admin)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}
