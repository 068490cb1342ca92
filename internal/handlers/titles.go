package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/review-catalog/internal/middlewares"
	"github.com/sbilibin2017/review-catalog/internal/models"
	"github.com/sbilibin2017/review-catalog/internal/services"
)

// TitleProvider defines the interface that the title service must implement.
type TitleProvider interface {
	List(ctx context.Context) ([]models.TitleWithRating, error)
	Get(ctx context.Context, id int64) (*models.TitleWithRating, error)
	Create(ctx context.Context, actor *models.UserDB, input services.TitleInput) (*models.TitleWithRating, error)
	Update(ctx context.Context, actor *models.UserDB, id int64, upd services.TitleUpdateInput) (*models.TitleWithRating, error)
	Delete(ctx context.Context, actor *models.UserDB, id int64) error
}

// TitleRequest represents the JSON body for title creation
// swagger:model TitleRequest
type TitleRequest struct {
	// Display name
	// required: true
	Name string `json:"name"`

	// Release year
	// required: true
	Year int `json:"year"`

	// Optional description
	Description string `json:"description"`

	// Slug of the owning category
	// required: true
	Category string `json:"category"`

	// Slugs of associated genres
	Genre []string `json:"genre"`
}

// TitleUpdateRequest represents the JSON body for a partial title update
// swagger:model TitleUpdateRequest
type TitleUpdateRequest struct {
	Name        *string   `json:"name"`
	Year        *int      `json:"year"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Genre       *[]string `json:"genre"`
}

// TitleResponse represents a title on the wire, with its derived rating and
// nested category and genre objects.
// swagger:model TitleResponse
type TitleResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Year        int              `json:"year"`
	Rating      *float64         `json:"rating"`
	Description string           `json:"description"`
	Category    CategoryResponse `json:"category"`
	Genre       []GenreResponse  `json:"genre"`
}

func toTitleResponse(t models.TitleWithRating) TitleResponse {
	genres := make([]GenreResponse, 0, len(t.Genres))
	for _, g := range t.Genres {
		genres = append(genres, toGenreResponse(g))
	}

	return TitleResponse{
		ID:          t.TitleID,
		Name:        t.Name,
		Year:        t.Year,
		Rating:      t.Rating,
		Description: t.Description,
		Category:    CategoryResponse{Name: t.CategoryName, Slug: t.CategorySlug},
		Genre:       genres,
	}
}

// NewTitleListHandler returns an HTTP handler listing all titles.
// @Summary List titles
// @Description Each title carries a rating derived from its reviews, absent when no reviews exist.
// @Tags titles
// @Produce json
// @Success 200 {array} handlers.TitleResponse
// @Router /titles [get]
func NewTitleListHandler(svc TitleProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titles, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := make([]TitleResponse, 0, len(titles))
		for _, t := range titles {
			resp = append(resp, toTitleResponse(t))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// NewTitleGetHandler returns an HTTP handler retrieving one title.
// @Summary Retrieve a title
// @Tags titles
// @Produce json
// @Param title_id path int true "Title ID"
// @Success 200 {object} handlers.TitleResponse
// @Failure 404 {object} handlers.ErrorResponse "No such title"
// @Router /titles/{title_id} [get]
func NewTitleGetHandler(svc TitleProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "title_id")
		if err != nil {
			writeServiceError(w, services.ErrNotFound)
			return
		}

		title, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toTitleResponse(*title))
	}
}

// NewTitleCreateHandler returns an HTTP handler creating a title.
// @Summary Create a title
// @Tags titles
// @Accept json
// @Produce json
// @Param titleRequest body handlers.TitleRequest true "Title to create"
// @Success 201 {object} handlers.TitleResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid fields or unknown category/genre slug"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 403 {object} handlers.ErrorResponse "Admin privilege required"
// @Security BearerAuth
// @Router /titles [post]
func NewTitleCreateHandler(svc TitleProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TitleRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		created, err := svc.Create(r.Context(), middlewares.ActorFromContext(r.Context()), services.TitleInput{
			Name:        req.Name,
			Year:        req.Year,
			Description: req.Description,
			Category:    req.Category,
			Genres:      req.Genre,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toTitleResponse(*created))
	}
}

// NewTitleUpdateHandler returns an HTTP handler partially updating a title.
// @Summary Partially update a title
// @Tags titles
// @Accept json
// @Produce json
// @Param title_id path int true "Title ID"
// @Param titleUpdateRequest body handlers.TitleUpdateRequest true "Fields to change"
// @Success 200 {object} handlers.TitleResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid fields or unknown category/genre slug"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 403 {object} handlers.ErrorResponse "Admin privilege required"
// @Failure 404 {object} handlers.ErrorResponse "No such title"
// @Security BearerAuth
// @Router /titles/{title_id} [patch]
func NewTitleUpdateHandler(svc TitleProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "title_id")
		if err != nil {
			writeServiceError(w, services.ErrNotFound)
			return
		}

		var req TitleUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		updated, err := svc.Update(r.Context(), middlewares.ActorFromContext(r.Context()), id, services.TitleUpdateInput{
			Name:        req.Name,
			Year:        req.Year,
			Description: req.Description,
			Category:    req.Category,
			Genres:      req.Genre,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toTitleResponse(*updated))
	}
}

// NewTitleDeleteHandler returns an HTTP handler deleting a title.
// @Summary Delete a title
// @Description Deletion cascades through the title's reviews into their comments.
// @Tags titles
// @Param title_id path int true "Title ID"
// @Success 204 "Deleted"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 403 {object} handlers.ErrorResponse "Admin privilege required"
// @Failure 404 {object} handlers.ErrorResponse "No such title"
// @Security BearerAuth
// @Router /titles/{title_id} [delete]
func NewTitleDeleteHandler(svc TitleProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "title_id")
		if err != nil {
			writeServiceError(w, services.ErrNotFound)
			return
		}

		if err := svc.Delete(r.Context(), middlewares.ActorFromContext(r.Context()), id); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
