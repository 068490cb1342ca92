package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/review-catalog/internal/middlewares"
	"github.com/sbilibin2017/review-catalog/internal/models"
)

// GenreProvider defines the interface that the genre service must implement.
type GenreProvider interface {
	List(ctx context.Context) ([]models.GenreDB, error)
	Create(ctx context.Context, actor *models.UserDB, name, slug string) (*models.GenreDB, error)
	Delete(ctx context.Context, actor *models.UserDB, slug string) error
}

// GenreRequest represents the JSON body for genre creation
// swagger:model GenreRequest
type GenreRequest struct {
	// Unique display name
	// required: true
	Name string `json:"name"`

	// Unique URL-safe identifier
	// required: true
	Slug string `json:"slug"`
}

// GenreResponse represents a genre on the wire
// swagger:model GenreResponse
type GenreResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func toGenreResponse(g models.GenreDB) GenreResponse {
	return GenreResponse{Name: g.Name, Slug: g.Slug}
}

// NewGenreListHandler returns an HTTP handler listing all genres.
// @Summary List genres
// @Tags genres
// @Produce json
// @Success 200 {array} handlers.GenreResponse
// @Router /genres [get]
func NewGenreListHandler(svc GenreProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		genres, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := make([]GenreResponse, 0, len(genres))
		for _, g := range genres {
			resp = append(resp, toGenreResponse(g))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// NewGenreCreateHandler returns an HTTP handler creating a genre.
// @Summary Create a genre
// @Tags genres
// @Accept json
// @Produce json
// @Param genreRequest body handlers.GenreRequest true "Genre to create"
// @Success 201 {object} handlers.GenreResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid name or slug"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 403 {object} handlers.ErrorResponse "Admin privilege required"
// @Failure 409 {object} handlers.ErrorResponse "Name or slug already exists"
// @Security BearerAuth
// @Router /genres [post]
func NewGenreCreateHandler(svc GenreProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GenreRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		created, err := svc.Create(r.Context(), middlewares.ActorFromContext(r.Context()), req.Name, req.Slug)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toGenreResponse(*created))
	}
}

// NewGenreDeleteHandler returns an HTTP handler deleting a genre.
// @Summary Delete a genre
// @Tags genres
// @Param slug path string true "Genre slug"
// @Success 204 "Deleted"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 403 {object} handlers.ErrorResponse "Admin privilege required"
// @Failure 404 {object} handlers.ErrorResponse "No such genre"
// @Security BearerAuth
// @Router /genres/{slug} [delete]
func NewGenreDeleteHandler(svc GenreProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		if err := svc.Delete(r.Context(), middlewares.ActorFromContext(r.Context()), slug); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
