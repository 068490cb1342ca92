package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/review-catalog/internal/middlewares"
	"github.com/sbilibin2017/review-catalog/internal/models"
)

// CategoryProvider defines the interface that the category service must
// implement.
type CategoryProvider interface {
	List(ctx context.Context) ([]models.CategoryDB, error)
	Create(ctx context.Context, actor *models.UserDB, name, slug string) (*models.CategoryDB, error)
	Delete(ctx context.Context, actor *models.UserDB, slug string) error
}

// CategoryRequest represents the JSON body for category creation
// swagger:model CategoryRequest
type CategoryRequest struct {
	// Unique display name
	// required: true
	Name string `json:"name"`

	// Unique URL-safe identifier
	// required: true
	Slug string `json:"slug"`
}

// CategoryResponse represents a category on the wire
// swagger:model CategoryResponse
type CategoryResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func toCategoryResponse(c models.CategoryDB) CategoryResponse {
	return CategoryResponse{Name: c.Name, Slug: c.Slug}
}

// NewCategoryListHandler returns an HTTP handler listing all categories.
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} handlers.CategoryResponse
// @Router /categories [get]
func NewCategoryListHandler(svc CategoryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := make([]CategoryResponse, 0, len(categories))
		for _, c := range categories {
			resp = append(resp, toCategoryResponse(c))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// NewCategoryCreateHandler returns an HTTP handler creating a category.
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param categoryRequest body handlers.CategoryRequest true "Category to create"
// @Success 201 {object} handlers.CategoryResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid name or slug"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 403 {object} handlers.ErrorResponse "Admin privilege required"
// @Failure 409 {object} handlers.ErrorResponse "Name or slug already exists"
// @Security BearerAuth
// @Router /categories [post]
func NewCategoryCreateHandler(svc CategoryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CategoryRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		created, err := svc.Create(r.Context(), middlewares.ActorFromContext(r.Context()), req.Name, req.Slug)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toCategoryResponse(*created))
	}
}

// NewCategoryDeleteHandler returns an HTTP handler deleting a category.
// @Summary Delete a category
// @Description Fails with 409 while any title still references the category.
// @Tags categories
// @Param slug path string true "Category slug"
// @Success 204 "Deleted"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 403 {object} handlers.ErrorResponse "Admin privilege required"
// @Failure 404 {object} handlers.ErrorResponse "No such category"
// @Failure 409 {object} handlers.ErrorResponse "Category is still referenced"
// @Security BearerAuth
// @Router /categories/{slug} [delete]
func NewCategoryDeleteHandler(svc CategoryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		if err := svc.Delete(r.Context(), middlewares.ActorFromContext(r.Context()), slug); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
