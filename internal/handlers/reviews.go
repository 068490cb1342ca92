package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sbilibin2017/review-catalog/internal/middlewares"
	"github.com/sbilibin2017/review-catalog/internal/models"
	"github.com/sbilibin2017/review-catalog/internal/services"
)

// ReviewProvider defines the interface that the review service must implement.
type ReviewProvider interface {
	ListByTitle(ctx context.Context, titleID int64) ([]models.ReviewDB, error)
	Get(ctx context.Context, titleID, reviewID int64) (*models.ReviewDB, error)
	Create(ctx context.Context, actor *models.UserDB, titleID int64, score int, text string) (*models.ReviewDB, error)
	Update(ctx context.Context, actor *models.UserDB, titleID, reviewID int64, upd services.ReviewUpdateInput, partial bool) (*models.ReviewDB, error)
	Delete(ctx context.Context, actor *models.UserDB, titleID, reviewID int64) error
}

// ReviewRequest represents the JSON body for review creation
// swagger:model ReviewRequest
type ReviewRequest struct {
	// Integer score in [1,10]
	// required: true
	Score int `json:"score"`

	// Review text
	// required: true
	Text string `json:"text"`
}

// ReviewUpdateRequest represents the JSON body for a review update. PUT
// requires both fields, PATCH accepts either.
// swagger:model ReviewUpdateRequest
type ReviewUpdateRequest struct {
	Score *int    `json:"score"`
	Text  *string `json:"text"`
}

// ReviewResponse represents a review on the wire
// swagger:model ReviewResponse
type ReviewResponse struct {
	ID      int64     `json:"id"`
	Text    string    `json:"text"`
	Author  string    `json:"author"`
	Score   int       `json:"score"`
	PubDate time.Time `json:"pub_date"`
}

func toReviewResponse(r models.ReviewDB) ReviewResponse {
	return ReviewResponse{
		ID:      r.ReviewID,
		Text:    r.Text,
		Author:  r.AuthorUsername,
		Score:   r.Score,
		PubDate: r.PubDate,
	}
}

// NewReviewListHandler returns an HTTP handler listing reviews of a title.
// @Summary List reviews of a title
// @Tags reviews
// @Produce json
// @Param title_id path int true "Title ID"
// @Success 200 {array} handlers.ReviewResponse
// @Failure 404 {object} handlers.ErrorResponse "No such title"
// @Router /titles/{title_id}/reviews [get]
func NewReviewListHandler(svc ReviewProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titleID, err := pathID(r, "title_id")
		if err != nil {
			writeServiceError(w, services.ErrNotFound)
			return
		}

		reviews, err := svc.ListByTitle(r.Context(), titleID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := make([]ReviewResponse, 0, len(reviews))
		for _, rev := range reviews {
			resp = append(resp, toReviewResponse(rev))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// NewReviewGetHandler returns an HTTP handler retrieving one review.
// @Summary Retrieve a review
// @Tags reviews
// @Produce json
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Success 200 {object} handlers.ReviewResponse
// @Failure 404 {object} handlers.ErrorResponse "No such title or review"
// @Router /titles/{title_id}/reviews/{review_id} [get]
func NewReviewGetHandler(svc ReviewProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titleID, err := pathID(r, "title_id")
		if err != nil {
			writeServiceError(w, services.ErrNotFound)
			return
		}

		reviewID, err := pathID(r, "review_id")
		if err != nil {
			writeServiceError(w, services.ErrNotFound)
			return
		}

		review, err := svc.Get(r.Context(), titleID, reviewID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toReviewResponse(*review))
	}
}

// NewReviewCreateHandler returns an HTTP handler creating a review.
// @Summary Create a review
// @Description Each author may hold at most one review per title.
// @Tags reviews
// @Accept json
// @Produce json
// @Param title_id path int true "Title ID"
// @Param reviewRequest body handlers.ReviewRequest true "Review to create"
// @Success 201 {object} handlers.ReviewResponse
// @Failure 400 {object} handlers.ErrorResponse "Score out of range or empty text"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 404 {object} handlers.ErrorResponse "No such title"
// @Failure 409 {object} handlers.ErrorResponse "Author already reviewed this title"
// @Security BearerAuth
// @Router /titles/{title_id}/reviews [post]
func NewReviewCreateHandler(svc ReviewProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titleID, err := pathID(r, "title_id")
		if err != nil {
			writeServiceError(w, services.ErrNotFound)
			return
		}

		var req ReviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		created, err := svc.Create(r.Context(), middlewares.ActorFromContext(r.Context()), titleID, req.Score, req.Text)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toReviewResponse(*created))
	}
}

// NewReviewUpdateHandler returns an HTTP handler updating a review. PATCH is
// author-only and partial; PUT is a full replacement open to moderators and
// admins as well.
// @Summary Update a review
// @Tags reviews
// @Accept json
// @Produce json
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Param reviewUpdateRequest body handlers.ReviewUpdateRequest true "Fields to change"
// @Success 200 {object} handlers.ReviewResponse
// @Failure 400 {object} handlers.ErrorResponse "Score out of range"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 403 {object} handlers.ErrorResponse "Not permitted for this actor"
// @Failure 404 {object} handlers.ErrorResponse "No such title or review"
// @Security BearerAuth
// @Router /titles/{title_id}/reviews/{review_id} [patch]
func NewReviewUpdateHandler(svc ReviewProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titleID, err := pathID(r, "title_id")
		if err != nil {
			writeServiceError(w, services.ErrNotFound)
			return
		}

		reviewID, err := pathID(r, "review_id")
		if err != nil {
			writeServiceError(w, services.ErrNotFound)
			return
		}

		var req ReviewUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		partial := r.Method == http.MethodPatch

		updated, err := svc.Update(r.Context(), middlewares.ActorFromContext(r.Context()), titleID, reviewID, services.ReviewUpdateInput{
			Score: req.Score,
			Text:  req.Text,
		}, partial)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toReviewResponse(*updated))
	}
}

// NewReviewDeleteHandler returns an HTTP handler deleting a review.
// @Summary Delete a review
// @Description Deletion cascades into the review's comments.
// @Tags reviews
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Success 204 "Deleted"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 403 {object} handlers.ErrorResponse "Not permitted for this actor"
// @Failure 404 {object} handlers.ErrorResponse "No such title or review"
// @Security BearerAuth
// @Router /titles/{title_id}/reviews/{review_id} [delete]
func NewReviewDeleteHandler(svc ReviewProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titleID, err := pathID(r, "title_id")
		if err != nil {
			writeServiceError(w, services.ErrNotFound)
			return
		}

		reviewID, err := pathID(r, "review_id")
		if err != nil {
			writeServiceError(w, services.ErrNotFound)
			return
		}

		if err := svc.Delete(r.Context(), middlewares.ActorFromContext(r.Context()), titleID, reviewID); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
