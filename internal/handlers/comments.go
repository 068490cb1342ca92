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

// CommentProvider defines the interface that the comment service must implement.
type CommentProvider interface {
	ListByReview(ctx context.Context, titleID, reviewID int64) ([]models.CommentDB, error)
	Get(ctx context.Context, titleID, reviewID, commentID int64) (*models.CommentDB, error)
	Create(ctx context.Context, actor *models.UserDB, titleID, reviewID int64, text string) (*models.CommentDB, error)
	Update(ctx context.Context, actor *models.UserDB, titleID, reviewID, commentID int64, text *string, partial bool) (*models.CommentDB, error)
	Delete(ctx context.Context, actor *models.UserDB, titleID, reviewID, commentID int64) error
}

// CommentRequest represents the JSON body for comment creation and update
// swagger:model CommentRequest
type CommentRequest struct {
	// Comment text
	// required: true
	Text string `json:"text"`
}

// CommentUpdateRequest represents the JSON body for a comment update
// swagger:model CommentUpdateRequest
type CommentUpdateRequest struct {
	Text *string `json:"text"`
}

// CommentResponse represents a comment on the wire
// swagger:model CommentResponse
type CommentResponse struct {
	ID      int64     `json:"id"`
	Text    string    `json:"text"`
	Author  string    `json:"author"`
	PubDate time.Time `json:"pub_date"`
}

func toCommentResponse(c models.CommentDB) CommentResponse {
	return CommentResponse{
		ID:      c.CommentID,
		Text:    c.Text,
		Author:  c.AuthorUsername,
		PubDate: c.PubDate,
	}
}

// commentPath pulls the three nested identifiers out of the request.
func commentPath(r *http.Request) (titleID, reviewID int64, err error) {
	titleID, err = pathID(r, "title_id")
	if err != nil {
		return 0, 0, err
	}
	reviewID, err = pathID(r, "review_id")
	if err != nil {
		return 0, 0, err
	}
	return titleID, reviewID, nil
}

// NewCommentListHandler returns an HTTP handler listing comments of a review.
// @Summary List comments of a review
// @Tags comments
// @Produce json
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Success 200 {array} handlers.CommentResponse
// @Failure 404 {object} handlers.ErrorResponse "No such title or review"
// @Router /titles/{title_id}/reviews/{review_id}/comments [get]
func NewCommentListHandler(svc CommentProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titleID, reviewID, err := commentPath(r)
		if err != nil {
			writeServiceError(w, services.ErrNotFound)
			return
		}

		comments, err := svc.ListByReview(r.Context(), titleID, reviewID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := make([]CommentResponse, 0, len(comments))
		for _, c := range comments {
			resp = append(resp, toCommentResponse(c))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// NewCommentGetHandler returns an HTTP handler retrieving one comment.
// @Summary Retrieve a comment
// @Tags comments
// @Produce json
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Param comment_id path int true "Comment ID"
// @Success 200 {object} handlers.CommentResponse
// @Failure 404 {object} handlers.ErrorResponse "No such title, review or comment"
// @Router /titles/{title_id}/reviews/{review_id}/comments/{comment_id} [get]
func NewCommentGetHandler(svc CommentProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titleID, reviewID, err := commentPath(r)
		if err != nil {
			writeServiceError(w, services.ErrNotFound)
			return
		}

		commentID, err := pathID(r, "comment_id")
		if err != nil {
			writeServiceError(w, services.ErrNotFound)
			return
		}

		comment, err := svc.Get(r.Context(), titleID, reviewID, commentID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toCommentResponse(*comment))
	}
}

// NewCommentCreateHandler returns an HTTP handler creating a comment.
// @Summary Create a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Param commentRequest body handlers.CommentRequest true "Comment to create"
// @Success 201 {object} handlers.CommentResponse
// @Failure 400 {object} handlers.ErrorResponse "Empty text"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 404 {object} handlers.ErrorResponse "No such title or review"
// @Security BearerAuth
// @Router /titles/{title_id}/reviews/{review_id}/comments [post]
func NewCommentCreateHandler(svc CommentProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titleID, reviewID, err := commentPath(r)
		if err != nil {
			writeServiceError(w, services.ErrNotFound)
			return
		}

		var req CommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		created, err := svc.Create(r.Context(), middlewares.ActorFromContext(r.Context()), titleID, reviewID, req.Text)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toCommentResponse(*created))
	}
}

// NewCommentUpdateHandler returns an HTTP handler updating a comment. PATCH is
// author-only and partial; PUT is a full replacement open to moderators and
// admins as well.
// @Summary Update a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Param comment_id path int true "Comment ID"
// @Param commentUpdateRequest body handlers.CommentUpdateRequest true "Fields to change"
// @Success 200 {object} handlers.CommentResponse
// @Failure 400 {object} handlers.ErrorResponse "Empty text"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 403 {object} handlers.ErrorResponse "Not permitted for this actor"
// @Failure 404 {object} handlers.ErrorResponse "No such title, review or comment"
// @Security BearerAuth
// @Router /titles/{title_id}/reviews/{review_id}/comments/{comment_id} [patch]
func NewCommentUpdateHandler(svc CommentProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titleID, reviewID, err := commentPath(r)
		if err != nil {
			writeServiceError(w, services.ErrNotFound)
			return
		}

		commentID, err := pathID(r, "comment_id")
		if err != nil {
			writeServiceError(w, services.ErrNotFound)
			return
		}

		var req CommentUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		partial := r.Method == http.MethodPatch

		updated, err := svc.Update(r.Context(), middlewares.ActorFromContext(r.Context()), titleID, reviewID, commentID, req.Text, partial)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toCommentResponse(*updated))
	}
}

// NewCommentDeleteHandler returns an HTTP handler deleting a comment.
// @Summary Delete a comment
// @Tags comments
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Param comment_id path int true "Comment ID"
// @Success 204 "Deleted"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 403 {object} handlers.ErrorResponse "Not permitted for this actor"
// @Failure 404 {object} handlers.ErrorResponse "No such title, review or comment"
// @Security BearerAuth
// @Router /titles/{title_id}/reviews/{review_id}/comments/{comment_id} [delete]
func NewCommentDeleteHandler(svc CommentProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		titleID, reviewID, err := commentPath(r)
		if err != nil {
			writeServiceError(w, services.ErrNotFound)
			return
		}

		commentID, err := pathID(r, "comment_id")
		if err != nil {
			writeServiceError(w, services.ErrNotFound)
			return
		}

		if err := svc.Delete(r.Context(), middlewares.ActorFromContext(r.Context()), titleID, reviewID, commentID); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
