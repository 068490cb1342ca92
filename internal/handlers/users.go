package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/review-catalog/internal/middlewares"
	"github.com/sbilibin2017/review-catalog/internal/models"
	"github.com/sbilibin2017/review-catalog/internal/policy"
)

// UserProvider defines the interface that the user service must implement.
type UserProvider interface {
	List(ctx context.Context, actor *models.UserDB) ([]models.UserDB, error)
	Create(ctx context.Context, actor *models.UserDB, user models.UserWrite) (*models.UserDB, error)
	Get(ctx context.Context, actor *models.UserDB, username string) (*models.UserDB, error)
	Update(ctx context.Context, actor *models.UserDB, username string, upd models.UserUpdate, partial bool) (*models.UserDB, error)
	Delete(ctx context.Context, actor *models.UserDB, username string) error
	GetMe(ctx context.Context, actor *models.UserDB) (*models.UserDB, error)
	UpdateMe(ctx context.Context, actor *models.UserDB, upd models.UserUpdate) (*models.UserDB, error)
}

// UserRequest represents the JSON body for user creation
// swagger:model UserRequest
type UserRequest struct {
	// Unique username; "me" is reserved
	// required: true
	Username string `json:"username"`

	// Unique email address
	// required: true
	Email string `json:"email"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`

	// One of user, moderator, admin; defaults to user
	Role string `json:"role"`
}

// UserUpdateRequest represents the JSON body for a user update. Non-admin
// callers of the self endpoint cannot change their own role.
// swagger:model UserUpdateRequest
type UserUpdateRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Bio       *string `json:"bio"`
	Role      *string `json:"role"`
}

// UserResponse represents a user profile on the wire
// swagger:model UserResponse
type UserResponse struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
	Role      string `json:"role"`
}

func toUserResponse(u models.UserDB) UserResponse {
	return UserResponse{
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Bio:       u.Bio,
		Role:      string(u.Role),
	}
}

func toUserUpdate(req UserUpdateRequest) models.UserUpdate {
	upd := models.UserUpdate{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
	}
	if req.Role != nil {
		role := policy.Role(*req.Role)
		upd.Role = &role
	}
	return upd
}

// NewUserListHandler returns an HTTP handler listing all users.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} handlers.UserResponse
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 403 {object} handlers.ErrorResponse "Admin privilege required"
// @Security BearerAuth
// @Router /users [get]
func NewUserListHandler(svc UserProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context(), middlewares.ActorFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := make([]UserResponse, 0, len(users))
		for _, u := range users {
			resp = append(resp, toUserResponse(u))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// NewUserCreateHandler returns an HTTP handler creating a user.
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param userRequest body handlers.UserRequest true "User to create"
// @Success 201 {object} handlers.UserResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid username, email or role"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 403 {object} handlers.ErrorResponse "Admin privilege required"
// @Failure 409 {object} handlers.ErrorResponse "Username or email already taken"
// @Security BearerAuth
// @Router /users [post]
func NewUserCreateHandler(svc UserProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		created, err := svc.Create(r.Context(), middlewares.ActorFromContext(r.Context()), models.UserWrite{
			Username:  req.Username,
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Bio:       req.Bio,
			Role:      policy.Role(req.Role),
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toUserResponse(*created))
	}
}

// NewUserGetHandler returns an HTTP handler retrieving a user by username.
// @Summary Retrieve a user
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} handlers.UserResponse
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 403 {object} handlers.ErrorResponse "Admin privilege required"
// @Failure 404 {object} handlers.ErrorResponse "No such user"
// @Security BearerAuth
// @Router /users/{username} [get]
func NewUserGetHandler(svc UserProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		user, err := svc.Get(r.Context(), middlewares.ActorFromContext(r.Context()), username)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(*user))
	}
}

// NewUserUpdateHandler returns an HTTP handler updating a user by username.
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param userUpdateRequest body handlers.UserUpdateRequest true "Fields to change"
// @Success 200 {object} handlers.UserResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid email or role"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 403 {object} handlers.ErrorResponse "Admin privilege required"
// @Failure 404 {object} handlers.ErrorResponse "No such user"
// @Security BearerAuth
// @Router /users/{username} [patch]
func NewUserUpdateHandler(svc UserProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		var req UserUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		partial := r.Method == http.MethodPatch

		updated, err := svc.Update(r.Context(), middlewares.ActorFromContext(r.Context()), username, toUserUpdate(req), partial)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(*updated))
	}
}

// NewUserDeleteHandler returns an HTTP handler deleting a user by username.
// @Summary Delete a user
// @Tags users
// @Param username path string true "Username"
// @Success 204 "Deleted"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 403 {object} handlers.ErrorResponse "Admin privilege required"
// @Failure 404 {object} handlers.ErrorResponse "No such user"
// @Security BearerAuth
// @Router /users/{username} [delete]
func NewUserDeleteHandler(svc UserProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		if err := svc.Delete(r.Context(), middlewares.ActorFromContext(r.Context()), username); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewUserMeGetHandler returns an HTTP handler retrieving the caller's profile.
// @Summary Retrieve own profile
// @Tags users
// @Produce json
// @Success 200 {object} handlers.UserResponse
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /users/me [get]
func NewUserMeGetHandler(svc UserProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.GetMe(r.Context(), middlewares.ActorFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(*user))
	}
}

// NewUserMeUpdateHandler returns an HTTP handler updating the caller's
// profile. A role supplied by a non-admin caller is ignored.
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Param userUpdateRequest body handlers.UserUpdateRequest true "Fields to change"
// @Success 200 {object} handlers.UserResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid email"
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /users/me [patch]
func NewUserMeUpdateHandler(svc UserProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UserUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		updated, err := svc.UpdateMe(r.Context(), middlewares.ActorFromContext(r.Context()), toUserUpdate(req))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(*updated))
	}
}
