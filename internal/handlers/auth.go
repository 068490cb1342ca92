package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/review-catalog/internal/services"
)

// CodeRequester defines the interface that the code-issuance service must
// implement.
type CodeRequester interface {
	RequestCode(ctx context.Context, email string) error
}

// TokenExchanger defines the interface that the token-exchange service must
// implement.
type TokenExchanger interface {
	ExchangeCode(ctx context.Context, email, code string) (string, error)
}

// AuthEmailRequest represents the JSON body for requesting a confirmation code
// swagger:model AuthEmailRequest
type AuthEmailRequest struct {
	// Email address the code is sent to
	// required: true
	Email string `json:"email"`
}

// AuthEmailResponse represents the generic acknowledgment
// swagger:model AuthEmailResponse
type AuthEmailResponse struct {
	// Acknowledgment message
	Message string `json:"message"`
}

// AuthTokenRequest represents the JSON body for exchanging a code
// swagger:model AuthTokenRequest
type AuthTokenRequest struct {
	// Email address the code was issued for
	// required: true
	Email string `json:"email"`

	// Confirmation code received by email
	// required: true
	ConfirmationCode string `json:"confirmation_code"`
}

// AuthTokenResponse represents a successful token exchange
// swagger:model AuthTokenResponse
type AuthTokenResponse struct {
	// Session token
	Token string `json:"token"`
}

// NewAuthEmailHandler returns an HTTP handler that issues confirmation codes.
// @Summary Request a confirmation code
// @Description Issues a one-time confirmation code for the email and delivers it out-of-band. The response is identical for new and existing users.
// @Tags auth
// @Accept json
// @Produce json
// @Param authEmailRequest body handlers.AuthEmailRequest true "Email to send the code to"
// @Success 200 {object} handlers.AuthEmailResponse "Code issued"
// @Failure 400 {object} handlers.ErrorResponse "Email missing or malformed"
// @Router /auth/email [post]
func NewAuthEmailHandler(svc CodeRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AuthEmailRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: services.ErrInvalidEmail.Error()})
			return
		}

		if err := svc.RequestCode(r.Context(), req.Email); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, AuthEmailResponse{
			Message: "A confirmation code has been sent to your email",
		})
	}
}

// NewAuthTokenHandler returns an HTTP handler that exchanges a code for a token.
// @Summary Exchange a confirmation code for a session token
// @Description Trades a valid (email, confirmation_code) pair for a bearer token and deactivates the code.
// @Tags auth
// @Accept json
// @Produce json
// @Param authTokenRequest body handlers.AuthTokenRequest true "Email and confirmation code"
// @Success 200 {object} handlers.AuthTokenResponse "Token issued"
// @Failure 400 {object} handlers.ErrorResponse "Code already consumed"
// @Failure 401 {object} handlers.ErrorResponse "Email or code incorrect"
// @Router /auth/token [post]
func NewAuthTokenHandler(svc TokenExchanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AuthTokenRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		token, err := svc.ExchangeCode(r.Context(), req.Email, req.ConfirmationCode)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, AuthTokenResponse{Token: token})
	}
}
