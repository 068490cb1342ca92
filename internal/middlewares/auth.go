package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/review-catalog/internal/jwt"
	"github.com/sbilibin2017/review-catalog/internal/logger"
	"github.com/sbilibin2017/review-catalog/internal/models"
)

// Tokener defines the minimal token interface needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ActorReader loads the authenticated user's record.
type ActorReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

// contextKey is an unexported type for keys in context.
type contextKey struct{}

var actorKey = contextKey{}

// SetActor stores the authenticated user in the context.
func SetActor(ctx context.Context, actor *models.UserDB) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromContext retrieves the authenticated user from the context.
// Returns nil for anonymous requests.
func ActorFromContext(ctx context.Context) *models.UserDB {
	actor, _ := ctx.Value(actorKey).(*models.UserDB)
	return actor
}

// AuthMiddleware returns a middleware that validates the bearer token and
// loads the actor into the request context. Requests without a valid token
// identifying an existing user are rejected with 401.
func AuthMiddleware(tokener Tokener, reader ActorReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			actor, err := reader.GetByID(ctx, claims.UserID)
			if err != nil {
				logger.Log.Errorw("failed to load actor", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if actor == nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetActor(ctx, actor)))
		})
	}
}
