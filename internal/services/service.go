package services

import (
	"context"
	"regexp"

	"github.com/google/uuid"

	"github.com/sbilibin2017/review-catalog/internal/models"
	"github.com/sbilibin2017/review-catalog/internal/policy"
)

// EventPublisher defines the best-effort domain-event sink. Implementations
// must never fail the calling request.
type EventPublisher interface {
	Publish(ctx context.Context, event string, payload any)
}

var slugPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// decide runs the access-control policy and maps the decision onto the
// service error taxonomy.
func decide(actor *models.UserDB, action policy.Action, resource policy.Resource, owner *uuid.UUID) error {
	switch policy.Authorize(actor.Actor(), action, resource, owner) {
	case policy.Unauthorized:
		return ErrUnauthorized
	case policy.Forbidden:
		return ErrForbidden
	}
	return nil
}
