package services

import "errors"

// Error variables surfaced to handlers. Each maps to one HTTP status.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidEmail       = errors.New("email is missing or malformed")
	ErrScoreTooLow        = errors.New("min value is 1")
	ErrScoreTooHigh       = errors.New("max value is 10")
	ErrUnauthorized       = errors.New("authentication required")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("name or slug already exists")
	ErrReviewExists       = errors.New("review already exists")
	ErrProtected          = errors.New("resource is referenced and cannot be deleted")
	ErrUsernameReserved   = errors.New("this username is reserved")
	ErrInvalidCredentials = errors.New("email or confirmation code is incorrect")
	ErrCodeInactive       = errors.New("confirmation code is not active, request a new one")
)
