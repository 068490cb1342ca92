package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/review-catalog/internal/logger"
	"github.com/sbilibin2017/review-catalog/internal/models"
)

// AuthUserReader defines the read operations the auth flow needs.
type AuthUserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// AuthUserWriter defines the write operations the auth flow needs.
type AuthUserWriter interface {
	SaveConfirmationCode(ctx context.Context, email, codeHash string) error
	ConsumeConfirmationCode(ctx context.Context, email string) (bool, error)
}

// TokenIssuer defines an interface for issuing session tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// CodeSender delivers a confirmation code out-of-band.
type CodeSender interface {
	Send(to, subject, body string) error
}

// AuthService implements the email-code authentication flow: a one-time
// code is issued per email and later exchanged for a session token.
type AuthService struct {
	reader   AuthUserReader
	writer   AuthUserWriter
	jwt      TokenIssuer
	sender   CodeSender
	validate *validator.Validate
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader AuthUserReader, writer AuthUserWriter, jwt TokenIssuer, sender CodeSender) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		jwt:      jwt,
		sender:   sender,
		validate: validator.New(),
	}
}

// RequestCode issues a fresh confirmation code for the email, creating the
// user on first contact. The acknowledgment is identical for new and
// existing users. Delivery is fire-and-forget: a failed send is logged and
// the issued code stays valid.
func (svc *AuthService) RequestCode(ctx context.Context, email string) error {
	if err := svc.validate.Var(email, "required,email"); err != nil {
		return ErrInvalidEmail
	}

	code := uuid.NewString()
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash confirmation code", "err", err)
		return err
	}

	if err := svc.writer.SaveConfirmationCode(ctx, email, string(hash)); err != nil {
		logger.Log.Errorw("failed to save confirmation code", "err", err)
		return err
	}

	if err := svc.sender.Send(email, "Registration",
		fmt.Sprintf("Your confirmation_code: %s", code)); err != nil {
		logger.Log.Errorw("failed to deliver confirmation code", "email", email, "err", err)
	}

	return nil
}

// ExchangeCode trades a valid (email, code) pair for a session token and
// deactivates the code. An unknown email and a wrong code are deliberately
// indistinguishable; a matching but already consumed code is reported
// separately so the caller knows to request a new one.
func (svc *AuthService) ExchangeCode(ctx context.Context, email, code string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil || user.ConfirmationCode == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.ConfirmationCode), []byte(code)); err != nil {
		return "", ErrInvalidCredentials
	}

	if !user.ConfirmationCodeActive {
		return "", ErrCodeInactive
	}

	// Conditional update at the storage boundary; a concurrent exchange
	// that won the race leaves zero rows for this one.
	consumed, err := svc.writer.ConsumeConfirmationCode(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to consume confirmation code", "err", err)
		return "", err
	}
	if !consumed {
		return "", ErrCodeInactive
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
