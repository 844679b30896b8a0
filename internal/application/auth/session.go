package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/trictux/trictux-api/internal/domain"
	"github.com/trictux/trictux-api/internal/domain/entity"
	"github.com/trictux/trictux-api/internal/domain/repository"
	"github.com/trictux/trictux-api/pkg/jwt"
)

// Session sesión verificada: la cuenta (sin hash) y los claims del token.
type Session struct {
	User   *entity.User
	Claims *jwt.Claims
}

// SessionVerifier convierte un token opaco en una sesión.
type SessionVerifier struct {
	users  repository.UserRepository
	secret string
}

// NewSessionVerifier construye el verificador con el secreto de firma.
func NewSessionVerifier(users repository.UserRepository, secret string) *SessionVerifier {
	return &SessionVerifier{users: users, secret: secret}
}

// Verify valida el token y carga la cuenta: primero por id, después por email.
func (v *SessionVerifier) Verify(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	claims, err := jwt.Parse(v.secret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCredential, err)
	}

	var user *entity.User
	if claims.UserID != "" {
		if user, err = v.users.GetByID(ctx, claims.UserID); err != nil {
			return nil, err
		}
	}
	if user == nil && claims.Email != "" {
		if user, err = v.users.GetByEmail(ctx, claims.Email); err != nil {
			return nil, err
		}
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.IsActive() {
		return nil, fmt.Errorf("%w: cuenta inactiva", domain.ErrForbidden)
	}
	return &Session{User: user.Redacted(), Claims: claims}, nil
}

// IsAuthError informa si err corresponde a un fallo de autenticación (401).
func IsAuthError(err error) bool {
	return errors.Is(err, domain.ErrUnauthenticated) ||
		errors.Is(err, domain.ErrInvalidCredential) ||
		errors.Is(err, domain.ErrUserNotFound)
}
