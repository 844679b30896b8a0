package auth

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/trictux/trictux-api/internal/domain"
	"github.com/trictux/trictux-api/internal/domain/entity"
	"github.com/trictux/trictux-api/internal/domain/repository"
	"github.com/trictux/trictux-api/pkg/logger"
)

// MinPasswordLength longitud mínima de contraseña.
const MinPasswordLength = 8

// NewAccount datos de una cuenta a crear.
type NewAccount struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// ProfileFunc crea el perfil de la cuenta recién insertada usando st, que es el
// store de la transacción cuando la hay.
type ProfileFunc func(ctx context.Context, st *repository.Store, user *entity.User) error

// AccountService alta de cuentas: User + perfil de rol.
type AccountService struct {
	store *repository.Store
	tx    repository.TxRunner
	log   *logger.Logger
}

// NewAccountService construye el servicio. tx puede ser nil (store en memoria):
// entonces un fallo al crear el perfil se compensa borrando la cuenta.
func NewAccountService(store *repository.Store, tx repository.TxRunner, log *logger.Logger) *AccountService {
	if log == nil {
		log = logger.Nop()
	}
	return &AccountService{store: store, tx: tx, log: log}
}

// NormalizeEmail forma canónica de un email de cuenta.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateCredentials valida formato de email y longitud de contraseña.
func ValidateCredentials(email, password string) error {
	if email == "" {
		return domain.Invalid("email requerido")
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return domain.Invalid("email inválido: %s", email)
	}
	if len(password) < MinPasswordLength {
		return domain.Invalid("la contraseña debe tener al menos %d caracteres", MinPasswordLength)
	}
	return nil
}

// CreateAccount valida, rechaza emails repetidos, crea la cuenta y su perfil.
// Sin reintentos: cualquier error se devuelve tal cual.
func (s *AccountService) CreateAccount(ctx context.Context, in NewAccount, profile ProfileFunc) (*entity.User, error) {
	email := NormalizeEmail(in.Email)
	if err := ValidateCredentials(email, in.Password); err != nil {
		return nil, err
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.Invalid("rol inválido: %s", in.Role)
	}
	existing, err := s.store.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         in.Role,
		Status:       entity.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if s.tx != nil {
		err := s.tx.Run(ctx, func(tx *repository.Store) error {
			if err := tx.Users.Create(ctx, user); err != nil {
				return err
			}
			return profile(ctx, tx, user)
		})
		if err != nil {
			return nil, err
		}
		return user.Redacted(), nil
	}

	if err := s.store.Users.Create(ctx, user); err != nil {
		return nil, err
	}
	if err := profile(ctx, s.store, user); err != nil {
		if derr := s.store.Users.Delete(ctx, user.ID); derr != nil {
			s.log.Error().Err(derr).Str("user_id", user.ID).Str("email", email).
				Msg("no se pudo revertir la cuenta tras fallar el perfil")
		}
		return nil, err
	}
	return user.Redacted(), nil
}
