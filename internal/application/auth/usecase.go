package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/trictux/trictux-api/internal/application/dto"
	"github.com/trictux/trictux-api/internal/domain"
	"github.com/trictux/trictux-api/internal/domain/entity"
	"github.com/trictux/trictux-api/internal/domain/repository"
	"github.com/trictux/trictux-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y sesión actual.
type AuthUseCase struct {
	store    *repository.Store
	accounts *AccountService
	resolver *RoleResolver
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(store *repository.Store, accounts *AccountService, resolver *RoleResolver, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{store: store, accounts: accounts, resolver: resolver, jwtCfg: jwtCfg}
}

// Signup registro público: crea una cuenta company con su perfil y abre sesión.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.LoginResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("el nombre de la empresa es requerido")
	}
	user, err := uc.accounts.CreateAccount(ctx, NewAccount{
		Email: in.Email, Password: in.Password, Name: name, Role: entity.RoleCompany,
	}, func(ctx context.Context, st *repository.Store, u *entity.User) error {
		return st.Companies.Create(ctx, &entity.CompanyProfile{
			ID:          uuid.New().String(),
			Email:       u.Email,
			Name:        name,
			Industry:    in.Industry,
			Phone:       in.Phone,
			Address:     in.Address,
			Website:     in.Website,
			Description: in.Description,
			Status:      entity.StatusActive,
			CreatedBy:   u.ID,
			CreatedAt:   u.CreatedAt,
			UpdatedAt:   u.CreatedAt,
		})
	})
	if err != nil {
		return nil, err
	}
	return uc.issue(user)
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Email desconocido y contraseña incorrecta dan el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.Invalid("email y contraseña son requeridos")
	}
	user, err := uc.store.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredential
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredential
	}
	if !user.IsActive() {
		return nil, fmt.Errorf("%w: cuenta inactiva", domain.ErrForbidden)
	}
	return uc.issue(user.Redacted())
}

// Me sesión actual con el perfil de rol resuelto.
func (uc *AuthUseCase) Me(ctx context.Context, user *entity.User) (*dto.MeResponse, error) {
	profile, err := uc.resolver.Resolve(ctx, user)
	if err != nil {
		return nil, err
	}
	return &dto.MeResponse{
		User:        dto.UserFromEntity(user),
		DisplayName: profile.DisplayName(user),
		Profile:     profilePayload(profile),
	}, nil
}

// EnsureOwner crea la cuenta owner si no existe. Idempotente: si el email ya
// está registrado devuelve la cuenta existente sin tocarla.
func (uc *AuthUseCase) EnsureOwner(ctx context.Context, email, password, name string) (*entity.User, bool, error) {
	existing, err := uc.store.Users.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		if existing.Role != entity.RoleOwner {
			return nil, false, fmt.Errorf("%w: %s ya existe con rol %s", domain.ErrConflict, existing.Email, existing.Role)
		}
		return existing.Redacted(), false, nil
	}
	user, err := uc.accounts.CreateAccount(ctx, NewAccount{
		Email: email, Password: password, Name: name, Role: entity.RoleOwner,
	}, func(ctx context.Context, st *repository.Store, u *entity.User) error {
		return st.Owners.Create(ctx, &entity.OwnerProfile{
			ID:        uuid.New().String(),
			Email:     u.Email,
			Name:      u.Name,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.CreatedAt,
		})
	})
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func (uc *AuthUseCase) issue(user *entity.User) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: dto.UserFromEntity(user)}, nil
}

// SessionTTL duración de la sesión, usada también para la cookie.
func (uc *AuthUseCase) SessionTTL() time.Duration {
	return time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute
}

func profilePayload(p *Profile) any {
	switch {
	case p.Owner != nil:
		return dto.OwnerFromEntity(p.Owner)
	case p.Company != nil:
		return dto.CompanyFromEntity(p.Company)
	case p.Employee != nil:
		return dto.EmployeeFromEntity(p.Employee)
	}
	return nil
}
