package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trictux/trictux-api/internal/application/auth"
	"github.com/trictux/trictux-api/internal/application/dto"
	"github.com/trictux/trictux-api/internal/domain"
	"github.com/trictux/trictux-api/internal/domain/entity"
	"github.com/trictux/trictux-api/internal/domain/repository"
	"github.com/trictux/trictux-api/internal/infrastructure/memory"
	"github.com/trictux/trictux-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

type fixture struct {
	store    *repository.Store
	accounts *auth.AccountService
	uc       *auth.AuthUseCase
	verifier *auth.SessionVerifier
	resolver *auth.RoleResolver
}

func newFixture(t *testing.T, tx repository.TxRunner) *fixture {
	t.Helper()
	store := memory.NewStore()
	accounts := auth.NewAccountService(store, tx, nil)
	resolver := auth.NewRoleResolver(store)
	return &fixture{
		store:    store,
		accounts: accounts,
		resolver: resolver,
		verifier: auth.NewSessionVerifier(store.Users, testSecret),
		uc: auth.NewAuthUseCase(store, accounts, resolver, auth.JWTConfig{
			Secret: testSecret, ExpMinutes: 60, Issuer: "trictux-test",
		}),
	}
}

func TestSignup_CreaCuentaYPerfilCompany(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	res, err := f.uc.Signup(ctx, dto.SignupRequest{Email: " Acme@Example.COM ", Password: "supersecret", Name: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "acme@example.com", res.User.Email)
	assert.Equal(t, entity.RoleCompany, res.User.Role)
	assert.NotEmpty(t, res.Token)

	company, err := f.store.Companies.GetByEmail(ctx, "acme@example.com")
	require.NoError(t, err)
	require.NotNil(t, company)
	assert.Equal(t, "Acme", company.Name)
	assert.Equal(t, res.User.ID, company.CreatedBy)

	_, err = f.uc.Signup(ctx, dto.SignupRequest{Email: "acme@example.com", Password: "supersecret", Name: "Otra"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSignup_Validaciones(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	cases := map[string]dto.SignupRequest{
		"email inválido":  {Email: "no-es-email", Password: "supersecret", Name: "X"},
		"password corta":  {Email: "x@example.com", Password: "corta", Name: "X"},
		"nombre faltante": {Email: "x@example.com", Password: "supersecret"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.uc.Signup(ctx, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	users, err := f.store.Users.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestCreateAccount_FalloDePerfilRevierteLaCuenta(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	boom := errors.New("perfil no disponible")

	_, err := f.accounts.CreateAccount(ctx, auth.NewAccount{
		Email: "emp@example.com", Password: "supersecret", Role: entity.RoleEmployee,
	}, func(context.Context, *repository.Store, *entity.User) error { return boom })
	require.ErrorIs(t, err, boom)

	u, err := f.store.Users.GetByEmail(ctx, "emp@example.com")
	require.NoError(t, err)
	assert.Nil(t, u, "no debe quedar una cuenta sin perfil")
}

type failingTx struct{ calls int }

func (f *failingTx) Run(context.Context, func(*repository.Store) error) error {
	f.calls++
	return errors.New("tx abortada")
}

func TestCreateAccount_UsaTransaccionSiExiste(t *testing.T) {
	ctx := context.Background()
	tx := &failingTx{}
	f := newFixture(t, tx)

	_, err := f.uc.Signup(ctx, dto.SignupRequest{Email: "tx@example.com", Password: "supersecret", Name: "Tx"})
	require.Error(t, err)
	assert.Equal(t, 1, tx.calls)

	u, err := f.store.Users.GetByEmail(ctx, "tx@example.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	_, err := f.uc.Signup(ctx, dto.SignupRequest{Email: "acme@example.com", Password: "supersecret", Name: "Acme"})
	require.NoError(t, err)

	t.Run("credenciales correctas", func(t *testing.T) {
		res, err := f.uc.Login(ctx, dto.LoginRequest{Email: "ACME@example.com", Password: "supersecret"})
		require.NoError(t, err)
		claims, err := jwt.Parse(testSecret, res.Token)
		require.NoError(t, err)
		assert.Equal(t, res.User.ID, claims.UserID)
		assert.Equal(t, entity.RoleCompany, claims.Role)
	})
	t.Run("password incorrecta", func(t *testing.T) {
		_, err := f.uc.Login(ctx, dto.LoginRequest{Email: "acme@example.com", Password: "otra-cosa"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredential)
	})
	t.Run("email desconocido", func(t *testing.T) {
		_, err := f.uc.Login(ctx, dto.LoginRequest{Email: "nadie@example.com", Password: "supersecret"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredential)
	})
	t.Run("cuenta inactiva", func(t *testing.T) {
		u, err := f.store.Users.GetByEmail(ctx, "acme@example.com")
		require.NoError(t, err)
		u.Status = entity.StatusInactive
		require.NoError(t, f.store.Users.Update(ctx, u))

		_, err = f.uc.Login(ctx, dto.LoginRequest{Email: "acme@example.com", Password: "supersecret"})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestVerify(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	res, err := f.uc.Signup(ctx, dto.SignupRequest{Email: "acme@example.com", Password: "supersecret", Name: "Acme"})
	require.NoError(t, err)

	t.Run("token vacío", func(t *testing.T) {
		_, err := f.verifier.Verify(ctx, "")
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})
	t.Run("token con otra firma", func(t *testing.T) {
		tok, err := jwt.Generate("otro-secreto", res.User.ID, res.User.Email, entity.RoleCompany, "x", 60)
		require.NoError(t, err)
		_, err = f.verifier.Verify(ctx, tok)
		assert.ErrorIs(t, err, domain.ErrInvalidCredential)
	})
	t.Run("token expirado", func(t *testing.T) {
		tok, err := jwt.Generate(testSecret, res.User.ID, res.User.Email, entity.RoleCompany, "x", -1)
		require.NoError(t, err)
		_, err = f.verifier.Verify(ctx, tok)
		assert.ErrorIs(t, err, domain.ErrInvalidCredential)
	})
	t.Run("sesión válida sin hash", func(t *testing.T) {
		s, err := f.verifier.Verify(ctx, res.Token)
		require.NoError(t, err)
		assert.Equal(t, res.User.ID, s.User.ID)
		assert.Empty(t, s.User.PasswordHash)
	})
	t.Run("id desconocido cae al email", func(t *testing.T) {
		tok, err := jwt.Generate(testSecret, "id-antiguo", res.User.Email, entity.RoleCompany, "x", 60)
		require.NoError(t, err)
		s, err := f.verifier.Verify(ctx, tok)
		require.NoError(t, err)
		assert.Equal(t, res.User.ID, s.User.ID)
	})
	t.Run("cuenta inexistente", func(t *testing.T) {
		tok, err := jwt.Generate(testSecret, "no-existe", "nadie@example.com", entity.RoleCompany, "x", 60)
		require.NoError(t, err)
		_, err = f.verifier.Verify(ctx, tok)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.True(t, auth.IsAuthError(err))
	})
}

func TestResolve_PerfilAusenteNoEsError(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	now := time.Now()
	u := &entity.User{ID: "u1", Email: "huerfano@example.com", Role: entity.RoleEmployee, Status: entity.StatusActive,
		CreatedAt: now, UpdatedAt: now}
	require.NoError(t, f.store.Users.Create(ctx, u))

	p, err := f.resolver.Resolve(ctx, u)
	require.NoError(t, err)
	assert.False(t, p.Exists())
	assert.Equal(t, "huerfano@example.com", p.DisplayName(u))
	assert.Empty(t, p.Actor(u).CompanyRefs)

	me, err := f.uc.Me(ctx, u)
	require.NoError(t, err)
	assert.Nil(t, me.Profile)
	assert.Equal(t, "huerfano@example.com", me.DisplayName)
}

func TestEnsureOwner_Idempotente(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	u, created, err := f.uc.EnsureOwner(ctx, "root@example.com", "supersecret", "Root")
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := f.uc.EnsureOwner(ctx, "root@example.com", "otra-clave", "Root")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, u.ID, again.ID)

	p, err := f.resolver.Resolve(ctx, again)
	require.NoError(t, err)
	require.NotNil(t, p.Owner)
	assert.Equal(t, "Root", p.DisplayName(again))
}
