package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trictux/trictux-api/internal/application/auth"
	"github.com/trictux/trictux-api/internal/application/dto"
	"github.com/trictux/trictux-api/internal/application/usecase"
	"github.com/trictux/trictux-api/internal/domain/access"
	"github.com/trictux/trictux-api/internal/domain/repository"
	"github.com/trictux/trictux-api/internal/infrastructure/memory"
)

const password = "secret-password"

// env casos de uso sobre el store en memoria con un owner ya creado.
type env struct {
	t         *testing.T
	ctx       context.Context
	store     *repository.Store
	resolver  *auth.RoleResolver
	users     *usecase.UserUseCase
	companies *usecase.CompanyUseCase
	employees *usecase.EmployeeUseCase
	clients   *usecase.ClientUseCase
	projects  *usecase.ProjectUseCase
	tasks     *usecase.TaskUseCase
	owner     access.Actor
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := memory.NewStore()
	accounts := auth.NewAccountService(store, nil, nil)
	resolver := auth.NewRoleResolver(store)
	authUC := auth.NewAuthUseCase(store, accounts, resolver, auth.JWTConfig{Secret: "s", ExpMinutes: 5})
	_, _, err := authUC.EnsureOwner(context.Background(), "owner@trictux.test", password, "Owner")
	require.NoError(t, err)

	e := &env{
		t:         t,
		ctx:       context.Background(),
		store:     store,
		resolver:  resolver,
		users:     usecase.NewUserUseCase(store),
		companies: usecase.NewCompanyUseCase(store, accounts),
		employees: usecase.NewEmployeeUseCase(store, accounts),
		clients:   usecase.NewClientUseCase(store),
		projects:  usecase.NewProjectUseCase(store, nil),
		tasks:     usecase.NewTaskUseCase(store),
	}
	e.owner = e.actor("owner@trictux.test")
	return e
}

// actor resuelve la identidad de acceso de una cuenta existente.
func (e *env) actor(email string) access.Actor {
	e.t.Helper()
	u, err := e.store.Users.GetByEmail(e.ctx, email)
	require.NoError(e.t, err)
	require.NotNil(e.t, u, email)
	p, err := e.resolver.Resolve(e.ctx, u)
	require.NoError(e.t, err)
	return p.Actor(u)
}

func (e *env) company(email, name string) (*dto.CompanyResponse, access.Actor) {
	e.t.Helper()
	c, err := e.companies.Create(e.ctx, e.owner, dto.CreateCompanyRequest{Email: email, Password: password, Name: name})
	require.NoError(e.t, err)
	return c, e.actor(email)
}

func (e *env) employee(company access.Actor, email string) (*dto.EmployeeResponse, access.Actor) {
	e.t.Helper()
	emp, err := e.employees.Create(e.ctx, company, dto.CreateEmployeeRequest{Email: email, Password: password, Name: email, Position: "Dev"})
	require.NoError(e.t, err)
	return emp, e.actor(email)
}

func (e *env) client(actor access.Actor, name string) *dto.ClientResponse {
	e.t.Helper()
	c, err := e.clients.Create(e.ctx, actor, dto.CreateClientRequest{Name: name})
	require.NoError(e.t, err)
	return c
}

func (e *env) project(actor access.Actor, clientID, name string, team ...string) *dto.ProjectResponse {
	e.t.Helper()
	p, err := e.projects.Create(e.ctx, actor, dto.CreateProjectRequest{Name: name, ClientID: clientID, AssignedEmployees: team})
	require.NoError(e.t, err)
	return p
}
