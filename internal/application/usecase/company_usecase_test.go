package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trictux/trictux-api/internal/application/dto"
	"github.com/trictux/trictux-api/internal/domain"
	"github.com/trictux/trictux-api/internal/domain/entity"
)

func TestCompany_SoloOwnerCrea(t *testing.T) {
	e := newEnv(t)
	_, acme := e.company("acme@trictux.test", "Acme")

	_, err := e.companies.Create(e.ctx, acme, dto.CreateCompanyRequest{Email: "x@x.test", Password: password, Name: "X"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = e.companies.Create(e.ctx, e.owner, dto.CreateCompanyRequest{Email: "acme@trictux.test", Password: password, Name: "Dup"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	_, err = e.companies.Create(e.ctx, e.owner, dto.CreateCompanyRequest{Email: "corto@x.test", Password: "123", Name: "Corto"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompany_ResolucionPorEmailYLegacyID(t *testing.T) {
	e := newEnv(t)
	created, err := e.companies.Create(e.ctx, e.owner, dto.CreateCompanyRequest{
		Email: "acme@trictux.test", Password: password, Name: "Acme", LegacyID: "ACME",
	})
	require.NoError(t, err)

	for _, ref := range []string{created.ID, "ACME", "acme@trictux.test"} {
		got, err := e.companies.Get(e.ctx, e.owner, ref)
		require.NoError(t, err, ref)
		assert.Equal(t, created.ID, got.ID)
	}
}

func TestCompany_Conteos(t *testing.T) {
	e := newEnv(t)
	acme, acmeActor := e.company("acme@trictux.test", "Acme")
	e.employee(acmeActor, "eva@acme.test")
	c := e.client(acmeActor, "A")
	p := e.project(acmeActor, c.ID, "P1")
	e.project(acmeActor, c.ID, "P2")
	_, err := e.projects.Update(e.ctx, acmeActor, p.ID, map[string]any{"status": entity.ProjectCompleted})
	require.NoError(t, err)

	got, err := e.companies.Get(e.ctx, acmeActor, acme.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalClients)
	assert.Equal(t, 2, got.TotalProjects)
	assert.Equal(t, 1, got.ActiveProjects)
	assert.Equal(t, 1, got.TotalEmployees)
}

func TestCompany_VisibilidadPorRol(t *testing.T) {
	e := newEnv(t)
	_, acme := e.company("acme@trictux.test", "Acme")
	e.company("globex@trictux.test", "Globex")
	_, eva := e.employee(acme, "eva@acme.test")

	all, err := e.companies.List(e.ctx, e.owner)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := e.companies.List(e.ctx, acme)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Acme", mine[0].Name)

	employer, err := e.companies.List(e.ctx, eva)
	require.NoError(t, err)
	require.Len(t, employer, 1)
	assert.Equal(t, "Acme", employer[0].Name)
}

func TestCompany_CompanyNoCambiaSuEstado(t *testing.T) {
	e := newEnv(t)
	acme, acmeActor := e.company("acme@trictux.test", "Acme")

	got, err := e.companies.Update(e.ctx, acmeActor, acme.ID, map[string]any{"status": "inactive", "website": "https://acme.test"})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, got.Status)
	assert.Equal(t, "https://acme.test", got.Website)
	assert.Equal(t, "acme@trictux.test", got.Email)
}

func TestCompany_DesactivarSincronizaCuenta(t *testing.T) {
	e := newEnv(t)
	acme, acmeActor := e.company("acme@trictux.test", "Acme")

	_, err := e.companies.Deactivate(e.ctx, acmeActor, acme.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	got, err := e.companies.Deactivate(e.ctx, e.owner, acme.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInactive, got.Status)

	u, err := e.store.Users.GetByEmail(e.ctx, "acme@trictux.test")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInactive, u.Status)

	// Reactivar por update del owner también reactiva la cuenta.
	_, err = e.companies.Update(e.ctx, e.owner, acme.ID, map[string]any{"status": entity.StatusActive})
	require.NoError(t, err)
	u, err = e.store.Users.GetByEmail(e.ctx, "acme@trictux.test")
	require.NoError(t, err)
	assert.True(t, u.IsActive())
}
