package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trictux/trictux-api/internal/application/dto"
	"github.com/trictux/trictux-api/internal/domain"
	"github.com/trictux/trictux-api/internal/domain/access"
	"github.com/trictux/trictux-api/internal/domain/entity"
)

func TestProject_CreateValoresPorDefecto(t *testing.T) {
	e := newEnv(t)
	acme, acmeActor := e.company("acme@trictux.test", "Acme")
	e.employee(acmeActor, "eva@acme.test")
	c := e.client(acmeActor, "Cliente")

	p := e.project(acmeActor, c.ID, "Portal", "EVA@acme.test")
	assert.Equal(t, entity.ProjectPlanning, p.Status)
	assert.Equal(t, 0, p.Progress)
	assert.Equal(t, acme.ID, p.CompanyID)
	assert.Equal(t, "Cliente", p.ClientName)
	require.Contains(t, p.AssignedEmployees, "eva@acme.test")
	assert.False(t, p.AssignedEmployees["eva@acme.test"].AssignedAt.IsZero())
}

func TestProject_RelacionesDeOtraEmpresa(t *testing.T) {
	e := newEnv(t)
	_, acme := e.company("acme@trictux.test", "Acme")
	_, globex := e.company("globex@trictux.test", "Globex")
	e.employee(globex, "gus@globex.test")
	acmeClient := e.client(acme, "A")
	globexClient := e.client(globex, "G")

	_, err := e.projects.Create(e.ctx, acme, dto.CreateProjectRequest{Name: "X", ClientID: globexClient.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cliente de otra empresa")

	_, err = e.projects.Create(e.ctx, acme, dto.CreateProjectRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "clientId requerido")

	_, err = e.projects.Create(e.ctx, acme, dto.CreateProjectRequest{
		Name: "X", ClientID: acmeClient.ID, AssignedEmployees: []string{"gus@globex.test"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "colaborador de otra empresa")
}

func TestProject_ValidacionesDeCampos(t *testing.T) {
	e := newEnv(t)
	_, acme := e.company("acme@trictux.test", "Acme")
	c := e.client(acme, "A")

	_, err := e.projects.Create(e.ctx, acme, dto.CreateProjectRequest{Name: "X", ClientID: c.ID, Budget: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)
	_, err = e.projects.Create(e.ctx, acme, dto.CreateProjectRequest{Name: "X", ClientID: c.ID, StartDate: &start, EndDate: &end})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	p := e.project(acme, c.ID, "Ok")
	_, err = e.projects.Update(e.ctx, acme, p.ID, map[string]any{"progress": 101, "name": "Renombrado"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = e.projects.Update(e.ctx, acme, p.ID, map[string]any{"progress": "mucho"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := e.projects.Get(e.ctx, acme, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ok", got.Name, "una actualización inválida no aplica ningún campo")
}

func TestProject_EmpleadoAsignado(t *testing.T) {
	e := newEnv(t)
	_, acme := e.company("acme@trictux.test", "Acme")
	_, eva := e.employee(acme, "eva@acme.test")
	_, leo := e.employee(acme, "leo@acme.test")
	c := e.client(acme, "A")
	p := e.project(acme, c.ID, "Portal", "eva@acme.test")

	_, err := e.projects.Get(e.ctx, leo, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "no asignado: el proyecto no existe para él")

	got, err := e.projects.Update(e.ctx, eva, p.ID, map[string]any{"progress": 40, "name": "Hackeado", "budget": 1})
	require.NoError(t, err)
	assert.Equal(t, 40, got.Progress)
	assert.Equal(t, "Portal", got.Name)
	assert.True(t, got.Budget.IsZero())

	_, err = e.projects.Update(e.ctx, leo, p.ID, map[string]any{"progress": 10})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = e.projects.Create(e.ctx, eva, dto.CreateProjectRequest{Name: "X", ClientID: c.ID})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestProject_EquipoConservaAsignacionesPrevias(t *testing.T) {
	e := newEnv(t)
	_, acme := e.company("acme@trictux.test", "Acme")
	e.employee(acme, "eva@acme.test")
	e.employee(acme, "leo@acme.test")
	c := e.client(acme, "A")
	p := e.project(acme, c.ID, "Portal", "eva@acme.test")
	before := p.AssignedEmployees["eva@acme.test"].AssignedAt

	got, err := e.projects.Update(e.ctx, acme, p.ID, map[string]any{"assignedEmployees": []any{"eva@acme.test", "leo@acme.test"}})
	require.NoError(t, err)
	require.Len(t, got.AssignedEmployees, 2)
	assert.True(t, before.Equal(got.AssignedEmployees["eva@acme.test"].AssignedAt))
}

func TestProject_FiltrosYPurga(t *testing.T) {
	e := newEnv(t)
	_, acme := e.company("acme@trictux.test", "Acme")
	c1 := e.client(acme, "Uno")
	c2 := e.client(acme, "Dos")
	p := e.project(acme, c1.ID, "P1")
	e.project(acme, c2.ID, "P2")

	list, err := e.projects.List(e.ctx, acme, dto.ProjectFilter{ClientID: c1.ID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "P1", list[0].Name)

	assert.ErrorIs(t, e.projects.Purge(e.ctx, acme, p.ID), domain.ErrForbidden)
	require.NoError(t, e.projects.Purge(e.ctx, e.owner, p.ID))

	_, err = e.projects.Get(e.ctx, e.owner, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProject_PurgaBorraSusTareas(t *testing.T) {
	e := newEnv(t)
	_, acme := e.company("acme@trictux.test", "Acme")
	_, eva := e.employee(acme, "eva@acme.test")
	c := e.client(acme, "A")
	created, err := e.projects.Create(e.ctx, acme, dto.CreateProjectRequest{
		Name: "P1", ClientID: c.ID, LegacyID: "P-1", AssignedEmployees: []string{"eva@acme.test"},
	})
	require.NoError(t, err)
	keep := e.project(acme, c.ID, "P2", "eva@acme.test")

	// Una tarea se crea con el id del proyecto y otra con su alias legado.
	byID, err := e.tasks.Create(e.ctx, acme, dto.CreateTaskRequest{ProjectID: created.ID, Title: "A", AssignedTo: "eva@acme.test"})
	require.NoError(t, err)
	_, err = e.tasks.Create(e.ctx, acme, dto.CreateTaskRequest{ProjectID: "P-1", Title: "B", AssignedTo: "eva@acme.test"})
	require.NoError(t, err)
	other, err := e.tasks.Create(e.ctx, acme, dto.CreateTaskRequest{ProjectID: keep.ID, Title: "C", AssignedTo: "eva@acme.test"})
	require.NoError(t, err)

	require.NoError(t, e.projects.Purge(e.ctx, e.owner, "P-1"))

	for _, a := range []struct {
		name  string
		actor access.Actor
	}{{"owner", e.owner}, {"company", acme}, {"employee", eva}} {
		list, err := e.tasks.List(e.ctx, a.actor, dto.TaskFilter{})
		require.NoError(t, err, a.name)
		require.Len(t, list, 1, a.name)
		assert.Equal(t, other.ID, list[0].ID, a.name)

		_, err = e.tasks.Get(e.ctx, a.actor, byID.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound, a.name)
	}
	_, err = e.tasks.Update(e.ctx, eva, byID.ID, map[string]any{"status": entity.TaskCompleted})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
