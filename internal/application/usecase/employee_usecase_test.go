package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trictux/trictux-api/internal/application/dto"
	"github.com/trictux/trictux-api/internal/domain"
	"github.com/trictux/trictux-api/internal/domain/entity"
)

func TestEmployee_CreateEnEmpresaDelActor(t *testing.T) {
	e := newEnv(t)
	acme, acmeActor := e.company("acme@trictux.test", "Acme")

	emp, err := e.employees.Create(e.ctx, acmeActor, dto.CreateEmployeeRequest{
		Email: "Eva@Acme.test", Password: password, Name: "Eva", Skills: []string{" go ", "", "sql"},
	})
	require.NoError(t, err)
	assert.Equal(t, "eva@acme.test", emp.Email)
	assert.Equal(t, acme.ID, emp.CompanyID)
	assert.Equal(t, []string{"go", "sql"}, emp.Skills)

	u, err := e.store.Users.GetByEmail(e.ctx, "eva@acme.test")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, u.Role)
}

func TestEmployee_CompanyNoCreaEnOtraEmpresa(t *testing.T) {
	e := newEnv(t)
	_, acme := e.company("acme@trictux.test", "Acme")
	globex, _ := e.company("globex@trictux.test", "Globex")

	_, err := e.employees.Create(e.ctx, acme, dto.CreateEmployeeRequest{
		Email: "x@globex.test", Password: password, Name: "X", CompanyID: globex.ID,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// La cuenta no llegó a crearse.
	u, err := e.store.Users.GetByEmail(e.ctx, "x@globex.test")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestEmployee_CamposPermitidosPorRol(t *testing.T) {
	e := newEnv(t)
	_, acme := e.company("acme@trictux.test", "Acme")
	globex, _ := e.company("globex@trictux.test", "Globex")
	emp, eva := e.employee(acme, "eva@acme.test")

	got, err := e.employees.Update(e.ctx, eva, emp.ID, map[string]any{
		"bio": "Backend", "skills": []any{"go"}, "position": "CTO", "status": "inactive", "companyId": globex.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Backend", got.Bio)
	assert.Equal(t, []string{"go"}, got.Skills)
	assert.Equal(t, "Dev", got.Position)
	assert.Equal(t, entity.StatusActive, got.Status)
	assert.NotEqual(t, globex.ID, got.CompanyID)

	got, err = e.employees.Update(e.ctx, acme, "eva@acme.test", map[string]any{"position": "Lead", "companyId": globex.ID})
	require.NoError(t, err)
	assert.Equal(t, "Lead", got.Position)
	assert.NotEqual(t, globex.ID, got.CompanyID, "mover de empresa es exclusivo del owner")
}

func TestEmployee_VisibilidadYOtroColaborador(t *testing.T) {
	e := newEnv(t)
	_, acme := e.company("acme@trictux.test", "Acme")
	_, eva := e.employee(acme, "eva@acme.test")
	leo, _ := e.employee(acme, "leo@acme.test")

	list, err := e.employees.List(e.ctx, eva, dto.EmployeeFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "eva@acme.test", list[0].Email)

	_, err = e.employees.Get(e.ctx, eva, leo.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = e.employees.Update(e.ctx, eva, leo.ID, map[string]any{"bio": "x"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEmployee_DesactivarPorSuEmpresa(t *testing.T) {
	e := newEnv(t)
	_, acme := e.company("acme@trictux.test", "Acme")
	_, globex := e.company("globex@trictux.test", "Globex")
	emp, _ := e.employee(acme, "eva@acme.test")

	_, err := e.employees.Deactivate(e.ctx, globex, emp.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	got, err := e.employees.Deactivate(e.ctx, acme, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInactive, got.Status)
	_, err = e.employees.Deactivate(e.ctx, acme, emp.ID)
	require.NoError(t, err)

	u, err := e.store.Users.GetByEmail(e.ctx, "eva@acme.test")
	require.NoError(t, err)
	assert.False(t, u.IsActive())

	// Un colaborador inactivo no se puede asignar.
	c := e.client(acme, "A")
	_, err = e.projects.Create(e.ctx, acme, dto.CreateProjectRequest{Name: "P", ClientID: c.ID, AssignedEmployees: []string{"eva@acme.test"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEmployee_ConteosDeTrabajo(t *testing.T) {
	e := newEnv(t)
	_, acme := e.company("acme@trictux.test", "Acme")
	emp, _ := e.employee(acme, "eva@acme.test")
	p := e.project(acme, e.client(acme, "A").ID, "P", "eva@acme.test")
	t1, err := e.tasks.Create(e.ctx, acme, dto.CreateTaskRequest{ProjectID: p.ID, Title: "1", AssignedTo: "eva@acme.test"})
	require.NoError(t, err)
	_, err = e.tasks.Create(e.ctx, acme, dto.CreateTaskRequest{ProjectID: p.ID, Title: "2", AssignedTo: "eva@acme.test"})
	require.NoError(t, err)
	_, err = e.tasks.Update(e.ctx, acme, t1.ID, map[string]any{"status": entity.TaskCompleted})
	require.NoError(t, err)

	got, err := e.employees.Get(e.ctx, acme, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.AssignedProjects)
	assert.Equal(t, 1, got.OpenTasks)
	assert.Equal(t, 1, got.CompletedTasks)
}
