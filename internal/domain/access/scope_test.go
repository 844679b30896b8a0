package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trictux/trictux-api/internal/domain/access"
	"github.com/trictux/trictux-api/internal/domain/entity"
)

func clientID(c *entity.Client) string           { return c.ID }
func projectID(p *entity.Project) string         { return p.ID }
func taskID(t *entity.Task) string               { return t.ID }
func employeeID(e *entity.EmployeeProfile) string { return e.ID }
func companyID(c *entity.CompanyProfile) string  { return c.ID }

func TestScope_OwnerVeTodo(t *testing.T) {
	d := newDataset()
	a := ownerActor()

	assert.Len(t, access.FilterClients(a, d.clients, d.projects), len(d.clients))
	assert.Len(t, access.FilterProjects(a, d.projects), len(d.projects))
	assert.Len(t, access.FilterTasks(a, d.tasks, d.projects), len(d.tasks))
	assert.Len(t, access.FilterEmployees(a, d.employees), len(d.employees))
	assert.Len(t, access.FilterCompanies(a, d.companies), len(d.companies))
	assert.Len(t, access.FilterUsers(a, d.users), len(d.users))
}

func TestScope_CompanyVeSoloSuEmpresa_AmbosEsquemas(t *testing.T) {
	d := newDataset()
	a := companyActor(d, 0)

	assert.ElementsMatch(t, []string{"cli-1", "cli-2"}, ids(access.FilterClients(a, d.clients, d.projects), clientID))
	assert.ElementsMatch(t, []string{"prj-1", "prj-2"}, ids(access.FilterProjects(a, d.projects), projectID))
	assert.ElementsMatch(t, []string{"tsk-1", "tsk-2", "tsk-4"}, ids(access.FilterTasks(a, d.tasks, d.projects), taskID))
	assert.ElementsMatch(t, []string{"emp-1", "emp-2"}, ids(access.FilterEmployees(a, d.employees), employeeID))
	assert.ElementsMatch(t, []string{"comp-a"}, ids(access.FilterCompanies(a, d.companies), companyID))
	assert.Empty(t, access.FilterUsers(a, d.users), "company no lista cuentas")
}

func TestScope_CompanySinPerfil_UsaEmail(t *testing.T) {
	d := newDataset()
	a := access.NewActor(&entity.User{ID: "u-a", Email: "a@corp.test", Role: entity.RoleCompany}, nil, nil)

	assert.ElementsMatch(t, []string{"cli-2"}, ids(access.FilterClients(a, d.clients, d.projects), clientID))
	assert.ElementsMatch(t, []string{"emp-2"}, ids(access.FilterEmployees(a, d.employees), employeeID))
}

func TestScope_EmployeeVeSoloLoAsignado(t *testing.T) {
	d := newDataset()
	a := employeeActor(d, 0)

	assert.ElementsMatch(t, []string{"prj-1"}, ids(access.FilterProjects(a, d.projects), projectID))
	assert.ElementsMatch(t, []string{"tsk-1", "tsk-4"}, ids(access.FilterTasks(a, d.tasks, d.projects), taskID))
	assert.ElementsMatch(t, []string{"cli-1"}, ids(access.FilterClients(a, d.clients, d.projects), clientID))
	assert.ElementsMatch(t, []string{"emp-1"}, ids(access.FilterEmployees(a, d.employees), employeeID), "no ve a sus compañeros")
	assert.ElementsMatch(t, []string{"comp-a"}, ids(access.FilterCompanies(a, d.companies), companyID))
}

func TestScope_EmployeeVeClienteReferenciadoPorAlias(t *testing.T) {
	d := newDataset()
	a := employeeActor(d, 1)

	assert.ElementsMatch(t, []string{"cli-2"}, ids(access.FilterClients(a, d.clients, d.projects), clientID))
	assert.ElementsMatch(t, []string{"comp-a"}, ids(access.FilterCompanies(a, d.companies), companyID),
		"employee con companyId por email encuentra su empresa")
}

// owner ⊇ company ⊇ employee (de esa empresa) en cantidad de registros visibles.
func TestScope_ContencionPorRol(t *testing.T) {
	d := newDataset()
	owner := ownerActor()
	for ci, empIdx := range map[int][]int{0: {0, 1}, 1: {2}} {
		company := companyActor(d, ci)
		for _, ei := range empIdx {
			emp := employeeActor(d, ei)
			counts := func(a access.Actor) []int {
				return []int{
					len(access.FilterClients(a, d.clients, d.projects)),
					len(access.FilterProjects(a, d.projects)),
					len(access.FilterTasks(a, d.tasks, d.projects)),
					len(access.FilterEmployees(a, d.employees)),
					len(access.FilterCompanies(a, d.companies)),
				}
			}
			o, c, e := counts(owner), counts(company), counts(emp)
			for i := range o {
				assert.GreaterOrEqual(t, o[i], c[i], "owner >= company (recurso %d)", i)
				assert.GreaterOrEqual(t, c[i], e[i], "company >= employee (recurso %d)", i)
			}
		}
	}
}

func TestScope_NoMutaEntrada(t *testing.T) {
	d := newDataset()
	before := ids(d.projects, projectID)
	a := employeeActor(d, 0)
	_ = access.FilterProjects(a, d.projects)
	_ = access.FilterProjects(a, d.projects)
	assert.Equal(t, before, ids(d.projects, projectID))
}

func TestCanRead_ProyectoFueraDeAlcance(t *testing.T) {
	d := newDataset()
	assert.False(t, access.CanRead(employeeActor(d, 0), access.Projects, access.ProjectSubject(d.projects[2])))
	assert.True(t, access.CanRead(employeeActor(d, 0), access.Projects, access.ProjectSubject(d.projects[0])))
}
