package access_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trictux/trictux-api/internal/domain"
	"github.com/trictux/trictux-api/internal/domain/access"
)

func payloadWithNoise() map[string]any {
	p := map[string]any{
		"id": "x", "createdBy": "x", "createdAt": "x", "companyId": "comp-b",
		"status": "completed", "actualHours": 3, "completedAt": "2026-01-01T00:00:00Z",
		"progress": 50, "actualCost": "10.5", "phone": "555", "bio": "hola", "skills": []string{"go"},
		"name": "otro", "assignedTo": "x@y", "budget": 9999,
	}
	for i := 0; i < 20; i++ {
		p[fmt.Sprintf("extra%d", i)] = i
	}
	return p
}

func TestGate_EmployeeNuncaSaleDeSuTabla(t *testing.T) {
	d := newDataset()
	emp := employeeActor(d, 0)

	cases := []struct {
		res     access.Resource
		subject access.Subject
		allowed []string
	}{
		{access.Tasks, access.TaskSubject(d.tasks[0], d.projects[0]), []string{"status", "actualHours", "completedAt"}},
		{access.Projects, access.ProjectSubject(d.projects[0]), []string{"progress", "actualCost"}},
		{access.Employees, access.EmployeeSubject(d.employees[0]), []string{"phone", "bio", "skills"}},
	}
	for _, tc := range cases {
		out, err := access.GateUpdate(emp, tc.res, tc.subject, payloadWithNoise())
		require.NoError(t, err, tc.res)
		for k := range out {
			assert.Contains(t, tc.allowed, k, "campo %q no permitido en %s", k, tc.res)
		}
		assert.Len(t, out, len(tc.allowed))
	}
}

func TestGate_EmployeeSinRelacion_Forbidden(t *testing.T) {
	d := newDataset()
	emp := employeeActor(d, 0)

	_, err := access.GateUpdate(emp, access.Projects, access.ProjectSubject(d.projects[1]), payloadWithNoise())
	assert.ErrorIs(t, err, domain.ErrForbidden, "no asignado")

	_, err = access.GateUpdate(emp, access.Employees, access.EmployeeSubject(d.employees[1]), payloadWithNoise())
	assert.ErrorIs(t, err, domain.ErrForbidden, "perfil ajeno")

	_, err = access.GateUpdate(emp, access.Clients, access.ClientSubject(d.clients[0], d.projects), payloadWithNoise())
	assert.ErrorIs(t, err, domain.ErrForbidden, "clientes prohibidos para employee")

	_, err = access.GateUpdate(emp, access.Companies, access.CompanySubject(d.companies[0]), payloadWithNoise())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGate_CompanyDescartaCompanyIdYValidaPropiedad(t *testing.T) {
	d := newDataset()
	company := companyActor(d, 0)

	out, err := access.GateUpdate(company, access.Clients, access.ClientSubject(d.clients[1], d.projects), payloadWithNoise())
	require.NoError(t, err)
	assert.NotContains(t, out, "companyId")
	assert.NotContains(t, out, "id")
	assert.Equal(t, "otro", out["name"])

	_, err = access.GateUpdate(company, access.Clients, access.ClientSubject(d.clients[2], d.projects), payloadWithNoise())
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err = access.GateUpdate(company, access.Companies, access.CompanySubject(d.companies[0]), payloadWithNoise())
	require.NoError(t, err)
	assert.NotContains(t, out, "status", "la empresa no se reactiva a sí misma")
	assert.Contains(t, out, "phone")
}

func TestGate_OwnerSoloCamposMutables(t *testing.T) {
	d := newDataset()
	out, err := access.GateUpdate(ownerActor(), access.Projects, access.ProjectSubject(d.projects[2]), payloadWithNoise())
	require.NoError(t, err)
	assert.Contains(t, out, "companyId")
	assert.Contains(t, out, "budget")
	assert.NotContains(t, out, "id")
	assert.NotContains(t, out, "createdAt")
	assert.NotContains(t, out, "extra0")
}

func TestAuthorize_TablaDeCapacidades(t *testing.T) {
	d := newDataset()
	emp := employeeActor(d, 0)
	company := companyActor(d, 0)

	for _, res := range []access.Resource{access.Clients, access.Projects, access.Employees, access.Companies} {
		_, err := access.Authorize(emp, res, access.OpCreate)
		assert.ErrorIs(t, err, domain.ErrForbidden, "employee no crea %s", res)
	}
	_, err := access.Authorize(company, access.Clients, access.OpDeactivate)
	assert.ErrorIs(t, err, domain.ErrForbidden, "solo owner desactiva clientes")
	_, err = access.Authorize(company, access.Projects, access.OpPurge)
	assert.ErrorIs(t, err, domain.ErrForbidden, "solo owner elimina proyectos")

	_, err = access.Authorize(ownerActor(), access.Projects, access.OpPurge)
	assert.NoError(t, err)
	_, err = access.Authorize(ownerActor(), access.Clients, access.OpDeactivate)
	assert.NoError(t, err)
}
