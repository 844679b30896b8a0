package access

import "github.com/trictux/trictux-api/internal/domain/entity"

// CanRead informa si el actor puede ver un registro con esas relaciones.
func CanRead(a Actor, res Resource, s Subject) bool {
	c, err := Authorize(a, res, OpRead)
	if err != nil {
		return false
	}
	return a.Matches(c.Scope, s)
}

func filter[T any](a Actor, res Resource, items []T, subject func(T) Subject) []T {
	out := make([]T, 0, len(items))
	c, err := Authorize(a, res, OpList)
	if err != nil {
		return out
	}
	for _, it := range items {
		if a.Matches(c.Scope, subject(it)) {
			out = append(out, it)
		}
	}
	return out
}

// FilterClients clientes visibles; projects es el conjunto completo de proyectos,
// necesario para resolver la visibilidad de un employee.
func FilterClients(a Actor, clients []*entity.Client, projects []*entity.Project) []*entity.Client {
	return filter(a, Clients, clients, func(c *entity.Client) Subject {
		return ClientSubject(c, projects)
	})
}

// FilterProjects proyectos visibles.
func FilterProjects(a Actor, projects []*entity.Project) []*entity.Project {
	return filter(a, Projects, projects, ProjectSubject)
}

// FilterTasks tareas visibles; la empresa de cada tarea se resuelve por su proyecto.
func FilterTasks(a Actor, tasks []*entity.Task, projects []*entity.Project) []*entity.Task {
	return filter(a, Tasks, tasks, func(t *entity.Task) Subject {
		return TaskSubject(t, FindProject(projects, t.ProjectID))
	})
}

// FilterEmployees perfiles de colaboradores visibles.
func FilterEmployees(a Actor, employees []*entity.EmployeeProfile) []*entity.EmployeeProfile {
	return filter(a, Employees, employees, EmployeeSubject)
}

// FilterCompanies empresas visibles.
func FilterCompanies(a Actor, companies []*entity.CompanyProfile) []*entity.CompanyProfile {
	return filter(a, Companies, companies, CompanySubject)
}

// FilterUsers cuentas visibles.
func FilterUsers(a Actor, users []*entity.User) []*entity.User {
	return filter(a, Users, users, UserSubject)
}
