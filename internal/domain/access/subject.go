package access

import "github.com/trictux/trictux-api/internal/domain/entity"

// Subject relaciones de un registro relevantes para la autorización.
type Subject struct {
	CompanyRefs []string // empresa dueña (cualquier esquema de identidad)
	Assignees   []string // emails asignados
	SelfEmail   string   // email del perfil, si el registro es un perfil
}

// ClientSubject un cliente es visible para los asignados de cualquier proyecto que lo referencia.
func ClientSubject(c *entity.Client, projects []*entity.Project) Subject {
	s := Subject{CompanyRefs: []string{c.CompanyID}}
	for _, p := range projects {
		if c.HasRef(p.ClientID) {
			s.Assignees = append(s.Assignees, p.Assignees()...)
		}
	}
	return s
}

// ProjectSubject relaciones de un proyecto.
func ProjectSubject(p *entity.Project) Subject {
	return Subject{CompanyRefs: []string{p.CompanyID}, Assignees: p.Assignees()}
}

// TaskSubject la empresa de una tarea es la de su proyecto; project puede ser nil
// si el proyecto ya no existe.
func TaskSubject(t *entity.Task, project *entity.Project) Subject {
	s := Subject{Assignees: []string{t.AssignedTo}}
	if project != nil {
		s.CompanyRefs = []string{project.CompanyID}
	}
	return s
}

// EmployeeSubject relaciones de un perfil de colaborador.
func EmployeeSubject(e *entity.EmployeeProfile) Subject {
	return Subject{CompanyRefs: []string{e.CompanyID}, SelfEmail: e.Email}
}

// CompanySubject una empresa se pertenece a sí misma.
func CompanySubject(c *entity.CompanyProfile) Subject {
	return Subject{CompanyRefs: c.Refs(), SelfEmail: c.Email}
}

// UserSubject relaciones de una cuenta.
func UserSubject(u *entity.User) Subject {
	return Subject{SelfEmail: u.Email}
}

// FindProject busca el proyecto referenciado por ref (id o alias legado).
func FindProject(projects []*entity.Project, ref string) *entity.Project {
	for _, p := range projects {
		if p.HasRef(ref) {
			return p
		}
	}
	return nil
}
