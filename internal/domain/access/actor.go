package access

import "github.com/trictux/trictux-api/internal/domain/entity"

// Actor identidad de quien hace la petición, ya resuelta con su perfil.
type Actor struct {
	UserID string
	Email  string
	Role   string
	// CompanyRefs referencias de la empresa del actor, en orden de preferencia:
	// id del perfil, alias legado, email.
	CompanyRefs []string
}

// NewActor construye el actor a partir del usuario y su perfil (cualquiera puede ser nil).
// Sin perfil de empresa, un usuario company se identifica por su propio email.
func NewActor(user *entity.User, company *entity.CompanyProfile, employee *entity.EmployeeProfile) Actor {
	a := Actor{UserID: user.ID, Email: user.Email, Role: user.Role}
	switch user.Role {
	case entity.RoleCompany:
		if company != nil {
			a.CompanyRefs = company.Refs()
		} else {
			a.CompanyRefs = []string{user.Email}
		}
	case entity.RoleEmployee:
		if employee != nil && employee.CompanyID != "" {
			a.CompanyRefs = []string{employee.CompanyID}
		}
	}
	return a
}

// PrimaryCompanyRef referencia preferida para asignar la empresa a registros nuevos.
func (a Actor) PrimaryCompanyRef() string {
	if len(a.CompanyRefs) == 0 {
		return ""
	}
	return a.CompanyRefs[0]
}

// OwnsCompany informa si alguna de las referencias apunta a la empresa del actor.
func (a Actor) OwnsCompany(refs ...string) bool {
	for _, r := range refs {
		if r == "" {
			continue
		}
		for _, mine := range a.CompanyRefs {
			if r == mine {
				return true
			}
		}
	}
	return false
}

// Matches evalúa el alcance de una capacidad contra las relaciones del registro.
func (a Actor) Matches(scope Scope, s Subject) bool {
	switch scope {
	case ScopeAll:
		return true
	case ScopeOwnCompany:
		return a.OwnsCompany(s.CompanyRefs...)
	case ScopeAssigned:
		for _, email := range s.Assignees {
			if email == a.Email {
				return true
			}
		}
		return false
	case ScopeSelf:
		return s.SelfEmail != "" && s.SelfEmail == a.Email
	}
	return false
}
