package auth

import (
	"context"

	"github.com/trictux/trictux-api/internal/domain/access"
	"github.com/trictux/trictux-api/internal/domain/entity"
	"github.com/trictux/trictux-api/internal/domain/repository"
)

// Profile perfil de rol de una cuenta. Como mucho uno de los punteros es no nil;
// todos nil significa que el perfil aún no existe (alta en curso o datos heredados).
type Profile struct {
	Role     string
	Owner    *entity.OwnerProfile
	Company  *entity.CompanyProfile
	Employee *entity.EmployeeProfile
}

// Exists informa si se encontró el perfil.
func (p *Profile) Exists() bool {
	return p.Owner != nil || p.Company != nil || p.Employee != nil
}

// DisplayName nombre a mostrar: el del perfil, luego el de la cuenta, luego el email.
func (p *Profile) DisplayName(u *entity.User) string {
	var name string
	switch {
	case p.Owner != nil:
		name = p.Owner.Name
	case p.Company != nil:
		name = p.Company.Name
	case p.Employee != nil:
		name = p.Employee.Name
	}
	if name != "" {
		return name
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// Actor identidad para las reglas de acceso.
func (p *Profile) Actor(u *entity.User) access.Actor {
	return access.NewActor(u, p.Company, p.Employee)
}

// RoleResolver carga el perfil desde la colección que corresponde al rol.
type RoleResolver struct {
	owners    repository.OwnerRepository
	companies repository.CompanyRepository
	employees repository.EmployeeRepository
}

// NewRoleResolver construye el resolver sobre el store.
func NewRoleResolver(store *repository.Store) *RoleResolver {
	return &RoleResolver{owners: store.Owners, companies: store.Companies, employees: store.Employees}
}

// Resolve nunca falla por perfil ausente; solo por errores del almacenamiento.
func (r *RoleResolver) Resolve(ctx context.Context, u *entity.User) (*Profile, error) {
	p := &Profile{Role: u.Role}
	var err error
	switch u.Role {
	case entity.RoleOwner:
		p.Owner, err = r.owners.GetByEmail(ctx, u.Email)
	case entity.RoleCompany:
		p.Company, err = r.companies.GetByEmail(ctx, u.Email)
	case entity.RoleEmployee:
		p.Employee, err = r.employees.GetByEmail(ctx, u.Email)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
