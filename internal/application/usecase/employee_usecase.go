package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/trictux/trictux-api/internal/application/auth"
	"github.com/trictux/trictux-api/internal/application/dto"
	"github.com/trictux/trictux-api/internal/domain"
	"github.com/trictux/trictux-api/internal/domain/access"
	"github.com/trictux/trictux-api/internal/domain/entity"
	"github.com/trictux/trictux-api/internal/domain/repository"
)

// EmployeeUseCase casos de uso de colaboradores.
type EmployeeUseCase struct {
	store    *repository.Store
	accounts *auth.AccountService
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(store *repository.Store, accounts *auth.AccountService) *EmployeeUseCase {
	return &EmployeeUseCase{store: store, accounts: accounts}
}

// List colaboradores visibles con conteos de proyectos y tareas de su alcance.
func (uc *EmployeeUseCase) List(ctx context.Context, actor access.Actor, f dto.EmployeeFilter) ([]dto.EmployeeResponse, error) {
	if _, err := access.Authorize(actor, access.Employees, access.OpList); err != nil {
		return nil, err
	}
	scope, err := loadScope(ctx, uc.store, actor)
	if err != nil {
		return nil, err
	}
	match, err := companyFilter(ctx, uc.store, f.CompanyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(scope.employees))
	for _, e := range scope.employees {
		if match(e.CompanyID) {
			out = append(out, employeeResponse(e, scope))
		}
	}
	return out, nil
}

// Get colaborador por id o email.
func (uc *EmployeeUseCase) Get(ctx context.Context, actor access.Actor, ref string) (*dto.EmployeeResponse, error) {
	e, err := uc.find(ctx, ref)
	if err != nil {
		return nil, err
	}
	if !access.CanRead(actor, access.Employees, access.EmployeeSubject(e)) {
		return nil, domain.ErrNotFound
	}
	scope, err := loadScope(ctx, uc.store, actor)
	if err != nil {
		return nil, err
	}
	res := employeeResponse(e, scope)
	return &res, nil
}

// Create alta de colaborador (cuenta employee + perfil) en una empresa activa.
func (uc *EmployeeUseCase) Create(ctx context.Context, actor access.Actor, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if _, err := access.Authorize(actor, access.Employees, access.OpCreate); err != nil {
		return nil, err
	}
	companyRef := in.CompanyID
	if companyRef == "" {
		companyRef = actor.PrimaryCompanyRef()
	}
	company, err := activeCompany(ctx, uc.store, companyRef)
	if err != nil {
		return nil, err
	}
	if err := access.Require(actor, access.Employees, access.OpCreate, access.Subject{CompanyRefs: company.Refs()}); err != nil {
		return nil, err
	}

	var created *entity.EmployeeProfile
	_, err = uc.accounts.CreateAccount(ctx, auth.NewAccount{
		Email: in.Email, Password: in.Password, Name: in.Name, Role: entity.RoleEmployee,
	}, func(ctx context.Context, st *repository.Store, u *entity.User) error {
		e := &entity.EmployeeProfile{
			ID:         uuid.New().String(),
			Email:      u.Email,
			Name:       u.Name,
			CompanyID:  company.ID,
			Position:   strings.TrimSpace(in.Position),
			Department: strings.TrimSpace(in.Department),
			Phone:      in.Phone,
			Bio:        in.Bio,
			Skills:     cleanSkills(in.Skills),
			Status:     entity.StatusActive,
			CreatedBy:  actor.UserID,
			CreatedAt:  u.CreatedAt,
			UpdatedAt:  u.CreatedAt,
		}
		if err := st.Employees.Create(ctx, e); err != nil {
			return err
		}
		created = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	res := employeeResponse(created, nil)
	return &res, nil
}

// Update aplica los campos permitidos; un employee solo edita su teléfono, bio y skills.
func (uc *EmployeeUseCase) Update(ctx context.Context, actor access.Actor, ref string, updates map[string]any) (*dto.EmployeeResponse, error) {
	e, err := uc.find(ctx, ref)
	if err != nil {
		return nil, err
	}
	allowed, err := access.GateUpdate(actor, access.Employees, access.EmployeeSubject(e), updates)
	if err != nil {
		return nil, err
	}
	var p dto.EmployeePatch
	if err := decodePatch(allowed, &p); err != nil {
		return nil, err
	}
	if err := requireText("name", p.Name); err != nil {
		return nil, err
	}
	if p.Status != nil && !validStatus(*p.Status) {
		return nil, domain.Invalid("status inválido: %s", *p.Status)
	}
	if p.CompanyID != nil {
		company, err := activeCompany(ctx, uc.store, *p.CompanyID)
		if err != nil {
			return nil, err
		}
		e.CompanyID = company.ID
	}
	statusChanged := p.Status != nil && *p.Status != e.Status
	setString(&e.Name, p.Name)
	setString(&e.Position, p.Position)
	setString(&e.Department, p.Department)
	setString(&e.Phone, p.Phone)
	setString(&e.Bio, p.Bio)
	setString(&e.Status, p.Status)
	if p.Skills != nil {
		e.Skills = cleanSkills(*p.Skills)
	}
	e.UpdatedAt = now()
	if err := uc.store.Employees.Update(ctx, e); err != nil {
		return nil, err
	}
	if statusChanged {
		if err := syncAccountStatus(ctx, uc.store, e.Email, e.Status); err != nil {
			return nil, err
		}
	}
	scope, err := loadScope(ctx, uc.store, actor)
	if err != nil {
		return nil, err
	}
	res := employeeResponse(e, scope)
	return &res, nil
}

// Deactivate baja lógica del colaborador y de su cuenta; idempotente.
func (uc *EmployeeUseCase) Deactivate(ctx context.Context, actor access.Actor, ref string) (*dto.EmployeeResponse, error) {
	e, err := uc.find(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err := access.Require(actor, access.Employees, access.OpDeactivate, access.EmployeeSubject(e)); err != nil {
		return nil, err
	}
	if e.Status != entity.StatusInactive {
		e.Status = entity.StatusInactive
		e.UpdatedAt = now()
		if err := uc.store.Employees.Update(ctx, e); err != nil {
			return nil, err
		}
	}
	if err := syncAccountStatus(ctx, uc.store, e.Email, entity.StatusInactive); err != nil {
		return nil, err
	}
	res := employeeResponse(e, nil)
	return &res, nil
}

func (uc *EmployeeUseCase) find(ctx context.Context, ref string) (*entity.EmployeeProfile, error) {
	return resolve(ctx, ref, uc.store.Employees.GetByID,
		func(ctx context.Context, ref string) (*entity.EmployeeProfile, error) {
			return uc.store.Employees.GetByEmail(ctx, strings.ToLower(ref))
		})
}

func employeeResponse(e *entity.EmployeeProfile, s *visibleScope) dto.EmployeeResponse {
	res := dto.EmployeeFromEntity(e)
	if s == nil {
		return res
	}
	for _, p := range s.projects {
		if p.IsAssigned(e.Email) {
			res.AssignedProjects++
		}
	}
	for _, t := range s.tasks {
		if t.AssignedTo != e.Email {
			continue
		}
		if t.Status == entity.TaskCompleted {
			res.CompletedTasks++
		} else {
			res.OpenTasks++
		}
	}
	return res
}

func cleanSkills(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
