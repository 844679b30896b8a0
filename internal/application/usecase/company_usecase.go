package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/trictux/trictux-api/internal/application/auth"
	"github.com/trictux/trictux-api/internal/application/dto"
	"github.com/trictux/trictux-api/internal/domain"
	"github.com/trictux/trictux-api/internal/domain/access"
	"github.com/trictux/trictux-api/internal/domain/entity"
	"github.com/trictux/trictux-api/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	store    *repository.Store
	accounts *auth.AccountService
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(store *repository.Store, accounts *auth.AccountService) *CompanyUseCase {
	return &CompanyUseCase{store: store, accounts: accounts}
}

// List empresas visibles con conteos de clientes, proyectos y colaboradores.
func (uc *CompanyUseCase) List(ctx context.Context, actor access.Actor) ([]dto.CompanyResponse, error) {
	if _, err := access.Authorize(actor, access.Companies, access.OpList); err != nil {
		return nil, err
	}
	companies, err := uc.store.Companies.List(ctx)
	if err != nil {
		return nil, err
	}
	scope, err := loadScope(ctx, uc.store, actor)
	if err != nil {
		return nil, err
	}
	visible := access.FilterCompanies(actor, companies)
	out := make([]dto.CompanyResponse, 0, len(visible))
	for _, c := range visible {
		out = append(out, companyResponse(c, scope))
	}
	return out, nil
}

// Get empresa por id, alias legado o email.
func (uc *CompanyUseCase) Get(ctx context.Context, actor access.Actor, ref string) (*dto.CompanyResponse, error) {
	c, err := uc.find(ctx, ref)
	if err != nil {
		return nil, err
	}
	if !access.CanRead(actor, access.Companies, access.CompanySubject(c)) {
		return nil, domain.ErrNotFound
	}
	scope, err := loadScope(ctx, uc.store, actor)
	if err != nil {
		return nil, err
	}
	res := companyResponse(c, scope)
	return &res, nil
}

// Create alta de empresa por el owner: cuenta company + perfil.
func (uc *CompanyUseCase) Create(ctx context.Context, actor access.Actor, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if _, err := access.Authorize(actor, access.Companies, access.OpCreate); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("el nombre de la empresa es requerido")
	}
	if in.LegacyID != "" {
		if dup, err := uc.store.Companies.GetByLegacyID(ctx, in.LegacyID); err != nil {
			return nil, err
		} else if dup != nil {
			return nil, fmt.Errorf("%w: ya existe una empresa con legacyId %s", domain.ErrConflict, in.LegacyID)
		}
	}

	var created *entity.CompanyProfile
	_, err := uc.accounts.CreateAccount(ctx, auth.NewAccount{
		Email: in.Email, Password: in.Password, Name: name, Role: entity.RoleCompany,
	}, func(ctx context.Context, st *repository.Store, u *entity.User) error {
		c := &entity.CompanyProfile{
			ID:          uuid.New().String(),
			LegacyID:    in.LegacyID,
			Email:       u.Email,
			Name:        name,
			Industry:    in.Industry,
			Phone:       in.Phone,
			Address:     in.Address,
			Website:     in.Website,
			Description: in.Description,
			Status:      entity.StatusActive,
			CreatedBy:   actor.UserID,
			CreatedAt:   u.CreatedAt,
			UpdatedAt:   u.CreatedAt,
		}
		if err := st.Companies.Create(ctx, c); err != nil {
			return err
		}
		created = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	res := companyResponse(created, nil)
	return &res, nil
}

// Update datos de la empresa; el estado solo lo cambia el owner.
func (uc *CompanyUseCase) Update(ctx context.Context, actor access.Actor, ref string, updates map[string]any) (*dto.CompanyResponse, error) {
	c, err := uc.find(ctx, ref)
	if err != nil {
		return nil, err
	}
	allowed, err := access.GateUpdate(actor, access.Companies, access.CompanySubject(c), updates)
	if err != nil {
		return nil, err
	}
	var p dto.CompanyPatch
	if err := decodePatch(allowed, &p); err != nil {
		return nil, err
	}
	if err := requireText("name", p.Name); err != nil {
		return nil, err
	}
	if p.Status != nil && !validStatus(*p.Status) {
		return nil, domain.Invalid("status inválido: %s", *p.Status)
	}
	statusChanged := p.Status != nil && *p.Status != c.Status
	setString(&c.Name, p.Name)
	setString(&c.Industry, p.Industry)
	setString(&c.Phone, p.Phone)
	setString(&c.Address, p.Address)
	setString(&c.Website, p.Website)
	setString(&c.Description, p.Description)
	setString(&c.Status, p.Status)
	c.UpdatedAt = now()
	if err := uc.store.Companies.Update(ctx, c); err != nil {
		return nil, err
	}
	if statusChanged {
		if err := syncAccountStatus(ctx, uc.store, c.Email, c.Status); err != nil {
			return nil, err
		}
	}
	return uc.Get(ctx, actor, c.ID)
}

// Deactivate baja lógica de la empresa y de su cuenta de acceso.
func (uc *CompanyUseCase) Deactivate(ctx context.Context, actor access.Actor, ref string) (*dto.CompanyResponse, error) {
	c, err := uc.find(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err := access.Require(actor, access.Companies, access.OpDeactivate, access.CompanySubject(c)); err != nil {
		return nil, err
	}
	if c.Status != entity.StatusInactive {
		c.Status = entity.StatusInactive
		c.UpdatedAt = now()
		if err := uc.store.Companies.Update(ctx, c); err != nil {
			return nil, err
		}
	}
	if err := syncAccountStatus(ctx, uc.store, c.Email, entity.StatusInactive); err != nil {
		return nil, err
	}
	res := companyResponse(c, nil)
	return &res, nil
}

func (uc *CompanyUseCase) find(ctx context.Context, ref string) (*entity.CompanyProfile, error) {
	if ref == "" {
		return nil, domain.Invalid("id requerido")
	}
	c, err := findCompany(ctx, uc.store, ref)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// syncAccountStatus replica el estado del perfil en la cuenta de acceso.
func syncAccountStatus(ctx context.Context, store *repository.Store, email, status string) error {
	u, err := store.Users.GetByEmail(ctx, email)
	if err != nil || u == nil || u.Status == status {
		return err
	}
	u.Status = status
	u.UpdatedAt = now()
	return store.Users.Update(ctx, u)
}

// visibleScope registros visibles para el actor, base de los conteos derivados.
type visibleScope struct {
	clients   []*entity.Client
	projects  []*entity.Project
	employees []*entity.EmployeeProfile
	tasks     []*entity.Task
}

func loadScope(ctx context.Context, store *repository.Store, actor access.Actor) (*visibleScope, error) {
	projects, err := store.Projects.List(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := store.Clients.List(ctx)
	if err != nil {
		return nil, err
	}
	employees, err := store.Employees.List(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := store.Tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return &visibleScope{
		clients:   access.FilterClients(actor, clients, projects),
		projects:  access.FilterProjects(actor, projects),
		employees: access.FilterEmployees(actor, employees),
		tasks:     access.FilterTasks(actor, tasks, projects),
	}, nil
}

func companyResponse(c *entity.CompanyProfile, s *visibleScope) dto.CompanyResponse {
	res := dto.CompanyFromEntity(c)
	if s == nil {
		return res
	}
	for _, cl := range s.clients {
		if c.HasRef(cl.CompanyID) {
			res.TotalClients++
		}
	}
	for _, p := range s.projects {
		if c.HasRef(p.CompanyID) {
			res.TotalProjects++
			if p.IsActive() {
				res.ActiveProjects++
			}
		}
	}
	for _, e := range s.employees {
		if c.HasRef(e.CompanyID) {
			res.TotalEmployees++
		}
	}
	return res
}
