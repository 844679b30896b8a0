package memory

import (
	"context"
	"errors"
	"maps"
	"slices"
	"time"

	"github.com/trictux/trictux-api/internal/domain"
	"github.com/trictux/trictux-api/internal/domain/entity"
	"github.com/trictux/trictux-api/internal/domain/repository"
)

// NewStore construye un Store vacío con todas las colecciones en memoria.
func NewStore() *repository.Store {
	return &repository.Store{
		Users:     NewUserRepository(),
		Owners:    NewOwnerRepository(),
		Companies: NewCompanyRepository(),
		Employees: NewEmployeeRepository(),
		Clients:   NewClientRepository(),
		Projects:  NewProjectRepository(),
		Tasks:     NewTaskRepository(),
	}
}

// ── Users ─────────────────────────────────────────────────────────────────────

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo cuentas en memoria.
type UserRepo struct{ c *collection[entity.User] }

// NewUserRepository construye el repositorio de cuentas.
func NewUserRepository() *UserRepo {
	return &UserRepo{c: newCollection(func(u *entity.User) string { return u.ID }, shallow[entity.User])}
}

func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	err := r.c.insert(ctx, u, func(e *entity.User) bool { return e.Email == u.Email })
	if errors.Is(err, domain.ErrConflict) {
		return domain.ErrEmailAlreadyExists
	}
	return err
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.c.get(ctx, id)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.c.find(ctx, func(u *entity.User) bool { return u.Email == email })
}

func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) { return r.c.list(ctx) }

func (r *UserRepo) Update(ctx context.Context, u *entity.User) error { return r.c.update(ctx, u) }

func (r *UserRepo) Delete(ctx context.Context, id string) error { return r.c.delete(ctx, id) }

// ── Owners ────────────────────────────────────────────────────────────────────

var _ repository.OwnerRepository = (*OwnerRepo)(nil)

// OwnerRepo perfiles owner en memoria.
type OwnerRepo struct{ c *collection[entity.OwnerProfile] }

// NewOwnerRepository construye el repositorio de perfiles owner.
func NewOwnerRepository() *OwnerRepo {
	return &OwnerRepo{c: newCollection(func(o *entity.OwnerProfile) string { return o.ID }, shallow[entity.OwnerProfile])}
}

func (r *OwnerRepo) Create(ctx context.Context, o *entity.OwnerProfile) error {
	return r.c.insert(ctx, o, func(e *entity.OwnerProfile) bool { return e.Email == o.Email })
}

func (r *OwnerRepo) GetByEmail(ctx context.Context, email string) (*entity.OwnerProfile, error) {
	return r.c.find(ctx, func(o *entity.OwnerProfile) bool { return o.Email == email })
}

// ── Companies ─────────────────────────────────────────────────────────────────

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo perfiles de empresa en memoria.
type CompanyRepo struct{ c *collection[entity.CompanyProfile] }

// NewCompanyRepository construye el repositorio de empresas.
func NewCompanyRepository() *CompanyRepo {
	return &CompanyRepo{c: newCollection(func(c *entity.CompanyProfile) string { return c.ID }, shallow[entity.CompanyProfile])}
}

func (r *CompanyRepo) Create(ctx context.Context, c *entity.CompanyProfile) error {
	return r.c.insert(ctx, c, func(e *entity.CompanyProfile) bool {
		return e.Email == c.Email || (c.LegacyID != "" && e.LegacyID == c.LegacyID)
	})
}

func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.CompanyProfile, error) {
	return r.c.get(ctx, id)
}

func (r *CompanyRepo) GetByLegacyID(ctx context.Context, legacyID string) (*entity.CompanyProfile, error) {
	return r.c.find(ctx, func(c *entity.CompanyProfile) bool { return legacyID != "" && c.LegacyID == legacyID })
}

func (r *CompanyRepo) GetByEmail(ctx context.Context, email string) (*entity.CompanyProfile, error) {
	return r.c.find(ctx, func(c *entity.CompanyProfile) bool { return c.Email == email })
}

func (r *CompanyRepo) List(ctx context.Context) ([]*entity.CompanyProfile, error) { return r.c.list(ctx) }

func (r *CompanyRepo) Update(ctx context.Context, c *entity.CompanyProfile) error {
	return r.c.update(ctx, c)
}

// ── Employees ─────────────────────────────────────────────────────────────────

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo perfiles de colaboradores en memoria.
type EmployeeRepo struct{ c *collection[entity.EmployeeProfile] }

// NewEmployeeRepository construye el repositorio de colaboradores.
func NewEmployeeRepository() *EmployeeRepo {
	return &EmployeeRepo{c: newCollection(func(e *entity.EmployeeProfile) string { return e.ID }, cloneEmployee)}
}

func cloneEmployee(e *entity.EmployeeProfile) *entity.EmployeeProfile {
	cp := *e
	cp.Skills = slices.Clone(e.Skills)
	return &cp
}

func (r *EmployeeRepo) Create(ctx context.Context, e *entity.EmployeeProfile) error {
	return r.c.insert(ctx, e, func(x *entity.EmployeeProfile) bool { return x.Email == e.Email })
}

func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.EmployeeProfile, error) {
	return r.c.get(ctx, id)
}

func (r *EmployeeRepo) GetByEmail(ctx context.Context, email string) (*entity.EmployeeProfile, error) {
	return r.c.find(ctx, func(e *entity.EmployeeProfile) bool { return e.Email == email })
}

func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.EmployeeProfile, error) {
	return r.c.list(ctx)
}

func (r *EmployeeRepo) Update(ctx context.Context, e *entity.EmployeeProfile) error {
	return r.c.update(ctx, e)
}

// ── Clients ───────────────────────────────────────────────────────────────────

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo clientes en memoria.
type ClientRepo struct{ c *collection[entity.Client] }

// NewClientRepository construye el repositorio de clientes.
func NewClientRepository() *ClientRepo {
	return &ClientRepo{c: newCollection(func(c *entity.Client) string { return c.ID }, shallow[entity.Client])}
}

func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	return r.c.insert(ctx, c, func(e *entity.Client) bool { return c.LegacyID != "" && e.LegacyID == c.LegacyID })
}

func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	return r.c.get(ctx, id)
}

func (r *ClientRepo) GetByLegacyID(ctx context.Context, legacyID string) (*entity.Client, error) {
	return r.c.find(ctx, func(c *entity.Client) bool { return legacyID != "" && c.LegacyID == legacyID })
}

func (r *ClientRepo) List(ctx context.Context) ([]*entity.Client, error) { return r.c.list(ctx) }

func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error { return r.c.update(ctx, c) }

// ── Projects ──────────────────────────────────────────────────────────────────

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo proyectos en memoria.
type ProjectRepo struct{ c *collection[entity.Project] }

// NewProjectRepository construye el repositorio de proyectos.
func NewProjectRepository() *ProjectRepo {
	return &ProjectRepo{c: newCollection(func(p *entity.Project) string { return p.ID }, cloneProject)}
}

func cloneProject(p *entity.Project) *entity.Project {
	cp := *p
	cp.AssignedEmployees = maps.Clone(p.AssignedEmployees)
	cp.StartDate = cloneTime(p.StartDate)
	cp.EndDate = cloneTime(p.EndDate)
	return &cp
}

func (r *ProjectRepo) Create(ctx context.Context, p *entity.Project) error {
	return r.c.insert(ctx, p, func(e *entity.Project) bool { return p.LegacyID != "" && e.LegacyID == p.LegacyID })
}

func (r *ProjectRepo) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	return r.c.get(ctx, id)
}

func (r *ProjectRepo) GetByLegacyID(ctx context.Context, legacyID string) (*entity.Project, error) {
	return r.c.find(ctx, func(p *entity.Project) bool { return legacyID != "" && p.LegacyID == legacyID })
}

func (r *ProjectRepo) List(ctx context.Context) ([]*entity.Project, error) { return r.c.list(ctx) }

func (r *ProjectRepo) Update(ctx context.Context, p *entity.Project) error { return r.c.update(ctx, p) }

func (r *ProjectRepo) Delete(ctx context.Context, id string) error { return r.c.delete(ctx, id) }

// ── Tasks ─────────────────────────────────────────────────────────────────────

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo tareas en memoria.
type TaskRepo struct{ c *collection[entity.Task] }

// NewTaskRepository construye el repositorio de tareas.
func NewTaskRepository() *TaskRepo {
	return &TaskRepo{c: newCollection(func(t *entity.Task) string { return t.ID }, cloneTask)}
}

func cloneTask(t *entity.Task) *entity.Task {
	cp := *t
	cp.DueDate = cloneTime(t.DueDate)
	cp.CompletedAt = cloneTime(t.CompletedAt)
	return &cp
}

func (r *TaskRepo) Create(ctx context.Context, t *entity.Task) error { return r.c.insert(ctx, t, nil) }

func (r *TaskRepo) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	return r.c.get(ctx, id)
}

func (r *TaskRepo) List(ctx context.Context) ([]*entity.Task, error) { return r.c.list(ctx) }

func (r *TaskRepo) Update(ctx context.Context, t *entity.Task) error { return r.c.update(ctx, t) }

func (r *TaskRepo) Delete(ctx context.Context, id string) error { return r.c.delete(ctx, id) }

func (r *TaskRepo) DeleteByProject(ctx context.Context, refs []string) (int, error) {
	return r.c.deleteWhere(ctx, func(t *entity.Task) bool {
		return t.ProjectID != "" && slices.Contains(refs, t.ProjectID)
	}), nil
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}
