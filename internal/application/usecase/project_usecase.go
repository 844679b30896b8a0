package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trictux/trictux-api/internal/application/dto"
	"github.com/trictux/trictux-api/internal/domain"
	"github.com/trictux/trictux-api/internal/domain/access"
	"github.com/trictux/trictux-api/internal/domain/entity"
	"github.com/trictux/trictux-api/internal/domain/repository"
)

// ProjectUseCase casos de uso de proyectos.
type ProjectUseCase struct {
	store *repository.Store
	tx    repository.TxRunner // nil en el store en memoria
}

// NewProjectUseCase construye el caso de uso. tx puede ser nil.
func NewProjectUseCase(store *repository.Store, tx repository.TxRunner) *ProjectUseCase {
	return &ProjectUseCase{store: store, tx: tx}
}

// List proyectos visibles, filtrables por empresa y cliente.
func (uc *ProjectUseCase) List(ctx context.Context, actor access.Actor, f dto.ProjectFilter) ([]dto.ProjectResponse, error) {
	if _, err := access.Authorize(actor, access.Projects, access.OpList); err != nil {
		return nil, err
	}
	scope, err := loadScope(ctx, uc.store, actor)
	if err != nil {
		return nil, err
	}
	clients, err := uc.store.Clients.List(ctx)
	if err != nil {
		return nil, err
	}
	matchCompany, err := companyFilter(ctx, uc.store, f.CompanyID)
	if err != nil {
		return nil, err
	}
	matchClient := func(string) bool { return true }
	if f.ClientID != "" {
		client := findClient(clients, f.ClientID)
		matchClient = func(ref string) bool {
			if client != nil {
				return client.HasRef(ref)
			}
			return ref == f.ClientID
		}
	}
	out := make([]dto.ProjectResponse, 0, len(scope.projects))
	for _, p := range scope.projects {
		if matchCompany(p.CompanyID) && matchClient(p.ClientID) {
			out = append(out, projectResponse(p, clients, scope.tasks))
		}
	}
	return out, nil
}

// Get proyecto por id o alias legado.
func (uc *ProjectUseCase) Get(ctx context.Context, actor access.Actor, ref string) (*dto.ProjectResponse, error) {
	p, err := uc.find(ctx, ref)
	if err != nil {
		return nil, err
	}
	if !access.CanRead(actor, access.Projects, access.ProjectSubject(p)) {
		return nil, domain.ErrNotFound
	}
	return uc.respond(ctx, actor, p)
}

// Create alta de proyecto: cliente y equipo deben pertenecer a la empresa del proyecto.
func (uc *ProjectUseCase) Create(ctx context.Context, actor access.Actor, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if _, err := access.Authorize(actor, access.Projects, access.OpCreate); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("el nombre del proyecto es requerido")
	}
	companyRef := in.CompanyID
	if companyRef == "" {
		companyRef = actor.PrimaryCompanyRef()
	}
	company, err := activeCompany(ctx, uc.store, companyRef)
	if err != nil {
		return nil, err
	}
	if err := access.Require(actor, access.Projects, access.OpCreate, access.Subject{CompanyRefs: company.Refs()}); err != nil {
		return nil, err
	}
	client, err := uc.clientOf(ctx, company, in.ClientID)
	if err != nil {
		return nil, err
	}
	team, err := uc.team(ctx, company, in.AssignedEmployees, nil)
	if err != nil {
		return nil, err
	}
	if err := nonNegative("budget", &in.Budget); err != nil {
		return nil, err
	}
	if in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(*in.StartDate) {
		return nil, domain.Invalid("endDate no puede ser anterior a startDate")
	}
	if in.LegacyID != "" {
		if dup, err := uc.store.Projects.GetByLegacyID(ctx, in.LegacyID); err != nil {
			return nil, err
		} else if dup != nil {
			return nil, fmt.Errorf("%w: ya existe un proyecto con legacyId %s", domain.ErrConflict, in.LegacyID)
		}
	}

	ts := now()
	p := &entity.Project{
		ID:                uuid.New().String(),
		LegacyID:          in.LegacyID,
		CompanyID:         company.ID,
		ClientID:          client.ID,
		Name:              name,
		Description:       in.Description,
		Status:            entity.ProjectPlanning,
		Priority:          in.Priority,
		Progress:          0,
		Budget:            in.Budget,
		ActualCost:        decimal.Zero,
		StartDate:         in.StartDate,
		EndDate:           in.EndDate,
		AssignedEmployees: team,
		CreatedBy:         actor.UserID,
		CreatedAt:         ts,
		UpdatedAt:         ts,
	}
	if err := uc.store.Projects.Create(ctx, p); err != nil {
		return nil, err
	}
	res := projectResponse(p, []*entity.Client{client}, nil)
	return &res, nil
}

// Update aplica los campos permitidos. Un employee asignado solo toca progress y actualCost.
func (uc *ProjectUseCase) Update(ctx context.Context, actor access.Actor, ref string, updates map[string]any) (*dto.ProjectResponse, error) {
	p, err := uc.find(ctx, ref)
	if err != nil {
		return nil, err
	}
	allowed, err := access.GateUpdate(actor, access.Projects, access.ProjectSubject(p), updates)
	if err != nil {
		return nil, err
	}
	var patch dto.ProjectPatch
	if err := decodePatch(allowed, &patch); err != nil {
		return nil, err
	}
	if err := uc.apply(ctx, p, patch); err != nil {
		return nil, err
	}
	p.UpdatedAt = now()
	if err := uc.store.Projects.Update(ctx, p); err != nil {
		return nil, err
	}
	return uc.respond(ctx, actor, p)
}

func (uc *ProjectUseCase) apply(ctx context.Context, p *entity.Project, patch dto.ProjectPatch) error {
	if err := requireText("name", patch.Name); err != nil {
		return err
	}
	if patch.Status != nil && !entity.ValidProjectStatus(*patch.Status) {
		return domain.Invalid("status inválido: %s", *patch.Status)
	}
	if patch.Progress != nil && (*patch.Progress < 0 || *patch.Progress > 100) {
		return domain.Invalid("progress debe estar entre 0 y 100")
	}
	if err := nonNegative("budget", patch.Budget); err != nil {
		return err
	}
	if err := nonNegative("actualCost", patch.ActualCost); err != nil {
		return err
	}

	// Cambios que afectan a las relaciones se validan contra la empresa final.
	if patch.CompanyID != nil || patch.ClientID != nil || patch.AssignedEmployees != nil {
		companyRef := p.CompanyID
		if patch.CompanyID != nil {
			companyRef = *patch.CompanyID
		}
		company, err := activeCompany(ctx, uc.store, companyRef)
		if err != nil {
			return err
		}
		clientRef := p.ClientID
		if patch.ClientID != nil {
			clientRef = *patch.ClientID
		}
		client, err := uc.clientOf(ctx, company, clientRef)
		if err != nil {
			return err
		}
		emails := p.Assignees()
		if patch.AssignedEmployees != nil {
			emails = *patch.AssignedEmployees
		}
		team, err := uc.team(ctx, company, emails, p.AssignedEmployees)
		if err != nil {
			return err
		}
		p.CompanyID = company.ID
		p.ClientID = client.ID
		p.AssignedEmployees = team
	}

	start, end := p.StartDate, p.EndDate
	if patch.StartDate != nil {
		start = patch.StartDate
	}
	if patch.EndDate != nil {
		end = patch.EndDate
	}
	if start != nil && end != nil && end.Before(*start) {
		return domain.Invalid("endDate no puede ser anterior a startDate")
	}
	p.StartDate, p.EndDate = start, end

	setString(&p.Name, patch.Name)
	setString(&p.Description, patch.Description)
	setString(&p.Status, patch.Status)
	setString(&p.Priority, patch.Priority)
	if patch.Progress != nil {
		p.Progress = *patch.Progress
	}
	if patch.Budget != nil {
		p.Budget = *patch.Budget
	}
	if patch.ActualCost != nil {
		p.ActualCost = *patch.ActualCost
	}
	return nil
}

// Purge borrado físico del proyecto junto con sus tareas. Con TxRunner ambos
// borrados son atómicos.
func (uc *ProjectUseCase) Purge(ctx context.Context, actor access.Actor, ref string) error {
	p, err := uc.find(ctx, ref)
	if err != nil {
		return err
	}
	if err := access.Require(actor, access.Projects, access.OpPurge, access.ProjectSubject(p)); err != nil {
		return err
	}
	refs := []string{p.ID}
	if p.LegacyID != "" {
		refs = append(refs, p.LegacyID)
	}
	purge := func(st *repository.Store) error {
		if _, err := st.Tasks.DeleteByProject(ctx, refs); err != nil {
			return err
		}
		return st.Projects.Delete(ctx, p.ID)
	}
	if uc.tx != nil {
		return uc.tx.Run(ctx, purge)
	}
	return purge(uc.store)
}

func (uc *ProjectUseCase) find(ctx context.Context, ref string) (*entity.Project, error) {
	return resolve(ctx, ref, uc.store.Projects.GetByID, uc.store.Projects.GetByLegacyID)
}

func (uc *ProjectUseCase) respond(ctx context.Context, actor access.Actor, p *entity.Project) (*dto.ProjectResponse, error) {
	clients, err := uc.store.Clients.List(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := uc.store.Tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := loadProjects(ctx, uc.store)
	if err != nil {
		return nil, err
	}
	res := projectResponse(p, clients, access.FilterTasks(actor, tasks, projects))
	return &res, nil
}

// clientOf exige que ref apunte a un cliente existente de la empresa.
func (uc *ProjectUseCase) clientOf(ctx context.Context, company *entity.CompanyProfile, ref string) (*entity.Client, error) {
	if ref == "" {
		return nil, domain.Invalid("clientId requerido")
	}
	c, err := resolve(ctx, ref, uc.store.Clients.GetByID, uc.store.Clients.GetByLegacyID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.Invalid("el cliente %s no existe", ref)
		}
		return nil, err
	}
	if !company.HasRef(c.CompanyID) {
		return nil, domain.Invalid("el cliente %s no pertenece a la empresa %s", ref, company.ID)
	}
	return c, nil
}

// team valida que cada email sea un colaborador activo de la empresa. Conserva
// rol y fecha de asignación de quienes ya estaban en current.
func (uc *ProjectUseCase) team(ctx context.Context, company *entity.CompanyProfile, emails []string, current map[string]entity.Assignment) (map[string]entity.Assignment, error) {
	out := make(map[string]entity.Assignment, len(emails))
	ts := now()
	for _, raw := range emails {
		email := strings.ToLower(strings.TrimSpace(raw))
		if email == "" {
			continue
		}
		if _, dup := out[email]; dup {
			continue
		}
		if a, ok := current[email]; ok {
			out[email] = a
			continue
		}
		e, err := uc.store.Employees.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if e == nil || !company.HasRef(e.CompanyID) {
			return nil, domain.Invalid("%s no es colaborador de la empresa", email)
		}
		if !e.IsActive() {
			return nil, domain.Invalid("%s está inactivo", email)
		}
		out[email] = entity.Assignment{Role: e.Position, AssignedAt: ts}
	}
	return out, nil
}

func projectResponse(p *entity.Project, clients []*entity.Client, tasks []*entity.Task) dto.ProjectResponse {
	res := dto.ProjectFromEntity(p)
	if c := findClient(clients, p.ClientID); c != nil {
		res.ClientName = c.Name
	}
	for _, t := range tasks {
		if !p.HasRef(t.ProjectID) {
			continue
		}
		res.TotalTasks++
		if t.Status == entity.TaskCompleted {
			res.CompletedTasks++
		}
	}
	return res
}

func findClient(clients []*entity.Client, ref string) *entity.Client {
	for _, c := range clients {
		if c.HasRef(ref) {
			return c
		}
	}
	return nil
}

func nonNegative(field string, d *decimal.Decimal) error {
	if d != nil && d.IsNegative() {
		return domain.Invalid("%s no puede ser negativo", field)
	}
	return nil
}
