package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trictux/trictux-api/internal/application/dto"
	"github.com/trictux/trictux-api/internal/domain"
	"github.com/trictux/trictux-api/internal/domain/access"
	"github.com/trictux/trictux-api/internal/domain/entity"
	"github.com/trictux/trictux-api/internal/domain/repository"
)

// TaskUseCase casos de uso de tareas.
type TaskUseCase struct {
	store *repository.Store
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(store *repository.Store) *TaskUseCase {
	return &TaskUseCase{store: store}
}

// List tareas visibles, filtrables por proyecto.
func (uc *TaskUseCase) List(ctx context.Context, actor access.Actor, f dto.TaskFilter) ([]dto.TaskResponse, error) {
	if _, err := access.Authorize(actor, access.Tasks, access.OpList); err != nil {
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
	var only *entity.Project
	if f.ProjectID != "" {
		if only = access.FindProject(projects, f.ProjectID); only == nil {
			return []dto.TaskResponse{}, nil
		}
	}
	visible := access.FilterTasks(actor, tasks, projects)
	out := make([]dto.TaskResponse, 0, len(visible))
	for _, t := range visible {
		if only != nil && !only.HasRef(t.ProjectID) {
			continue
		}
		out = append(out, taskResponse(t, access.FindProject(projects, t.ProjectID)))
	}
	return out, nil
}

// Get tarea por id.
func (uc *TaskUseCase) Get(ctx context.Context, actor access.Actor, id string) (*dto.TaskResponse, error) {
	t, project, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanRead(actor, access.Tasks, access.TaskSubject(t, project)) {
		return nil, domain.ErrNotFound
	}
	res := taskResponse(t, project)
	return &res, nil
}

// Create alta de tarea en un proyecto de la empresa del actor.
func (uc *TaskUseCase) Create(ctx context.Context, actor access.Actor, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if _, err := access.Authorize(actor, access.Tasks, access.OpCreate); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domain.Invalid("el título de la tarea es requerido")
	}
	if in.ProjectID == "" {
		return nil, domain.Invalid("projectId requerido")
	}
	project, err := resolve(ctx, in.ProjectID, uc.store.Projects.GetByID, uc.store.Projects.GetByLegacyID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.Invalid("el proyecto %s no existe", in.ProjectID)
		}
		return nil, err
	}
	if err := access.Require(actor, access.Tasks, access.OpCreate, access.Subject{CompanyRefs: []string{project.CompanyID}}); err != nil {
		return nil, err
	}
	assignee, err := uc.assignee(ctx, project, in.AssignedTo)
	if err != nil {
		return nil, err
	}
	if err := nonNegative("estimatedHours", &in.EstimatedHours); err != nil {
		return nil, err
	}

	ts := now()
	t := &entity.Task{
		ID:             uuid.New().String(),
		ProjectID:      project.ID,
		Title:          title,
		Description:    in.Description,
		AssignedTo:     assignee,
		Status:         entity.TaskTodo,
		Priority:       in.Priority,
		EstimatedHours: in.EstimatedHours,
		ActualHours:    decimal.Zero,
		DueDate:        in.DueDate,
		CreatedBy:      actor.UserID,
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}
	if err := uc.store.Tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	res := taskResponse(t, project)
	return &res, nil
}

// Update aplica los campos permitidos. Pasar a completed sin completedAt lo sella
// con la hora del servidor; salir de completed lo limpia.
func (uc *TaskUseCase) Update(ctx context.Context, actor access.Actor, id string, updates map[string]any) (*dto.TaskResponse, error) {
	t, project, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	allowed, err := access.GateUpdate(actor, access.Tasks, access.TaskSubject(t, project), updates)
	if err != nil {
		return nil, err
	}
	var p dto.TaskPatch
	if err := decodePatch(allowed, &p); err != nil {
		return nil, err
	}
	if err := requireText("title", p.Title); err != nil {
		return nil, err
	}
	if p.Status != nil && !entity.ValidTaskStatus(*p.Status) {
		return nil, domain.Invalid("status inválido: %s", *p.Status)
	}
	if err := nonNegative("estimatedHours", p.EstimatedHours); err != nil {
		return nil, err
	}
	if err := nonNegative("actualHours", p.ActualHours); err != nil {
		return nil, err
	}
	if p.AssignedTo != nil {
		if project == nil {
			return nil, domain.Invalid("la tarea no tiene un proyecto válido")
		}
		assignee, err := uc.assignee(ctx, project, *p.AssignedTo)
		if err != nil {
			return nil, err
		}
		t.AssignedTo = assignee
	}

	setString(&t.Title, p.Title)
	setString(&t.Description, p.Description)
	setString(&t.Priority, p.Priority)
	if p.EstimatedHours != nil {
		t.EstimatedHours = *p.EstimatedHours
	}
	if p.ActualHours != nil {
		t.ActualHours = *p.ActualHours
	}
	if p.DueDate != nil {
		t.DueDate = p.DueDate
	}
	if p.CompletedAt != nil {
		t.CompletedAt = p.CompletedAt
	}
	if p.Status != nil {
		t.Status = *p.Status
		switch {
		case t.Status == entity.TaskCompleted && t.CompletedAt == nil:
			ts := now()
			t.CompletedAt = &ts
		case t.Status != entity.TaskCompleted && p.CompletedAt == nil:
			t.CompletedAt = nil
		}
	}

	t.UpdatedAt = now()
	if err := uc.store.Tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	res := taskResponse(t, project)
	return &res, nil
}

// Purge borrado físico de la tarea.
func (uc *TaskUseCase) Purge(ctx context.Context, actor access.Actor, id string) error {
	t, project, err := uc.find(ctx, id)
	if err != nil {
		return err
	}
	if err := access.Require(actor, access.Tasks, access.OpPurge, access.TaskSubject(t, project)); err != nil {
		return err
	}
	return uc.store.Tasks.Delete(ctx, t.ID)
}

// find carga la tarea y su proyecto (nil si el proyecto ya no existe).
func (uc *TaskUseCase) find(ctx context.Context, id string) (*entity.Task, *entity.Project, error) {
	t, err := resolve(ctx, id, uc.store.Tasks.GetByID)
	if err != nil {
		return nil, nil, err
	}
	project, err := resolve(ctx, t.ProjectID, uc.store.Projects.GetByID, uc.store.Projects.GetByLegacyID)
	if err != nil && !domain.IsNotFound(err) && t.ProjectID != "" {
		return nil, nil, err
	}
	return t, project, nil
}

// assignee exige un colaborador activo de la empresa del proyecto. Toda tarea
// tiene exactamente un responsable, así que vacío es inválido.
func (uc *TaskUseCase) assignee(ctx context.Context, project *entity.Project, raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", domain.Invalid("assignedTo requerido")
	}
	e, err := uc.store.Employees.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if e == nil {
		return "", domain.Invalid("%s no es colaborador", email)
	}
	company, err := findCompany(ctx, uc.store, project.CompanyID)
	if err != nil {
		return "", err
	}
	if !belongsTo(company, e.CompanyID, project.CompanyID) {
		return "", domain.Invalid("%s no pertenece a la empresa del proyecto", email)
	}
	if !e.IsActive() {
		return "", domain.Invalid("%s está inactivo", email)
	}
	return email, nil
}

func taskResponse(t *entity.Task, project *entity.Project) dto.TaskResponse {
	res := dto.TaskFromEntity(t)
	if project != nil {
		res.ProjectName = project.Name
	}
	return res
}
