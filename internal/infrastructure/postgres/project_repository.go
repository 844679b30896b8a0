package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/trictux/trictux-api/internal/domain"
	"github.com/trictux/trictux-api/internal/domain/entity"
	"github.com/trictux/trictux-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo implementación de ProjectRepository sobre PostgreSQL.
// assigned_employees se guarda como JSONB {email: {role, assignedAt}}.
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador de proyectos.
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

const projectColumns = `id, COALESCE(legacy_id, ''), company_id, client_id, name, description, status,
	priority, progress, budget, actual_cost, start_date, end_date, assigned_employees, created_by,
	created_at, updated_at`

func scanProject(row pgx.Row) (*entity.Project, error) {
	var p entity.Project
	if err := row.Scan(&p.ID, &p.LegacyID, &p.CompanyID, &p.ClientID, &p.Name, &p.Description, &p.Status,
		&p.Priority, &p.Progress, &p.Budget, &p.ActualCost, &p.StartDate, &p.EndDate, &p.AssignedEmployees,
		&p.CreatedBy, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if p.AssignedEmployees == nil {
		p.AssignedEmployees = map[string]entity.Assignment{}
	}
	return &p, nil
}

func assignments(p *entity.Project) map[string]entity.Assignment {
	if p.AssignedEmployees == nil {
		return map[string]entity.Assignment{}
	}
	return p.AssignedEmployees
}

// Create persiste un proyecto.
func (r *ProjectRepo) Create(ctx context.Context, p *entity.Project) error {
	query := `
		INSERT INTO projects (id, legacy_id, company_id, client_id, name, description, status, priority,
			progress, budget, actual_cost, start_date, end_date, assigned_employees, created_by,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		p.ID, nullable(p.LegacyID), p.CompanyID, p.ClientID, p.Name, p.Description, p.Status, p.Priority,
		p.Progress, p.Budget, p.ActualCost, p.StartDate, p.EndDate, assignments(p), p.CreatedBy,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ya existe un proyecto con ese identificador", domain.ErrConflict)
		}
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID obtiene un proyecto por ID.
func (r *ProjectRepo) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	return r.getOne(ctx, `SELECT `+projectColumns+` FROM projects WHERE id::text = $1`, id)
}

// GetByLegacyID obtiene un proyecto por su alias legado.
func (r *ProjectRepo) GetByLegacyID(ctx context.Context, legacyID string) (*entity.Project, error) {
	return r.getOne(ctx, `SELECT `+projectColumns+` FROM projects WHERE legacy_id = $1`, legacyID)
}

func (r *ProjectRepo) getOne(ctx context.Context, query, arg string) (*entity.Project, error) {
	if arg == "" {
		return nil, nil
	}
	p, err := scanProject(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

// List devuelve todos los proyectos.
func (r *ProjectRepo) List(ctx context.Context) ([]*entity.Project, error) {
	rows, err := r.q.Query(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	list, err := collect(rows, scanProject)
	if err != nil {
		return nil, fmt.Errorf("scan project: %w", err)
	}
	return list, nil
}

// Update reescribe los campos editables de un proyecto en una sola sentencia.
func (r *ProjectRepo) Update(ctx context.Context, p *entity.Project) error {
	query := `
		UPDATE projects SET company_id = $2, client_id = $3, name = $4, description = $5, status = $6,
			priority = $7, progress = $8, budget = $9, actual_cost = $10, start_date = $11, end_date = $12,
			assigned_employees = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.CompanyID, p.ClientID, p.Name, p.Description, p.Status, p.Priority, p.Progress,
		p.Budget, p.ActualCost, p.StartDate, p.EndDate, assignments(p), p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// Delete borra físicamente el proyecto. Las tareas se borran aparte con TaskRepo.DeleteByProject.
func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
