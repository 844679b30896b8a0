package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/trictux/trictux-api/internal/domain/entity"
	"github.com/trictux/trictux-api/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo implementación de TaskRepository sobre PostgreSQL.
type TaskRepo struct {
	q Querier
}

// NewTaskRepository construye el adaptador de tareas.
func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

const taskColumns = `id, project_id, title, description, assigned_to, status, priority, estimated_hours,
	actual_hours, due_date, completed_at, created_by, created_at, updated_at`

func scanTask(row pgx.Row) (*entity.Task, error) {
	var t entity.Task
	if err := row.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.AssignedTo, &t.Status, &t.Priority,
		&t.EstimatedHours, &t.ActualHours, &t.DueDate, &t.CompletedAt, &t.CreatedBy, &t.CreatedAt,
		&t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste una tarea.
func (r *TaskRepo) Create(ctx context.Context, t *entity.Task) error {
	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.ProjectID, t.Title, t.Description, t.AssignedTo, t.Status, t.Priority, t.EstimatedHours,
		t.ActualHours, t.DueDate, t.CompletedAt, t.CreatedBy, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// DeleteByProject borra las tareas de un proyecto referenciado por id o alias legado.
func (r *TaskRepo) DeleteByProject(ctx context.Context, refs []string) (int, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM tasks WHERE project_id = ANY($1)`, refs)
	if err != nil {
		return 0, fmt.Errorf("delete tasks by project: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// GetByID obtiene una tarea por ID.
func (r *TaskRepo) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	t, err := scanTask(r.q.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id::text = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// List devuelve todas las tareas.
func (r *TaskRepo) List(ctx context.Context) ([]*entity.Task, error) {
	rows, err := r.q.Query(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	list, err := collect(rows, scanTask)
	if err != nil {
		return nil, fmt.Errorf("scan task: %w", err)
	}
	return list, nil
}

// Update reescribe los campos editables de una tarea.
func (r *TaskRepo) Update(ctx context.Context, t *entity.Task) error {
	query := `
		UPDATE tasks SET title = $2, description = $3, assigned_to = $4, status = $5, priority = $6,
			estimated_hours = $7, actual_hours = $8, due_date = $9, completed_at = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.Title, t.Description, t.AssignedTo, t.Status, t.Priority, t.EstimatedHours, t.ActualHours,
		t.DueDate, t.CompletedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// Delete borra físicamente una tarea.
func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
