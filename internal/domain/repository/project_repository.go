package repository

import (
	"context"

	"github.com/trictux/trictux-api/internal/domain/entity"
)

// ProjectRepository define el puerto de persistencia para Project.
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	GetByLegacyID(ctx context.Context, legacyID string) (*entity.Project, error)
	List(ctx context.Context) ([]*entity.Project, error)
	Update(ctx context.Context, project *entity.Project) error
	// Delete elimina físicamente el proyecto (no hay desactivación lógica para proyectos).
	Delete(ctx context.Context, id string) error
}

// TaskRepository define el puerto de persistencia para Task.
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	List(ctx context.Context) ([]*entity.Task, error)
	Update(ctx context.Context, task *entity.Task) error
	Delete(ctx context.Context, id string) error
	// DeleteByProject borra las tareas cuyo projectId es cualquiera de refs (id o alias legado).
	DeleteByProject(ctx context.Context, refs []string) (int, error)
}
