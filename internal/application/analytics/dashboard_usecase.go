// Package analytics agregados de solo lectura sobre lo que el actor puede ver.
package analytics

import (
	"context"
	"fmt"

	"github.com/trictux/trictux-api/internal/application/dto"
	"github.com/trictux/trictux-api/internal/domain/access"
	"github.com/trictux/trictux-api/internal/domain/entity"
	"github.com/trictux/trictux-api/internal/domain/repository"
)

// DashboardUseCase resumen del panel principal.
type DashboardUseCase struct {
	store *repository.Store
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store *repository.Store) *DashboardUseCase {
	return &DashboardUseCase{store: store}
}

type listResult[T any] struct {
	items []*T
	err   error
}

func async[T any](ctx context.Context, list func(context.Context) ([]*T, error)) <-chan listResult[T] {
	ch := make(chan listResult[T], 1)
	go func() {
		items, err := list(ctx)
		ch <- listResult[T]{items, err}
	}()
	return ch
}

// Summary cuenta registros visibles por colección y proyectos/tareas por estado.
// Un rol sin permiso de listado sobre una colección ve cero en ella.
func (uc *DashboardUseCase) Summary(ctx context.Context, actor access.Actor, displayName string) (*dto.DashboardSummary, error) {
	// ── Cinco lecturas en paralelo ────────────────────────────────────────────
	companiesCh := async(ctx, uc.store.Companies.List)
	clientsCh := async(ctx, uc.store.Clients.List)
	employeesCh := async(ctx, uc.store.Employees.List)
	projectsCh := async(ctx, uc.store.Projects.List)
	tasksCh := async(ctx, uc.store.Tasks.List)

	companies, clients, employees := <-companiesCh, <-clientsCh, <-employeesCh
	projects, tasks := <-projectsCh, <-tasksCh

	for name, err := range map[string]error{
		"empresas": companies.err, "clientes": clients.err, "colaboradores": employees.err,
		"proyectos": projects.err, "tareas": tasks.err,
	} {
		if err != nil {
			return nil, fmt.Errorf("dashboard: %s: %w", name, err)
		}
	}

	// ── Aplicar alcance ───────────────────────────────────────────────────────
	visibleProjects := access.FilterProjects(actor, projects.items)
	visibleTasks := access.FilterTasks(actor, tasks.items, projects.items)
	out := &dto.DashboardSummary{
		Role:        actor.Role,
		DisplayName: displayName,
		Companies:   len(access.FilterCompanies(actor, companies.items)),
		Clients:     len(access.FilterClients(actor, clients.items, projects.items)),
		Employees:   len(access.FilterEmployees(actor, employees.items)),
		Projects:    len(visibleProjects),
		Tasks:       len(visibleTasks),
		ProjectsByStatus: map[string]int{
			entity.ProjectPlanning: 0, entity.ProjectInProgress: 0,
			entity.ProjectCompleted: 0, entity.ProjectOnHold: 0,
		},
		TasksByStatus: map[string]int{
			entity.TaskTodo: 0, entity.TaskInProgress: 0, entity.TaskCompleted: 0,
		},
	}
	for _, p := range visibleProjects {
		out.ProjectsByStatus[p.Status]++
	}
	for _, t := range visibleTasks {
		out.TasksByStatus[t.Status]++
	}
	return out, nil
}
