package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trictux/trictux-api/internal/application/dto"
	"github.com/trictux/trictux-api/internal/domain"
	"github.com/trictux/trictux-api/internal/domain/access"
	"github.com/trictux/trictux-api/internal/domain/entity"
)

func TestTask_CreateYAsignacion(t *testing.T) {
	e := newEnv(t)
	_, acme := e.company("acme@trictux.test", "Acme")
	_, globex := e.company("globex@trictux.test", "Globex")
	e.employee(acme, "eva@acme.test")
	e.employee(globex, "gus@globex.test")
	p := e.project(acme, e.client(acme, "A").ID, "Portal")

	task, err := e.tasks.Create(e.ctx, acme, dto.CreateTaskRequest{ProjectID: p.ID, Title: "Diseño", AssignedTo: "Eva@acme.test"})
	require.NoError(t, err)
	assert.Equal(t, entity.TaskTodo, task.Status)
	assert.Equal(t, "eva@acme.test", task.AssignedTo)
	assert.Equal(t, "Portal", task.ProjectName)

	_, err = e.tasks.Create(e.ctx, acme, dto.CreateTaskRequest{ProjectID: p.ID, Title: "X", AssignedTo: "gus@globex.test"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Toda tarea tiene responsable: ni se crea sin él ni se puede vaciar.
	_, err = e.tasks.Create(e.ctx, acme, dto.CreateTaskRequest{ProjectID: p.ID, Title: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = e.tasks.Update(e.ctx, acme, task.ID, map[string]any{"assignedTo": " "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	got, err := e.tasks.Get(e.ctx, acme, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "eva@acme.test", got.AssignedTo)

	_, err = e.tasks.Create(e.ctx, acme, dto.CreateTaskRequest{ProjectID: "no-existe", Title: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.tasks.Create(e.ctx, globex, dto.CreateTaskRequest{ProjectID: p.ID, Title: "X"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTask_CompletedAt(t *testing.T) {
	e := newEnv(t)
	_, acme := e.company("acme@trictux.test", "Acme")
	e.employee(acme, "eva@acme.test")
	p := e.project(acme, e.client(acme, "A").ID, "Portal", "eva@acme.test")
	task, err := e.tasks.Create(e.ctx, acme, dto.CreateTaskRequest{ProjectID: p.ID, Title: "T", AssignedTo: "eva@acme.test"})
	require.NoError(t, err)
	assert.Nil(t, task.CompletedAt)

	done, err := e.tasks.Update(e.ctx, acme, task.ID, map[string]any{"status": entity.TaskCompleted})
	require.NoError(t, err)
	require.NotNil(t, done.CompletedAt)
	assert.WithinDuration(t, time.Now(), *done.CompletedAt, time.Minute)

	reopened, err := e.tasks.Update(e.ctx, acme, task.ID, map[string]any{"status": entity.TaskInProgress})
	require.NoError(t, err)
	assert.Nil(t, reopened.CompletedAt)

	at := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)
	explicit, err := e.tasks.Update(e.ctx, acme, task.ID, map[string]any{
		"status": entity.TaskCompleted, "completedAt": at.Format(time.RFC3339),
	})
	require.NoError(t, err)
	require.NotNil(t, explicit.CompletedAt)
	assert.True(t, at.Equal(*explicit.CompletedAt))
}

func TestTask_EmpleadoCompletaYQuedaSellada(t *testing.T) {
	e := newEnv(t)
	_, acme := e.company("acme@trictux.test", "Acme")
	_, eva := e.employee(acme, "eva@acme.test")
	p := e.project(acme, e.client(acme, "A").ID, "Portal", "eva@acme.test")
	task, err := e.tasks.Create(e.ctx, acme, dto.CreateTaskRequest{ProjectID: p.ID, Title: "T", AssignedTo: "eva@acme.test"})
	require.NoError(t, err)

	_, err = e.tasks.Update(e.ctx, eva, task.ID, map[string]any{"status": entity.TaskCompleted})
	require.NoError(t, err)

	for name, actor := range map[string]access.Actor{"employee": eva, "company": acme} {
		got, err := e.tasks.Get(e.ctx, actor, task.ID)
		require.NoError(t, err, name)
		assert.Equal(t, entity.TaskCompleted, got.Status, name)
		require.NotNil(t, got.CompletedAt, name)
		assert.WithinDuration(t, time.Now(), *got.CompletedAt, time.Minute, name)
	}
}

func TestTask_EmpleadoSoloSusTareasYCampos(t *testing.T) {
	e := newEnv(t)
	_, acme := e.company("acme@trictux.test", "Acme")
	_, eva := e.employee(acme, "eva@acme.test")
	_, leo := e.employee(acme, "leo@acme.test")
	p := e.project(acme, e.client(acme, "A").ID, "Portal", "eva@acme.test", "leo@acme.test")
	mine, err := e.tasks.Create(e.ctx, acme, dto.CreateTaskRequest{ProjectID: p.ID, Title: "Eva", AssignedTo: "eva@acme.test"})
	require.NoError(t, err)
	_, err = e.tasks.Create(e.ctx, acme, dto.CreateTaskRequest{ProjectID: p.ID, Title: "Leo", AssignedTo: "leo@acme.test"})
	require.NoError(t, err)

	list, err := e.tasks.List(e.ctx, eva, dto.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Eva", list[0].Title)

	got, err := e.tasks.Update(e.ctx, eva, mine.ID, map[string]any{"status": entity.TaskInProgress, "title": "Otro", "actualHours": 2.5})
	require.NoError(t, err)
	assert.Equal(t, entity.TaskInProgress, got.Status)
	assert.Equal(t, "Eva", got.Title)
	assert.Equal(t, "2.5", got.ActualHours.String())

	_, err = e.tasks.Update(e.ctx, leo, mine.ID, map[string]any{"status": entity.TaskCompleted})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = e.tasks.Create(e.ctx, eva, dto.CreateTaskRequest{ProjectID: p.ID, Title: "X"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.ErrorIs(t, e.tasks.Purge(e.ctx, eva, mine.ID), domain.ErrForbidden)
}

func TestTask_FiltroPorProyecto(t *testing.T) {
	e := newEnv(t)
	_, acme := e.company("acme@trictux.test", "Acme")
	e.employee(acme, "eva@acme.test")
	c := e.client(acme, "A")
	p1 := e.project(acme, c.ID, "P1", "eva@acme.test")
	p2 := e.project(acme, c.ID, "P2", "eva@acme.test")
	for _, pid := range []string{p1.ID, p1.ID, p2.ID} {
		_, err := e.tasks.Create(e.ctx, acme, dto.CreateTaskRequest{ProjectID: pid, Title: "T", AssignedTo: "eva@acme.test"})
		require.NoError(t, err)
	}

	list, err := e.tasks.List(e.ctx, acme, dto.TaskFilter{ProjectID: p1.ID})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
