package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trictux/trictux-api/internal/application/dto"
	"github.com/trictux/trictux-api/internal/application/usecase"
	"github.com/trictux/trictux-api/pkg/logger"
)

// TaskHandler tareas de los proyectos.
type TaskHandler struct {
	uc  *usecase.TaskUseCase
	log *logger.Logger
}

// NewTaskHandler construye el handler.
func NewTaskHandler(uc *usecase.TaskUseCase, log *logger.Logger) *TaskHandler {
	return &TaskHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar tareas visibles
// @Tags         tasks
// @Produce      json
// @Param        projectId  query  string  false  "Filtrar por proyecto"
// @Success      200  {object}  map[string][]dto.TaskResponse
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetActor(c), dto.TaskFilter{ProjectID: c.Query("projectId")})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"tasks": out})
}

// GetByID godoc
// @Summary      Obtener tarea
// @Tags         tasks
// @Produce      json
// @Param        id   path  string  true  "ID de la tarea"
// @Success      200  {object}  map[string]dto.TaskResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tasks/{id} [get]
func (h *TaskHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"task": out})
}

// Create godoc
// @Summary      Crear tarea
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTaskRequest  true  "Datos de la tarea"
// @Success      201   {object}  map[string]dto.TaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"task": out})
}

// Update godoc
// @Summary      Actualizar tarea
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id   query  string  false  "ID (forma PUT)"
// @Success      200  {object}  map[string]dto.TaskResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/tasks [put]
// @Router       /api/tasks [patch]
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	id, updates, err := updateTarget(c, "taskId")
	if err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), GetActor(c), id, updates)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"task": out})
}

// Purge godoc
// @Summary      Eliminar tarea
// @Tags         tasks
// @Produce      json
// @Param        id   path  string  true  "ID de la tarea"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Purge(c *fiber.Ctx) error {
	if err := h.uc.Purge(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
