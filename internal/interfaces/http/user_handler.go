package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trictux/trictux-api/internal/application/usecase"
	"github.com/trictux/trictux-api/pkg/logger"
)

// UserHandler cuentas de acceso (administración del owner).
type UserHandler struct {
	uc  *usecase.UserUseCase
	log *logger.Logger
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar cuentas
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string][]dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetActor(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"users": out})
}

// GetByID godoc
// @Summary      Obtener cuenta por id o email
// @Tags         users
// @Produce      json
// @Param        id   path  string  true  "id o email"
// @Success      200  {object}  map[string]dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"user": out})
}

// Update godoc
// @Summary      Actualizar cuenta (name, status)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    query  string  false  "id (forma PUT)"
// @Success      200   {object}  map[string]dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/users [put]
// @Router       /api/users [patch]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, updates, err := updateTarget(c, "userId")
	if err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), GetActor(c), id, updates)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"user": out})
}
