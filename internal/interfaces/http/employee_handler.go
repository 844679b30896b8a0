package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trictux/trictux-api/internal/application/dto"
	"github.com/trictux/trictux-api/internal/application/usecase"
	"github.com/trictux/trictux-api/pkg/logger"
)

// EmployeeHandler colaboradores de las empresas.
type EmployeeHandler struct {
	uc  *usecase.EmployeeUseCase
	log *logger.Logger
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase, log *logger.Logger) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar colaboradores visibles
// @Tags         employees
// @Produce      json
// @Param        companyId  query  string  false  "Filtrar por empresa"
// @Success      200  {object}  map[string][]dto.EmployeeResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetActor(c), dto.EmployeeFilter{CompanyID: c.Query("companyId")})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"employees": out})
}

// GetByID godoc
// @Summary      Obtener colaborador por id o email
// @Tags         employees
// @Produce      json
// @Param        id   path  string  true  "id o email"
// @Success      200  {object}  map[string]dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"employee": out})
}

// Create godoc
// @Summary      Crear colaborador (cuenta + perfil)
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "Datos del colaborador"
// @Success      201   {object}  map[string]dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"employee": out})
}

// Update godoc
// @Summary      Actualizar colaborador
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id   query  string  false  "Referencia (forma PUT)"
// @Success      200  {object}  map[string]dto.EmployeeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/employees [put]
// @Router       /api/employees [patch]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, updates, err := updateTarget(c, "employeeId")
	if err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), GetActor(c), id, updates)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"employee": out})
}

// Deactivate godoc
// @Summary      Desactivar colaborador y su cuenta
// @Tags         employees
// @Produce      json
// @Param        id   path  string  true  "id o email"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Deactivate(c *fiber.Ctx) error {
	if _, err := h.uc.Deactivate(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "colaborador desactivado"})
}
