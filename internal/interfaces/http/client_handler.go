package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trictux/trictux-api/internal/application/dto"
	"github.com/trictux/trictux-api/internal/application/usecase"
	"github.com/trictux/trictux-api/pkg/logger"
)

// ClientHandler clientes de las empresas.
type ClientHandler struct {
	uc  *usecase.ClientUseCase
	log *logger.Logger
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase, log *logger.Logger) *ClientHandler {
	return &ClientHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar clientes visibles
// @Tags         clients
// @Produce      json
// @Param        companyId  query  string  false  "Filtrar por empresa"
// @Success      200  {object}  map[string][]dto.ClientResponse
// @Router       /api/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetActor(c), dto.ClientFilter{CompanyID: c.Query("companyId")})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"clients": out})
}

// GetByID godoc
// @Summary      Obtener cliente por id o legacyId
// @Tags         clients
// @Produce      json
// @Param        id   path  string  true  "Referencia del cliente"
// @Success      200  {object}  map[string]dto.ClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"client": out})
}

// Create godoc
// @Summary      Crear cliente
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClientRequest  true  "Datos del cliente"
// @Success      201   {object}  map[string]dto.ClientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"client": out})
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id   query  string  false  "Referencia (forma PUT)"
// @Success      200  {object}  map[string]dto.ClientResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/clients [put]
// @Router       /api/clients [patch]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, updates, err := updateTarget(c, "clientId")
	if err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), GetActor(c), id, updates)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"client": out})
}

// Deactivate godoc
// @Summary      Desactivar cliente
// @Tags         clients
// @Produce      json
// @Param        id   path  string  true  "Referencia del cliente"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/clients/{id} [delete]
func (h *ClientHandler) Deactivate(c *fiber.Ctx) error {
	if _, err := h.uc.Deactivate(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cliente desactivado"})
}
