package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trictux/trictux-api/internal/application/dto"
	"github.com/trictux/trictux-api/internal/application/usecase"
	"github.com/trictux/trictux-api/pkg/logger"
)

// CompanyHandler maneja las peticiones HTTP para el recurso Company.
type CompanyHandler struct {
	uc  *usecase.CompanyUseCase
	log *logger.Logger
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase, log *logger.Logger) *CompanyHandler {
	return &CompanyHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar empresas visibles
// @Tags         companies
// @Produce      json
// @Success      200  {object}  map[string][]dto.CompanyResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetActor(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"companies": out})
}

// GetByID godoc
// @Summary      Obtener empresa por id, legacyId o email
// @Tags         companies
// @Produce      json
// @Param        id   path  string  true  "Referencia de la empresa"
// @Success      200  {object}  map[string]dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"company": out})
}

// Create godoc
// @Summary      Crear empresa (cuenta + perfil)
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  map[string]dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"company": out})
}

// Update godoc
// @Summary      Actualizar empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id   query  string  false  "Referencia (forma PUT)"
// @Success      200  {object}  map[string]dto.CompanyResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/companies [put]
// @Router       /api/companies [patch]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	id, updates, err := updateTarget(c, "companyId")
	if err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), GetActor(c), id, updates)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"company": out})
}

// Deactivate godoc
// @Summary      Desactivar empresa y su cuenta
// @Tags         companies
// @Produce      json
// @Param        id   path  string  true  "Referencia de la empresa"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [delete]
func (h *CompanyHandler) Deactivate(c *fiber.Ctx) error {
	if _, err := h.uc.Deactivate(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "empresa desactivada"})
}
