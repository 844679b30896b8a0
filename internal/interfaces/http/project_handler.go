package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trictux/trictux-api/internal/application/dto"
	"github.com/trictux/trictux-api/internal/application/report"
	"github.com/trictux/trictux-api/internal/application/usecase"
	"github.com/trictux/trictux-api/pkg/logger"
)

// ProjectHandler proyectos y su informe PDF.
type ProjectHandler struct {
	uc     *usecase.ProjectUseCase
	report *report.ProjectReportUseCase
	log    *logger.Logger
}

// NewProjectHandler construye el handler.
func NewProjectHandler(uc *usecase.ProjectUseCase, rep *report.ProjectReportUseCase, log *logger.Logger) *ProjectHandler {
	return &ProjectHandler{uc: uc, report: rep, log: log}
}

// List godoc
// @Summary      Listar proyectos visibles
// @Tags         projects
// @Produce      json
// @Param        companyId  query  string  false  "Filtrar por empresa"
// @Param        clientId   query  string  false  "Filtrar por cliente"
// @Success      200  {object}  map[string][]dto.ProjectResponse
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetActor(c), dto.ProjectFilter{
		CompanyID: c.Query("companyId"),
		ClientID:  c.Query("clientId"),
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"projects": out})
}

// GetByID godoc
// @Summary      Obtener proyecto por id o legacyId
// @Tags         projects
// @Produce      json
// @Param        id   path  string  true  "Referencia del proyecto"
// @Success      200  {object}  map[string]dto.ProjectResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"project": out})
}

// Report godoc
// @Summary      Descargar informe del proyecto en PDF
// @Tags         projects
// @Produce      application/pdf
// @Param        id   path  string  true  "Referencia del proyecto"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/report [get]
func (h *ProjectHandler) Report(c *fiber.Ctx) error {
	pdf, name, err := h.report.Download(c.Context(), GetActor(c), displayName(c), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(pdf)
}

// Create godoc
// @Summary      Crear proyecto
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProjectRequest  true  "Datos del proyecto"
// @Success      201   {object}  map[string]dto.ProjectResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"project": out})
}

// Update godoc
// @Summary      Actualizar proyecto
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id   query  string  false  "Referencia (forma PUT)"
// @Success      200  {object}  map[string]dto.ProjectResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/projects [put]
// @Router       /api/projects [patch]
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id, updates, err := updateTarget(c, "projectId")
	if err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), GetActor(c), id, updates)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"project": out})
}

// Purge godoc
// @Summary      Eliminar proyecto
// @Tags         projects
// @Produce      json
// @Param        id   path  string  true  "Referencia del proyecto"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) Purge(c *fiber.Ctx) error {
	if err := h.uc.Purge(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
