package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/trictux/trictux-api/internal/application/analytics"
	"github.com/trictux/trictux-api/pkg/logger"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc  *appanalytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// GetSummary devuelve los contadores del panel dentro del alcance del usuario.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummary (role, displayName, totales por recurso y
// distribución de proyectos y tareas por estado).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary(c.Context(), GetActor(c), displayName(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"summary": summary})
}
