// Package report informes descargables de proyectos.
package report

import (
	"context"
	"time"

	"github.com/trictux/trictux-api/internal/domain/entity"
)

// ProjectReport datos ya filtrados por alcance que se vuelcan en el informe.
// Company y Client pueden ser nil si la referencia quedó huérfana.
type ProjectReport struct {
	Project     *entity.Project
	Company     *entity.CompanyProfile
	Client      *entity.Client
	Team        []*entity.EmployeeProfile
	Tasks       []*entity.Task
	GeneratedBy string
	GeneratedAt time.Time
}

// ProjectReportGenerator puerto de salida: renderiza el informe (PDF).
type ProjectReportGenerator interface {
	GenerateProjectReport(ctx context.Context, r *ProjectReport) ([]byte, error)
}
