package report

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/trictux/trictux-api/internal/domain"
	"github.com/trictux/trictux-api/internal/domain/access"
	"github.com/trictux/trictux-api/internal/domain/entity"
	"github.com/trictux/trictux-api/internal/domain/repository"
)

// ProjectReportUseCase genera el informe de estado de un proyecto.
type ProjectReportUseCase struct {
	store     *repository.Store
	generator ProjectReportGenerator
}

// NewProjectReportUseCase construye el caso de uso inyectando el generador.
func NewProjectReportUseCase(store *repository.Store, generator ProjectReportGenerator) *ProjectReportUseCase {
	return &ProjectReportUseCase{store: store, generator: generator}
}

// Download devuelve el PDF y un nombre de archivo. El informe solo incluye
// tareas que el actor puede ver; un proyecto fuera de alcance es ErrNotFound.
func (uc *ProjectReportUseCase) Download(ctx context.Context, actor access.Actor, generatedBy, ref string) ([]byte, string, error) {
	// ── 1. Proyecto y alcance ─────────────────────────────────────────────────
	if ref == "" {
		return nil, "", domain.Invalid("id requerido")
	}
	projects, err := uc.store.Projects.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("report: listar proyectos: %w", err)
	}
	project := access.FindProject(projects, ref)
	if project == nil || !access.CanRead(actor, access.Projects, access.ProjectSubject(project)) {
		return nil, "", domain.ErrNotFound
	}

	// ── 2. Empresa y cliente (pueden faltar) ──────────────────────────────────
	data := &ProjectReport{Project: project, GeneratedBy: generatedBy, GeneratedAt: time.Now().UTC()}
	if data.Company, err = uc.company(ctx, project.CompanyID); err != nil {
		return nil, "", err
	}
	if data.Client, err = uc.store.Clients.GetByID(ctx, project.ClientID); err != nil {
		return nil, "", fmt.Errorf("report: obtener cliente: %w", err)
	}
	if data.Client == nil && project.ClientID != "" {
		if data.Client, err = uc.store.Clients.GetByLegacyID(ctx, project.ClientID); err != nil {
			return nil, "", fmt.Errorf("report: obtener cliente: %w", err)
		}
	}

	// ── 3. Equipo ─────────────────────────────────────────────────────────────
	for _, email := range project.Assignees() {
		e, err := uc.store.Employees.GetByEmail(ctx, email)
		if err != nil {
			return nil, "", fmt.Errorf("report: obtener colaborador: %w", err)
		}
		if e != nil {
			data.Team = append(data.Team, e)
		}
	}

	// ── 4. Tareas visibles del proyecto ───────────────────────────────────────
	tasks, err := uc.store.Tasks.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("report: listar tareas: %w", err)
	}
	for _, t := range access.FilterTasks(actor, tasks, projects) {
		if project.HasRef(t.ProjectID) {
			data.Tasks = append(data.Tasks, t)
		}
	}

	// ── 5. Generar PDF ────────────────────────────────────────────────────────
	pdfBytes, err := uc.generator.GenerateProjectReport(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("report: generación fallida: %w", err)
	}
	return pdfBytes, fileName(project), nil
}

func (uc *ProjectReportUseCase) company(ctx context.Context, ref string) (*entity.CompanyProfile, error) {
	if ref == "" {
		return nil, nil
	}
	for _, get := range []func(context.Context, string) (*entity.CompanyProfile, error){
		uc.store.Companies.GetByID, uc.store.Companies.GetByLegacyID, uc.store.Companies.GetByEmail,
	} {
		c, err := get(ctx, ref)
		if err != nil {
			return nil, fmt.Errorf("report: obtener empresa: %w", err)
		}
		if c != nil {
			return c, nil
		}
	}
	return nil, nil
}

var unsafeFileChars = regexp.MustCompile(`[^a-z0-9]+`)

// fileName nombre de archivo estable a partir del nombre del proyecto.
func fileName(p *entity.Project) string {
	slug := strings.Trim(unsafeFileChars.ReplaceAllString(strings.ToLower(p.Name), "-"), "-")
	if slug == "" {
		slug = p.ID
	}
	return fmt.Sprintf("proyecto_%s.pdf", slug)
}
