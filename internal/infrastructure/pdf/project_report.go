// Package pdf genera el informe de estado de proyecto con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Proyecto + Empresa  │  Estado + Fecha               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + contacto                                  │
//	│  RESUMEN: Progreso | Presupuesto | Costo real | Fechas       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EQUIPO: Nombre | Email | Cargo                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TAREAS: Título | Responsable | Estado | Horas               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: generado por / fecha                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/trictux/trictux-api/internal/application/report"
	"github.com/trictux/trictux-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDone    = &props.Color{Red: 30, Green: 130, Blue: 60}
)

var titleCase = cases.Title(language.Spanish)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ report.ProjectReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.ProjectReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateProjectReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateProjectReport(_ context.Context, r *report.ProjectReport) ([]byte, error) {
	author := "Trictux"
	if r.Company != nil {
		author = r.Company.Name
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de proyecto: "+r.Project.Name, true).
		WithAuthor(author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(r.Client))
	m.AddRows(summaryRow(r.Project))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle(fmt.Sprintf("EQUIPO (%d)", len(r.Team))))
	m.AddRows(tableHeader([]string{"Nombre", "Email", "Cargo"}, []int{4, 5, 3}))
	m.AddRows(teamRows(r.Team)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle(fmt.Sprintf("TAREAS (%d)", len(r.Tasks))))
	m.AddRows(tableHeader([]string{"Título", "Responsable", "Estado", "Horas est.", "Horas reales"}, []int{4, 3, 2, 1, 2}))
	m.AddRows(taskRows(r.Tasks)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(r))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del proyecto + empresa (izq) y estado + fecha de corte (der).
func headerRow(r *report.ProjectReport) core.Row {
	company := "Empresa sin registrar"
	if r.Company != nil {
		company = r.Company.Name
	}
	return row.New(18).Add(
		col.New(8).Add(
			text.New(r.Project.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(company, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("INFORME DE PROYECTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(statusLabel(r.Project.Status), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+r.GeneratedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clientRow: datos del cliente del proyecto.
func clientRow(c *entity.Client) core.Row {
	name, contact := "Cliente no disponible", "—"
	if c != nil {
		name = c.Name
		contact = fmt.Sprintf("Contacto: %s   |   Email: %s   |   Tel: %s",
			nonEmpty(c.ContactName, "—"), nonEmpty(c.Email, "—"), nonEmpty(c.Phone, "—"))
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(contact, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// summaryRow: progreso, presupuesto, costo real y fechas.
func summaryRow(p *entity.Project) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
			text.New(value, props.Text{Size: 10, Top: 8}),
		)
	}
	return row.New(16).Add(
		cell("PROGRESO", fmt.Sprintf("%d%%", p.Progress)),
		cell("PRESUPUESTO", money(p.Budget)),
		cell("COSTO REAL", money(p.ActualCost)),
		cell("FECHAS", dateRange(p.StartDate, p.EndDate)),
	)
}

func sectionTitle(label string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	))
}

func tableHeader(labels []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(labels))
	for i, l := range labels {
		cols = append(cols, col.New(sizes[i]).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1, Left: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func teamRows(team []*entity.EmployeeProfile) []core.Row {
	if len(team) == 0 {
		return []core.Row{emptyRow("Sin colaboradores asignados")}
	}
	rows := make([]core.Row, 0, len(team))
	for _, e := range team {
		rows = append(rows, row.New(6).Add(
			col.New(4).Add(cellText(nonEmpty(e.Name, e.Email))),
			col.New(5).Add(cellText(e.Email)),
			col.New(3).Add(cellText(nonEmpty(e.Position, "—"))),
		))
	}
	return rows
}

func taskRows(tasks []*entity.Task) []core.Row {
	if len(tasks) == 0 {
		return []core.Row{emptyRow("Sin tareas")}
	}
	rows := make([]core.Row, 0, len(tasks))
	for _, t := range tasks {
		status := props.Text{Size: 8, Top: 1, Left: 1}
		if t.Status == entity.TaskCompleted {
			status.Color = colorDone
		}
		rows = append(rows, row.New(6).Add(
			col.New(4).Add(cellText(t.Title)),
			col.New(3).Add(cellText(nonEmpty(t.AssignedTo, "—"))),
			col.New(2).Add(text.New(statusLabel(t.Status), status)),
			col.New(1).Add(cellText(t.EstimatedHours.StringFixed(1))),
			col.New(2).Add(cellText(t.ActualHours.StringFixed(1))),
		))
	}
	return rows
}

func footerRow(r *report.ProjectReport) core.Row {
	by := nonEmpty(r.GeneratedBy, "sistema")
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Generado por %s el %s UTC", by, r.GeneratedAt.Format("02/01/2006 15:04")),
			props.Text{Size: 6.5, Color: colorGray, Top: 2}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func cellText(s string) core.Component {
	return text.New(s, props.Text{Size: 8, Top: 1, Left: 1})
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray}),
	))
}

// statusLabel "in-progress" → "In Progress".
func statusLabel(s string) string {
	return titleCase.String(strings.ReplaceAll(s, "-", " "))
}

func money(d decimal.Decimal) string {
	return "$" + formatMoney(d.StringFixed(0))
}

func dateRange(start, end *time.Time) string {
	f := func(t *time.Time) string {
		if t == nil {
			return "—"
		}
		return t.Format("02/01/06")
	}
	return f(start) + " a " + f(end)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "-1000000" → "-1.000.000"
func formatMoney(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
