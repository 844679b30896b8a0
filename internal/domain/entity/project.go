package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de proyecto.
const (
	ProjectPlanning   = "planning"
	ProjectInProgress = "in-progress"
	ProjectCompleted  = "completed"
	ProjectOnHold     = "on-hold"
)

// ValidProjectStatus informa si s pertenece al conjunto cerrado de estados.
func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectPlanning, ProjectInProgress, ProjectCompleted, ProjectOnHold:
		return true
	}
	return false
}

// Assignment datos de la asignación de un colaborador a un proyecto.
type Assignment struct {
	Role       string    `json:"role,omitempty"`
	AssignedAt time.Time `json:"assignedAt"`
}

// Project pertenece a una empresa, referencia a un cliente y tiene un conjunto de
// colaboradores asignados indexado por email.
type Project struct {
	ID                string
	LegacyID          string
	CompanyID         string
	ClientID          string
	Name              string
	Description       string
	Status            string
	Priority          string
	Progress          int
	Budget            decimal.Decimal
	ActualCost        decimal.Decimal
	StartDate         *time.Time
	EndDate           *time.Time
	AssignedEmployees map[string]Assignment
	CreatedBy         string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// HasRef informa si ref identifica al proyecto por id o por alias legado.
func (p *Project) HasRef(ref string) bool {
	if ref == "" {
		return false
	}
	return ref == p.ID || (p.LegacyID != "" && ref == p.LegacyID)
}

// IsAssigned informa si el email pertenece al conjunto de asignados.
func (p *Project) IsAssigned(email string) bool {
	_, ok := p.AssignedEmployees[email]
	return ok
}

// Assignees devuelve los emails asignados (sin orden).
func (p *Project) Assignees() []string {
	out := make([]string, 0, len(p.AssignedEmployees))
	for email := range p.AssignedEmployees {
		out = append(out, email)
	}
	return out
}

// IsActive proyectos en planificación o en curso.
func (p *Project) IsActive() bool {
	return p.Status == ProjectPlanning || p.Status == ProjectInProgress
}
