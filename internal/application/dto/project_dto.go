package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/trictux/trictux-api/internal/domain/entity"
)

// CreateProjectRequest alta de proyecto.
type CreateProjectRequest struct {
	LegacyID          string          `json:"legacyId"`
	CompanyID         string          `json:"companyId"`
	ClientID          string          `json:"clientId"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Priority          string          `json:"priority"`
	Budget            decimal.Decimal `json:"budget"`
	StartDate         *time.Time      `json:"startDate"`
	EndDate           *time.Time      `json:"endDate"`
	AssignedEmployees []string        `json:"assignedEmployees"`
}

// ProjectPatch campos opcionales de actualización. AssignedEmployees reemplaza el conjunto.
type ProjectPatch struct {
	Name              *string          `json:"name"`
	Description       *string          `json:"description"`
	Status            *string          `json:"status"`
	Priority          *string          `json:"priority"`
	Progress          *int             `json:"progress"`
	Budget            *decimal.Decimal `json:"budget"`
	ActualCost        *decimal.Decimal `json:"actualCost"`
	StartDate         *time.Time       `json:"startDate"`
	EndDate           *time.Time       `json:"endDate"`
	ClientID          *string          `json:"clientId"`
	AssignedEmployees *[]string        `json:"assignedEmployees"`
	CompanyID         *string          `json:"companyId"`
}

// ProjectFilter filtros de listado.
type ProjectFilter struct {
	CompanyID string
	ClientID  string
}

// ProjectResponse salida de un proyecto con datos derivados.
type ProjectResponse struct {
	ID                string                       `json:"id"`
	LegacyID          string                       `json:"legacyId,omitempty"`
	CompanyID         string                       `json:"companyId"`
	ClientID          string                       `json:"clientId"`
	ClientName        string                       `json:"clientName"`
	Name              string                       `json:"name"`
	Description       string                       `json:"description"`
	Status            string                       `json:"status"`
	Priority          string                       `json:"priority"`
	Progress          int                          `json:"progress"`
	Budget            decimal.Decimal              `json:"budget"`
	ActualCost        decimal.Decimal              `json:"actualCost"`
	StartDate         *time.Time                   `json:"startDate"`
	EndDate           *time.Time                   `json:"endDate"`
	AssignedEmployees map[string]entity.Assignment `json:"assignedEmployees"`
	CreatedBy         string                       `json:"createdBy"`
	CreatedAt         time.Time                    `json:"createdAt"`
	UpdatedAt         time.Time                    `json:"updatedAt"`
	TotalTasks        int                          `json:"totalTasks"`
	CompletedTasks    int                          `json:"completedTasks"`
}
