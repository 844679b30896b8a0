package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTaskRequest alta de tarea.
type CreateTaskRequest struct {
	ProjectID      string          `json:"projectId"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	AssignedTo     string          `json:"assignedTo"`
	Priority       string          `json:"priority"`
	EstimatedHours decimal.Decimal `json:"estimatedHours"`
	DueDate        *time.Time      `json:"dueDate"`
}

// TaskPatch campos opcionales de actualización.
type TaskPatch struct {
	Title          *string          `json:"title"`
	Description    *string          `json:"description"`
	Status         *string          `json:"status"`
	Priority       *string          `json:"priority"`
	AssignedTo     *string          `json:"assignedTo"`
	EstimatedHours *decimal.Decimal `json:"estimatedHours"`
	ActualHours    *decimal.Decimal `json:"actualHours"`
	DueDate        *time.Time       `json:"dueDate"`
	CompletedAt    *time.Time       `json:"completedAt"`
}

// TaskFilter filtros de listado.
type TaskFilter struct {
	ProjectID string
}

// TaskResponse salida de una tarea.
type TaskResponse struct {
	ID             string          `json:"id"`
	ProjectID      string          `json:"projectId"`
	ProjectName    string          `json:"projectName"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	AssignedTo     string          `json:"assignedTo"`
	Status         string          `json:"status"`
	Priority       string          `json:"priority"`
	EstimatedHours decimal.Decimal `json:"estimatedHours"`
	ActualHours    decimal.Decimal `json:"actualHours"`
	DueDate        *time.Time      `json:"dueDate"`
	CompletedAt    *time.Time      `json:"completedAt"`
	CreatedBy      string          `json:"createdBy"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
