package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de tarea.
const (
	TaskTodo       = "todo"
	TaskInProgress = "in-progress"
	TaskCompleted  = "completed"
)

// ValidTaskStatus informa si s es un estado de tarea válido.
func ValidTaskStatus(s string) bool {
	return s == TaskTodo || s == TaskInProgress || s == TaskCompleted
}

// Task pertenece a un proyecto y está asignada a un colaborador (por email).
type Task struct {
	ID             string
	ProjectID      string
	Title          string
	Description    string
	AssignedTo     string
	Status         string
	Priority       string
	EstimatedHours decimal.Decimal
	ActualHours    decimal.Decimal
	DueDate        *time.Time
	CompletedAt    *time.Time
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
