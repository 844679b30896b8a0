package dto

import "time"

// CreateEmployeeRequest alta de colaborador: crea cuenta y perfil.
// CompanyID es opcional para el rol company (se usa la propia).
type CreateEmployeeRequest struct {
	Email      string   `json:"email"`
	Password   string   `json:"password"`
	Name       string   `json:"name"`
	CompanyID  string   `json:"companyId"`
	Position   string   `json:"position"`
	Department string   `json:"department"`
	Phone      string   `json:"phone"`
	Bio        string   `json:"bio"`
	Skills     []string `json:"skills"`
}

// EmployeePatch campos opcionales de actualización.
type EmployeePatch struct {
	Name       *string   `json:"name"`
	Position   *string   `json:"position"`
	Department *string   `json:"department"`
	Phone      *string   `json:"phone"`
	Bio        *string   `json:"bio"`
	Skills     *[]string `json:"skills"`
	Status     *string   `json:"status"`
	CompanyID  *string   `json:"companyId"`
}

// EmployeeResponse salida de un colaborador con conteos derivados.
type EmployeeResponse struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	CompanyID        string    `json:"companyId"`
	Position         string    `json:"position"`
	Department       string    `json:"department"`
	Phone            string    `json:"phone"`
	Bio              string    `json:"bio"`
	Skills           []string  `json:"skills"`
	Status           string    `json:"status"`
	CreatedBy        string    `json:"createdBy"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
	AssignedProjects int       `json:"assignedProjects"`
	OpenTasks        int       `json:"openTasks"`
	CompletedTasks   int       `json:"completedTasks"`
}

// EmployeeFilter filtros de listado.
type EmployeeFilter struct {
	CompanyID string
}
