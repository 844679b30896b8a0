package dto

import "time"

// CreateClientRequest alta de cliente. CompanyID es opcional para el rol company.
type CreateClientRequest struct {
	LegacyID    string `json:"legacyId"`
	CompanyID   string `json:"companyId"`
	Name        string `json:"name"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Industry    string `json:"industry"`
	Notes       string `json:"notes"`
}

// ClientPatch campos opcionales de actualización.
type ClientPatch struct {
	Name        *string `json:"name"`
	ContactName *string `json:"contactName"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Industry    *string `json:"industry"`
	Notes       *string `json:"notes"`
	Status      *string `json:"status"`
	CompanyID   *string `json:"companyId"`
}

// ClientFilter filtros de listado.
type ClientFilter struct {
	CompanyID string
}

// ClientResponse salida de un cliente con conteos de proyectos.
type ClientResponse struct {
	ID                string    `json:"id"`
	LegacyID          string    `json:"legacyId,omitempty"`
	CompanyID         string    `json:"companyId"`
	Name              string    `json:"name"`
	ContactName       string    `json:"contactName"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Address           string    `json:"address"`
	Industry          string    `json:"industry"`
	Notes             string    `json:"notes"`
	Status            string    `json:"status"`
	CreatedBy         string    `json:"createdBy"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
	TotalProjects     int       `json:"totalProjects"`
	ActiveProjects    int       `json:"activeProjects"`
	CompletedProjects int       `json:"completedProjects"`
}
