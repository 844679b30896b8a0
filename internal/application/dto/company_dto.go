package dto

import "time"

// CreateCompanyRequest alta de empresa por el owner: crea cuenta y perfil.
type CreateCompanyRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	LegacyID    string `json:"legacyId"`
	Industry    string `json:"industry"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Website     string `json:"website"`
	Description string `json:"description"`
}

// CompanyPatch campos opcionales de actualización.
type CompanyPatch struct {
	Name        *string `json:"name"`
	Industry    *string `json:"industry"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Website     *string `json:"website"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// CompanyResponse salida de una empresa con conteos derivados.
type CompanyResponse struct {
	ID             string    `json:"id"`
	LegacyID       string    `json:"legacyId,omitempty"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Industry       string    `json:"industry"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	Website        string    `json:"website"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	CreatedBy      string    `json:"createdBy"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	TotalClients   int       `json:"totalClients"`
	TotalProjects  int       `json:"totalProjects"`
	ActiveProjects int       `json:"activeProjects"`
	TotalEmployees int       `json:"totalEmployees"`
}
