package entity

import "time"

// OwnerProfile perfil del administrador de la plataforma.
type OwnerProfile struct {
	ID        string
	Email     string
	Name      string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmployeeProfile perfil de un colaborador. CompanyID puede contener el id,
// el alias legado o el email de la empresa.
type EmployeeProfile struct {
	ID         string
	Email      string
	Name       string
	CompanyID  string
	Position   string
	Department string
	Phone      string
	Bio        string
	Skills     []string
	Status     string
	CreatedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsActive informa si el colaborador no ha sido desactivado.
func (e *EmployeeProfile) IsActive() bool {
	return e.Status == StatusActive
}
