package entity

import "time"

// Roles válidos para User.
const (
	RoleOwner    = "owner"
	RoleCompany  = "company"
	RoleEmployee = "employee"
)

// Estados de cuenta y de registros con desactivación lógica.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// ValidRole informa si role es uno de los roles conocidos.
func ValidRole(role string) bool {
	return role == RoleOwner || role == RoleCompany || role == RoleEmployee
}

// User representa una cuenta de acceso. Solo se elimina al revertir un alta fallida;
// la baja normal cambia Status.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash
	Name         string
	Role         string // owner, company, employee
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive informa si la cuenta puede operar.
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// Redacted devuelve una copia sin el hash de contraseña.
func (u *User) Redacted() *User {
	if u == nil {
		return nil
	}
	cp := *u
	cp.PasswordHash = ""
	return &cp
}
