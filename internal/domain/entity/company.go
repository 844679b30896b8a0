package entity

import "time"

// CompanyProfile es el perfil de una cuenta con rol company (la "empresa" socia).
// Comparte email con su User.
type CompanyProfile struct {
	ID          string
	LegacyID    string // identificador asignado por la aplicación en esquemas anteriores
	Email       string
	Name        string
	Industry    string
	Phone       string
	Address     string
	Website     string
	Description string
	Status      string // active, inactive
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasRef informa si ref identifica a esta empresa: id, alias legado o email, en ese orden.
func (c *CompanyProfile) HasRef(ref string) bool {
	if ref == "" {
		return false
	}
	return ref == c.ID || (c.LegacyID != "" && ref == c.LegacyID) || ref == c.Email
}

// Refs devuelve las referencias con las que otros registros pueden apuntar a la empresa.
func (c *CompanyProfile) Refs() []string {
	refs := []string{c.ID}
	if c.LegacyID != "" {
		refs = append(refs, c.LegacyID)
	}
	return append(refs, c.Email)
}

// IsActive informa si la empresa no ha sido desactivada.
func (c *CompanyProfile) IsActive() bool {
	return c.Status == StatusActive
}
