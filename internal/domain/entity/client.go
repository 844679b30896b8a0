package entity

import "time"

// Client es un cliente de una empresa.
type Client struct {
	ID          string
	LegacyID    string
	CompanyID   string
	Name        string
	ContactName string
	Email       string
	Phone       string
	Address     string
	Industry    string
	Notes       string
	Status      string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasRef informa si ref identifica al cliente por id o por alias legado.
func (c *Client) HasRef(ref string) bool {
	if ref == "" {
		return false
	}
	return ref == c.ID || (c.LegacyID != "" && ref == c.LegacyID)
}
