package dto

import "time"

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserPatch campos actualizables de una cuenta (solo owner).
type UserPatch struct {
	Name   *string `json:"name"`
	Status *string `json:"status"`
}
