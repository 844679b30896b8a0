package dto

// SignupRequest alta pública: crea una cuenta company con su perfil.
type SignupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	Industry    string `json:"industry"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Website     string `json:"website"`
	Description string `json:"description"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse usuario autenticado; el token viaja en la cookie y también en el cuerpo
// para clientes que usan Authorization: Bearer.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// MeResponse sesión actual con el perfil resuelto (puede faltar durante el alta).
type MeResponse struct {
	User        UserResponse `json:"user"`
	DisplayName string       `json:"displayName"`
	Profile     any          `json:"profile"`
}

// OwnerProfileResponse perfil owner.
type OwnerProfileResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
