package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse respuesta informativa.
type MessageResponse struct {
	Message string `json:"message"`
}

// SuccessResponse confirmación sin cuerpo.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// PatchRequest forma PATCH: {"<recurso>Id" | "id": "...", "updates": {...}}.
// El id se extrae en el handler porque la clave depende del recurso.
type PatchRequest struct {
	Updates map[string]any `json:"updates"`
}
