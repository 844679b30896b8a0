package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrUnauthenticated   = errors.New("no autenticado")
	ErrInvalidCredential = errors.New("credencial inválida o expirada")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrConflict          = errors.New("conflicto con el estado actual")
	// ErrEmailAlreadyExists es un conflicto: errors.Is(err, ErrConflict) también es true.
	ErrEmailAlreadyExists = fmt.Errorf("%w: el email ya está registrado", ErrConflict)
)

// Invalid construye un ErrInvalidInput con detalle legible para el cliente.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// IsNotFound atajo de errors.Is(err, ErrNotFound).
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
