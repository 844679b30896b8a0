package access

import (
	"fmt"

	"github.com/trictux/trictux-api/internal/domain"
)

// GateUpdate filtra una actualización propuesta a los campos que el actor puede
// modificar en ese registro. Los campos no permitidos se descartan en silencio;
// solo se rechaza (ErrForbidden) cuando el rol no puede actualizar el recurso o
// el registro no guarda la relación exigida.
func GateUpdate(a Actor, res Resource, s Subject, updates map[string]any) (map[string]any, error) {
	c, err := Authorize(a, res, OpUpdate)
	if err != nil {
		return nil, err
	}
	if !a.Matches(c.Scope, s) {
		return nil, fmt.Errorf("%w: el registro no pertenece al alcance de %s", domain.ErrForbidden, a.Role)
	}
	out := make(map[string]any, len(updates))
	for _, f := range c.AllowedFields(res) {
		if v, ok := updates[f]; ok {
			out[f] = v
		}
	}
	return out, nil
}

// Require verifica (res, op) y la relación del actor con el registro.
func Require(a Actor, res Resource, op Operation, s Subject) error {
	c, err := Authorize(a, res, op)
	if err != nil {
		return err
	}
	if !a.Matches(c.Scope, s) {
		return fmt.Errorf("%w: %s %s fuera de alcance", domain.ErrForbidden, op, res)
	}
	return nil
}
