// Package usecase casos de uso de los recursos: cada operación pasa por la tabla de
// capacidades (access.Authorize), el filtro de alcance y la compuerta de campos
// antes de tocar el almacenamiento.
package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/trictux/trictux-api/internal/domain"
	"github.com/trictux/trictux-api/internal/domain/entity"
	"github.com/trictux/trictux-api/internal/domain/repository"
)

// resolve busca ref probando cada esquema de identidad en orden (id, luego alias).
func resolve[T any](ctx context.Context, ref string, lookups ...func(context.Context, string) (*T, error)) (*T, error) {
	if ref == "" {
		return nil, domain.Invalid("id requerido")
	}
	for _, get := range lookups {
		v, err := get(ctx, ref)
		if err != nil {
			return nil, err
		}
		if v != nil {
			return v, nil
		}
	}
	return nil, domain.ErrNotFound
}

// findCompany resuelve una referencia de empresa: id, alias legado, email.
// Devuelve nil sin error si no existe.
func findCompany(ctx context.Context, store *repository.Store, ref string) (*entity.CompanyProfile, error) {
	if ref == "" {
		return nil, nil
	}
	c, err := resolve(ctx, ref,
		store.Companies.GetByID,
		store.Companies.GetByLegacyID,
		func(ctx context.Context, ref string) (*entity.CompanyProfile, error) {
			return store.Companies.GetByEmail(ctx, strings.ToLower(ref))
		})
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// activeCompany exige que ref apunte a una empresa activa.
func activeCompany(ctx context.Context, store *repository.Store, ref string) (*entity.CompanyProfile, error) {
	if ref == "" {
		return nil, domain.Invalid("companyId requerido")
	}
	c, err := findCompany(ctx, store, ref)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.Invalid("la empresa %s no existe", ref)
	}
	if !c.IsActive() {
		return nil, domain.Invalid("la empresa %s está inactiva", ref)
	}
	return c, nil
}

// belongsTo informa si ref (en cualquier esquema) apunta a la empresa c. Si c es nil
// solo hay coincidencia literal con fallback.
func belongsTo(c *entity.CompanyProfile, ref, fallback string) bool {
	if c != nil {
		return c.HasRef(ref)
	}
	return ref != "" && ref == fallback
}

// companyFilter predicado para el filtro ?companyId= del listado.
func companyFilter(ctx context.Context, store *repository.Store, ref string) (func(string) bool, error) {
	if ref == "" {
		return func(string) bool { return true }, nil
	}
	c, err := findCompany(ctx, store, ref)
	if err != nil {
		return nil, err
	}
	return func(companyID string) bool { return belongsTo(c, companyID, ref) }, nil
}

// decodePatch vuelca el mapa de actualizaciones (ya filtrado por la compuerta) en
// un struct de punteros; un tipo incorrecto es ErrInvalidInput y nada se persiste.
func decodePatch(updates map[string]any, dst any) error {
	raw, err := sonic.Marshal(updates)
	if err != nil {
		return domain.Invalid("actualización inválida: %v", err)
	}
	if err := sonic.Unmarshal(raw, dst); err != nil {
		return domain.Invalid("actualización inválida: %v", err)
	}
	return nil
}

func validStatus(s string) bool {
	return s == entity.StatusActive || s == entity.StatusInactive
}

func requireText(field string, v *string) error {
	if v != nil && strings.TrimSpace(*v) == "" {
		return domain.Invalid("%s no puede estar vacío", field)
	}
	return nil
}

func now() time.Time { return time.Now().UTC() }

func loadProjects(ctx context.Context, store *repository.Store) ([]*entity.Project, error) {
	return store.Projects.List(ctx)
}
