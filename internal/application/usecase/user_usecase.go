package usecase

import (
	"context"
	"strings"

	"github.com/trictux/trictux-api/internal/application/dto"
	"github.com/trictux/trictux-api/internal/domain"
	"github.com/trictux/trictux-api/internal/domain/access"
	"github.com/trictux/trictux-api/internal/domain/entity"
	"github.com/trictux/trictux-api/internal/domain/repository"
)

// UserUseCase administración de cuentas de acceso.
type UserUseCase struct {
	store *repository.Store
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(store *repository.Store) *UserUseCase {
	return &UserUseCase{store: store}
}

// List todas las cuentas (solo owner).
func (uc *UserUseCase) List(ctx context.Context, actor access.Actor) ([]dto.UserResponse, error) {
	if _, err := access.Authorize(actor, access.Users, access.OpList); err != nil {
		return nil, err
	}
	users, err := uc.store.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	visible := access.FilterUsers(actor, users)
	out := make([]dto.UserResponse, 0, len(visible))
	for _, u := range visible {
		out = append(out, dto.UserFromEntity(u))
	}
	return out, nil
}

// Get cuenta por id o email; cada rol puede ver la suya.
func (uc *UserUseCase) Get(ctx context.Context, actor access.Actor, ref string) (*dto.UserResponse, error) {
	u, err := uc.find(ctx, ref)
	if err != nil {
		return nil, err
	}
	if !access.CanRead(actor, access.Users, access.UserSubject(u)) {
		return nil, domain.ErrNotFound
	}
	res := dto.UserFromEntity(u)
	return &res, nil
}

// Update nombre y estado de una cuenta. El owner no puede desactivarse a sí mismo.
func (uc *UserUseCase) Update(ctx context.Context, actor access.Actor, ref string, updates map[string]any) (*dto.UserResponse, error) {
	u, err := uc.find(ctx, ref)
	if err != nil {
		return nil, err
	}
	allowed, err := access.GateUpdate(actor, access.Users, access.UserSubject(u), updates)
	if err != nil {
		return nil, err
	}
	var p dto.UserPatch
	if err := decodePatch(allowed, &p); err != nil {
		return nil, err
	}
	if err := requireText("name", p.Name); err != nil {
		return nil, err
	}
	if p.Status != nil {
		if !validStatus(*p.Status) {
			return nil, domain.Invalid("status inválido: %s", *p.Status)
		}
		if u.ID == actor.UserID && *p.Status == entity.StatusInactive {
			return nil, domain.Invalid("no puedes desactivar tu propia cuenta")
		}
	}
	setString(&u.Name, p.Name)
	setString(&u.Status, p.Status)
	u.UpdatedAt = now()
	if err := uc.store.Users.Update(ctx, u); err != nil {
		return nil, err
	}
	res := dto.UserFromEntity(u)
	return &res, nil
}

func (uc *UserUseCase) find(ctx context.Context, ref string) (*entity.User, error) {
	return resolve(ctx, ref, uc.store.Users.GetByID,
		func(ctx context.Context, ref string) (*entity.User, error) {
			return uc.store.Users.GetByEmail(ctx, strings.ToLower(ref))
		})
}
