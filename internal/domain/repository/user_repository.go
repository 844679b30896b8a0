package repository

import (
	"context"

	"github.com/trictux/trictux-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// Delete solo se usa como compensación de un alta fallida.
	Delete(ctx context.Context, id string) error
}
