package repository

import (
	"context"

	"github.com/trictux/trictux-api/internal/domain/entity"
)

// OwnerRepository perfiles de administradores de plataforma.
type OwnerRepository interface {
	Create(ctx context.Context, owner *entity.OwnerProfile) error
	GetByEmail(ctx context.Context, email string) (*entity.OwnerProfile, error)
}

// EmployeeRepository perfiles de colaboradores.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.EmployeeProfile) error
	GetByID(ctx context.Context, id string) (*entity.EmployeeProfile, error)
	GetByEmail(ctx context.Context, email string) (*entity.EmployeeProfile, error)
	List(ctx context.Context) ([]*entity.EmployeeProfile, error)
	Update(ctx context.Context, employee *entity.EmployeeProfile) error
}
