package repository

import (
	"context"

	"github.com/trictux/trictux-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para perfiles de empresa.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.CompanyProfile) error
	GetByID(ctx context.Context, id string) (*entity.CompanyProfile, error)
	GetByLegacyID(ctx context.Context, legacyID string) (*entity.CompanyProfile, error)
	GetByEmail(ctx context.Context, email string) (*entity.CompanyProfile, error)
	List(ctx context.Context) ([]*entity.CompanyProfile, error)
	Update(ctx context.Context, company *entity.CompanyProfile) error
}
