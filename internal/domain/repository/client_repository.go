package repository

import (
	"context"

	"github.com/trictux/trictux-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	GetByLegacyID(ctx context.Context, legacyID string) (*entity.Client, error)
	List(ctx context.Context) ([]*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
}
