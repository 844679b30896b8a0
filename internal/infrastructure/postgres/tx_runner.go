package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trictux/trictux-api/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con un Store atado a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(tx *repository.Store) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStore(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// NewStore arma el Store completo sobre un pool o una transacción.
func NewStore(q Querier) *repository.Store {
	return &repository.Store{
		Users:     NewUserRepository(q),
		Owners:    NewOwnerRepository(q),
		Companies: NewCompanyRepository(q),
		Employees: NewEmployeeRepository(q),
		Clients:   NewClientRepository(q),
		Projects:  NewProjectRepository(q),
		Tasks:     NewTaskRepository(q),
	}
}
