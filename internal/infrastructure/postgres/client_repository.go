package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/trictux/trictux-api/internal/domain"
	"github.com/trictux/trictux-api/internal/domain/entity"
	"github.com/trictux/trictux-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository sobre PostgreSQL (pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador de clientes.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, COALESCE(legacy_id, ''), company_id, name, contact_name, email, phone, address,
	industry, notes, status, created_by, created_at, updated_at`

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	if err := row.Scan(&c.ID, &c.LegacyID, &c.CompanyID, &c.Name, &c.ContactName, &c.Email, &c.Phone,
		&c.Address, &c.Industry, &c.Notes, &c.Status, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un cliente.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (id, legacy_id, company_id, name, contact_name, email, phone, address,
			industry, notes, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		c.ID, nullable(c.LegacyID), c.CompanyID, c.Name, c.ContactName, c.Email, c.Phone, c.Address,
		c.Industry, c.Notes, c.Status, c.CreatedBy, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ya existe un cliente con ese identificador", domain.ErrConflict)
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	return r.getOne(ctx, `SELECT `+clientColumns+` FROM clients WHERE id::text = $1`, id)
}

// GetByLegacyID obtiene un cliente por su alias legado.
func (r *ClientRepo) GetByLegacyID(ctx context.Context, legacyID string) (*entity.Client, error) {
	return r.getOne(ctx, `SELECT `+clientColumns+` FROM clients WHERE legacy_id = $1`, legacyID)
}

func (r *ClientRepo) getOne(ctx context.Context, query, arg string) (*entity.Client, error) {
	if arg == "" {
		return nil, nil
	}
	c, err := scanClient(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// List devuelve todos los clientes.
func (r *ClientRepo) List(ctx context.Context) ([]*entity.Client, error) {
	rows, err := r.q.Query(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	list, err := collect(rows, scanClient)
	if err != nil {
		return nil, fmt.Errorf("scan client: %w", err)
	}
	return list, nil
}

// Update actualiza los datos editables de un cliente.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	query := `
		UPDATE clients SET company_id = $2, name = $3, contact_name = $4, email = $5, phone = $6,
			address = $7, industry = $8, notes = $9, status = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.CompanyID, c.Name, c.ContactName, c.Email, c.Phone, c.Address, c.Industry, c.Notes,
		c.Status, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}
