package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/trictux/trictux-api/internal/domain"
	"github.com/trictux/trictux-api/internal/domain/entity"
	"github.com/trictux/trictux-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, COALESCE(legacy_id, ''), email, name, industry, phone, address, website,
	description, status, created_by, created_at, updated_at`

func scanCompany(row pgx.Row) (*entity.CompanyProfile, error) {
	var c entity.CompanyProfile
	if err := row.Scan(&c.ID, &c.LegacyID, &c.Email, &c.Name, &c.Industry, &c.Phone, &c.Address,
		&c.Website, &c.Description, &c.Status, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.CompanyProfile) error {
	query := `
		INSERT INTO companies (id, legacy_id, email, name, industry, phone, address, website,
			description, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		c.ID, nullable(c.LegacyID), c.Email, c.Name, c.Industry, c.Phone, c.Address, c.Website,
		c.Description, c.Status, c.CreatedBy, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: empresa duplicada", domain.ErrConflict)
		}
		if isForeignKeyViolation(err) {
			return domain.Invalid("no existe una cuenta con email %s", c.Email)
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.CompanyProfile, error) {
	return r.getOne(ctx, `SELECT `+companyColumns+` FROM companies WHERE id::text = $1`, id)
}

// GetByLegacyID obtiene una empresa por su alias legado.
func (r *CompanyRepo) GetByLegacyID(ctx context.Context, legacyID string) (*entity.CompanyProfile, error) {
	return r.getOne(ctx, `SELECT `+companyColumns+` FROM companies WHERE legacy_id = $1`, legacyID)
}

// GetByEmail obtiene una empresa por el email de su cuenta.
func (r *CompanyRepo) GetByEmail(ctx context.Context, email string) (*entity.CompanyProfile, error) {
	return r.getOne(ctx, `SELECT `+companyColumns+` FROM companies WHERE email = $1`, email)
}

func (r *CompanyRepo) getOne(ctx context.Context, query, arg string) (*entity.CompanyProfile, error) {
	if arg == "" {
		return nil, nil
	}
	c, err := scanCompany(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// List devuelve todas las empresas.
func (r *CompanyRepo) List(ctx context.Context) ([]*entity.CompanyProfile, error) {
	rows, err := r.q.Query(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	list, err := collect(rows, scanCompany)
	if err != nil {
		return nil, fmt.Errorf("scan company: %w", err)
	}
	return list, nil
}

// Update actualiza los datos editables de una empresa.
func (r *CompanyRepo) Update(ctx context.Context, c *entity.CompanyProfile) error {
	query := `
		UPDATE companies SET name = $2, industry = $3, phone = $4, address = $5, website = $6,
			description = $7, status = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Industry, c.Phone, c.Address, c.Website, c.Description, c.Status, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}
