package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/trictux/trictux-api/internal/domain"
	"github.com/trictux/trictux-api/internal/domain/entity"
	"github.com/trictux/trictux-api/internal/domain/repository"
)

var (
	_ repository.OwnerRepository    = (*OwnerRepo)(nil)
	_ repository.EmployeeRepository = (*EmployeeRepo)(nil)
)

// OwnerRepo perfiles owner sobre PostgreSQL.
type OwnerRepo struct {
	q Querier
}

// NewOwnerRepository construye el adaptador de perfiles owner.
func NewOwnerRepository(q Querier) *OwnerRepo {
	return &OwnerRepo{q: q}
}

// Create persiste un perfil owner.
func (r *OwnerRepo) Create(ctx context.Context, o *entity.OwnerProfile) error {
	query := `
		INSERT INTO owners (id, email, name, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, o.ID, o.Email, o.Name, o.Phone, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: perfil owner duplicado", domain.ErrConflict)
		}
		return fmt.Errorf("insert owner: %w", err)
	}
	return nil
}

// GetByEmail obtiene el perfil owner de una cuenta.
func (r *OwnerRepo) GetByEmail(ctx context.Context, email string) (*entity.OwnerProfile, error) {
	var o entity.OwnerProfile
	err := r.q.QueryRow(ctx,
		`SELECT id, email, name, phone, created_at, updated_at FROM owners WHERE email = $1`, email,
	).Scan(&o.ID, &o.Email, &o.Name, &o.Phone, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get owner: %w", err)
	}
	return &o, nil
}

// EmployeeRepo perfiles de colaboradores sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador de colaboradores.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `id, email, name, company_id, position, department, phone, bio, skills,
	status, created_by, created_at, updated_at`

func scanEmployee(row pgx.Row) (*entity.EmployeeProfile, error) {
	var e entity.EmployeeProfile
	if err := row.Scan(&e.ID, &e.Email, &e.Name, &e.CompanyID, &e.Position, &e.Department, &e.Phone,
		&e.Bio, &e.Skills, &e.Status, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

// Create persiste un colaborador.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.EmployeeProfile) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Email, e.Name, e.CompanyID, e.Position, e.Department, e.Phone, e.Bio, skillsOrEmpty(e.Skills),
		e.Status, e.CreatedBy, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: colaborador duplicado", domain.ErrConflict)
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un colaborador por ID.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.EmployeeProfile, error) {
	return r.getOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id::text = $1`, id)
}

// GetByEmail obtiene un colaborador por email.
func (r *EmployeeRepo) GetByEmail(ctx context.Context, email string) (*entity.EmployeeProfile, error) {
	return r.getOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE email = $1`, email)
}

func (r *EmployeeRepo) getOne(ctx context.Context, query, arg string) (*entity.EmployeeProfile, error) {
	e, err := scanEmployee(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// List devuelve todos los colaboradores.
func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.EmployeeProfile, error) {
	rows, err := r.q.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	list, err := collect(rows, scanEmployee)
	if err != nil {
		return nil, fmt.Errorf("scan employee: %w", err)
	}
	return list, nil
}

// Update actualiza los datos editables de un colaborador.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.EmployeeProfile) error {
	query := `
		UPDATE employees SET name = $2, company_id = $3, position = $4, department = $5, phone = $6,
			bio = $7, skills = $8, status = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Name, e.CompanyID, e.Position, e.Department, e.Phone, e.Bio, skillsOrEmpty(e.Skills),
		e.Status, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// skillsOrEmpty evita enviar NULL a una columna TEXT[] NOT NULL.
func skillsOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
