package repository

import "context"

// Store agrupa los repositorios de todas las colecciones. Cada backend
// (postgres, memory) construye uno.
type Store struct {
	Users     UserRepository
	Owners    OwnerRepository
	Companies CompanyRepository
	Employees EmployeeRepository
	Clients   ClientRepository
	Projects  ProjectRepository
	Tasks     TaskRepository
}

// TxRunner ejecuta fn con un Store atado a una transacción: commit si fn
// devuelve nil, rollback en caso contrario.
type TxRunner interface {
	Run(ctx context.Context, fn func(tx *Store) error) error
}
