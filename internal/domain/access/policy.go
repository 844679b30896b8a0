// Package access concentra las reglas de autorización: qué puede hacer cada rol
// sobre cada recurso (tabla de capacidades), qué registros ve (filtro de alcance)
// y qué campos puede modificar (compuerta de campos).
//
// Todas las funciones son puras: no consultan la base de datos ni mutan su entrada.
package access

import (
	"fmt"

	"github.com/trictux/trictux-api/internal/domain"
	"github.com/trictux/trictux-api/internal/domain/entity"
)

// Resource colección sobre la que se opera.
type Resource string

const (
	Clients   Resource = "clients"
	Companies Resource = "companies"
	Employees Resource = "employees"
	Projects  Resource = "projects"
	Tasks     Resource = "tasks"
	Users     Resource = "users"
)

// Operation acción solicitada sobre un recurso.
type Operation string

const (
	OpList       Operation = "list"
	OpRead       Operation = "read"
	OpCreate     Operation = "create"
	OpUpdate     Operation = "update"
	OpDeactivate Operation = "deactivate" // status=inactive, el registro se conserva
	OpPurge      Operation = "purge"      // borrado físico
)

// Scope relación exigida entre el actor y el registro.
type Scope int

const (
	ScopeNone       Scope = iota
	ScopeAll              // sin restricción
	ScopeOwnCompany       // el registro pertenece a la empresa del actor
	ScopeAssigned         // el actor está asignado (proyecto, tarea o vía proyecto)
	ScopeSelf             // el registro es el propio perfil del actor
)

// Capability permiso concedido a un rol para (recurso, operación).
type Capability struct {
	Scope Scope
	// Fields campos modificables en OpUpdate; nil significa todos los mutables del recurso.
	Fields []string
}

// mutableFields campos que una actualización puede tocar. Identidad y auditoría
// (id, legacyId, createdBy, createdAt, updatedAt) y el email de cuenta quedan fuera.
var mutableFields = map[Resource][]string{
	Clients:   {"name", "contactName", "email", "phone", "address", "industry", "notes", "status", "companyId"},
	Companies: {"name", "industry", "phone", "address", "website", "description", "status"},
	Employees: {"name", "position", "department", "phone", "bio", "skills", "status", "companyId"},
	Projects: {"name", "description", "status", "priority", "progress", "budget", "actualCost",
		"startDate", "endDate", "clientId", "assignedEmployees", "companyId"},
	Tasks: {"title", "description", "status", "priority", "assignedTo", "estimatedHours",
		"actualHours", "dueDate", "completedAt"},
	Users: {"name", "status"},
}

type policyKey struct {
	role string
	res  Resource
	op   Operation
}

var policy = buildPolicy()

func buildPolicy() map[policyKey]Capability {
	t := make(map[policyKey]Capability)
	grant := func(role string, res Resource, c Capability, ops ...Operation) {
		for _, op := range ops {
			t[policyKey{role, res, op}] = c
		}
	}
	all := Capability{Scope: ScopeAll}
	own := Capability{Scope: ScopeOwnCompany}

	// owner: control total.
	grant(entity.RoleOwner, Clients, all, OpList, OpRead, OpCreate, OpUpdate, OpDeactivate)
	grant(entity.RoleOwner, Companies, all, OpList, OpRead, OpCreate, OpUpdate, OpDeactivate)
	grant(entity.RoleOwner, Employees, all, OpList, OpRead, OpCreate, OpUpdate, OpDeactivate)
	grant(entity.RoleOwner, Projects, all, OpList, OpRead, OpCreate, OpUpdate, OpPurge)
	grant(entity.RoleOwner, Tasks, all, OpList, OpRead, OpCreate, OpUpdate, OpPurge)
	grant(entity.RoleOwner, Users, all, OpList, OpRead, OpUpdate)

	// company: su propia empresa; mover registros a otra empresa es exclusivo del owner.
	grant(entity.RoleCompany, Clients, own, OpList, OpRead, OpCreate)
	grant(entity.RoleCompany, Clients, Capability{Scope: ScopeOwnCompany, Fields: without(Clients, "companyId")}, OpUpdate)
	grant(entity.RoleCompany, Companies, own, OpList, OpRead)
	grant(entity.RoleCompany, Companies, Capability{Scope: ScopeOwnCompany, Fields: without(Companies, "status")}, OpUpdate)
	grant(entity.RoleCompany, Employees, own, OpList, OpRead, OpCreate, OpDeactivate)
	grant(entity.RoleCompany, Employees, Capability{Scope: ScopeOwnCompany, Fields: without(Employees, "companyId")}, OpUpdate)
	grant(entity.RoleCompany, Projects, own, OpList, OpRead, OpCreate)
	grant(entity.RoleCompany, Projects, Capability{Scope: ScopeOwnCompany, Fields: without(Projects, "companyId")}, OpUpdate)
	grant(entity.RoleCompany, Tasks, own, OpList, OpRead, OpCreate, OpUpdate, OpPurge)
	grant(entity.RoleCompany, Users, Capability{Scope: ScopeSelf}, OpRead)

	// employee: proyectos y tareas asignados, su propio perfil.
	grant(entity.RoleEmployee, Clients, Capability{Scope: ScopeAssigned}, OpList, OpRead)
	grant(entity.RoleEmployee, Companies, own, OpList, OpRead)
	grant(entity.RoleEmployee, Employees, Capability{Scope: ScopeSelf}, OpList, OpRead)
	grant(entity.RoleEmployee, Employees, Capability{Scope: ScopeSelf, Fields: []string{"phone", "bio", "skills"}}, OpUpdate)
	grant(entity.RoleEmployee, Projects, Capability{Scope: ScopeAssigned}, OpList, OpRead)
	grant(entity.RoleEmployee, Projects, Capability{Scope: ScopeAssigned, Fields: []string{"progress", "actualCost"}}, OpUpdate)
	grant(entity.RoleEmployee, Tasks, Capability{Scope: ScopeAssigned}, OpList, OpRead)
	grant(entity.RoleEmployee, Tasks, Capability{Scope: ScopeAssigned, Fields: []string{"status", "actualHours", "completedAt"}}, OpUpdate)
	grant(entity.RoleEmployee, Users, Capability{Scope: ScopeSelf}, OpRead)

	return t
}

func without(res Resource, drop ...string) []string {
	out := make([]string, 0, len(mutableFields[res]))
next:
	for _, f := range mutableFields[res] {
		for _, d := range drop {
			if f == d {
				continue next
			}
		}
		out = append(out, f)
	}
	return out
}

// Lookup devuelve la capacidad del rol para (res, op), si existe.
func Lookup(role string, res Resource, op Operation) (Capability, bool) {
	c, ok := policy[policyKey{role, res, op}]
	return c, ok
}

// Authorize verifica que el actor tenga alguna capacidad para (res, op).
// La relación con un registro concreto se comprueba después con Actor.Matches.
func Authorize(a Actor, res Resource, op Operation) (Capability, error) {
	c, ok := Lookup(a.Role, res, op)
	if !ok {
		return Capability{}, fmt.Errorf("%w: %s no puede %s %s", domain.ErrForbidden, a.Role, op, res)
	}
	return c, nil
}

// AllowedFields campos modificables efectivos de una capacidad.
func (c Capability) AllowedFields(res Resource) []string {
	if c.Fields != nil {
		return c.Fields
	}
	return mutableFields[res]
}
