package access_test

import (
	"time"

	"github.com/trictux/trictux-api/internal/domain/access"
	"github.com/trictux/trictux-api/internal/domain/entity"
)

// dataset fijo: dos empresas, cada registro referencia a su empresa con uno de
// los dos esquemas de identidad (id o email).
type dataset struct {
	companies []*entity.CompanyProfile
	employees []*entity.EmployeeProfile
	clients   []*entity.Client
	projects  []*entity.Project
	tasks     []*entity.Task
	users     []*entity.User
}

func assign(emails ...string) map[string]entity.Assignment {
	m := make(map[string]entity.Assignment, len(emails))
	for _, e := range emails {
		m[e] = entity.Assignment{AssignedAt: time.Unix(0, 0)}
	}
	return m
}

func newDataset() dataset {
	return dataset{
		companies: []*entity.CompanyProfile{
			{ID: "comp-a", LegacyID: "CMP-1", Email: "a@corp.test", Name: "A", Status: entity.StatusActive},
			{ID: "comp-b", Email: "b@corp.test", Name: "B", Status: entity.StatusActive},
		},
		employees: []*entity.EmployeeProfile{
			{ID: "emp-1", Email: "e1@corp.test", CompanyID: "comp-a"},
			{ID: "emp-2", Email: "e2@corp.test", CompanyID: "a@corp.test"},
			{ID: "emp-3", Email: "e3@corp.test", CompanyID: "comp-b"},
		},
		clients: []*entity.Client{
			{ID: "cli-1", CompanyID: "comp-a"},
			{ID: "cli-2", LegacyID: "CLI-2", CompanyID: "a@corp.test"},
			{ID: "cli-3", CompanyID: "comp-b"},
			{ID: "cli-4", CompanyID: "ghost"},
		},
		projects: []*entity.Project{
			{ID: "prj-1", LegacyID: "PRJ-1", CompanyID: "comp-a", ClientID: "cli-1", AssignedEmployees: assign("e1@corp.test")},
			{ID: "prj-2", CompanyID: "CMP-1", ClientID: "CLI-2", AssignedEmployees: assign("e2@corp.test")},
			{ID: "prj-3", CompanyID: "comp-b", ClientID: "cli-3", AssignedEmployees: assign("e3@corp.test")},
		},
		tasks: []*entity.Task{
			{ID: "tsk-1", ProjectID: "prj-1", AssignedTo: "e1@corp.test"},
			{ID: "tsk-2", ProjectID: "prj-2", AssignedTo: "e2@corp.test"},
			{ID: "tsk-3", ProjectID: "prj-3", AssignedTo: "e3@corp.test"},
			{ID: "tsk-4", ProjectID: "PRJ-1", AssignedTo: "e1@corp.test"},
		},
		users: []*entity.User{
			{ID: "u-owner", Email: "owner@trictux.test", Role: entity.RoleOwner},
			{ID: "u-a", Email: "a@corp.test", Role: entity.RoleCompany},
			{ID: "u-e1", Email: "e1@corp.test", Role: entity.RoleEmployee},
		},
	}
}

func ownerActor() access.Actor {
	return access.NewActor(&entity.User{ID: "u-owner", Email: "owner@trictux.test", Role: entity.RoleOwner}, nil, nil)
}

func companyActor(d dataset, i int) access.Actor {
	c := d.companies[i]
	return access.NewActor(&entity.User{ID: "u-" + c.ID, Email: c.Email, Role: entity.RoleCompany}, c, nil)
}

func employeeActor(d dataset, i int) access.Actor {
	e := d.employees[i]
	return access.NewActor(&entity.User{ID: "u-" + e.ID, Email: e.Email, Role: entity.RoleEmployee}, nil, e)
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, id(it))
	}
	return out
}
