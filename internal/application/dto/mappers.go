package dto

import "github.com/trictux/trictux-api/internal/domain/entity"

// Conversión entidad → respuesta. Los conteos derivados los completa el caso de uso.

func UserFromEntity(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func OwnerFromEntity(o *entity.OwnerProfile) OwnerProfileResponse {
	return OwnerProfileResponse{ID: o.ID, Email: o.Email, Name: o.Name, Phone: o.Phone}
}

func CompanyFromEntity(c *entity.CompanyProfile) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID,
		LegacyID:    c.LegacyID,
		Email:       c.Email,
		Name:        c.Name,
		Industry:    c.Industry,
		Phone:       c.Phone,
		Address:     c.Address,
		Website:     c.Website,
		Description: c.Description,
		Status:      c.Status,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func EmployeeFromEntity(e *entity.EmployeeProfile) EmployeeResponse {
	skills := e.Skills
	if skills == nil {
		skills = []string{}
	}
	return EmployeeResponse{
		ID:         e.ID,
		Email:      e.Email,
		Name:       e.Name,
		CompanyID:  e.CompanyID,
		Position:   e.Position,
		Department: e.Department,
		Phone:      e.Phone,
		Bio:        e.Bio,
		Skills:     skills,
		Status:     e.Status,
		CreatedBy:  e.CreatedBy,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func ClientFromEntity(c *entity.Client) ClientResponse {
	return ClientResponse{
		ID:          c.ID,
		LegacyID:    c.LegacyID,
		CompanyID:   c.CompanyID,
		Name:        c.Name,
		ContactName: c.ContactName,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		Industry:    c.Industry,
		Notes:       c.Notes,
		Status:      c.Status,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func ProjectFromEntity(p *entity.Project) ProjectResponse {
	assigned := p.AssignedEmployees
	if assigned == nil {
		assigned = map[string]entity.Assignment{}
	}
	return ProjectResponse{
		ID:                p.ID,
		LegacyID:          p.LegacyID,
		CompanyID:         p.CompanyID,
		ClientID:          p.ClientID,
		Name:              p.Name,
		Description:       p.Description,
		Status:            p.Status,
		Priority:          p.Priority,
		Progress:          p.Progress,
		Budget:            p.Budget,
		ActualCost:        p.ActualCost,
		StartDate:         p.StartDate,
		EndDate:           p.EndDate,
		AssignedEmployees: assigned,
		CreatedBy:         p.CreatedBy,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func TaskFromEntity(t *entity.Task) TaskResponse {
	return TaskResponse{
		ID:             t.ID,
		ProjectID:      t.ProjectID,
		Title:          t.Title,
		Description:    t.Description,
		AssignedTo:     t.AssignedTo,
		Status:         t.Status,
		Priority:       t.Priority,
		EstimatedHours: t.EstimatedHours,
		ActualHours:    t.ActualHours,
		DueDate:        t.DueDate,
		CompletedAt:    t.CompletedAt,
		CreatedBy:      t.CreatedBy,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}
