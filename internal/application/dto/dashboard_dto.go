package dto

// DashboardSummary resumen de lo visible para la sesión actual.
type DashboardSummary struct {
	Role             string         `json:"role"`
	DisplayName      string         `json:"displayName"`
	Companies        int            `json:"companies"`
	Clients          int            `json:"clients"`
	Employees        int            `json:"employees"`
	Projects         int            `json:"projects"`
	ProjectsByStatus map[string]int `json:"projectsByStatus"`
	Tasks            int            `json:"tasks"`
	TasksByStatus    map[string]int `json:"tasksByStatus"`
}
