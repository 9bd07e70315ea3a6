package dto

import "github.com/shopspring/decimal"

// CreateRoleRequest criação de função. Todos os campos são obrigatórios.
type CreateRoleRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Salary      decimal.Decimal `json:"salary"`
	WeeklyHours int             `json:"weekly_hours"`
}

// UpdateRoleRequest atualização de função pelo id da rota.
type UpdateRoleRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Salary      decimal.Decimal `json:"salary"`
	WeeklyHours int             `json:"weekly_hours"`
}

// RoleResponse função/cargo.
type RoleResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Salary      decimal.Decimal `json:"salary"`
	WeeklyHours int             `json:"weekly_hours"`
}

// RolePickerItem item enxuto para o formulário de cadastro de funcionário.
type RolePickerItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
