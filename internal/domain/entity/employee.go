package entity

import "time"

// Employee representa um funcionário da loja.
// O endereço vive na tabela de endereços, com dono employee, igual a
// clientes e fornecedores.
type Employee struct {
	ID         int64
	Name       string
	TaxID      string // CPF, único entre funcionários
	NationalID string // RG
	Phone      string
	Email      string
	BirthDate  time.Time
	HireDate   time.Time
	RoleID     *int64
}

// EmployeeWithRole funcionário com o nome da função (LEFT JOIN) e endereço opcional.
type EmployeeWithRole struct {
	Employee
	RoleName string
	Address  *Address
}
