package dto

// CreateEmployeeRequest criação de funcionário com endereço opcional.
// Datas no formato 2006-01-02.
type CreateEmployeeRequest struct {
	Name       string          `json:"name"`
	TaxID      string          `json:"tax_id"` // CPF
	NationalID string          `json:"national_id"`
	Phone      string          `json:"phone"`
	Email      string          `json:"email"`
	BirthDate  string          `json:"birth_date"`
	HireDate   string          `json:"hire_date"`
	RoleID     *int64          `json:"role_id"`
	Address    *AddressRequest `json:"address"`
}

// UpdateEmployeeRequest atualização de funcionário; o alvo vem do CPF na rota.
type UpdateEmployeeRequest struct {
	Name       string          `json:"name"`
	NationalID string          `json:"national_id"`
	Phone      string          `json:"phone"`
	Email      string          `json:"email"`
	BirthDate  string          `json:"birth_date"`
	HireDate   string          `json:"hire_date"`
	RoleID     *int64          `json:"role_id"`
	Address    *AddressRequest `json:"address"`
}

// EmployeeResponse funcionário com nome da função e endereço aninhado.
type EmployeeResponse struct {
	ID         int64            `json:"id"`
	Name       string           `json:"name"`
	TaxID      string           `json:"tax_id"`
	NationalID string           `json:"national_id"`
	Phone      string           `json:"phone"`
	Email      string           `json:"email"`
	BirthDate  string           `json:"birth_date"`
	HireDate   string           `json:"hire_date"`
	RoleID     *int64           `json:"role_id"`
	RoleName   string           `json:"role_name"`
	Address    *AddressResponse `json:"address"`
}
