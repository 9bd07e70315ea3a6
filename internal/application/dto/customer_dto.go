package dto

// CreateCustomerRequest criação de cliente com endereço opcional.
type CreateCustomerRequest struct {
	Name    string          `json:"name"`
	TaxID   string          `json:"tax_id"` // CPF
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	Address *AddressRequest `json:"address"`
}

// UpdateCustomerRequest atualização de cliente; o alvo vem do CPF na rota.
type UpdateCustomerRequest struct {
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	Address *AddressRequest `json:"address"`
}

// CustomerResponse cliente com endereço aninhado.
type CustomerResponse struct {
	ID      int64            `json:"id"`
	Name    string           `json:"name"`
	TaxID   string           `json:"tax_id"`
	Email   string           `json:"email"`
	Phone   string           `json:"phone"`
	Address *AddressResponse `json:"address"`
}
