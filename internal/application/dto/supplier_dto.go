package dto

// CreateSupplierRequest criação de fornecedor com endereço opcional.
type CreateSupplierRequest struct {
	Name    string          `json:"name"`
	TaxID   string          `json:"tax_id"` // CNPJ
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	Address *AddressRequest `json:"address"`
}

// UpdateSupplierRequest atualização de fornecedor; o alvo vem do CNPJ na rota.
type UpdateSupplierRequest struct {
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	Address *AddressRequest `json:"address"`
}

// SupplierResponse fornecedor com endereço aninhado.
type SupplierResponse struct {
	ID      int64            `json:"id"`
	Name    string           `json:"name"`
	TaxID   string           `json:"tax_id"`
	Email   string           `json:"email"`
	Phone   string           `json:"phone"`
	Address *AddressResponse `json:"address"`
}

// SupplierPickerItem item enxuto para o formulário de cadastro de produto.
type SupplierPickerItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
