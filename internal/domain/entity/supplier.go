package entity

// Supplier representa um fornecedor de produtos.
type Supplier struct {
	ID    int64
	Name  string
	TaxID string // CNPJ, único entre fornecedores
	Email string
	Phone string
}

// SupplierWithAddress fornecedor com seu endereço opcional (LEFT JOIN).
type SupplierWithAddress struct {
	Supplier
	Address *Address
}
