package entity

// Customer representa um cliente da loja.
type Customer struct {
	ID    int64
	Name  string
	TaxID string // CPF, único entre clientes
	Email string
	Phone string
}

// CustomerWithAddress cliente com seu endereço opcional (LEFT JOIN).
type CustomerWithAddress struct {
	Customer
	Address *Address
}
