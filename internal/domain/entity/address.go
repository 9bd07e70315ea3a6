package entity

// AddressOwnerKind identifica a qual entidade um endereço pertence.
type AddressOwnerKind string

const (
	OwnerCustomer AddressOwnerKind = "customer"
	OwnerSupplier AddressOwnerKind = "supplier"
	OwnerEmployee AddressOwnerKind = "employee"
)

// Address endereço postal pertencente a exatamente uma entidade
// (cliente, fornecedor ou funcionário) via uma FK anulável por tipo de dono.
type Address struct {
	ID           int64
	CustomerID   *int64
	SupplierID   *int64
	EmployeeID   *int64
	PostalCode   string // CEP
	Street       string
	Neighborhood string
	City         string
	State        string
	IBGECode     string // código de localidade IBGE
	Number       string
	Reference    string
}
