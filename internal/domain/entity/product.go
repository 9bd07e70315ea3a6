package entity

import "github.com/shopspring/decimal"

// Product representa um produto do catálogo, com estoque e fornecedor.
type Product struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Stock       int // quantidade em estoque, nunca negativa
	Type        string
	Description string
	SupplierID  *int64
}
