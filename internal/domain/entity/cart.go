package entity

import "time"

// CartItem item pendente no carrinho de um cliente. Estágio de pré-venda,
// não é conciliado contra vendas nem estoque.
type CartItem struct {
	ID            int64
	CustomerTaxID string
	ProductID     int64
	Quantity      int
	AddedAt       time.Time
}
