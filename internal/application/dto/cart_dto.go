package dto

import "time"

// AddCartItemRequest adiciona um item pendente ao carrinho de um cliente.
type AddCartItemRequest struct {
	CustomerTaxID string `json:"customer_tax_id"`
	ProductID     int64  `json:"product_id"`
	Quantity      int    `json:"quantity"`
}

// CartItemResponse item de carrinho.
type CartItemResponse struct {
	ID            int64     `json:"id"`
	CustomerTaxID string    `json:"customer_tax_id"`
	ProductID     int64     `json:"product_id"`
	Quantity      int       `json:"quantity"`
	AddedAt       time.Time `json:"added_at"`
}
