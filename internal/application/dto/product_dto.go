package dto

import "github.com/shopspring/decimal"

// CreateProductRequest criação de produto. Todos os campos são obrigatórios.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	SupplierID  *int64          `json:"supplier_id"`
}

// UpdateProductRequest atualização de produto pelo id da rota.
type UpdateProductRequest struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	SupplierID  *int64          `json:"supplier_id"`
}

// ProductResponse produto do catálogo.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	SupplierID  *int64          `json:"supplier_id"`
}

// ProductPickerItem item enxuto para o formulário de vendas.
type ProductPickerItem struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}
