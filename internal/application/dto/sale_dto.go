package dto

import "time"

// SaleItem uma linha (produto × quantidade) de uma venda.
type SaleItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// RecordSaleRequest registro de venda multi-linha de um cliente.
type RecordSaleRequest struct {
	CustomerTaxID string     `json:"customer_tax_id"`
	Items         []SaleItem `json:"items"`
}

// RecordSaleResponse resultado do registro: lote, linhas e timestamp comum.
type RecordSaleResponse struct {
	BatchID string    `json:"batch_id"`
	Lines   int       `json:"lines"`
	Date    time.Time `json:"date"`
	Message string    `json:"message"`
}
