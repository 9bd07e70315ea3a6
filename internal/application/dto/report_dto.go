package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesReportRow linha do relatório de vendas (cliente × produto).
type SalesReportRow struct {
	ID           int64           `json:"id"`
	CustomerName string          `json:"customer_name"`
	ProductName  string          `json:"product_name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Total        decimal.Decimal `json:"total"`
	Date         time.Time       `json:"date"`
}

// StockReportRow linha do relatório de estoque (produto × fornecedor).
type StockReportRow struct {
	ID           int64  `json:"id"`
	ProductName  string `json:"product_name"`
	Stock        int    `json:"stock"`
	SupplierName string `json:"supplier_name"`
}

// SaleRawRow linha bruta da tabela de vendas.
type SaleRawRow struct {
	ID            int64     `json:"id"`
	BatchID       string    `json:"batch_id"`
	CustomerTaxID string    `json:"customer_tax_id"`
	ProductID     int64     `json:"product_id"`
	Quantity      int       `json:"quantity"`
	Date          time.Time `json:"date"`
}
