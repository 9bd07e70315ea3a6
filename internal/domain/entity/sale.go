package entity

import "time"

// Sale uma linha de venda (produto × quantidade). Todas as linhas de uma
// mesma venda compartilham BatchID e Date.
type Sale struct {
	ID            int64
	BatchID       string // uuid gerado por lote de venda
	CustomerTaxID string
	ProductID     int64
	Quantity      int
	Date          time.Time
}
