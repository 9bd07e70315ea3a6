package sales

import (
	"context"

	"github.com/annaclaralemossilva/testesss/internal/domain/repository"
)

// TxRunner executa o registro de uma venda dentro de uma transação:
// todas as linhas e baixas de estoque entram juntas, ou nada entra.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// SalesReportPDFGenerator gera o PDF do relatório de vendas.
type SalesReportPDFGenerator interface {
	Generate(rows []repository.SalesReportRow) ([]byte, error)
}
