package sales

import (
	"context"

	"github.com/annaclaralemossilva/testesss/internal/domain/repository"
)

// SalesReportPDFUseCase consulta o relatório de vendas e o entrega como PDF.
type SalesReportPDFUseCase struct {
	reportRepo repository.ReportRepository
	generator  SalesReportPDFGenerator
}

func NewSalesReportPDFUseCase(reportRepo repository.ReportRepository, generator SalesReportPDFGenerator) *SalesReportPDFUseCase {
	return &SalesReportPDFUseCase{reportRepo: reportRepo, generator: generator}
}

// Generate aplica os mesmos filtros do relatório JSON e renderiza o PDF.
func (uc *SalesReportPDFUseCase) Generate(ctx context.Context, f repository.SalesReportFilter) ([]byte, error) {
	rows, err := uc.reportRepo.Sales(ctx, f)
	if err != nil {
		return nil, err
	}
	return uc.generator.Generate(rows)
}
