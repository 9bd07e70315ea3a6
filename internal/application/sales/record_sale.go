package sales

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/annaclaralemossilva/testesss/internal/application/dto"
	"github.com/annaclaralemossilva/testesss/internal/domain"
	"github.com/annaclaralemossilva/testesss/internal/domain/entity"
	"github.com/annaclaralemossilva/testesss/internal/domain/repository"
	"github.com/annaclaralemossilva/testesss/pkg/textutil"
)

// RecordSaleUseCase registra vendas multi-linha. Cada item vira uma linha
// na tabela de vendas; todas compartilham o mesmo lote (uuid) e timestamp,
// e a baixa de estoque acontece na mesma transação.
type RecordSaleUseCase struct {
	txRunner     TxRunner
	customerRepo repository.CustomerRepository
}

func NewRecordSaleUseCase(txRunner TxRunner, customerRepo repository.CustomerRepository) *RecordSaleUseCase {
	return &RecordSaleUseCase{txRunner: txRunner, customerRepo: customerRepo}
}

// Record valida o lote inteiro antes de escrever qualquer linha. Qualquer
// item inválido, produto inexistente ou estoque insuficiente rejeita a
// venda toda; nenhuma linha parcial é gravada.
func (uc *RecordSaleUseCase) Record(ctx context.Context, in *dto.RecordSaleRequest) (*dto.RecordSaleResponse, error) {
	in.CustomerTaxID = textutil.Clean(in.CustomerTaxID)
	if in.CustomerTaxID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID <= 0 || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	customer, err := uc.customerRepo.GetByTaxID(in.CustomerTaxID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	// Um único lote e timestamp para todas as linhas da venda.
	batchID := uuid.New().String()
	date := time.Now()

	err = uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		for _, item := range in.Items {
			product, err := productRepo.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if product.Stock < item.Quantity {
				return domain.ErrInsufficientStock
			}
			if err := productRepo.UpdateStock(product.ID, product.Stock-item.Quantity); err != nil {
				return err
			}
			if _, err := saleRepo.Create(&entity.Sale{
				BatchID:       batchID,
				CustomerTaxID: in.CustomerTaxID,
				ProductID:     item.ProductID,
				Quantity:      item.Quantity,
				Date:          date,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.RecordSaleResponse{
		BatchID: batchID,
		Lines:   len(in.Items),
		Date:    date,
		Message: "Venda registrada com sucesso.",
	}, nil
}
