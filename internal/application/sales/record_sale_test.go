package sales_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annaclaralemossilva/testesss/internal/application/dto"
	"github.com/annaclaralemossilva/testesss/internal/application/sales"
	"github.com/annaclaralemossilva/testesss/internal/domain"
	"github.com/annaclaralemossilva/testesss/internal/domain/entity"
	"github.com/annaclaralemossilva/testesss/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	byTaxID map[string]*entity.CustomerWithAddress
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) (int64, error)        { panic("não usado") }
func (r *fakeCustomerRepo) UpdateByTaxID(c *entity.Customer) (int64, error) { panic("não usado") }

func (r *fakeCustomerRepo) List(string) ([]*entity.CustomerWithAddress, error) {
	panic("não usado")
}

func (r *fakeCustomerRepo) GetByTaxID(taxID string) (*entity.CustomerWithAddress, error) {
	return r.byTaxID[taxID], nil
}

type fakeProductRepo struct {
	products map[int64]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) (int64, error) { panic("não usado") }
func (r *fakeProductRepo) List() ([]*entity.Product, error)        { panic("não usado") }
func (r *fakeProductRepo) Update(p *entity.Product) error          { panic("não usado") }

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) UpdateStock(id int64, stock int) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

type fakeSaleRepo struct {
	nextID int64
	rows   []*entity.Sale
}

func (r *fakeSaleRepo) Create(s *entity.Sale) (int64, error) {
	r.nextID++
	s.ID = r.nextID
	clone := *s
	r.rows = append(r.rows, &clone)
	return s.ID, nil
}

// fakeSaleTxRunner tira um snapshot antes do callback e restaura em caso de
// erro, imitando o rollback da transação real.
type fakeSaleTxRunner struct {
	sales    *fakeSaleRepo
	products *fakeProductRepo
}

func (r *fakeSaleTxRunner) RunSale(ctx context.Context, fn func(
	repository.SaleRepository,
	repository.ProductRepository,
) error) error {
	stockSnapshot := map[int64]int{}
	for id, p := range r.products.products {
		stockSnapshot[id] = p.Stock
	}
	salesLen := len(r.sales.rows)

	if err := fn(r.sales, r.products); err != nil {
		for id, stock := range stockSnapshot {
			r.products.products[id].Stock = stock
		}
		r.sales.rows = r.sales.rows[:salesLen]
		return err
	}
	return nil
}

func setup() (*sales.RecordSaleUseCase, *fakeSaleTxRunner) {
	customers := &fakeCustomerRepo{byTaxID: map[string]*entity.CustomerWithAddress{
		"12345678901": {Customer: entity.Customer{ID: 1, Name: "Maria", TaxID: "12345678901"}},
	}}
	runner := &fakeSaleTxRunner{
		sales: &fakeSaleRepo{},
		products: &fakeProductRepo{products: map[int64]*entity.Product{
			10: {ID: 10, Name: "Caderno", Stock: 5},
			20: {ID: 20, Name: "Caneta", Stock: 100},
		}},
	}
	return sales.NewRecordSaleUseCase(runner, customers), runner
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro de venda
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_DuasLinhasCompartilhamLoteEData(t *testing.T) {
	uc, runner := setup()

	out, err := uc.Record(context.Background(), &dto.RecordSaleRequest{
		CustomerTaxID: "12345678901",
		Items: []dto.SaleItem{
			{ProductID: 10, Quantity: 2},
			{ProductID: 20, Quantity: 3},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Lines)

	_, err = uuid.Parse(out.BatchID)
	assert.NoError(t, err, "batch_id deve ser um uuid válido")

	require.Len(t, runner.sales.rows, 2)
	first, second := runner.sales.rows[0], runner.sales.rows[1]
	assert.Equal(t, first.BatchID, second.BatchID, "as linhas compartilham o lote")
	assert.True(t, first.Date.Equal(second.Date), "as linhas compartilham o timestamp")
	assert.Equal(t, out.BatchID, first.BatchID)

	assert.Equal(t, 3, runner.products.products[10].Stock)
	assert.Equal(t, 97, runner.products.products[20].Stock)
}

func TestRecordSale_ItemInvalidoRejeitaLoteInteiro(t *testing.T) {
	uc, runner := setup()

	_, err := uc.Record(context.Background(), &dto.RecordSaleRequest{
		CustomerTaxID: "12345678901",
		Items: []dto.SaleItem{
			{ProductID: 10, Quantity: 2},
			{ProductID: 20, Quantity: 0}, // quantidade inválida
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, runner.sales.rows, "nenhuma linha pode ser gravada")
	assert.Equal(t, 5, runner.products.products[10].Stock, "estoque intocado")
}

func TestRecordSale_SemItens(t *testing.T) {
	uc, _ := setup()

	_, err := uc.Record(context.Background(), &dto.RecordSaleRequest{CustomerTaxID: "12345678901"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordSale_ClienteInexistente(t *testing.T) {
	uc, runner := setup()

	_, err := uc.Record(context.Background(), &dto.RecordSaleRequest{
		CustomerTaxID: "00000000000",
		Items:         []dto.SaleItem{{ProductID: 10, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, runner.sales.rows)
}

func TestRecordSale_ProdutoInexistente(t *testing.T) {
	uc, runner := setup()

	_, err := uc.Record(context.Background(), &dto.RecordSaleRequest{
		CustomerTaxID: "12345678901",
		Items: []dto.SaleItem{
			{ProductID: 10, Quantity: 1},
			{ProductID: 999, Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, runner.sales.rows, "rollback descarta a linha já gravada")
	assert.Equal(t, 5, runner.products.products[10].Stock, "baixa de estoque desfeita")
}

func TestRecordSale_EstoqueInsuficiente(t *testing.T) {
	uc, runner := setup()

	_, err := uc.Record(context.Background(), &dto.RecordSaleRequest{
		CustomerTaxID: "12345678901",
		Items: []dto.SaleItem{
			{ProductID: 20, Quantity: 1},
			{ProductID: 10, Quantity: 6}, // estoque é 5
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, runner.sales.rows)
	assert.Equal(t, 100, runner.products.products[20].Stock, "linha válida também desfeita")
	assert.Equal(t, 5, runner.products.products[10].Stock)
}

func TestRecordSale_EstoqueExato(t *testing.T) {
	uc, runner := setup()

	_, err := uc.Record(context.Background(), &dto.RecordSaleRequest{
		CustomerTaxID: "12345678901",
		Items:         []dto.SaleItem{{ProductID: 10, Quantity: 5}},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, runner.products.products[10].Stock, "vender o estoque inteiro é permitido")
}
