package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annaclaralemossilva/testesss/internal/application/reports"
	"github.com/annaclaralemossilva/testesss/internal/domain/entity"
	"github.com/annaclaralemossilva/testesss/internal/domain/repository"
)

// fakeReportRepo devolve dados fixos e registra o último filtro recebido.
type fakeReportRepo struct {
	lastSalesFilter repository.SalesReportFilter
}

func (r *fakeReportRepo) Sales(_ context.Context, f repository.SalesReportFilter) ([]repository.SalesReportRow, error) {
	r.lastSalesFilter = f
	return []repository.SalesReportRow{{
		ID:           1,
		CustomerName: "Maria",
		ProductName:  "Caderno",
		Quantity:     2,
		UnitPrice:    decimal.NewFromFloat(12.50),
		Total:        decimal.NewFromFloat(25.00),
		Date:         time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}}, nil
}

func (r *fakeReportRepo) Stock(context.Context, repository.StockReportFilter) ([]repository.StockReportRow, error) {
	return []repository.StockReportRow{{ID: 10, ProductName: "Caderno", Stock: 5, SupplierName: "ABC"}}, nil
}

func (r *fakeReportRepo) Employees(context.Context, repository.EmployeesReportFilter) ([]*entity.EmployeeWithRole, error) {
	return []*entity.EmployeeWithRole{{
		Employee: entity.Employee{
			ID:        1,
			Name:      "Carlos",
			TaxID:     "555",
			BirthDate: time.Date(1990, 4, 15, 0, 0, 0, 0, time.UTC),
			HireDate:  time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		RoleName: "Vendedor",
	}}, nil
}

func (r *fakeReportRepo) Customers(context.Context, repository.NameTaxIDFilter) ([]*entity.Customer, error) {
	return nil, nil
}

func (r *fakeReportRepo) Suppliers(context.Context, repository.NameTaxIDFilter) ([]*entity.Supplier, error) {
	return nil, nil
}

func (r *fakeReportRepo) Roles(context.Context, repository.RolesReportFilter) ([]*entity.Role, error) {
	return nil, nil
}

func (r *fakeReportRepo) Products(context.Context, repository.ProductsReportFilter) ([]*entity.Product, error) {
	return nil, nil
}

func (r *fakeReportRepo) CartItems(context.Context, repository.SaleLinesFilter) ([]*entity.CartItem, error) {
	return nil, nil
}

func (r *fakeReportRepo) SalesRaw(context.Context, repository.SaleLinesFilter) ([]*entity.Sale, error) {
	return []*entity.Sale{{ID: 7, BatchID: "abc", CustomerTaxID: "555", ProductID: 10, Quantity: 1}}, nil
}

func TestSales_PropagaFiltroEMapeiaLinhas(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := reports.NewReportUseCase(repo)

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	rows, err := uc.Sales(context.Background(), repository.SalesReportFilter{
		CustomerTaxID: "12345678901",
		ProductName:   "Caderno",
		DateFrom:      &from,
	})
	require.NoError(t, err)

	assert.Equal(t, "12345678901", repo.lastSalesFilter.CustomerTaxID)
	require.NotNil(t, repo.lastSalesFilter.DateFrom)

	require.Len(t, rows, 1)
	assert.Equal(t, "Maria", rows[0].CustomerName)
	assert.True(t, rows[0].Total.Equal(decimal.NewFromFloat(25.00)))
}

func TestEmployees_FormataDatas(t *testing.T) {
	uc := reports.NewReportUseCase(&fakeReportRepo{})

	rows, err := uc.Employees(context.Background(), repository.EmployeesReportFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "1990-04-15", rows[0].BirthDate)
	assert.Equal(t, "2024-01-02", rows[0].HireDate)
	assert.Equal(t, "Vendedor", rows[0].RoleName)
	assert.Nil(t, rows[0].Address)
}

func TestSalesRaw_Mapeia(t *testing.T) {
	uc := reports.NewReportUseCase(&fakeReportRepo{})

	rows, err := uc.SalesRaw(context.Background(), repository.SaleLinesFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "abc", rows[0].BatchID)
}
