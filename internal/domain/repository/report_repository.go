package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/annaclaralemossilva/testesss/internal/domain/entity"
)

// SalesReportFilter filtros opcionais do relatório de vendas.
// CustomerTaxID casa por igualdade; ProductName por LIKE; datas são inclusivas.
type SalesReportFilter struct {
	CustomerTaxID string
	ProductName   string
	DateFrom      *time.Time
	DateTo        *time.Time
}

// SalesReportRow linha do relatório de vendas (venda × cliente × produto).
type SalesReportRow struct {
	ID           int64
	CustomerName string
	ProductName  string
	Quantity     int
	UnitPrice    decimal.Decimal
	Total        decimal.Decimal
	Date         time.Time
}

// StockReportFilter filtros opcionais do relatório de estoque (LIKE).
type StockReportFilter struct {
	ProductName  string
	SupplierName string
}

// StockReportRow linha do relatório de estoque.
type StockReportRow struct {
	ID           int64
	ProductName  string
	Stock        int
	SupplierName string
}

// EmployeesReportFilter filtros opcionais do relatório de funcionários (LIKE).
type EmployeesReportFilter struct {
	Name     string
	RoleName string
}

// NameTaxIDFilter filtro por nome (LIKE) e documento (LIKE) — clientes e fornecedores.
type NameTaxIDFilter struct {
	Name  string
	TaxID string
}

// RolesReportFilter filtros opcionais do relatório de funções (LIKE).
type RolesReportFilter struct {
	Name        string
	Description string
}

// ProductsReportFilter filtros opcionais do relatório de produtos (LIKE).
type ProductsReportFilter struct {
	Name string
	Type string
}

// SaleLinesFilter filtro bruto por cliente e produto (vendas e carrinho).
type SaleLinesFilter struct {
	CustomerTaxID string
	ProductID     *int64
}

// ReportRepository consultas de apenas leitura para os relatórios.
type ReportRepository interface {
	Sales(ctx context.Context, f SalesReportFilter) ([]SalesReportRow, error)
	Stock(ctx context.Context, f StockReportFilter) ([]StockReportRow, error)
	Employees(ctx context.Context, f EmployeesReportFilter) ([]*entity.EmployeeWithRole, error)
	Customers(ctx context.Context, f NameTaxIDFilter) ([]*entity.Customer, error)
	Suppliers(ctx context.Context, f NameTaxIDFilter) ([]*entity.Supplier, error)
	Roles(ctx context.Context, f RolesReportFilter) ([]*entity.Role, error)
	Products(ctx context.Context, f ProductsReportFilter) ([]*entity.Product, error)
	CartItems(ctx context.Context, f SaleLinesFilter) ([]*entity.CartItem, error)
	SalesRaw(ctx context.Context, f SaleLinesFilter) ([]*entity.Sale, error)
}
