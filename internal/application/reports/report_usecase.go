package reports

import (
	"context"

	"github.com/annaclaralemossilva/testesss/internal/application/dto"
	"github.com/annaclaralemossilva/testesss/internal/domain/entity"
	"github.com/annaclaralemossilva/testesss/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ReportUseCase expõe as consultas de relatório, todas apenas leitura.
type ReportUseCase struct {
	repo repository.ReportRepository
}

func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// Sales relatório de vendas com nome de cliente e produto, preço e total por linha.
func (uc *ReportUseCase) Sales(ctx context.Context, f repository.SalesReportFilter) ([]*dto.SalesReportRow, error) {
	rows, err := uc.repo.Sales(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SalesReportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, &dto.SalesReportRow{
			ID:           r.ID,
			CustomerName: r.CustomerName,
			ProductName:  r.ProductName,
			Quantity:     r.Quantity,
			UnitPrice:    r.UnitPrice,
			Total:        r.Total,
			Date:         r.Date,
		})
	}
	return out, nil
}

// Stock relatório de estoque com nome do fornecedor.
func (uc *ReportUseCase) Stock(ctx context.Context, f repository.StockReportFilter) ([]*dto.StockReportRow, error) {
	rows, err := uc.repo.Stock(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StockReportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, &dto.StockReportRow{
			ID:           r.ID,
			ProductName:  r.ProductName,
			Stock:        r.Stock,
			SupplierName: r.SupplierName,
		})
	}
	return out, nil
}

// Employees relatório de funcionários com função e endereço.
func (uc *ReportUseCase) Employees(ctx context.Context, f repository.EmployeesReportFilter) ([]*dto.EmployeeResponse, error) {
	employees, err := uc.repo.Employees(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		resp := &dto.EmployeeResponse{
			ID:         e.ID,
			Name:       e.Name,
			TaxID:      e.TaxID,
			NationalID: e.NationalID,
			Phone:      e.Phone,
			Email:      e.Email,
			BirthDate:  e.BirthDate.Format(dateLayout),
			HireDate:   e.HireDate.Format(dateLayout),
			RoleID:     e.RoleID,
			RoleName:   e.RoleName,
		}
		if a := e.Address; a != nil {
			resp.Address = &dto.AddressResponse{
				PostalCode:   a.PostalCode,
				Street:       a.Street,
				Neighborhood: a.Neighborhood,
				City:         a.City,
				State:        a.State,
				IBGECode:     a.IBGECode,
				Number:       a.Number,
				Reference:    a.Reference,
			}
		}
		out = append(out, resp)
	}
	return out, nil
}

// Customers relatório de clientes filtrado por nome e CPF.
func (uc *ReportUseCase) Customers(ctx context.Context, f repository.NameTaxIDFilter) ([]*dto.CustomerResponse, error) {
	customers, err := uc.repo.Customers(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, &dto.CustomerResponse{
			ID:    c.ID,
			Name:  c.Name,
			TaxID: c.TaxID,
			Email: c.Email,
			Phone: c.Phone,
		})
	}
	return out, nil
}

// Suppliers relatório de fornecedores filtrado por nome e CNPJ.
func (uc *ReportUseCase) Suppliers(ctx context.Context, f repository.NameTaxIDFilter) ([]*dto.SupplierResponse, error) {
	suppliers, err := uc.repo.Suppliers(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, &dto.SupplierResponse{
			ID:    s.ID,
			Name:  s.Name,
			TaxID: s.TaxID,
			Email: s.Email,
			Phone: s.Phone,
		})
	}
	return out, nil
}

// Roles relatório de funções filtrado por nome e descrição.
func (uc *ReportUseCase) Roles(ctx context.Context, f repository.RolesReportFilter) ([]*dto.RoleResponse, error) {
	roles, err := uc.repo.Roles(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, &dto.RoleResponse{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Salary:      r.Salary,
			WeeklyHours: r.WeeklyHours,
		})
	}
	return out, nil
}

// Products relatório de produtos filtrado por nome e tipo.
func (uc *ReportUseCase) Products(ctx context.Context, f repository.ProductsReportFilter) ([]*dto.ProductResponse, error) {
	products, err := uc.repo.Products(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, &dto.ProductResponse{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price,
			Stock:       p.Stock,
			Type:        p.Type,
			Description: p.Description,
			SupplierID:  p.SupplierID,
		})
	}
	return out, nil
}

// CartItems relatório de itens de carrinho filtrado por cliente e produto.
func (uc *ReportUseCase) CartItems(ctx context.Context, f repository.SaleLinesFilter) ([]*dto.CartItemResponse, error) {
	items, err := uc.repo.CartItems(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CartItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, &dto.CartItemResponse{
			ID:            item.ID,
			CustomerTaxID: item.CustomerTaxID,
			ProductID:     item.ProductID,
			Quantity:      item.Quantity,
			AddedAt:       item.AddedAt,
		})
	}
	return out, nil
}

// SalesRaw linhas brutas da tabela de vendas, filtradas por cliente e produto.
func (uc *ReportUseCase) SalesRaw(ctx context.Context, f repository.SaleLinesFilter) ([]*dto.SaleRawRow, error) {
	sales, err := uc.repo.SalesRaw(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleRawRow, 0, len(sales))
	for _, s := range sales {
		out = append(out, saleRawRow(s))
	}
	return out, nil
}

func saleRawRow(s *entity.Sale) *dto.SaleRawRow {
	return &dto.SaleRawRow{
		ID:            s.ID,
		BatchID:       s.BatchID,
		CustomerTaxID: s.CustomerTaxID,
		ProductID:     s.ProductID,
		Quantity:      s.Quantity,
		Date:          s.Date,
	}
}
