package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/annaclaralemossilva/testesss/internal/application/reports"
	"github.com/annaclaralemossilva/testesss/internal/application/sales"
	"github.com/annaclaralemossilva/testesss/internal/domain"
	"github.com/annaclaralemossilva/testesss/internal/domain/repository"
)

// ReportHandler trata as consultas de relatório (apenas leitura).
type ReportHandler struct {
	uc    *reports.ReportUseCase
	pdfUC *sales.SalesReportPDFUseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *reports.ReportUseCase, pdfUC *sales.SalesReportPDFUseCase) *ReportHandler {
	return &ReportHandler{uc: uc, pdfUC: pdfUC}
}

// salesFilter monta o filtro do relatório de vendas a partir da query string.
// Datas no formato 2006-01-02; date_to é inclusivo.
func salesFilter(c *fiber.Ctx) (repository.SalesReportFilter, error) {
	f := repository.SalesReportFilter{
		CustomerTaxID: c.Query("tax_id"),
		ProductName:   c.Query("product"),
	}
	if raw := c.Query("date_from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return f, domain.ErrInvalidInput
		}
		f.DateFrom = &t
	}
	if raw := c.Query("date_to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return f, domain.ErrInvalidInput
		}
		f.DateTo = &t
	}
	return f, nil
}

// saleLinesFilter monta o filtro bruto de vendas/carrinho a partir da query string.
func saleLinesFilter(c *fiber.Ctx) (repository.SaleLinesFilter, error) {
	f := repository.SaleLinesFilter{CustomerTaxID: c.Query("customer_tax_id")}
	if raw := c.Query("product_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return f, domain.ErrInvalidInput
		}
		f.ProductID = &id
	}
	return f, nil
}

// Sales godoc
// @Summary      Relatório de vendas
// @Tags         reports
// @Produce      json
// @Param        tax_id     query  string  false  "CPF exato do cliente"
// @Param        product    query  string  false  "Nome do produto (parcial)"
// @Param        date_from  query  string  false  "Data inicial (2006-01-02)"
// @Param        date_to    query  string  false  "Data final inclusiva (2006-01-02)"
// @Success      200  {array}  dto.SalesReportRow
// @Router       /reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	f, err := salesFilter(c)
	if err != nil {
		return domainError(c, err)
	}
	out, err := h.uc.Sales(c.Context(), f)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// SalesPDF godoc
// @Summary      Relatório de vendas em PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        tax_id     query  string  false  "CPF exato do cliente"
// @Param        product    query  string  false  "Nome do produto (parcial)"
// @Param        date_from  query  string  false  "Data inicial (2006-01-02)"
// @Param        date_to    query  string  false  "Data final inclusiva (2006-01-02)"
// @Success      200  {file}  binary
// @Router       /reports/sales/pdf [get]
func (h *ReportHandler) SalesPDF(c *fiber.Ctx) error {
	f, err := salesFilter(c)
	if err != nil {
		return domainError(c, err)
	}
	doc, err := h.pdfUC.Generate(c.Context(), f)
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="relatorio-vendas.pdf"`)
	return c.Send(doc)
}

// Stock godoc
// @Summary      Relatório de estoque com fornecedor
// @Tags         reports
// @Produce      json
// @Param        product   query  string  false  "Nome do produto (parcial)"
// @Param        supplier  query  string  false  "Nome do fornecedor (parcial)"
// @Success      200  {array}  dto.StockReportRow
// @Router       /reports/stock [get]
func (h *ReportHandler) Stock(c *fiber.Ctx) error {
	out, err := h.uc.Stock(c.Context(), repository.StockReportFilter{
		ProductName:  c.Query("product"),
		SupplierName: c.Query("supplier"),
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Employees godoc
// @Summary      Relatório de funcionários
// @Tags         reports
// @Produce      json
// @Param        name  query  string  false  "Nome (parcial)"
// @Param        role  query  string  false  "Nome da função (parcial)"
// @Success      200  {array}  dto.EmployeeResponse
// @Router       /reports/employees [get]
func (h *ReportHandler) Employees(c *fiber.Ctx) error {
	out, err := h.uc.Employees(c.Context(), repository.EmployeesReportFilter{
		Name:     c.Query("name"),
		RoleName: c.Query("role"),
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Customers godoc
// @Summary      Relatório de clientes
// @Tags         reports
// @Produce      json
// @Param        name    query  string  false  "Nome (parcial)"
// @Param        tax_id  query  string  false  "CPF (parcial)"
// @Success      200  {array}  dto.CustomerResponse
// @Router       /reports/customers [get]
func (h *ReportHandler) Customers(c *fiber.Ctx) error {
	out, err := h.uc.Customers(c.Context(), repository.NameTaxIDFilter{
		Name:  c.Query("name"),
		TaxID: c.Query("tax_id"),
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Suppliers godoc
// @Summary      Relatório de fornecedores
// @Tags         reports
// @Produce      json
// @Param        name    query  string  false  "Nome (parcial)"
// @Param        tax_id  query  string  false  "CNPJ (parcial)"
// @Success      200  {array}  dto.SupplierResponse
// @Router       /reports/suppliers [get]
func (h *ReportHandler) Suppliers(c *fiber.Ctx) error {
	out, err := h.uc.Suppliers(c.Context(), repository.NameTaxIDFilter{
		Name:  c.Query("name"),
		TaxID: c.Query("tax_id"),
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Roles godoc
// @Summary      Relatório de funções
// @Tags         reports
// @Produce      json
// @Param        name         query  string  false  "Nome (parcial)"
// @Param        description  query  string  false  "Descrição (parcial)"
// @Success      200  {array}  dto.RoleResponse
// @Router       /reports/roles [get]
func (h *ReportHandler) Roles(c *fiber.Ctx) error {
	out, err := h.uc.Roles(c.Context(), repository.RolesReportFilter{
		Name:        c.Query("name"),
		Description: c.Query("description"),
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Products godoc
// @Summary      Relatório de produtos
// @Tags         reports
// @Produce      json
// @Param        name  query  string  false  "Nome (parcial)"
// @Param        type  query  string  false  "Tipo (parcial)"
// @Success      200  {array}  dto.ProductResponse
// @Router       /reports/products [get]
func (h *ReportHandler) Products(c *fiber.Ctx) error {
	out, err := h.uc.Products(c.Context(), repository.ProductsReportFilter{
		Name: c.Query("name"),
		Type: c.Query("type"),
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// CartItems godoc
// @Summary      Relatório de itens de carrinho
// @Tags         reports
// @Produce      json
// @Param        customer_tax_id  query  string  false  "CPF exato do cliente"
// @Param        product_id       query  int     false  "ID do produto"
// @Success      200  {array}  dto.CartItemResponse
// @Router       /reports/cart [get]
func (h *ReportHandler) CartItems(c *fiber.Ctx) error {
	f, err := saleLinesFilter(c)
	if err != nil {
		return domainError(c, err)
	}
	out, err := h.uc.CartItems(c.Context(), f)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// SalesRaw godoc
// @Summary      Linhas brutas de venda
// @Tags         reports
// @Produce      json
// @Param        customer_tax_id  query  string  false  "CPF exato do cliente"
// @Param        product_id       query  int     false  "ID do produto"
// @Success      200  {array}  dto.SaleRawRow
// @Router       /reports/sales-raw [get]
func (h *ReportHandler) SalesRaw(c *fiber.Ctx) error {
	f, err := saleLinesFilter(c)
	if err != nil {
		return domainError(c, err)
	}
	out, err := h.uc.SalesRaw(c.Context(), f)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
