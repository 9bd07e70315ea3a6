package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/annaclaralemossilva/testesss/internal/domain/entity"
	"github.com/annaclaralemossilva/testesss/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de apenas leitura para os relatórios.
// Os filtros opcionais são acumulados sobre WHERE 1=1 com placeholders numerados.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository constrói o adaptador de relatórios.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// cond acumula condições "AND <expr> $n" com os respectivos argumentos.
type cond struct {
	query string
	args  []any
}

func (c *cond) add(expr string, arg any) {
	c.args = append(c.args, arg)
	c.query += " AND " + expr + "$" + strconv.Itoa(len(c.args))
}

// Sales relatório de vendas: venda × cliente × produto, com filtros opcionais.
func (r *ReportRepo) Sales(ctx context.Context, f repository.SalesReportFilter) ([]repository.SalesReportRow, error) {
	c := cond{query: `
		SELECT v.id, c.name, p.name, v.quantity, p.price, p.price * v.quantity, v.date
		FROM sales v
		JOIN customers c ON c.tax_id = v.customer_tax_id
		JOIN products p ON p.id = v.product_id
		WHERE 1=1`}
	if f.CustomerTaxID != "" {
		c.add("c.tax_id = ", f.CustomerTaxID)
	}
	if f.ProductName != "" {
		c.add("p.name ILIKE ", "%"+f.ProductName+"%")
	}
	if f.DateFrom != nil {
		c.add("v.date >= ", *f.DateFrom)
	}
	if f.DateTo != nil {
		c.add("v.date <= ", *f.DateTo)
	}
	c.query += ` ORDER BY v.date DESC`

	rows, err := r.pool.Query(ctx, c.query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("sales report: %w", err)
	}
	defer rows.Close()
	var list []repository.SalesReportRow
	for rows.Next() {
		var row repository.SalesReportRow
		if err := rows.Scan(&row.ID, &row.CustomerName, &row.ProductName, &row.Quantity, &row.UnitPrice, &row.Total, &row.Date); err != nil {
			return nil, fmt.Errorf("scan sales report: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Stock relatório de estoque: produto × fornecedor.
func (r *ReportRepo) Stock(ctx context.Context, f repository.StockReportFilter) ([]repository.StockReportRow, error) {
	c := cond{query: `
		SELECT p.id, p.name, p.stock, COALESCE(s.name, '')
		FROM products p
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		WHERE 1=1`}
	if f.ProductName != "" {
		c.add("p.name ILIKE ", "%"+f.ProductName+"%")
	}
	if f.SupplierName != "" {
		c.add("s.name ILIKE ", "%"+f.SupplierName+"%")
	}
	c.query += ` ORDER BY p.name`

	rows, err := r.pool.Query(ctx, c.query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("stock report: %w", err)
	}
	defer rows.Close()
	var list []repository.StockReportRow
	for rows.Next() {
		var row repository.StockReportRow
		if err := rows.Scan(&row.ID, &row.ProductName, &row.Stock, &row.SupplierName); err != nil {
			return nil, fmt.Errorf("scan stock report: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Employees relatório de funcionários com nome da função.
func (r *ReportRepo) Employees(ctx context.Context, f repository.EmployeesReportFilter) ([]*entity.EmployeeWithRole, error) {
	c := cond{query: `
		SELECT e.id, e.name, e.tax_id, e.national_id, e.phone, e.email,
		       e.birth_date, e.hire_date, e.role_id, COALESCE(r.name, '')
		FROM employees e
		LEFT JOIN roles r ON r.id = e.role_id
		WHERE 1=1`}
	if f.Name != "" {
		c.add("e.name ILIKE ", "%"+f.Name+"%")
	}
	if f.RoleName != "" {
		c.add("r.name ILIKE ", "%"+f.RoleName+"%")
	}
	c.query += ` ORDER BY e.name`

	rows, err := r.pool.Query(ctx, c.query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("employees report: %w", err)
	}
	defer rows.Close()
	var list []*entity.EmployeeWithRole
	for rows.Next() {
		var e entity.EmployeeWithRole
		if err := rows.Scan(&e.ID, &e.Name, &e.TaxID, &e.NationalID, &e.Phone, &e.Email,
			&e.BirthDate, &e.HireDate, &e.RoleID, &e.RoleName); err != nil {
			return nil, fmt.Errorf("scan employees report: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Customers relatório de clientes filtrado por nome e CPF (LIKE).
func (r *ReportRepo) Customers(ctx context.Context, f repository.NameTaxIDFilter) ([]*entity.Customer, error) {
	c := cond{query: `SELECT id, name, tax_id, email, phone FROM customers WHERE 1=1`}
	if f.Name != "" {
		c.add("name ILIKE ", "%"+f.Name+"%")
	}
	if f.TaxID != "" {
		c.add("tax_id LIKE ", "%"+f.TaxID+"%")
	}
	c.query += ` ORDER BY name`

	rows, err := r.pool.Query(ctx, c.query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("customers report: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var cust entity.Customer
		if err := rows.Scan(&cust.ID, &cust.Name, &cust.TaxID, &cust.Email, &cust.Phone); err != nil {
			return nil, fmt.Errorf("scan customers report: %w", err)
		}
		list = append(list, &cust)
	}
	return list, rows.Err()
}

// Suppliers relatório de fornecedores filtrado por nome e CNPJ (LIKE).
func (r *ReportRepo) Suppliers(ctx context.Context, f repository.NameTaxIDFilter) ([]*entity.Supplier, error) {
	c := cond{query: `SELECT id, name, tax_id, email, phone FROM suppliers WHERE 1=1`}
	if f.Name != "" {
		c.add("name ILIKE ", "%"+f.Name+"%")
	}
	if f.TaxID != "" {
		c.add("tax_id LIKE ", "%"+f.TaxID+"%")
	}
	c.query += ` ORDER BY name`

	rows, err := r.pool.Query(ctx, c.query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("suppliers report: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.TaxID, &s.Email, &s.Phone); err != nil {
			return nil, fmt.Errorf("scan suppliers report: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Roles relatório de funções filtrado por nome e descrição (LIKE).
func (r *ReportRepo) Roles(ctx context.Context, f repository.RolesReportFilter) ([]*entity.Role, error) {
	c := cond{query: `SELECT id, name, description, salary, weekly_hours FROM roles WHERE 1=1`}
	if f.Name != "" {
		c.add("name ILIKE ", "%"+f.Name+"%")
	}
	if f.Description != "" {
		c.add("description ILIKE ", "%"+f.Description+"%")
	}
	c.query += ` ORDER BY name`

	rows, err := r.pool.Query(ctx, c.query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("roles report: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Description, &role.Salary, &role.WeeklyHours); err != nil {
			return nil, fmt.Errorf("scan roles report: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}

// Products relatório de produtos filtrado por nome e tipo (LIKE).
func (r *ReportRepo) Products(ctx context.Context, f repository.ProductsReportFilter) ([]*entity.Product, error) {
	c := cond{query: `SELECT ` + productColumns + ` FROM products WHERE 1=1`}
	if f.Name != "" {
		c.add("name ILIKE ", "%"+f.Name+"%")
	}
	if f.Type != "" {
		c.add("type ILIKE ", "%"+f.Type+"%")
	}
	c.query += ` ORDER BY name`

	rows, err := r.pool.Query(ctx, c.query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("products report: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.Type, &p.Description, &p.SupplierID); err != nil {
			return nil, fmt.Errorf("scan products report: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// CartItems relatório bruto do carrinho filtrado por cliente e produto.
func (r *ReportRepo) CartItems(ctx context.Context, f repository.SaleLinesFilter) ([]*entity.CartItem, error) {
	c := cond{query: `SELECT id, customer_tax_id, product_id, quantity, added_at FROM cart_items WHERE 1=1`}
	if f.CustomerTaxID != "" {
		c.add("customer_tax_id = ", f.CustomerTaxID)
	}
	if f.ProductID != nil {
		c.add("product_id = ", *f.ProductID)
	}
	c.query += ` ORDER BY added_at`

	rows, err := r.pool.Query(ctx, c.query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("cart report: %w", err)
	}
	defer rows.Close()
	var list []*entity.CartItem
	for rows.Next() {
		var item entity.CartItem
		if err := rows.Scan(&item.ID, &item.CustomerTaxID, &item.ProductID, &item.Quantity, &item.AddedAt); err != nil {
			return nil, fmt.Errorf("scan cart report: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// SalesRaw relatório bruto de vendas filtrado por cliente e produto.
func (r *ReportRepo) SalesRaw(ctx context.Context, f repository.SaleLinesFilter) ([]*entity.Sale, error) {
	c := cond{query: `SELECT id, batch_id, customer_tax_id, product_id, quantity, date FROM sales WHERE 1=1`}
	if f.CustomerTaxID != "" {
		c.add("customer_tax_id = ", f.CustomerTaxID)
	}
	if f.ProductID != nil {
		c.add("product_id = ", *f.ProductID)
	}
	c.query += ` ORDER BY date DESC`

	rows, err := r.pool.Query(ctx, c.query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("sales raw report: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.BatchID, &s.CustomerTaxID, &s.ProductID, &s.Quantity, &s.Date); err != nil {
			return nil, fmt.Errorf("scan sales raw report: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
