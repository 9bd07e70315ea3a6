package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/annaclaralemossilva/testesss/internal/application/ports"
	"github.com/annaclaralemossilva/testesss/internal/application/registry"
	"github.com/annaclaralemossilva/testesss/internal/application/reports"
	"github.com/annaclaralemossilva/testesss/internal/application/sales"
	"github.com/annaclaralemossilva/testesss/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	CustomerUC *registry.CustomerUseCase
	SupplierUC *registry.SupplierUseCase
	EmployeeUC *registry.EmployeeUseCase
	ProductUC  *usecase.ProductUseCase
	RoleUC     *usecase.RoleUseCase
	CartUC     *usecase.CartUseCase
	RecordSale *sales.RecordSaleUseCase
	ReportUC   *reports.ReportUseCase
	SalesPDF   *sales.SalesReportPDFUseCase
	CEPService ports.CEPService
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Clientes
	customers := app.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Put("/tax_id/:tax_id", customerHandler.Update)
	customers.Get("/:tax_id", customerHandler.GetByTaxID)

	// Fornecedores (o picker vem antes da rota com parâmetro)
	suppliers := app.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/picker", supplierHandler.Picker)
	suppliers.Put("/tax_id/:tax_id", supplierHandler.Update)
	suppliers.Get("/:tax_id", supplierHandler.GetByTaxID)

	// Produtos
	products := app.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/picker", productHandler.Picker)
	products.Put("/:id", productHandler.Update)
	products.Get("/:id", productHandler.GetByID)

	// Funções
	roles := app.Group("/roles")
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Post("/", roleHandler.Create)
	roles.Get("/", roleHandler.List)
	roles.Get("/picker", roleHandler.Picker)
	roles.Put("/:id", roleHandler.Update)

	// Funcionários
	employees := app.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Put("/tax_id/:tax_id", employeeHandler.Update)
	employees.Get("/:tax_id", employeeHandler.GetByTaxID)

	// Vendas
	saleHandler := NewSaleHandler(deps.RecordSale)
	app.Post("/sales", saleHandler.Record)

	// Carrinho
	cart := app.Group("/cart")
	cartHandler := NewCartHandler(deps.CartUC)
	cart.Post("/", cartHandler.Add)
	cart.Get("/", cartHandler.List)
	cart.Delete("/:id", cartHandler.Remove)

	// Relatórios
	rep := app.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.SalesPDF)
	rep.Get("/sales", reportHandler.Sales)
	rep.Get("/sales/pdf", reportHandler.SalesPDF)
	rep.Get("/sales-raw", reportHandler.SalesRaw)
	rep.Get("/stock", reportHandler.Stock)
	rep.Get("/employees", reportHandler.Employees)
	rep.Get("/customers", reportHandler.Customers)
	rep.Get("/suppliers", reportHandler.Suppliers)
	rep.Get("/roles", reportHandler.Roles)
	rep.Get("/products", reportHandler.Products)
	rep.Get("/cart", reportHandler.CartItems)

	// CEP
	cepHandler := NewCEPHandler(deps.CEPService)
	app.Get("/cep/:cep", cepHandler.Lookup)
}
