package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/annaclaralemossilva/testesss/internal/application/registry"
	"github.com/annaclaralemossilva/testesss/internal/application/reports"
	"github.com/annaclaralemossilva/testesss/internal/application/sales"
	"github.com/annaclaralemossilva/testesss/internal/application/usecase"
	infrapdf "github.com/annaclaralemossilva/testesss/internal/infrastructure/pdf"
	"github.com/annaclaralemossilva/testesss/internal/infrastructure/postgres"
	"github.com/annaclaralemossilva/testesss/internal/infrastructure/viacep"
	httpRouter "github.com/annaclaralemossilva/testesss/internal/interfaces/http"
	"github.com/annaclaralemossilva/testesss/pkg/config"
	"github.com/annaclaralemossilva/testesss/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("criação do schema")
	}

	customerRepo := postgres.NewCustomerRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	customerUC := registry.NewCustomerUseCase(txRunner, customerRepo)
	supplierUC := registry.NewSupplierUseCase(txRunner, supplierRepo)
	employeeUC := registry.NewEmployeeUseCase(txRunner, employeeRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	roleUC := usecase.NewRoleUseCase(roleRepo)
	cartUC := usecase.NewCartUseCase(cartRepo, customerRepo, productRepo)
	recordSaleUC := sales.NewRecordSaleUseCase(txRunner, customerRepo)
	reportUC := reports.NewReportUseCase(reportRepo)

	// PDF: relatório de vendas filtrado
	pdfGenerator := infrapdf.NewSalesReportGenerator()
	salesPDFUC := sales.NewSalesReportPDFUseCase(reportRepo, pdfGenerator)

	cepService := viacep.NewClient(cfg.ViaCEP.BaseURL)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC: customerUC,
		SupplierUC: supplierUC,
		EmployeeUC: employeeUC,
		ProductUC:  productUC,
		RoleUC:     roleUC,
		CartUC:     cartUC,
		RecordSale: recordSaleUC,
		ReportUC:   reportUC,
		SalesPDF:   salesPDFUC,
		CEPService: cepService,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, fechando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
