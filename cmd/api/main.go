package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/supplysight/supplysight-api/internal/application/analytics"
	"github.com/supplysight/supplysight-api/internal/application/auth"
	"github.com/supplysight/supplysight-api/internal/application/dto"
	appinventory "github.com/supplysight/supplysight-api/internal/application/inventory"
	"github.com/supplysight/supplysight-api/internal/application/reports"
	"github.com/supplysight/supplysight-api/internal/application/usecase"
	"github.com/supplysight/supplysight-api/internal/domain"
	"github.com/supplysight/supplysight-api/internal/domain/entity"
	"github.com/supplysight/supplysight-api/internal/domain/repository"
	"github.com/supplysight/supplysight-api/internal/infrastructure/memory"
	infrapdf "github.com/supplysight/supplysight-api/internal/infrastructure/pdf"
	"github.com/supplysight/supplysight-api/internal/infrastructure/postgres"
	httpRouter "github.com/supplysight/supplysight-api/internal/interfaces/http"
	"github.com/supplysight/supplysight-api/pkg/config"
	"github.com/supplysight/supplysight-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Backend de persistencia: memoria sembrada por defecto; PostgreSQL si
	// DATABASE_URL está definido (¡el almacén en memoria se pierde al reiniciar!).
	var (
		productRepo   repository.ProductRepository
		warehouseRepo repository.WarehouseRepository
		userRepo      repository.UserRepository
		txRunner      appinventory.TxRunner
	)
	if cfg.DB.DatabaseURL != "" {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		productRepo = postgres.NewProductRepository(pool)
		warehouseRepo = postgres.NewWarehouseRepository(pool)
		userRepo = postgres.NewUserRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
		log.Info().Msg("backend de persistencia: PostgreSQL")
	} else {
		store := memory.NewSeededStore()
		productRepo = store.Products()
		warehouseRepo = store.Warehouses()
		userRepo = store.Users()
		txRunner = memory.NewTxRunner(store)
		log.Info().Msg("backend de persistencia: memoria (catálogo demo sembrado)")
	}

	productUC := usecase.NewProductUseCase(productRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	kpiUC := usecase.NewKPIUseCase()
	stockUC := appinventory.NewStockUseCase(txRunner)
	dashboardUC := appanalytics.NewDashboardUseCase(productUC, warehouseUC, kpiUC)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := reports.NewInventoryReportUseCase(productRepo, warehouseRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	seedAdmin(authUC, cfg.Admin, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SupplySight API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		WarehouseUC: warehouseUC,
		KPIUC:       kpiUC,
		StockUC:     stockUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// seedAdmin crea el usuario administrador inicial si hay password configurado.
// Sin él las mutaciones quedan inaccesibles tras un arranque en memoria.
func seedAdmin(authUC *auth.AuthUseCase, cfg config.AdminConfig, log *logger.Logger) {
	if cfg.Password == "" {
		log.Warn().Msg("ADMIN_PASSWORD vacío: no se siembra usuario admin")
		return
	}
	_, err := authUC.RegisterUser(dto.RegisterRequest{
		Email:    cfg.Email,
		Password: cfg.Password,
		Name:     "Administrator",
		Role:     entity.RoleAdmin,
	})
	if err != nil && !errors.Is(err, domain.ErrEmailAlreadyExists) {
		log.Error().Err(err).Msg("sembrar usuario admin")
		return
	}
	log.Info().Str("email", cfg.Email).Msg("usuario admin disponible")
}
