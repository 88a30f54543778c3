package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/supplysight/supplysight-api/internal/application/analytics"
	"github.com/supplysight/supplysight-api/internal/application/auth"
	appinventory "github.com/supplysight/supplysight-api/internal/application/inventory"
	"github.com/supplysight/supplysight-api/internal/application/reports"
	"github.com/supplysight/supplysight-api/internal/application/usecase"
	"github.com/supplysight/supplysight-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	WarehouseUC *usecase.WarehouseUseCase
	KPIUC       *usecase.KPIUseCase
	StockUC     *appinventory.StockUseCase
	DashboardUC *appanalytics.DashboardUseCase
	ReportUC    *reports.InventoryReportUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
// Las lecturas del tablero son públicas; las mutaciones requieren Bearer
// Token con rol admin y el reporte cualquier usuario autenticado.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Consultas (público)
	productHandler := NewProductHandler(deps.ProductUC)
	api.Get("/products", productHandler.List)
	api.Get("/products/:id", productHandler.GetByID)

	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	api.Get("/warehouses", warehouseHandler.List)

	kpiHandler := NewKPIHandler(deps.KPIUC)
	api.Get("/kpis", kpiHandler.List)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)

	// Mutaciones (protegido, rol admin). Middleware a nivel de ruta para no
	// interceptar las lecturas públicas que comparten prefijo.
	inventoryHandler := NewInventoryHandler(deps.StockUC)
	authJWT := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)
	api.Put("/products/:id/demand", authJWT, adminOnly, inventoryHandler.UpdateDemand)
	api.Post("/transfers", authJWT, adminOnly, inventoryHandler.Transfer)

	// Reportes (protegido, cualquier rol autenticado)
	reportHandler := NewReportHandler(deps.ReportUC)
	api.Get("/reports/inventory", authJWT, reportHandler.Inventory)
}
