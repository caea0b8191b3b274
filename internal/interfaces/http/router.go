package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocksync-api/internal/application/dashboard"
	"github.com/jhoicas/stocksync-api/internal/application/inventory"
	"github.com/jhoicas/stocksync-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC     *usecase.CategoryUseCase
	ProductUC      *usecase.ProductUseCase
	AdjustStock    *inventory.AdjustStockUseCase
	DashboardUC    *dashboard.UseCase
	LowStockReport *dashboard.LowStockReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Inventory: ajustes y log de movimientos
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.AdjustStock)
	invGroup.Post("/adjustments", inventoryHandler.AdjustStock)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	products.Get("/:id/movements", inventoryHandler.ListMovementsByProduct)

	// Dashboard y reportes
	dash := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.LowStockReport)
	dash.Get("/summary", dashboardHandler.GetSummary)
	dash.Get("/low-stock", dashboardHandler.GetLowStock)
	api.Get("/reports/low-stock/pdf", dashboardHandler.GetLowStockPDF)
}
