package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jdcastano/stock-control-api/internal/application/auth"
	"github.com/jdcastano/stock-control-api/internal/application/inventory"
	"github.com/jdcastano/stock-control-api/internal/application/usecase"
	"github.com/jdcastano/stock-control-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	SupplierUC *usecase.SupplierUseCase
	OrderUC    *usecase.SupplierOrderUseCase
	StockUC    *inventory.StockLedgerUseCase
	JWTSecret  string
}

// Router registra las rutas de la API con su política de roles.
func Router(app *fiber.App, deps RouterDeps) {
	authRequired := AuthMiddleware(deps.JWTSecret)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Users (solo ADMIN)
	users := api.Group("/users", authRequired, RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Products: lectura para cualquier autenticado, escritura por rol
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", authRequired, RequireRole(), productHandler.List)
	products.Get("/:id", authRequired, RequireRole(), productHandler.GetByID)
	products.Post("/", authRequired, RequireRole(entity.RoleAdmin, entity.RoleManager), productHandler.Create)
	products.Put("/:id", authRequired, RequireRole(entity.RoleAdmin, entity.RoleManager), productHandler.Update)
	products.Delete("/:id", authRequired, RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Categories: lista pública, creación solo ADMIN
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", authRequired, RequireRole(entity.RoleAdmin), categoryHandler.Create)

	// Stock transactions (cualquier rol autenticado)
	stock := api.Group("/stock-transactions", authRequired, RequireRole(entity.RoleAdmin, entity.RoleManager, entity.RoleStaff))
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Get("/", stockHandler.List)
	stock.Post("/", stockHandler.Create)
	stock.Delete("/:id", stockHandler.Delete)

	// Suppliers: lectura ADMIN/MANAGER, escritura solo ADMIN
	suppliers := api.Group("/suppliers", authRequired)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", RequireRole(entity.RoleAdmin, entity.RoleManager), supplierHandler.List)
	suppliers.Post("/", RequireRole(entity.RoleAdmin), supplierHandler.Create)
	suppliers.Put("/:id", RequireRole(entity.RoleAdmin), supplierHandler.Update)
	suppliers.Delete("/:id", RequireRole(entity.RoleAdmin), supplierHandler.Delete)

	// Supplier orders (ADMIN/MANAGER)
	orders := api.Group("/supplier-orders", authRequired, RequireRole(entity.RoleAdmin, entity.RoleManager))
	orderHandler := NewSupplierOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Put("/:id", orderHandler.UpdateStatus)
	orders.Get("/:id/pdf", orderHandler.ExportPDF)
}

// pagination lee limit/offset del query string con topes razonables.
func pagination(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	offset = c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
