package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/sims-backend/internal/application/auth"
	"github.com/tu-usuario/sims-backend/internal/application/notify"
	"github.com/tu-usuario/sims-backend/internal/application/usecase"
	"github.com/tu-usuario/sims-backend/internal/domain/entity"
	"github.com/tu-usuario/sims-backend/internal/domain/repository"
	"github.com/tu-usuario/sims-backend/internal/infrastructure/backup"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC      *usecase.ItemUseCase
	SupplierUC  *usecase.SupplierUseCase
	UserUC      *usecase.UserUseCase
	ReportUC    *usecase.ReportUseCase
	ExportUC    *usecase.ExportUseCase
	AuthUC      *auth.AuthUseCase
	Backup      *backup.Service
	TxLog       repository.TransactionLog
	Notify      *notify.Center
	ItemRepo    repository.ItemRepository
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	audit := auditor{txlog: deps.TxLog}

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, audit)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/auth/password", authHandler.ChangePassword)

	// Items (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC, audit)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/search", itemHandler.Search)
	items.Get("/barcode/:code", itemHandler.GetByBarcode)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Categorías (protegido)
	categories := protected.Group("/categories")
	categories.Get("/", itemHandler.Categories)
	categories.Get("/summary", itemHandler.CategorySummary)
	categories.Get("/:name/items", itemHandler.ByCategory)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC, audit)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)

	// Reportes (protegido, solo lectura)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/alerts", reportHandler.Alerts)
	reports.Get("/analytics", reportHandler.Analytics)
	reports.Get("/recommendations", reportHandler.Recommendations)
	reports.Get("/reorder/:id", reportHandler.Reorder)

	// Log de transacciones y notificaciones (protegido)
	txHandler := NewTransactionHandler(deps.TxLog, deps.Notify, deps.ItemRepo)
	protected.Get("/transactions", txHandler.Recent)
	protected.Get("/notifications", txHandler.Notifications)
	protected.Post("/notifications/daily", txHandler.GenerateDaily)

	// Export y backups (protegido)
	exportHandler := NewExportHandler(deps.ExportUC, deps.Backup, audit)
	protected.Get("/export/csv", exportHandler.CSV)
	protected.Get("/export/pdf", exportHandler.PDF)
	protected.Post("/backups", exportHandler.CreateBackup)
	protected.Get("/backups", exportHandler.ListBackups)

	// Administración de usuarios (solo admin, RBAC por capacidad)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC, audit)
	users.Get("/", userHandler.List)
	users.Put("/:username/role", userHandler.UpdateRole)
	users.Delete("/:username", userHandler.Delete)
}
