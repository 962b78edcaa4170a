package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/brandops/allocation-api/internal/application/auth"
	"github.com/brandops/allocation-api/internal/application/export"
	"github.com/brandops/allocation-api/internal/application/usecase"
	"github.com/brandops/allocation-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RecordUC  *usecase.BrandRecordUseCase
	ColumnUC  *usecase.ColumnUseCase
	AuditUC   *usecase.AuditUseCase
	ExportUC  *export.PDFUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público; registro de usuarios solo admin.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(entity.RoleAdmin),
		authHandler.Register,
	)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Brands: el CRUD es por rol, el gating fino lo decide el motor de
	// proyección dentro del usecase (un factory puede editar sus contactos).
	// La ruta de export va antes de /:id para que "export" no se capture como id.
	brands := protected.Group("/brands")
	recordHandler := NewRecordHandler(deps.RecordUC)
	exportHandler := NewExportHandler(deps.ExportUC)
	auditHandler := NewAuditHandler(deps.AuditUC)
	brands.Get("/export/pdf", exportHandler.PDF)
	brands.Get("/", recordHandler.List)
	brands.Post("/", recordHandler.Create)
	brands.Get("/:id", recordHandler.GetByID)
	brands.Put("/:id", recordHandler.Update)
	brands.Delete("/:id", RequireRole(entity.RoleAdmin), recordHandler.Delete)
	brands.Get("/:id/audit", RequireRole(entity.RoleAdmin), auditHandler.ListByRecord)

	// Columns: configuración del tablero para el viewer.
	columns := protected.Group("/columns")
	columnHandler := NewColumnHandler(deps.ColumnUC)
	columns.Get("/", columnHandler.List)
	// company pasa el rol pero el motor exige cuenta tipo admin
	columns.Post("/custom", RequireRole(entity.RoleAdmin, entity.RoleCompany), columnHandler.Create)

	// Audit (solo admin)
	protected.Get("/audit", RequireRole(entity.RoleAdmin), auditHandler.List)
}
