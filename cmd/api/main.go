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
	"github.com/brandops/allocation-api/internal/application/auth"
	"github.com/brandops/allocation-api/internal/application/export"
	"github.com/brandops/allocation-api/internal/application/usecase"
	"github.com/brandops/allocation-api/internal/domain/projection"
	"github.com/brandops/allocation-api/internal/domain/schema"
	infrapdf "github.com/brandops/allocation-api/internal/infrastructure/pdf"
	"github.com/brandops/allocation-api/internal/infrastructure/postgres"
	httpRouter "github.com/brandops/allocation-api/internal/interfaces/http"
	"github.com/brandops/allocation-api/pkg/config"
	"github.com/brandops/allocation-api/pkg/logger"
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
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	recordRepo := postgres.NewBrandRecordRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Motor de proyección: tabla de asignación FA + registro de identidades de
	// fábrica + catálogo de columnas. Toda decisión de visibilidad/editabilidad
	// pasa por aquí.
	engine := projection.NewDefaultEngine()

	recordUC := usecase.NewBrandRecordUseCase(txRunner, recordRepo, engine)
	columnUC := usecase.NewColumnUseCase(txRunner, recordRepo, engine, schema.Groups())
	auditUC := usecase.NewAuditUseCase(auditRepo)

	pdfGenerator := infrapdf.NewMarotoTableGenerator()
	exportUC := export.NewPDFUseCase(recordRepo, engine, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Brand Board API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		RecordUC:  recordUC,
		ColumnUC:  columnUC,
		AuditUC:   auditUC,
		ExportUC:  exportUC,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
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
