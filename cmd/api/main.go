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

	_ "github.com/contasys/consolida-api/docs"
	"github.com/contasys/consolida-api/internal/application/auth"
	"github.com/contasys/consolida-api/internal/application/export"
	"github.com/contasys/consolida-api/internal/application/usecase"
	infracsv "github.com/contasys/consolida-api/internal/infrastructure/csvx"
	infraexcel "github.com/contasys/consolida-api/internal/infrastructure/excel"
	infrapdf "github.com/contasys/consolida-api/internal/infrastructure/pdf"
	"github.com/contasys/consolida-api/internal/infrastructure/postgres"
	infraxml "github.com/contasys/consolida-api/internal/infrastructure/xmlx"
	httpRouter "github.com/contasys/consolida-api/internal/interfaces/http"
	"github.com/contasys/consolida-api/pkg/config"
	"github.com/contasys/consolida-api/pkg/logger"
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

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	consRepo := postgres.NewConsolidacionRepository(pool)
	bitacoraRepo := postgres.NewBitacoraRepository(pool)
	reporteRepo := postgres.NewReporteRepository(pool)
	adminRepo := postgres.NewAdminRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, bitacoraRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clienteUC := usecase.NewClienteUseCase(clienteRepo, bitacoraRepo)
	consolidacionUC := usecase.NewConsolidacionUseCase(txRunner, consRepo, clienteRepo)
	bitacoraUC := usecase.NewBitacoraUseCase(bitacoraRepo)

	// Generadores de exportación: pdf, xlsx, csv (Latin-1) y xml
	excelGen := infraexcel.NewGenerator()
	reporteUC := usecase.NewReporteUseCase(reporteRepo, consRepo, excelGen)
	exportUC := export.NewExportUseCase(
		consRepo, clienteRepo,
		infrapdf.NewMarotoPDFGenerator(),
		excelGen,
		infracsv.NewGenerator(),
		infraxml.NewGenerator(),
	)
	adminUC := usecase.NewAdminUseCase(adminRepo, bitacoraRepo, excelGen)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Consolida API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		ClienteUC:       clienteUC,
		ConsolidacionUC: consolidacionUC,
		ReporteUC:       reporteUC,
		BitacoraUC:      bitacoraUC,
		AdminUC:         adminUC,
		ExportUC:        exportUC,
		JWTSecret:       cfg.JWT.Secret,
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
