package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/contasys/consolida-api/internal/application/auth"
	"github.com/contasys/consolida-api/internal/application/export"
	"github.com/contasys/consolida-api/internal/application/usecase"
	"github.com/contasys/consolida-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	ClienteUC       *usecase.ClienteUseCase
	ConsolidacionUC *usecase.ConsolidacionUseCase
	ReporteUC       *usecase.ReporteUseCase
	BitacoraUC      *usecase.BitacoraUseCase
	AdminUC         *usecase.AdminUseCase
	ExportUC        *export.ExportUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: el login es público; el registro de usuarios lo hace un admin.
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clientes (protegido)
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	// Consolidaciones (protegido)
	consolidaciones := protected.Group("/consolidaciones")
	consolidacionHandler := NewConsolidacionHandler(deps.ConsolidacionUC)
	exportHandler := NewExportHandler(deps.ExportUC)
	consolidaciones.Post("/", consolidacionHandler.Create)
	consolidaciones.Post("/previsualizar", consolidacionHandler.Previsualizar)
	consolidaciones.Get("/", consolidacionHandler.List)
	consolidaciones.Get("/:id", consolidacionHandler.GetByID)
	consolidaciones.Put("/:id", consolidacionHandler.Update)
	consolidaciones.Delete("/:id", consolidacionHandler.Delete)
	consolidaciones.Get("/:id/export/:formato", exportHandler.Exportar)

	// Reportes (protegido)
	reportes := protected.Group("/reportes")
	reporteHandler := NewReporteHandler(deps.ReporteUC)
	reportes.Get("/resumen-clientes", reporteHandler.ResumenClientes)
	reportes.Get("/metricas", reporteHandler.MetricasPeriodo)
	reportes.Get("/export/excel", reporteHandler.ExportarResumenExcel)

	// Registro de usuarios, bitácora y admin (solo rol admin)
	admin := protected.Group("/", RequireRole(entity.RolAdmin))
	admin.Post("/auth/register", authHandler.Register)
	bitacoraHandler := NewBitacoraHandler(deps.BitacoraUC)
	admin.Get("/bitacora", bitacoraHandler.List)

	adminHandler := NewAdminHandler(deps.AdminUC)
	admin.Get("/admin/respaldo", adminHandler.Respaldar)
	admin.Delete("/admin/vaciar/:tabla", adminHandler.Vaciar)
}
