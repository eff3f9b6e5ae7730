package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ferreinv/ferreteria-api/internal/application/auth"
	"github.com/ferreinv/ferreteria-api/internal/application/inventario"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventarioUC *inventario.InventarioUseCase
	TrasladoUC   *inventario.TrasladoUseCase
	RecetaUC     *inventario.RecetaUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Todas las rutas de inventario van detrás del
// AuthMiddleware; las mutaciones exigen además rol admin o bodeguero.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	muta := RequireRole("admin", "bodeguero")

	// Inventario (protegido)
	inv := protected.Group("/inventario")
	inventarioHandler := NewInventarioHandler(deps.InventarioUC)
	inv.Post("/cargas", muta, inventarioHandler.CargaManual)
	inv.Delete("/retiros", muta, inventarioHandler.Retiro)
	inv.Put("/stock/:id", muta, inventarioHandler.ActualizarStock)
	inv.Get("/stock", inventarioHandler.VistaStock)
	inv.Get("/registros", inventarioHandler.ListarRegistros)

	// Traslados (protegido)
	traslados := protected.Group("/traslados")
	trasladoHandler := NewTrasladoHandler(deps.TrasladoUC)
	traslados.Post("/", muta, trasladoHandler.Trasladar)
	traslados.Get("/", trasladoHandler.Listar)

	// Recetas (protegido)
	recetas := protected.Group("/recetas")
	recetaHandler := NewRecetaHandler(deps.RecetaUC)
	recetas.Post("/", muta, recetaHandler.Crear)
	recetas.Get("/", recetaHandler.Listar)
	recetas.Put("/:id", muta, recetaHandler.Actualizar)
	recetas.Delete("/:id", muta, recetaHandler.Eliminar)
	recetas.Post("/:id/aplicar", muta, recetaHandler.Aplicar)
}
