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

	"github.com/ferreinv/ferreteria-api/internal/application/auth"
	"github.com/ferreinv/ferreteria-api/internal/application/inventario"
	"github.com/ferreinv/ferreteria-api/internal/infrastructure/postgres"
	httpRouter "github.com/ferreinv/ferreteria-api/internal/interfaces/http"
	"github.com/ferreinv/ferreteria-api/pkg/config"
	"github.com/ferreinv/ferreteria-api/pkg/logger"
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

	txRunner := postgres.NewTxRunner(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	registroRepo := postgres.NewRegistroRepository(pool)
	trasladoRepo := postgres.NewTrasladoRepository(pool)
	recetaRepo := postgres.NewRecetaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)

	inventarioUC := inventario.NewInventarioUseCase(txRunner, productoRepo, stockRepo, registroRepo)
	trasladoUC := inventario.NewTrasladoUseCase(txRunner, trasladoRepo)
	recetaUC := inventario.NewRecetaUseCase(txRunner, recetaRepo, cfg.Inventario.RecetasPorSucursal)
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
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

	// Swagger UI en local: http://localhost:<port>/docs. El middleware hace
	// panic si el archivo no existe, así que solo se registra cuando está.
	const swaggerFile = "./docs/swagger.json"
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Ferretería API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("archivo swagger no encontrado, UI deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventarioUC: inventarioUC,
		TrasladoUC:   trasladoUC,
		RecetaUC:     recetaUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
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
