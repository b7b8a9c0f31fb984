package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/camisetasbahia/catalogo-api/internal/application/auth"
	"github.com/camisetasbahia/catalogo-api/internal/application/usecase"
	"github.com/camisetasbahia/catalogo-api/internal/domain/taxonomy"
	"github.com/camisetasbahia/catalogo-api/internal/infrastructure/postgres"
	httpRouter "github.com/camisetasbahia/catalogo-api/internal/interfaces/http"
	"github.com/camisetasbahia/catalogo-api/pkg/config"
	"github.com/camisetasbahia/catalogo-api/pkg/logger"
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

	tree := taxonomy.Default()
	productRepo := postgres.NewProductRepository(pool)
	productUC := usecase.NewProductService(productRepo, tree, log)
	catalogUC := usecase.NewCatalogUseCase(productUC, tree)
	massCreateUC := usecase.NewMassCreateUseCase(productRepo, tree, log, nil)
	authUC := auth.NewUseCase(cfg.Admin, cfg.JWT, log)

	// Catálogo inicial si la tabla está vacía. No es fatal si falla.
	productUC.EnsureSeed(ctx)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:  catalogUC,
		ProductUC:  productUC,
		MassCreate: massCreateUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
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
