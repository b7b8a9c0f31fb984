package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/camisetasbahia/catalogo-api/internal/application/auth"
	"github.com/camisetasbahia/catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC  *usecase.CatalogUseCase
	ProductUC  *usecase.ProductService
	MassCreate *usecase.MassCreateUseCase
	AuthUC     *auth.UseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Vidriera (público)
	catalogHandler := NewCatalogHandler(deps.CatalogUC, deps.ProductUC)
	api.Get("/productos", catalogHandler.Browse)
	api.Get("/productos/:id", catalogHandler.Detail)
	api.Get("/destacados", catalogHandler.Featured)
	api.Get("/categorias", catalogHandler.Categories)

	// Panel (requiere Bearer Token con rol admin)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRole("admin"))

	productHandler := NewProductHandler(deps.ProductUC)
	admin.Get("/productos", productHandler.List)
	admin.Post("/productos", productHandler.Create)
	admin.Post("/productos/lote", productHandler.CreateMany)
	admin.Put("/productos/:id", productHandler.Update)
	admin.Delete("/productos/:id", productHandler.Delete)

	massHandler := NewMassCreateHandler(deps.MassCreate)
	admin.Post("/productos/masivo", massHandler.Mass)
	admin.Post("/productos/preset/:preset", massHandler.Preset)
}
