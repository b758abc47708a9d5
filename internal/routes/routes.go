package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/vinscent/internal/config"
	"github.com/example/vinscent/internal/handlers"
	"github.com/example/vinscent/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	brandHandler := handlers.NewBrandHandler(services.NewBrandService(db))
	productHandler := handlers.NewProductHandler(services.NewProductService(db))
	magazineHandler := handlers.NewMagazineHandler(services.NewMagazineService(db))
	uploadHandler := handlers.NewUploadHandler(cfg)
	healthHandler := handlers.NewHealthHandler(db)

	app.Static("/uploads", cfg.UploadDir)

	api := app.Group("/api")

	api.Get("/test-connection", healthHandler.TestConnection)
	api.Post("/upload", uploadHandler.UploadImage)

	brands := api.Group("/brands")
	brands.Get("/", brandHandler.ListBrands)
	brands.Post("/", brandHandler.CreateBrand)
	brands.Get("/:id", brandHandler.GetBrand)
	brands.Put("/:id", brandHandler.UpdateBrand)
	brands.Delete("/:id", brandHandler.DeleteBrand)

	products := api.Group("/products")
	products.Get("/", productHandler.ListProducts)
	products.Post("/", productHandler.CreateProduct)
	products.Get("/:id", productHandler.GetProduct)
	products.Put("/:id", productHandler.UpdateProduct)
	products.Delete("/:id", productHandler.DeleteProduct)

	magazines := api.Group("/magazines")
	magazines.Get("/", magazineHandler.ListMagazines)
	magazines.Post("/", magazineHandler.CreateMagazine)
	magazines.Get("/:id", magazineHandler.GetMagazine)
	magazines.Put("/:id", magazineHandler.UpdateMagazine)
	magazines.Delete("/:id", magazineHandler.DeleteMagazine)
}
