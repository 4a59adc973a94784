package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"taller-grafico/internal/app"
)

// NewApp builds the fiber application with all routes and middleware wired.
func NewApp(svc app.ApplicationService, log zerolog.Logger) *fiber.App {
	fb := fiber.New(fiber.Config{
		AppName:               "taller-grafico",
		DisableStartupMessage: true,
	})

	fb.Use(RequestID())
	fb.Use(RequestLogger(log))

	h := NewHandler(svc, log)
	fb.Get("/health", h.Health)

	api := fb.Group("/api")
	api.Get("/inventario", h.GetInventory)
	api.Post("/inventario", h.AddInventory)
	api.Get("/inventario/:producto", h.SearchProduct)
	api.Get("/trabajos", h.ListJobs)
	api.Post("/trabajos", h.RegisterJob)

	return fb
}
