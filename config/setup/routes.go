package setup

import (
	"task-manager/app"
	"task-manager/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	// Command bridge used by the desktop front-end
	fiberApp.Post("/invoke/:command", handlers.Invoke(application))

	api := fiberApp.Group("/api")
	api.Get("/tasks", handlers.GetTasks(application))
	api.Post("/tasks", handlers.CreateTask(application))
	api.Post("/tasks/:id/toggle", handlers.ToggleTask(application))
}
