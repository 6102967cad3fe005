package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// New creates a Fiber app with the baseline middleware and health route.
func New(appName string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   appName,
		BodyLimit: 12 * 1024 * 1024, // upload validation rejects >10MB files with a proper message
	})

	app.Use(recover.New())
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"app":    appName,
			"status": "ok",
		})
	})

	return app
}
