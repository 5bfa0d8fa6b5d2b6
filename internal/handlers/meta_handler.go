package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// RegisterMetaRoutes registers the endpoint listing and health check.
func RegisterMetaRoutes(router fiber.Router) {
	router.Get("/", HandleIndex)
	router.Get("/health", HandleHealth)
}

// HandleIndex lists the available endpoints.
func HandleIndex(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"endpoints": []string{
			"GET /products",
			"GET /products/instock",
			"GET /products/:id",
			"POST /products",
			"PUT /products/:id",
			"DELETE /products/:id",
		},
	})
}

// HandleHealth reports service health.
func HandleHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}
