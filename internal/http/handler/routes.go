package handler

import (
	"github.com/gofiber/fiber/v2"

	"homesite/internal/service"
)

// RegisterRoutes attaches the application routes to the provided Fiber app.
//
// Routes are added for GET only; app.Get would also register HEAD.
func RegisterRoutes(app *fiber.App, homeSvc service.HomeService) {
	app.Add(fiber.MethodGet, "/", Index(homeSvc))
	app.Add(fiber.MethodGet, "/health", LivenessProbe())
}
