package handler

import "github.com/gofiber/fiber/v2"

// HealthBody is the fixed liveness response.
const HealthBody = "OK"

// LivenessProbe handles GET /health. It reports only that the process is
// serving requests and never touches downstream dependencies.
//
// @Summary  Liveness probe
// @Tags     system
// @Produce  plain
// @Success  200  {string}  string  "OK"
// @Router   /health [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString(HealthBody)
	}
}
