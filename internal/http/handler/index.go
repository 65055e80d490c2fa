package handler

import (
	"github.com/gofiber/fiber/v2"

	"homesite/internal/service"
)

// IndexTemplate is the view rendered for the root route.
const IndexTemplate = "index"

// Index handles GET / by rendering the landing page.
//
// @Summary  Landing page
// @Tags     home
// @Produce  html
// @Success  200  {string}  string  "rendered HTML"
// @Failure  500  {object}  errorPayload
// @Router   / [get]
func Index(homeSvc service.HomeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := homeSvc.Index(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		if err := c.Render(IndexTemplate, page); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return nil
	}
}
