package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "crudusers/internal/log"
	"crudusers/internal/services"
)

type HealthHandler struct {
	Users *services.UserService
}

// GET /healthz
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	n, err := h.Users.Count()
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		applog.Error(c, "health.fail", err, nil)
		return c.SendString("store unavailable")
	}
	return c.JSON(fiber.Map{"ok": true, "users": n})
}
