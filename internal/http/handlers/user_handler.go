package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "crudusers/internal/log"
	"crudusers/internal/services"
	"crudusers/internal/validate"
)

type UserHandler struct {
	Users *services.UserService
}

// POST /users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	in, err := validate.UserBody(c.Body())
	if err != nil {
		c.Status(fiber.StatusBadRequest)
		applog.Warn(c, "users.create.invalid", err, nil)
		return c.SendString("Invalid request")
	}
	id, err := h.Users.Create(in)
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		applog.Error(c, "users.create.fail", err, nil)
		return c.SendString("Error inserting user")
	}
	c.Status(fiber.StatusCreated)
	applog.Audit(c, "users.create", applog.Fields{"user_id": id})
	return c.SendString("User added")
}

// GET /users
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.Users.List()
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		applog.Error(c, "users.list.fail", err, nil)
		return c.SendString("Error retrieving users")
	}
	return c.JSON(users)
}

// PUT /users/:id
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.UserID(c.Params("id"))
	if !ok {
		c.Status(fiber.StatusBadRequest)
		applog.Warn(c, "users.update.invalid", nil, applog.Fields{"id": c.Params("id")})
		return c.SendString("Invalid user id")
	}
	in, err := validate.UserBody(c.Body())
	if err != nil {
		c.Status(fiber.StatusBadRequest)
		applog.Warn(c, "users.update.invalid", err, applog.Fields{"user_id": id})
		return c.SendString("Invalid request")
	}
	n, err := h.Users.Update(id, in)
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		applog.Error(c, "users.update.fail", err, applog.Fields{"user_id": id})
		return c.SendString("Error updating user")
	}
	// A missing id still answers 200; only the log tells them apart.
	applog.Audit(c, "users.update", applog.Fields{"user_id": id, "affected": n})
	return c.SendString("User updated")
}

// DELETE /users/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.UserID(c.Params("id"))
	if !ok {
		c.Status(fiber.StatusBadRequest)
		applog.Warn(c, "users.delete.invalid", nil, applog.Fields{"id": c.Params("id")})
		return c.SendString("Invalid user id")
	}
	n, err := h.Users.Delete(id)
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		applog.Error(c, "users.delete.fail", err, applog.Fields{"user_id": id})
		return c.SendString("Error deleting user")
	}
	applog.Audit(c, "users.delete", applog.Fields{"user_id": id, "affected": n})
	return c.SendString("User deleted")
}
