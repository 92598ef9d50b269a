package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type endpoint struct {
	Method   string
	Path     string
	Request  string
	Response string
	Errors   string
}

var endpoints = []endpoint{
	{"POST", "/users", `{"name": "John Doe", "email": "john.doe@example.com"}`, `201 User added`, "400 Invalid request, 500 Error inserting user"},
	{"GET", "/users", "", `200 [{"id": 1, "name": "John Doe", "email": "john.doe@example.com"}]`, "500 Error retrieving users"},
	{"PUT", "/users/{id}", `{"name": "John Doe", "email": "john.newemail@example.com"}`, `200 User updated`, "400 Invalid user id / Invalid request, 500 Error updating user"},
	{"DELETE", "/users/{id}", "", `200 User deleted`, "400 Invalid user id, 500 Error deleting user"},
}

type DocsHandler struct {
	Port string
}

// GET /docs
func (h *DocsHandler) Index(c *fiber.Ctx) error {
	return c.Render("docs", fiber.Map{
		"BaseURL":   "http://localhost:" + h.Port,
		"Endpoints": endpoints,
	})
}
