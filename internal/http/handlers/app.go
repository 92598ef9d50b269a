package handlers

import (
	"embed"
	"errors"
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/google/uuid"

	"crudusers/internal/config"
	applog "crudusers/internal/log"
)

//go:embed templates/*.html
var templateFS embed.FS

// NewApp builds the fiber app with middlewares and all routes registered.
func NewApp(cfg config.Config, d *Deps) *fiber.App {
	views, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(views), ".html")

	app := fiber.New(fiber.Config{
		Views:        engine,
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())
	app.Use(helmet.New())

	Routes(app, d)
	return app
}

func Routes(app *fiber.App, d *Deps) {
	app.Post("/users", d.UserHandler.Create)
	app.Get("/users", d.UserHandler.List)
	app.Put("/users/:id", d.UserHandler.Update)
	app.Delete("/users/:id", d.UserHandler.Delete)

	app.Get("/docs", d.DocsHandler.Index)
	app.Get("/healthz", d.HealthHandler.Check)
}

// errorHandler answers in plain text. Client errors keep fiber's message;
// anything else is logged and reported generically.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		code = fe.Code
		msg = fe.Message
	} else {
		applog.Error(c, "server.error", err, nil)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(code).SendString(msg)
}
