package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/artem13815/assistant/api/http/middleware"
	"github.com/artem13815/assistant/api/http/presenter"
)

// NewApp creates the Fiber app with the shared error envelope and middleware stack.
func NewApp(name string, bodyLimit int, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		BodyLimit:    bodyLimit,
		ErrorHandler: presenter.ErrorHandler(log),
	})
	app.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.Recover(),
	)
	return app
}
