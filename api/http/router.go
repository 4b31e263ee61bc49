package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/assistant/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
// Routing is not strict, so "/chat" and "/chat/" reach the same handler.
func Register(app *fiber.App, chat *handlers.ChatHandler, upload *handlers.UploadHandler, health *handlers.HealthHandler) {
	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	app.Post("/chat/", chat.Reply)
	app.Post("/upload/", upload.Upload)
}
