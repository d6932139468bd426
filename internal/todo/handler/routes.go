package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, authHandler *AuthHandler, taskHandler *TaskHandler, requireSession fiber.Handler) {
	app.Post("/users", authHandler.Register)
	app.Post("/login", authHandler.Login)

	// Every protected route resolves the session before touching data.
	app.Post("/tasks", requireSession, taskHandler.Create)
	app.Get("/tasks", requireSession, taskHandler.List)
	app.Get("/users", requireSession, authHandler.GetUser)
}
