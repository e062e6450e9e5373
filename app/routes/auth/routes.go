package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/allejandro3/Proyect-school-v1/app/database"
)

// SetupAuthRoutes registers the public authentication endpoints.
func SetupAuthRoutes(app *fiber.App, store database.Store) {
	app.Post("/register", func(c *fiber.Ctx) error { return RegisterAPI(c, store) })
	app.Post("/login", func(c *fiber.Ctx) error { return LoginAPI(c, store) })
	app.Post("/student-login", func(c *fiber.Ctx) error { return StudentLoginAPI(c, store) })
	app.Post("/logout", LogoutAPI)
}
