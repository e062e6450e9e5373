package boletines

import (
	"github.com/gofiber/fiber/v2"

	"github.com/allejandro3/Proyect-school-v1/app/database"
	"github.com/allejandro3/Proyect-school-v1/app/routes/auth"
)

// SetupBoletinesRoutes registers the report card endpoints.
func SetupBoletinesRoutes(app *fiber.App, store database.Store) {
	app.Get("/api/boletines/:grado", auth.AuthMiddleware,
		func(c *fiber.Ctx) error { return GetBoletinesByGradoAPI(c, store) })
	app.Get("/api/boletin/:cedula", auth.AuthMiddleware,
		func(c *fiber.Ctx) error { return GetBoletinByCedulaAPI(c, store) })
}
