package users

import (
	"github.com/gofiber/fiber/v2"

	"github.com/allejandro3/Proyect-school-v1/app/database"
	"github.com/allejandro3/Proyect-school-v1/app/models"
	"github.com/allejandro3/Proyect-school-v1/app/routes/auth"
)

// SetupUsersRoutes registers the user administration endpoints. Only
// directors may manage accounts.
func SetupUsersRoutes(app *fiber.App, store database.Store) {
	api := app.Group("/api/users")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware(models.RoleSuperAdmin))

	api.Get("/", func(c *fiber.Ctx) error { return GetUsersAPI(c, store) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateUserAPI(c, store) })
	api.Put("/:cedula/role", func(c *fiber.Ctx) error { return UpdateUserRoleAPI(c, store) })
	api.Delete("/:cedula", func(c *fiber.Ctx) error { return DeleteUserAPI(c, store) })
}
