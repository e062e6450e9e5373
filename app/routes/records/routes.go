package records

import (
	"github.com/gofiber/fiber/v2"

	"github.com/allejandro3/Proyect-school-v1/app/database"
	"github.com/allejandro3/Proyect-school-v1/app/models"
	"github.com/allejandro3/Proyect-school-v1/app/routes/auth"
)

// SetupRecordsRoutes registers the achievement record endpoints. Any
// authenticated caller may read; only staff may mutate.
func SetupRecordsRoutes(app *fiber.App, store database.Store) {
	api := app.Group("/api/student-records")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error { return GetStudentRecordsAPI(c, store) })
	api.Put("/:id",
		auth.RoleMiddleware(models.RoleAdmin, models.RoleSuperAdmin),
		func(c *fiber.Ctx) error { return UpdateStudentRecordAPI(c, store) },
	)
}
