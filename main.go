package main

import (
	"log"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/allejandro3/Proyect-school-v1/app/config"
	"github.com/allejandro3/Proyect-school-v1/app/database"
	"github.com/allejandro3/Proyect-school-v1/app/routes/auth"
	"github.com/allejandro3/Proyect-school-v1/app/routes/boletines"
	"github.com/allejandro3/Proyect-school-v1/app/routes/records"
	"github.com/allejandro3/Proyect-school-v1/app/routes/users"
)

// errorHandler renders unhandled errors as the JSON shape the frontend
// expects, without leaking internals.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func main() {
	cfg := config.Load()

	db, err := cfg.OpenDB()
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}
	store := database.NewStore(db)

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	// The prebuilt frontend is plain static files; /login keeps working as
	// a direct entry point.
	app.Static("/", cfg.StaticDir)
	app.Get("/login", func(c *fiber.Ctx) error {
		return c.SendFile(filepath.Join(cfg.StaticDir, "login.html"))
	})

	auth.SetupAuthRoutes(app, store)
	records.SetupRecordsRoutes(app, store)
	boletines.SetupBoletinesRoutes(app, store)
	users.SetupUsersRoutes(app, store)

	log.Printf("Server running on http://localhost:%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
