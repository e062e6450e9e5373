package boletines

import (
	"github.com/gofiber/fiber/v2"

	"github.com/allejandro3/Proyect-school-v1/app/database"
	"github.com/allejandro3/Proyect-school-v1/app/models"
)

// GetBoletinesByGradoAPI returns one report card per student of a grade.
// A grade with no records is an empty collection, not an error.
func GetBoletinesByGradoAPI(c *fiber.Ctx, store database.Store) error {
	grado := c.Params("grado")

	rows, err := store.ListRecords(database.RecordFilters{Grado: grado})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch boletines"})
	}

	return c.JSON(groupByStudent(rows))
}

// GetBoletinByCedulaAPI returns a single student's report card, or 404 when
// the cedula has no records.
func GetBoletinByCedulaAPI(c *fiber.Ctx, store database.Store) error {
	cedula := c.Params("cedula")

	rows, err := store.ListRecords(database.RecordFilters{Cedula: cedula})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch boletin"})
	}
	if len(rows) == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "No student found with that cedula"})
	}

	return c.JSON(groupByStudent(rows)[0])
}

// groupByStudent folds ordered join rows into per-student report cards,
// keeping the first-seen student order and the row order within a student.
func groupByStudent(rows []*models.StudentRecord) []*models.Boletin {
	boletines := make([]*models.Boletin, 0)
	byCedula := make(map[string]*models.Boletin)

	for _, row := range rows {
		b, ok := byCedula[row.Cedula]
		if !ok {
			b = &models.Boletin{
				StudentName: row.StudentName,
				Cedula:      row.Cedula,
				Grado:       row.Grado,
				Records:     make([]models.BoletinRecord, 0),
			}
			byCedula[row.Cedula] = b
			boletines = append(boletines, b)
		}
		b.Records = append(b.Records, models.BoletinRecord{
			Subject: row.Subject,
			IH:      row.IH,
			JV:      row.JV,
			Logros:  row.Logros,
		})
	}
	return boletines
}
