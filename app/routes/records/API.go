package records

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/allejandro3/Proyect-school-v1/app/database"
	"github.com/allejandro3/Proyect-school-v1/app/models"
)

// GetStudentRecordsAPI returns achievement records as a flat list. Each
// supplied query filter narrows the result; none means the whole set.
func GetStudentRecordsAPI(c *fiber.Ctx, store database.Store) error {
	filters := database.RecordFilters{
		Subject: c.Query("subject"),
		Grado:   c.Query("grado"),
		Cedula:  c.Query("targeta_identidad"),
	}

	records, err := store.ListRecords(filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch records"})
	}
	if records == nil {
		records = []*models.StudentRecord{}
	}
	return c.JSON(records)
}

// UpdateStudentRecordAPI mutates one logros row. When a subject name is
// supplied it is resolved to a materia first; an unknown name is a client
// error and the record stays untouched.
func UpdateStudentRecordAPI(c *fiber.Ctx, store database.Store) error {
	type UpdateRecordRequest struct {
		// Grado is sent by the existing frontend but has never been
		// persisted here; the enrollment owns it.
		Grado   string `json:"grado"`
		Logros  string `json:"logros"`
		IH      string `json:"I_H"`
		JV      string `json:"J_V"`
		Subject string `json:"subject"`
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid record id"})
	}

	var req UpdateRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	changes := database.LogroChanges{
		Logros: req.Logros,
		IH:     req.IH,
		JV:     req.JV,
	}
	if req.Subject != "" {
		materia, err := store.GetMateriaByNombre(req.Subject)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(400).JSON(fiber.Map{"error": "Materia not found, use a valid subject name"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Failed to resolve subject"})
		}
		changes.MateriaID = &materia.ID
	}

	if err := store.UpdateLogro(id, changes); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "No record found with that id"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update record"})
	}

	return c.JSON(fiber.Map{"message": "Record updated successfully"})
}
