package users

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/allejandro3/Proyect-school-v1/app/database"
	"github.com/allejandro3/Proyect-school-v1/app/models"
	"github.com/allejandro3/Proyect-school-v1/app/routes/auth"
	"github.com/allejandro3/Proyect-school-v1/app/validation"
)

type userResponse struct {
	Cedula string `json:"cedula"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// GetUsersAPI lists all personas. Accounts without a stored role are
// externally created students and are reported as such.
func GetUsersAPI(c *fiber.Ctx, store database.Store) error {
	personas, err := store.ListPersonas()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch users"})
	}

	users := make([]userResponse, 0, len(personas))
	for _, p := range personas {
		role := p.Role
		if role == "" {
			role = models.RoleEstudiante
		}
		users = append(users, userResponse{
			Cedula: p.Cedula,
			Nombre: p.Nombre,
			Email:  p.Email,
			Role:   role,
		})
	}
	return c.JSON(users)
}

// CreateUserAPI creates a persona with a caller-supplied role. Unlike
// /register, the role is not derived from the email.
func CreateUserAPI(c *fiber.Ctx, store database.Store) error {
	type CreateUserRequest struct {
		Cedula   string `json:"cedula" validate:"required"`
		Username string `json:"username" validate:"required"`
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
		Role     string `json:"role" validate:"required"`
	}

	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validation.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	persona := &models.Persona{
		Cedula:   req.Cedula,
		Nombre:   req.Username,
		Email:    req.Email,
		Password: hash,
		Role:     req.Role,
	}
	if err := store.CreatePersona(persona); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return c.Status(409).JSON(fiber.Map{"error": "Cedula or email already registered"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create user"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "User created successfully"})
}

// UpdateUserRoleAPI changes a persona's role. Only the fixed role set is
// accepted here; this is the single place roles can be escalated.
func UpdateUserRoleAPI(c *fiber.Ctx, store database.Store) error {
	type UpdateRoleRequest struct {
		Role string `json:"role" validate:"required,oneof=user admin super-admin estudiante"`
	}

	cedula := c.Params("cedula")

	var req UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validation.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := store.UpdatePersonaRole(cedula, req.Role); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update user role"})
	}

	return c.JSON(fiber.Map{"message": "User role updated successfully"})
}

// DeleteUserAPI hard-deletes a persona. Related estudiantes/logros rows go
// with it via the schema's ON DELETE CASCADE.
func DeleteUserAPI(c *fiber.Ctx, store database.Store) error {
	cedula := c.Params("cedula")

	if err := store.DeletePersona(cedula); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete user"})
	}

	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
