package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/allejandro3/Proyect-school-v1/app/database"
	"github.com/allejandro3/Proyect-school-v1/app/models"
	"github.com/allejandro3/Proyect-school-v1/app/validation"
)

// RegisterAPI creates a guardian/staff account. The role is never taken from
// the caller: it is derived from the email domain.
func RegisterAPI(c *fiber.Ctx, store database.Store) error {
	type RegisterRequest struct {
		Cedula   string `json:"cedula" validate:"required"`
		Username string `json:"username" validate:"required"`
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validation.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	persona := &models.Persona{
		Cedula:   req.Cedula,
		Nombre:   req.Username,
		Email:    req.Email,
		Password: hash,
		Role:     DeriveRole(req.Email),
	}
	if err := store.CreatePersona(persona); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return c.Status(409).JSON(fiber.Map{"error": "Cedula or email already registered"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to register user"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "User registered successfully"})
}

// LoginAPI authenticates staff and guardians by email. Student accounts are
// rejected here even with correct credentials; they use StudentLoginAPI.
func LoginAPI(c *fiber.Ctx, store database.Store) error {
	type LoginRequest struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validation.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	// Unknown email and wrong password must be indistinguishable.
	persona, err := store.GetStaffByEmail(req.Email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid email or password"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if !CheckPasswordHash(req.Password, persona.Password) {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	token, err := GenerateJWT(persona.Cedula, persona.Nombre, persona.Email, persona.Role)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}
	setTokenCookie(c, token)

	label := RoleLabel(persona.Role)
	return c.JSON(fiber.Map{
		"message":    fmt.Sprintf("%s login successful", label),
		"redirectTo": RedirectFor(persona.Role),
		"user": fiber.Map{
			"username": persona.Nombre,
			"cedula":   persona.Cedula,
			"email":    persona.Email,
			"role":     label,
		},
	})
}

// StudentLoginAPI authenticates students by cedula. Accounts with role
// "estudiante" or no role at all qualify.
func StudentLoginAPI(c *fiber.Ctx, store database.Store) error {
	type StudentLoginRequest struct {
		Cedula   string `json:"cedula" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	var req StudentLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validation.Validate(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	student, err := store.GetStudentByCedula(req.Cedula)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid cedula or password"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if !CheckPasswordHash(req.Password, student.Password) {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid cedula or password"})
	}

	token, err := GenerateJWT(student.Cedula, student.Nombre, student.Email, models.RoleEstudiante)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}
	setTokenCookie(c, token)

	return c.JSON(fiber.Map{
		"message":    "Student login successful",
		"redirectTo": "student-grades.html",
		"user": fiber.Map{
			"username": student.Nombre,
			"cedula":   student.Cedula,
			"nombre":   student.Nombre,
			"grado":    student.Grado,
			"role":     models.RoleEstudiante,
		},
	})
}

// LogoutAPI clears the token cookie.
func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     tokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

func setTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     tokenCookie,
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}
