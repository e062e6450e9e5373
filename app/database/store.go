package database

import (
	"errors"

	"github.com/allejandro3/Proyect-school-v1/app/models"
)

var (
	// ErrNotFound is returned when a lookup or mutation targets a row that
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when an insert violates a unique constraint
	// (cedula or email on personas, nombre on materias).
	ErrDuplicate = errors.New("already exists")
)

// RecordFilters narrows ListRecords. Empty fields add no predicate; supplied
// fields are combined with AND as exact matches.
type RecordFilters struct {
	Subject string // materias.nombre
	Grado   string // estudiantes.grado
	Cedula  string // personas.cedula
}

// LogroChanges is the mutable part of a logros row. MateriaID is only
// applied when non-nil.
type LogroChanges struct {
	Logros    string
	IH        string
	JV        string
	MateriaID *int
}

// Store is the storage capability handed to the route packages. main builds
// one against Postgres; tests use the in-memory implementation.
type Store interface {
	// Personas
	CreatePersona(p *models.Persona) error
	GetStaffByEmail(email string) (*models.Persona, error)
	GetStudentByCedula(cedula string) (*models.StudentAccount, error)
	ListPersonas() ([]*models.Persona, error)
	UpdatePersonaRole(cedula, role string) error
	DeletePersona(cedula string) error

	// Records
	ListRecords(filters RecordFilters) ([]*models.StudentRecord, error)
	GetMateriaByNombre(nombre string) (*models.Materia, error)
	UpdateLogro(id int, changes LogroChanges) error
}
