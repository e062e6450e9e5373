// Package inmem provides an in-memory database.Store used by handler tests.
// A role of "" stands for a NULL personas.role (a student account created
// outside this service).
package inmem

import (
	"sort"
	"sync"

	"github.com/allejandro3/Proyect-school-v1/app/database"
	"github.com/allejandro3/Proyect-school-v1/app/models"
)

type Store struct {
	mu          sync.Mutex
	personas    []*models.Persona
	estudiantes []*models.Estudiante
	materias    []*models.Materia
	logros      []*models.Logro
	nextID      int
}

var _ database.Store = (*Store)(nil)

func New() *Store {
	return &Store{nextID: 1}
}

func (s *Store) CreatePersona(p *models.Persona) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.personas {
		if existing.Cedula == p.Cedula || existing.Email == p.Email {
			return database.ErrDuplicate
		}
	}
	cp := *p
	s.personas = append(s.personas, &cp)
	return nil
}

func (s *Store) GetStaffByEmail(email string) (*models.Persona, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.personas {
		if p.Email == email && p.Role != models.RoleEstudiante && p.Role != "" {
			cp := *p
			return &cp, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *Store) GetStudentByCedula(cedula string) (*models.StudentAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.personas {
		if p.Cedula == cedula && (p.Role == models.RoleEstudiante || p.Role == "") {
			st := &models.StudentAccount{Persona: *p}
			for _, e := range s.estudiantes {
				if e.Cedula == cedula {
					st.Grado = e.Grado
					break
				}
			}
			return st, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *Store) ListPersonas() ([]*models.Persona, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	personas := make([]*models.Persona, 0, len(s.personas))
	for _, p := range s.personas {
		cp := *p
		personas = append(personas, &cp)
	}
	return personas, nil
}

func (s *Store) UpdatePersonaRole(cedula, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.personas {
		if p.Cedula == cedula {
			p.Role = role
			return nil
		}
	}
	return database.ErrNotFound
}

func (s *Store) DeletePersona(cedula string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.personas {
		if p.Cedula == cedula {
			s.personas = append(s.personas[:i], s.personas[i+1:]...)
			return nil
		}
	}
	return database.ErrNotFound
}

func (s *Store) ListRecords(filters database.RecordFilters) ([]*models.StudentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var records []*models.StudentRecord
	for _, l := range s.logros {
		est := s.findEstudiante(l.EstudianteID)
		if est == nil {
			continue
		}
		per := s.findPersona(est.Cedula)
		if per == nil {
			continue
		}
		mat := s.findMateria(l.MateriaID)
		if mat == nil {
			continue
		}

		if filters.Subject != "" && mat.Nombre != filters.Subject {
			continue
		}
		if filters.Grado != "" && est.Grado != filters.Grado {
			continue
		}
		if filters.Cedula != "" && per.Cedula != filters.Cedula {
			continue
		}

		records = append(records, &models.StudentRecord{
			ID:          l.ID,
			StudentName: per.Nombre,
			Subject:     mat.Nombre,
			Grado:       est.Grado,
			Logros:      l.Logros,
			IH:          l.LH,
			JV:          l.JV,
			Cedula:      per.Cedula,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].StudentName != records[j].StudentName {
			return records[i].StudentName < records[j].StudentName
		}
		return records[i].Subject < records[j].Subject
	})
	return records, nil
}

func (s *Store) GetMateriaByNombre(nombre string) (*models.Materia, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.materias {
		if m.Nombre == nombre {
			cp := *m
			return &cp, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *Store) UpdateLogro(id int, changes database.LogroChanges) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.logros {
		if l.ID == id {
			l.Logros = changes.Logros
			l.LH = changes.IH
			l.JV = changes.JV
			if changes.MateriaID != nil {
				l.MateriaID = *changes.MateriaID
			}
			return nil
		}
	}
	return database.ErrNotFound
}

// Seeding helpers for tests. They stand in for the rows this service never
// creates through its own endpoints (enrollments, subjects, logros).

func (s *Store) AddEstudiante(cedula, grado string) *models.Estudiante {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := &models.Estudiante{ID: s.nextID, Cedula: cedula, Grado: grado}
	s.nextID++
	s.estudiantes = append(s.estudiantes, e)
	return e
}

func (s *Store) AddMateria(nombre string) *models.Materia {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := &models.Materia{ID: s.nextID, Nombre: nombre}
	s.nextID++
	s.materias = append(s.materias, m)
	return m
}

func (s *Store) AddLogro(estudianteID, materiaID int, logros, lh, jv string) *models.Logro {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := &models.Logro{
		ID:           s.nextID,
		EstudianteID: estudianteID,
		MateriaID:    materiaID,
		Logros:       logros,
		LH:           lh,
		JV:           jv,
	}
	s.nextID++
	s.logros = append(s.logros, l)
	return l
}

// GetLogro returns a copy of the stored row, for asserting update effects.
func (s *Store) GetLogro(id int) *models.Logro {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.logros {
		if l.ID == id {
			cp := *l
			return &cp
		}
	}
	return nil
}

func (s *Store) findEstudiante(id int) *models.Estudiante {
	for _, e := range s.estudiantes {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func (s *Store) findPersona(cedula string) *models.Persona {
	for _, p := range s.personas {
		if p.Cedula == cedula {
			return p
		}
	}
	return nil
}

func (s *Store) findMateria(id int) *models.Materia {
	for _, m := range s.materias {
		if m.ID == id {
			return m
		}
	}
	return nil
}
