package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/allejandro3/Proyect-school-v1/app/models"
)

// uniqueViolation is the Postgres error code for unique constraint failures.
const uniqueViolation = "23505"

type sqlStore struct {
	db *sql.DB
}

// NewStore returns a Store backed by the given Postgres connection pool.
func NewStore(db *sql.DB) Store {
	return &sqlStore{db: db}
}

func (s *sqlStore) CreatePersona(p *models.Persona) error {
	query := `INSERT INTO personas (cedula, nombre, email, password, role)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := s.db.Exec(query, p.Cedula, p.Nombre, p.Email, p.Password, p.Role)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create persona: %w", err)
	}
	return nil
}

func (s *sqlStore) GetStaffByEmail(email string) (*models.Persona, error) {
	p := &models.Persona{}
	query := `SELECT cedula, nombre, email, password, role
			  FROM personas WHERE email = $1 AND role <> 'estudiante'`

	err := s.db.QueryRow(query, email).Scan(
		&p.Cedula, &p.Nombre, &p.Email, &p.Password, &p.Role,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch persona: %w", err)
	}
	return p, nil
}

func (s *sqlStore) GetStudentByCedula(cedula string) (*models.StudentAccount, error) {
	st := &models.StudentAccount{}
	var role, grado sql.NullString
	query := `SELECT p.cedula, p.nombre, p.email, p.password, p.role, e.grado
			  FROM personas p
			  LEFT JOIN estudiantes e ON p.cedula = e.cedula
			  WHERE p.cedula = $1 AND (p.role = 'estudiante' OR p.role IS NULL OR p.role = '')`

	err := s.db.QueryRow(query, cedula).Scan(
		&st.Cedula, &st.Nombre, &st.Email, &st.Password, &role, &grado,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch student: %w", err)
	}
	st.Role = role.String
	st.Grado = grado.String
	return st, nil
}

func (s *sqlStore) ListPersonas() ([]*models.Persona, error) {
	query := `SELECT cedula, nombre, email, role FROM personas`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch personas: %w", err)
	}
	defer rows.Close()

	var personas []*models.Persona
	for rows.Next() {
		p := &models.Persona{}
		var role sql.NullString
		if err := rows.Scan(&p.Cedula, &p.Nombre, &p.Email, &role); err != nil {
			return nil, fmt.Errorf("failed to scan persona: %w", err)
		}
		p.Role = role.String
		personas = append(personas, p)
	}
	return personas, rows.Err()
}

func (s *sqlStore) UpdatePersonaRole(cedula, role string) error {
	query := `UPDATE personas SET role = $1 WHERE cedula = $2`

	result, err := s.db.Exec(query, role, cedula)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	return requireAffected(result)
}

func (s *sqlStore) DeletePersona(cedula string) error {
	query := `DELETE FROM personas WHERE cedula = $1`

	result, err := s.db.Exec(query, cedula)
	if err != nil {
		return fmt.Errorf("failed to delete persona: %w", err)
	}
	return requireAffected(result)
}

func (s *sqlStore) ListRecords(filters RecordFilters) ([]*models.StudentRecord, error) {
	query := `
		SELECT
			l.id,
			p.nombre AS student_name,
			m.nombre AS subject,
			e.grado,
			l.logros,
			l.l_h,
			l.j_v,
			p.cedula
		FROM logros l
		JOIN estudiantes e ON l.estudiante_id = e.id
		JOIN personas p ON e.cedula = p.cedula
		JOIN materias m ON l.materia_id = m.id
	`

	var conditions []string
	var args []interface{}
	argIndex := 1

	if filters.Subject != "" {
		conditions = append(conditions, fmt.Sprintf("m.nombre = $%d", argIndex))
		args = append(args, filters.Subject)
		argIndex++
	}
	if filters.Grado != "" {
		conditions = append(conditions, fmt.Sprintf("e.grado = $%d", argIndex))
		args = append(args, filters.Grado)
		argIndex++
	}
	if filters.Cedula != "" {
		conditions = append(conditions, fmt.Sprintf("p.cedula = $%d", argIndex))
		args = append(args, filters.Cedula)
		argIndex++
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY p.nombre, m.nombre"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records: %w", err)
	}
	defer rows.Close()

	var records []*models.StudentRecord
	for rows.Next() {
		r := &models.StudentRecord{}
		var grado, logros, lh, jv sql.NullString
		err := rows.Scan(&r.ID, &r.StudentName, &r.Subject, &grado, &logros, &lh, &jv, &r.Cedula)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		r.Grado = grado.String
		r.Logros = logros.String
		r.IH = lh.String
		r.JV = jv.String
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *sqlStore) GetMateriaByNombre(nombre string) (*models.Materia, error) {
	m := &models.Materia{}
	query := `SELECT id, nombre FROM materias WHERE nombre = $1 LIMIT 1`

	err := s.db.QueryRow(query, nombre).Scan(&m.ID, &m.Nombre)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch materia: %w", err)
	}
	return m, nil
}

func (s *sqlStore) UpdateLogro(id int, changes LogroChanges) error {
	query := `UPDATE logros SET logros = $1, l_h = $2, j_v = $3`
	args := []interface{}{changes.Logros, changes.IH, changes.JV}

	if changes.MateriaID != nil {
		query += fmt.Sprintf(", materia_id = $%d", len(args)+1)
		args = append(args, *changes.MateriaID)
	}
	query += fmt.Sprintf(" WHERE id = $%d", len(args)+1)
	args = append(args, id)

	result, err := s.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to update logro: %w", err)
	}
	return requireAffected(result)
}

// requireAffected turns a zero-row mutation into ErrNotFound.
func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
