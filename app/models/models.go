package models

// Roles stored on personas.role. A NULL/empty role is treated as a student
// account for login purposes.
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super-admin"
	RoleEstudiante = "estudiante"
)

// ValidRoles is the set accepted by the role-update endpoint.
var ValidRoles = []string{RoleUser, RoleAdmin, RoleSuperAdmin, RoleEstudiante}

// Persona is a row of the personas table.
type Persona struct {
	Cedula   string `json:"cedula"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"-"`    // bcrypt hash
	Role     string `json:"role"` // empty when NULL in storage
}

// StudentAccount is a Persona joined with its estudiantes row.
// Grado is empty when the persona has no enrollment.
type StudentAccount struct {
	Persona
	Grado string `json:"grado"`
}

// Estudiante is a row of the estudiantes table.
type Estudiante struct {
	ID     int    `json:"id"`
	Cedula string `json:"cedula"`
	Grado  string `json:"grado"`
}

// Materia is a row of the materias table.
type Materia struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// Logro is a row of the logros table.
type Logro struct {
	ID           int    `json:"id"`
	EstudianteID int    `json:"estudiante_id"`
	MateriaID    int    `json:"materia_id"`
	Logros       string `json:"logros"`
	LH           string `json:"l_h"`
	JV           string `json:"j_v"`
}

// StudentRecord is one row of the logros/estudiantes/personas/materias join.
// The JSON tags are the wire contract the frontend was built against.
type StudentRecord struct {
	ID          int    `json:"id"`
	StudentName string `json:"student_name"`
	Subject     string `json:"subject"`
	Grado       string `json:"grado"`
	Logros      string `json:"logros"`
	IH          string `json:"I_H"`
	JV          string `json:"J_V"`
	Cedula      string `json:"targeta_identidad"`
}

// Boletin is a student's report card: their records grouped under one header.
type Boletin struct {
	StudentName string          `json:"student_name"`
	Cedula      string          `json:"targeta_identidad"`
	Grado       string          `json:"grado"`
	Records     []BoletinRecord `json:"records"`
}

// BoletinRecord is one subject line inside a Boletin.
type BoletinRecord struct {
	Subject string `json:"subject"`
	IH      string `json:"I_H"`
	JV      string `json:"J_V"`
	Logros  string `json:"logros"`
}
