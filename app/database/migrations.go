package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema when it does not exist yet. Statements are
// idempotent so the service can start against a fresh or an existing database.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS personas (
			cedula   VARCHAR(20) PRIMARY KEY,
			nombre   VARCHAR(100) NOT NULL,
			email    VARCHAR(100) NOT NULL UNIQUE,
			password VARCHAR(100) NOT NULL,
			role     VARCHAR(20)
		)`,
		`CREATE TABLE IF NOT EXISTS estudiantes (
			id     SERIAL PRIMARY KEY,
			cedula VARCHAR(20) NOT NULL REFERENCES personas(cedula) ON DELETE CASCADE,
			grado  VARCHAR(20)
		)`,
		`CREATE TABLE IF NOT EXISTS materias (
			id     SERIAL PRIMARY KEY,
			nombre VARCHAR(100) NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS logros (
			id            SERIAL PRIMARY KEY,
			estudiante_id INT NOT NULL REFERENCES estudiantes(id) ON DELETE CASCADE,
			materia_id    INT NOT NULL REFERENCES materias(id),
			logros        TEXT,
			l_h           VARCHAR(50),
			j_v           VARCHAR(50)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
