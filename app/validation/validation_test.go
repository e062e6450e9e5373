package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateReportsJSONFieldNames(t *testing.T) {
	type body struct {
		Cedula string `json:"cedula" validate:"required"`
		Role   string `json:"role" validate:"required,oneof=user admin super-admin estudiante"`
	}

	err := Validate(body{})
	assert.EqualError(t, err, "cedula is required; role is required")

	err = Validate(body{Cedula: "100", Role: "teacher"})
	assert.EqualError(t, err, "role must be one of: user, admin, super-admin, estudiante")

	assert.NoError(t, Validate(body{Cedula: "100", Role: "super-admin"}))
}
