package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/allejandro3/Proyect-school-v1/app/models"
)

func TestDeriveRole(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"maestra@admin.school.com", models.RoleAdmin},
		{"directora@superadmin.school.com", models.RoleSuperAdmin},
		{"padre@gmail.com", models.RoleUser},
		{"admin.school.com@gmail.com", models.RoleUser}, // suffix, not substring
		{"", models.RoleUser},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DeriveRole(tt.email), "email %q", tt.email)
	}
}

func TestRoleLabel(t *testing.T) {
	assert.Equal(t, "Padre", RoleLabel(models.RoleUser))
	assert.Equal(t, "Maestro", RoleLabel(models.RoleAdmin))
	assert.Equal(t, "Director", RoleLabel(models.RoleSuperAdmin))
	// unknown roles pass through unchanged
	assert.Equal(t, "estudiante", RoleLabel(models.RoleEstudiante))
}

func TestRedirectFor(t *testing.T) {
	assert.Equal(t, "dashboard.html", RedirectFor(models.RoleUser))
	assert.Equal(t, "admin.html", RedirectFor(models.RoleAdmin))
	assert.Equal(t, "super-admin.html", RedirectFor(models.RoleSuperAdmin))
}
