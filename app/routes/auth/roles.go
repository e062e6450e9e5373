package auth

import (
	"strings"

	"github.com/allejandro3/Proyect-school-v1/app/models"
)

var roleLabels = map[string]string{
	models.RoleUser:       "Padre",
	models.RoleAdmin:      "Maestro",
	models.RoleSuperAdmin: "Director",
}

// DeriveRole assigns a registration role from the email's domain suffix.
// Anything that is not a staff domain is a guardian account.
func DeriveRole(email string) string {
	switch {
	case strings.HasSuffix(email, "@admin.school.com"):
		return models.RoleAdmin
	case strings.HasSuffix(email, "@superadmin.school.com"):
		return models.RoleSuperAdmin
	default:
		return models.RoleUser
	}
}

// RoleLabel maps a stored role to the label shown to users. Unknown roles
// fall through unchanged.
func RoleLabel(role string) string {
	if label, ok := roleLabels[role]; ok {
		return label
	}
	return role
}

// RedirectFor picks the landing page for a staff/guardian role.
func RedirectFor(role string) string {
	switch role {
	case models.RoleAdmin:
		return "admin.html"
	case models.RoleSuperAdmin:
		return "super-admin.html"
	default:
		return "dashboard.html" // guardians
	}
}
