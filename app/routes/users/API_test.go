package users

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allejandro3/Proyect-school-v1/app/database/inmem"
	"github.com/allejandro3/Proyect-school-v1/app/models"
	"github.com/allejandro3/Proyect-school-v1/app/routes/auth"
)

func newTestApp(store *inmem.Store) *fiber.App {
	app := fiber.New()
	SetupUsersRoutes(app, store)
	return app
}

func tokenFor(t *testing.T, role string) string {
	t.Helper()
	token, err := auth.GenerateJWT("9000", "Caller", "caller@x.com", role)
	require.NoError(t, err)
	return token
}

func jsonRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func seedPersona(t *testing.T, store *inmem.Store, cedula, nombre, email, role string) {
	t.Helper()
	require.NoError(t, store.CreatePersona(&models.Persona{
		Cedula:   cedula,
		Nombre:   nombre,
		Email:    email,
		Password: "hash",
		Role:     role,
	}))
}

func TestUsersEndpointsRequireDirector(t *testing.T) {
	app := newTestApp(inmem.New())

	// no token
	resp := jsonRequest(t, app, "GET", "/api/users", "", nil)
	assert.Equal(t, 401, resp.StatusCode)

	// authenticated but not a director
	for _, role := range []string{models.RoleUser, models.RoleAdmin, models.RoleEstudiante} {
		resp := jsonRequest(t, app, "GET", "/api/users", tokenFor(t, role), nil)
		assert.Equal(t, 403, resp.StatusCode, "role %s", role)
	}
}

func TestGetUsersDefaultsNullRoleToEstudiante(t *testing.T) {
	store := inmem.New()
	app := newTestApp(store)
	seedPersona(t, store, "100", "Ana", "ana@x.com", models.RoleUser)
	seedPersona(t, store, "200", "Luis", "luis@x.com", "")

	resp := jsonRequest(t, app, "GET", "/api/users", tokenFor(t, models.RoleSuperAdmin), nil)
	require.Equal(t, 200, resp.StatusCode)

	var users []userResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	require.Len(t, users, 2)
	assert.Equal(t, models.RoleUser, users[0].Role)
	assert.Equal(t, models.RoleEstudiante, users[1].Role)
}

func TestCreateUserTakesCallerSuppliedRole(t *testing.T) {
	store := inmem.New()
	app := newTestApp(store)
	token := tokenFor(t, models.RoleSuperAdmin)

	resp := jsonRequest(t, app, "POST", "/api/users", token, fiber.Map{
		"cedula":   "100",
		"username": "Maestra",
		"email":    "m@otrodominio.com",
		"password": "clave123",
		"role":     models.RoleAdmin,
	})
	require.Equal(t, 201, resp.StatusCode)

	personas, err := store.ListPersonas()
	require.NoError(t, err)
	require.Len(t, personas, 1)
	// role comes from the body, not from the email domain
	assert.Equal(t, models.RoleAdmin, personas[0].Role)
}

func TestCreateUserRequiresRole(t *testing.T) {
	app := newTestApp(inmem.New())

	resp := jsonRequest(t, app, "POST", "/api/users", tokenFor(t, models.RoleSuperAdmin), fiber.Map{
		"cedula":   "100",
		"username": "Maestra",
		"email":    "m@x.com",
		"password": "clave123",
	})
	assert.Equal(t, 400, resp.StatusCode)
}

func TestCreateUserConflict(t *testing.T) {
	store := inmem.New()
	app := newTestApp(store)
	seedPersona(t, store, "100", "Ana", "ana@x.com", models.RoleUser)

	resp := jsonRequest(t, app, "POST", "/api/users", tokenFor(t, models.RoleSuperAdmin), fiber.Map{
		"cedula":   "100",
		"username": "Otra",
		"email":    "otra@x.com",
		"password": "clave123",
		"role":     models.RoleUser,
	})
	assert.Equal(t, 409, resp.StatusCode)
}

func TestUpdateUserRole(t *testing.T) {
	store := inmem.New()
	app := newTestApp(store)
	token := tokenFor(t, models.RoleSuperAdmin)
	seedPersona(t, store, "100", "Ana", "ana@x.com", models.RoleUser)

	// outside the fixed set
	resp := jsonRequest(t, app, "PUT", "/api/users/100/role", token, fiber.Map{"role": "teacher"})
	assert.Equal(t, 400, resp.StatusCode)

	// unknown cedula
	resp = jsonRequest(t, app, "PUT", "/api/users/999/role", token, fiber.Map{"role": models.RoleAdmin})
	assert.Equal(t, 404, resp.StatusCode)

	// valid update is reflected on subsequent reads
	resp = jsonRequest(t, app, "PUT", "/api/users/100/role", token, fiber.Map{"role": models.RoleAdmin})
	require.Equal(t, 200, resp.StatusCode)

	resp = jsonRequest(t, app, "GET", "/api/users", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	var users []userResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	require.Len(t, users, 1)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
}

func TestDeleteUser(t *testing.T) {
	store := inmem.New()
	app := newTestApp(store)
	token := tokenFor(t, models.RoleSuperAdmin)
	seedPersona(t, store, "100", "Ana", "ana@x.com", models.RoleUser)

	resp := jsonRequest(t, app, "DELETE", "/api/users/999", token, nil)
	assert.Equal(t, 404, resp.StatusCode)

	resp = jsonRequest(t, app, "DELETE", "/api/users/100", token, nil)
	require.Equal(t, 200, resp.StatusCode)

	personas, err := store.ListPersonas()
	require.NoError(t, err)
	assert.Empty(t, personas)
}
