package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/sims-backend/internal/application/auth"
	"github.com/tu-usuario/sims-backend/internal/domain/entity"
	"github.com/tu-usuario/sims-backend/internal/infrastructure/jsonfile"
	apphttp "github.com/tu-usuario/sims-backend/internal/interfaces/http"
)

func buildAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	userRepo := jsonfile.NewUserRepository(filepath.Join(t.TempDir(), "users.json"))
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	})
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{AuthUC: authUC, JWTSecret: testJWTSecret})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// El registro público ignora el rol solicitado: un anónimo no puede darse de
// alta como admin, toda cuenta nueva entra como employee.
func TestRegister_RolSolicitadoSeIgnora(t *testing.T) {
	app := buildAuthApp(t)

	resp := postJSON(t, app, "/api/auth/register",
		`{"username":"intruso","password":"clave123","role":"admin"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, entity.RoleEmployee, out["role"], "la ruta pública siempre asigna employee")
}

// La cuenta recién registrada no alcanza las rutas de administración.
func TestRegister_CuentaNuevaSinAccesoAdmin(t *testing.T) {
	app := buildAuthApp(t)

	resp := postJSON(t, app, "/api/auth/register",
		`{"username":"intruso","password":"clave123","role":"admin"}`)
	resp.Body.Close()

	login := postJSON(t, app, "/api/auth/login",
		`{"username":"intruso","password":"clave123"}`)
	defer login.Body.Close()
	require.Equal(t, http.StatusOK, login.StatusCode)

	var session struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(login.Body).Decode(&session))
	require.NotEmpty(t, session.Token)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token)
	users, err := app.Test(req, -1)
	require.NoError(t, err)
	defer users.Body.Close()
	assert.Equal(t, http.StatusForbidden, users.StatusCode,
		"employee no debe alcanzar la administración de usuarios")
}
