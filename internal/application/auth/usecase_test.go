package auth

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/sims-backend/internal/application/dto"
	"github.com/tu-usuario/sims-backend/internal/domain"
	"github.com/tu-usuario/sims-backend/internal/domain/entity"
	"github.com/tu-usuario/sims-backend/internal/infrastructure/jsonfile"
)

var testJWT = JWTConfig{Secret: "secreto-de-prueba", ExpMinutes: 60, Issuer: "sims-test"}

func newTestAuth(t *testing.T) (*AuthUseCase, *jsonfile.UserRepository) {
	t.Helper()
	repo := jsonfile.NewUserRepository(filepath.Join(t.TempDir(), "users.json"))
	return NewAuthUseCase(repo, testJWT), repo
}

// Register persiste el usuario con hash bcrypt, nunca la contraseña en claro.
func TestAuth_Register(t *testing.T) {
	uc, repo := newTestAuth(t)

	resp, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "clave123"})
	require.NoError(t, err)
	assert.Equal(t, "maria", resp.Username)
	assert.Equal(t, entity.RoleEmployee, resp.Role, "el rol vacío se resuelve a employee")

	stored, err := repo.GetByUsername("maria")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "clave123", stored.PasswordHash, "la contraseña no se guarda en claro")
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestAuth_RegisterDuplicado(t *testing.T) {
	uc, _ := newTestAuth(t)
	_, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "clave123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Username: "maria", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestAuth_RegisterRolInvalido(t *testing.T) {
	uc, _ := newTestAuth(t)
	_, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "x", Role: "superuser"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Login falla cerrado: usuario desconocido y contraseña incorrecta devuelven
// el mismo error; el fallo no toca LastLogin.
func TestAuth_LoginFallaCerrado(t *testing.T) {
	uc, repo := newTestAuth(t)
	_, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "clave123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "desconocido", Password: "clave123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Username: "maria", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	stored, _ := repo.GetByUsername("maria")
	assert.Nil(t, stored.LastLogin, "un login fallido no registra LastLogin")
}

// Login exitoso emite token y persiste LastLogin antes de devolver.
func TestAuth_LoginExitoso(t *testing.T) {
	uc, repo := newTestAuth(t)
	_, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "clave123", Role: entity.RoleManager})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "clave123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "maria", resp.User.Username)
	assert.Equal(t, entity.RoleManager, resp.User.Role)
	require.NotNil(t, resp.User.LastLogin)

	stored, _ := repo.GetByUsername("maria")
	require.NotNil(t, stored.LastLogin, "LastLogin queda persistido")
}

// ChangePassword exige la contraseña actual; tras el cambio, la nueva abre
// sesión y la vieja deja de funcionar.
func TestAuth_ChangePassword(t *testing.T) {
	uc, _ := newTestAuth(t)
	_, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "vieja"})
	require.NoError(t, err)

	err = uc.ChangePassword("maria", dto.ChangePasswordRequest{CurrentPassword: "incorrecta", NewPassword: "nueva"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	err = uc.ChangePassword("maria", dto.ChangePasswordRequest{CurrentPassword: "vieja", NewPassword: "nueva"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "maria", Password: "vieja"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(dto.LoginRequest{Username: "maria", Password: "nueva"})
	assert.NoError(t, err)
}

func TestAuth_ChangePasswordUsuarioAusente(t *testing.T) {
	uc, _ := newTestAuth(t)
	err := uc.ChangePassword("fantasma", dto.ChangePasswordRequest{CurrentPassword: "x", NewPassword: "y"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Bootstrap crea el admin solo sobre la colección vacía; la segunda llamada
// y cualquier colección poblada son no-op.
func TestAuth_Bootstrap(t *testing.T) {
	uc, repo := newTestAuth(t)

	created, err := uc.Bootstrap("admin", "admin123")
	require.NoError(t, err)
	assert.True(t, created)

	stored, _ := repo.GetByUsername("admin")
	require.NotNil(t, stored)
	assert.Equal(t, entity.RoleAdmin, stored.Role)

	created, err = uc.Bootstrap("admin", "admin123")
	require.NoError(t, err)
	assert.False(t, created, "la colección poblada no vuelve a sembrar")

	n, _ := repo.Count()
	assert.Equal(t, 1, n)
}
