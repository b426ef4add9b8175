// Package auth contiene los casos de uso de autenticación: alta, login con
// emisión de JWT, cambio de contraseña y bootstrap de la cuenta admin.
// El hashing de contraseñas (bcrypt) es el colaborador de seguridad: el store
// nunca ve ni compara texto plano.
package auth

import (
	"time"

	"github.com/tu-usuario/sims-backend/internal/application/dto"
	"github.com/tu-usuario/sims-backend/internal/application/usecase"
	"github.com/tu-usuario/sims-backend/internal/domain"
	"github.com/tu-usuario/sims-backend/internal/domain/entity"
	"github.com/tu-usuario/sims-backend/internal/domain/repository"
	"github.com/tu-usuario/sims-backend/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea la contraseña con bcrypt y persiste.
// Devuelve ErrDuplicate si el username ya existe. No impone política de
// fortaleza de contraseña.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, _ := uc.userRepo.GetByUsername(in.Username)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	role := in.Role
	if role == "" {
		role = entity.RoleEmployee
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := entity.NewUser(in.Username, string(hash), role)
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return usecase.ToUserResponse(user), nil
}

// Login verifica username/password y genera el JWT. Falla cerrado: usuario
// desconocido y hash que no coincide devuelven el mismo ErrUnauthorized.
// En éxito actualiza LastLogin y persiste antes de devolver el usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	// Se muta una copia: el puntero del store solo cambia si Update persiste
	updated := *user
	now := time.Now()
	updated.LastLogin = &now
	if err := uc.userRepo.Update(&updated); err != nil {
		return nil, err
	}
	user = &updated
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *usecase.ToUserResponse(user),
	}, nil
}

// ChangePassword verifica la contraseña actual, rehashea la nueva y persiste.
func (uc *AuthUseCase) ChangePassword(username string, in dto.ChangePasswordRequest) error {
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	updated := *user
	updated.PasswordHash = string(hash)
	return uc.userRepo.Update(&updated)
}

// Bootstrap crea la cuenta admin inicial si la colección de usuarios está
// vacía. Devuelve true si la creó. Vive fuera del store: el store permite
// crear un usuario sin requerir uno preexistente.
func (uc *AuthUseCase) Bootstrap(username, password string) (bool, error) {
	n, err := uc.userRepo.Count()
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	user := entity.NewUser(username, string(hash), entity.RoleAdmin)
	if err := uc.userRepo.Create(user); err != nil {
		return false, err
	}
	return true, nil
}
