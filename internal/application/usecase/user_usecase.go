package usecase

import (
	"github.com/tu-usuario/sims-backend/internal/application/dto"
	"github.com/tu-usuario/sims-backend/internal/domain"
	"github.com/tu-usuario/sims-backend/internal/domain/entity"
	"github.com/tu-usuario/sims-backend/internal/domain/repository"
)

// UserUseCase administración de cuentas (listado, cambio de rol, baja).
// El alta y la autenticación viven en application/auth.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devuelve todas las cuentas (sin hashes).
func (uc *UserUseCase) List() (*dto.UserListResponse, error) {
	users, err := uc.repo.All()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *ToUserResponse(u))
	}
	return &dto.UserListResponse{Users: out, Total: len(out)}, nil
}

// UpdateRole cambia el rol de una cuenta y persiste.
func (uc *UserUseCase) UpdateRole(username, role string) (*dto.UserResponse, error) {
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	updated := *user
	updated.Role = role
	if err := uc.repo.Update(&updated); err != nil {
		return nil, err
	}
	return ToUserResponse(&updated), nil
}

// Delete elimina una cuenta por username. La guarda "no borrar la cuenta con
// la que se está autenticado" la aplica la capa de interfaz, no el store.
func (uc *UserUseCase) Delete(username string) error {
	return uc.repo.Delete(username)
}

// ToUserResponse proyección de salida sin el hash de contraseña.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		Username:    u.Username,
		Role:        u.Role,
		LastLogin:   u.LastLogin,
		CreatedDate: u.CreatedDate,
	}
}
