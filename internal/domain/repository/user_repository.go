package repository

import "github.com/tu-usuario/sims-backend/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// El store es agnóstico de la sesión: no distingue al usuario autenticado;
// las guardas tipo "no borrar la cuenta propia" viven en la capa de interfaz.
type UserRepository interface {
	Create(user *entity.User) error
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	Delete(username string) error
	All() ([]*entity.User, error)
	Count() (int, error)
}
