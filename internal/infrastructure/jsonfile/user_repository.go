package jsonfile

import (
	"sync"

	"github.com/tu-usuario/sims-backend/internal/domain"
	"github.com/tu-usuario/sims-backend/internal/domain/entity"
	"github.com/tu-usuario/sims-backend/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

// UserRepository implementación del puerto UserRepository sobre un archivo JSON.
type UserRepository struct {
	mu    sync.Mutex
	store *Store[*entity.User]
	users []*entity.User
}

// NewUserRepository construye el adaptador y carga el snapshot existente.
func NewUserRepository(path string) *UserRepository {
	store := NewStore[*entity.User](path)
	return &UserRepository{store: store, users: store.Load()}
}

// Create persiste un usuario nuevo. Username duplicado devuelve ErrDuplicate.
// No requiere que exista otro usuario previo (sin ciclo de bootstrap).
func (r *UserRepository) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return domain.ErrDuplicate
		}
	}
	next := append(r.snapshot(), user)
	if err := r.store.Save(next); err != nil {
		return err
	}
	r.users = next
	return nil
}

// GetByUsername devuelve el usuario o (nil, nil) si no existe.
func (r *UserRepository) GetByUsername(username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// Update reemplaza el registro completo por username; ErrNotFound si no existe.
func (r *UserRepository) Update(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := r.snapshot()
	for i, u := range next {
		if u.Username == user.Username {
			next[i] = user
			if err := r.store.Save(next); err != nil {
				return err
			}
			r.users = next
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete elimina por username; ErrNotFound si no existe.
func (r *UserRepository) Delete(username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := r.snapshot()
	for i, u := range next {
		if u.Username == username {
			next = append(next[:i], next[i+1:]...)
			if err := r.store.Save(next); err != nil {
				return err
			}
			r.users = next
			return nil
		}
	}
	return domain.ErrNotFound
}

// All devuelve una copia defensiva de la colección.
func (r *UserRepository) All() ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot(), nil
}

// Count número de cuentas registradas (usado por el bootstrap inicial).
func (r *UserRepository) Count() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users), nil
}

func (r *UserRepository) snapshot() []*entity.User {
	out := make([]*entity.User, len(r.users))
	copy(out, r.users)
	return out
}
