package jsonfile

import (
	"sync"

	"github.com/tu-usuario/sims-backend/internal/domain"
	"github.com/tu-usuario/sims-backend/internal/domain/entity"
	"github.com/tu-usuario/sims-backend/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepository)(nil)

// SupplierRepository implementación del puerto SupplierRepository sobre un archivo JSON.
type SupplierRepository struct {
	mu        sync.Mutex
	store     *Store[*entity.Supplier]
	suppliers []*entity.Supplier
}

// NewSupplierRepository construye el adaptador y carga el snapshot existente.
func NewSupplierRepository(path string) *SupplierRepository {
	store := NewStore[*entity.Supplier](path)
	return &SupplierRepository{store: store, suppliers: store.Load()}
}

// Add persiste un proveedor nuevo. ID duplicado devuelve ErrDuplicate.
func (r *SupplierRepository) Add(supplier *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.suppliers {
		if s.ID == supplier.ID {
			return domain.ErrDuplicate
		}
	}
	next := append(r.snapshot(), supplier)
	if err := r.store.Save(next); err != nil {
		return err
	}
	r.suppliers = next
	return nil
}

// GetByID devuelve el proveedor o (nil, nil) si no existe.
func (r *SupplierRepository) GetByID(id string) (*entity.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.suppliers {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

// All devuelve una copia defensiva de la colección.
func (r *SupplierRepository) All() ([]*entity.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot(), nil
}

func (r *SupplierRepository) snapshot() []*entity.Supplier {
	out := make([]*entity.Supplier, len(r.suppliers))
	copy(out, r.suppliers)
	return out
}
