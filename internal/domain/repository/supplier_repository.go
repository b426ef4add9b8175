package repository

import "github.com/tu-usuario/sims-backend/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Add(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	All() ([]*entity.Supplier, error)
}
