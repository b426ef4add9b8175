package repository

import "github.com/tu-usuario/sims-backend/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item (DIP).
// Los lookups devuelven (nil, nil) cuando no hay coincidencia; Add devuelve
// domain.ErrDuplicate si el ID o el código de barras ya existen, y Update y
// Delete devuelven domain.ErrNotFound si el ID no existe.
type ItemRepository interface {
	Add(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetByBarcode(barcode string) (*entity.Item, error)
	Update(item *entity.Item) error
	Delete(id string) error
	// All devuelve una copia defensiva: mutar el slice devuelto nunca afecta al store.
	All() ([]*entity.Item, error)
	ByCategory(category string) ([]*entity.Item, error)
	// Search filtra por subcadena (case-insensitive) en nombre o descripción.
	// El término vacío coincide con todo.
	Search(term string) ([]*entity.Item, error)
	Categories() ([]string, error)
	CategorySummary() (map[string]int, error)
}
