package jsonfile

import (
	"sort"
	"strings"
	"sync"

	"github.com/tu-usuario/sims-backend/internal/domain"
	"github.com/tu-usuario/sims-backend/internal/domain/entity"
	"github.com/tu-usuario/sims-backend/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepository)(nil)

// ItemRepository implementación del puerto ItemRepository sobre un archivo JSON.
// La colección vive en memoria; cada mutación persiste el snapshot completo y
// solo se aplica en memoria si la escritura tuvo éxito (sin divergencia entre
// estado vivo y estado durable).
type ItemRepository struct {
	mu    sync.Mutex
	store *Store[*entity.Item]
	items []*entity.Item
}

// NewItemRepository construye el adaptador y carga el snapshot existente.
func NewItemRepository(path string) *ItemRepository {
	store := NewStore[*entity.Item](path)
	return &ItemRepository{store: store, items: store.Load()}
}

// Add persiste un artículo nuevo. ID o código de barras duplicados devuelven ErrDuplicate.
func (r *ItemRepository) Add(item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.ID == item.ID || it.Barcode == item.Barcode {
			return domain.ErrDuplicate
		}
	}
	next := append(r.snapshot(), item)
	if err := r.store.Save(next); err != nil {
		return err
	}
	r.items = next
	return nil
}

// GetByID devuelve el artículo o (nil, nil) si no existe.
func (r *ItemRepository) GetByID(id string) (*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, nil
}

// GetByBarcode devuelve el artículo o (nil, nil) si no existe.
func (r *ItemRepository) GetByBarcode(barcode string) (*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.Barcode == barcode {
			return it, nil
		}
	}
	return nil, nil
}

// Update reemplaza el registro completo por ID; ErrNotFound si el ID no existe
// (la colección queda sin cambios).
func (r *ItemRepository) Update(item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := r.snapshot()
	for i, it := range next {
		if it.ID == item.ID {
			next[i] = item
			if err := r.store.Save(next); err != nil {
				return err
			}
			r.items = next
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete elimina por ID; ErrNotFound si el ID no existe.
func (r *ItemRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := r.snapshot()
	for i, it := range next {
		if it.ID == id {
			next = append(next[:i], next[i+1:]...)
			if err := r.store.Save(next); err != nil {
				return err
			}
			r.items = next
			return nil
		}
	}
	return domain.ErrNotFound
}

// All devuelve una copia defensiva de la colección.
func (r *ItemRepository) All() ([]*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot(), nil
}

// ByCategory coincidencia exacta de categoría, sin distinguir mayúsculas.
func (r *ItemRepository) ByCategory(category string) ([]*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Item
	for _, it := range r.items {
		if strings.EqualFold(it.Category, category) {
			out = append(out, it)
		}
	}
	return out, nil
}

// Search subcadena case-insensitive sobre nombre o descripción. El término
// vacío es subcadena de todo, así que coincide con toda la colección.
func (r *ItemRepository) Search(term string) ([]*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	needle := strings.ToLower(term)
	var out []*entity.Item
	for _, it := range r.items {
		if strings.Contains(strings.ToLower(it.Name), needle) ||
			strings.Contains(strings.ToLower(it.Description), needle) {
			out = append(out, it)
		}
	}
	return out, nil
}

// Categories valores distintos de categoría, ordenados para salida estable.
func (r *ItemRepository) Categories() ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for _, it := range r.items {
		if !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

// CategorySummary número de artículos por categoría.
func (r *ItemRepository) CategorySummary() (map[string]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	summary := map[string]int{}
	for _, it := range r.items {
		summary[it.Category]++
	}
	return summary, nil
}

// snapshot copia del slice; los elementos se comparten, la secuencia no.
func (r *ItemRepository) snapshot() []*entity.Item {
	out := make([]*entity.Item, len(r.items))
	copy(out, r.items)
	return out
}
