// Package inventory contiene los servicios de dominio puros sobre un snapshot
// de artículos: clasificación de alertas y agregación analítica. Ninguna
// función persiste ni muta el snapshot recibido.
package inventory

import (
	"time"

	"github.com/tu-usuario/sims-backend/internal/domain/entity"
)

// Las cuatro clasificaciones son predicados independientes: un artículo puede
// pertenecer a varias a la vez (sin stock y caducado, por ejemplo).

// LowStockItems artículos con cantidad en o por debajo de su umbral (incluye cantidad cero).
func LowStockItems(items []*entity.Item) []*entity.Item {
	return filter(items, func(i *entity.Item) bool { return i.IsLowStock() })
}

// OutOfStockItems artículos con cantidad cero.
func OutOfStockItems(items []*entity.Item) []*entity.Item {
	return filter(items, func(i *entity.Item) bool { return i.IsOutOfStock() })
}

// ExpiringItems artículos que caducan estrictamente en el futuro dentro de 7 días.
func ExpiringItems(items []*entity.Item, today time.Time) []*entity.Item {
	return filter(items, func(i *entity.Item) bool { return i.IsExpiring(today) })
}

// ExpiredItems artículos cuya fecha de caducidad es hoy o anterior.
func ExpiredItems(items []*entity.Item, today time.Time) []*entity.Item {
	return filter(items, func(i *entity.Item) bool { return i.IsExpired(today) })
}

// ReorderSuggestion cantidad sugerida de reposición: 2× el umbral si el stock
// está bajo; (0, false) si el nivel es adecuado.
func ReorderSuggestion(item *entity.Item) (int, bool) {
	if item.IsLowStock() {
		return item.LowStockThreshold * 2, true
	}
	return 0, false
}

func filter(items []*entity.Item, keep func(*entity.Item) bool) []*entity.Item {
	out := make([]*entity.Item, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
