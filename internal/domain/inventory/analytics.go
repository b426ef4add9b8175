package inventory

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/sims-backend/internal/domain/entity"
)

const topCategories = 5 // categorías retenidas en el ranking por valor

// CategoryValue valor total (precio × cantidad) de una categoría.
type CategoryValue struct {
	Category string          `json:"category"`
	Value    decimal.Decimal `json:"value"`
}

// StockDistribution histograma de niveles de stock. Los buckets son
// mutuamente excluyentes y exhaustivos:
//
//	OutOfStock: qty == 0
//	LowStock:   0 < qty <= umbral
//	OverStock:  qty > 3×umbral
//	Normal:     el resto
type StockDistribution struct {
	OutOfStock int `json:"out_of_stock"`
	LowStock   int `json:"low_stock"`
	Normal     int `json:"normal_stock"`
	OverStock  int `json:"over_stock"`
}

// Recommendation sugerencia de compra para un artículo con stock bajo.
type Recommendation struct {
	ItemID    string `json:"item_id"`
	Name      string `json:"name"`
	Current   int    `json:"current"`
	Threshold int    `json:"threshold"`
	Suggested int    `json:"suggested"`
}

// Todos los agregados se recalculan desde el snapshot en cada llamada; las
// colecciones son pequeñas y un caché incremental no se justifica.

// TotalValue Σ precio × cantidad sobre el snapshot.
func TotalValue(items []*entity.Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// AveragePrice precio medio; cero con el snapshot vacío, nunca divide por cero.
func AveragePrice(items []*entity.Item) decimal.Decimal {
	if len(items) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Price)
	}
	return sum.Div(decimal.NewFromInt(int64(len(items))))
}

// TopValueCategories ranking descendente de categorías por valor total,
// empates resueltos por orden de primera aparición (sort estable), máximo 5.
func TopValueCategories(items []*entity.Item) []CategoryValue {
	totals := map[string]decimal.Decimal{}
	var order []string
	for _, it := range items {
		if _, seen := totals[it.Category]; !seen {
			order = append(order, it.Category)
		}
		totals[it.Category] = totals[it.Category].Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	ranked := make([]CategoryValue, 0, len(order))
	for _, c := range order {
		ranked = append(ranked, CategoryValue{Category: c, Value: totals[c]})
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Value.GreaterThan(ranked[b].Value)
	})
	if len(ranked) > topCategories {
		ranked = ranked[:topCategories]
	}
	return ranked
}

// ComputeStockDistribution clasifica cada artículo en exactamente un bucket.
func ComputeStockDistribution(items []*entity.Item) StockDistribution {
	var d StockDistribution
	for _, it := range items {
		switch {
		case it.Quantity == 0:
			d.OutOfStock++
		case it.Quantity <= it.LowStockThreshold:
			d.LowStock++
		case it.Quantity > it.LowStockThreshold*3:
			d.OverStock++
		default:
			d.Normal++
		}
	}
	return d
}

// LowStockPercentage porcentaje de artículos con stock bajo (cantidad <= umbral); cero si no hay artículos.
func LowStockPercentage(items []*entity.Item) float64 {
	if len(items) == 0 {
		return 0
	}
	low := 0
	for _, it := range items {
		if it.IsLowStock() {
			low++
		}
	}
	return float64(low) / float64(len(items)) * 100
}

// PurchaseRecommendations sugerencia de compra para cada artículo con stock
// bajo: max(2×umbral, umbral − cantidad + 10).
func PurchaseRecommendations(items []*entity.Item) []Recommendation {
	var recs []Recommendation
	for _, it := range items {
		if !it.IsLowStock() {
			continue
		}
		suggested := it.LowStockThreshold * 2
		if alt := it.LowStockThreshold - it.Quantity + 10; alt > suggested {
			suggested = alt
		}
		recs = append(recs, Recommendation{
			ItemID:    it.ID,
			Name:      it.Name,
			Current:   it.Quantity,
			Threshold: it.LowStockThreshold,
			Suggested: suggested,
		})
	}
	return recs
}

// CategoryDistribution número de artículos por categoría.
func CategoryDistribution(items []*entity.Item) map[string]int {
	dist := map[string]int{}
	for _, it := range items {
		dist[it.Category]++
	}
	return dist
}
