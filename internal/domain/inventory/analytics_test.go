package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/sims-backend/internal/domain/entity"
)

func pricedItem(id, category string, qty int, price float64, threshold int) *entity.Item {
	return &entity.Item{
		ID:                id,
		Name:              id,
		Category:          category,
		Quantity:          qty,
		Price:             decimal.NewFromFloat(price),
		LowStockThreshold: threshold,
	}
}

// Valor total = Σ precio × cantidad, con aritmética decimal exacta.
func TestAnalytics_TotalValue(t *testing.T) {
	items := []*entity.Item{
		pricedItem("ITM1", "A", 3, 2.50, 5),  // 7.50
		pricedItem("ITM2", "B", 10, 0.99, 5), // 9.90
	}

	assert.True(t, TotalValue(items).Equal(decimal.NewFromFloat(17.40)),
		"el valor total debe calcularse sin errores de coma flotante")
	assert.True(t, TotalValue(nil).Equal(decimal.Zero))
}

// Precio medio: cero con el snapshot vacío, nunca división por cero.
func TestAnalytics_AveragePrice(t *testing.T) {
	assert.True(t, AveragePrice(nil).Equal(decimal.Zero))

	items := []*entity.Item{
		pricedItem("ITM1", "A", 1, 2.00, 5),
		pricedItem("ITM2", "A", 1, 4.00, 5),
	}
	assert.True(t, AveragePrice(items).Equal(decimal.NewFromInt(3)))
}

// Ranking de categorías por valor: descendente, empates por primera aparición,
// máximo cinco entradas.
func TestAnalytics_TopValueCategories(t *testing.T) {
	items := []*entity.Item{
		pricedItem("ITM1", "Bebidas", 1, 10, 5),
		pricedItem("ITM2", "Lácteos", 1, 30, 5),
		pricedItem("ITM3", "Panadería", 1, 10, 5), // empata con Bebidas
		pricedItem("ITM4", "Ferretería", 1, 50, 5),
		pricedItem("ITM5", "Limpieza", 1, 20, 5),
		pricedItem("ITM6", "Congelados", 1, 5, 5),
	}

	ranked := TopValueCategories(items)
	require.Len(t, ranked, 5, "el ranking se recorta a cinco categorías")
	assert.Equal(t, "Ferretería", ranked[0].Category)
	assert.Equal(t, "Lácteos", ranked[1].Category)
	assert.Equal(t, "Limpieza", ranked[2].Category)
	assert.Equal(t, "Bebidas", ranked[3].Category, "el empate lo gana la primera en aparecer")
	assert.Equal(t, "Panadería", ranked[4].Category)
}

// Cada artículo cae en exactamente un bucket del histograma.
func TestAnalytics_StockDistribution(t *testing.T) {
	items := []*entity.Item{
		pricedItem("ITM1", "A", 0, 1, 5),  // sin stock
		pricedItem("ITM2", "A", 3, 1, 5),  // bajo
		pricedItem("ITM3", "A", 5, 1, 5),  // bajo (en el umbral)
		pricedItem("ITM4", "A", 10, 1, 5), // normal
		pricedItem("ITM5", "A", 15, 1, 5), // normal (3×umbral es la frontera)
		pricedItem("ITM6", "A", 16, 1, 5), // sobre-stock
	}

	d := ComputeStockDistribution(items)
	assert.Equal(t, 1, d.OutOfStock)
	assert.Equal(t, 2, d.LowStock)
	assert.Equal(t, 2, d.Normal)
	assert.Equal(t, 1, d.OverStock)
	assert.Equal(t, len(items), d.OutOfStock+d.LowStock+d.Normal+d.OverStock,
		"los buckets deben ser exhaustivos")
}

func TestAnalytics_LowStockPercentage(t *testing.T) {
	assert.Zero(t, LowStockPercentage(nil))

	items := []*entity.Item{
		pricedItem("ITM1", "A", 0, 1, 5),
		pricedItem("ITM2", "A", 2, 1, 5),
		pricedItem("ITM3", "A", 10, 1, 5),
		pricedItem("ITM4", "A", 10, 1, 5),
	}
	assert.InDelta(t, 50.0, LowStockPercentage(items), 0.001)
}

// Sugerencia de compra = max(2×umbral, umbral − cantidad + 10), solo para
// artículos con stock bajo.
func TestAnalytics_PurchaseRecommendations(t *testing.T) {
	items := []*entity.Item{
		pricedItem("ITM1", "A", 2, 1, 5),  // 2×5=10 vs 5−2+10=13 → 13
		pricedItem("ITM2", "A", 4, 1, 20), // 2×20=40 vs 20−4+10=26 → 40
		pricedItem("ITM3", "A", 50, 1, 5), // stock adecuado, sin recomendación
	}

	recs := PurchaseRecommendations(items)
	require.Len(t, recs, 2)
	assert.Equal(t, "ITM1", recs[0].ItemID)
	assert.Equal(t, 13, recs[0].Suggested)
	assert.Equal(t, "ITM2", recs[1].ItemID)
	assert.Equal(t, 40, recs[1].Suggested)
}

func TestAnalytics_CategoryDistribution(t *testing.T) {
	items := []*entity.Item{
		pricedItem("ITM1", "A", 1, 1, 5),
		pricedItem("ITM2", "A", 1, 1, 5),
		pricedItem("ITM3", "B", 1, 1, 5),
	}

	dist := CategoryDistribution(items)
	assert.Equal(t, map[string]int{"A": 2, "B": 1}, dist)
}
