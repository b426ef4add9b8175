package notify

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/sims-backend/internal/domain/entity"
)

func fixedCenter(ts time.Time) *Center {
	c := NewCenter()
	c.now = func() time.Time { return ts }
	return c
}

func TestCenter_RecentOrdenCronologico(t *testing.T) {
	c := fixedCenter(time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC))
	c.Add(LevelInfo, "primera")
	c.Add(LevelWarning, "segunda")
	c.Add(LevelCritical, "tercera")

	recent := c.Recent(2)
	require.Len(t, recent, 2)
	assert.Contains(t, recent[0], "segunda")
	assert.Contains(t, recent[1], "tercera", "la última posición es la más reciente")

	all := c.Recent(100)
	assert.Len(t, all, 3, "pedir más de lo que hay devuelve todo")
}

// La ventana está acotada a 50: la entrada 51 expulsa a la más antigua.
func TestCenter_VentanaDescartaLaMasAntigua(t *testing.T) {
	c := fixedCenter(time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC))
	for i := 1; i <= 55; i++ {
		c.Add(LevelInfo, fmt.Sprintf("aviso %d", i))
	}

	recent := c.Recent(100)
	require.Len(t, recent, 50)
	assert.Contains(t, recent[0], "aviso 6", "las cinco primeras quedan expulsadas")
	assert.Contains(t, recent[49], "aviso 55")
}

// GenerateDaily reemplaza las notificaciones fechadas hoy y reclasifica el
// snapshot: CRITICAL para sin stock/caducado, WARNING para bajo/por caducar.
func TestCenter_GenerateDaily(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	c := fixedCenter(now)
	c.Add(LevelInfo, "generada hoy, debe desaparecer")

	soon := now.AddDate(0, 0, 3)
	items := []*entity.Item{
		{ID: "ITM1", Name: "Leche", Quantity: 0, Price: decimal.NewFromInt(1), LowStockThreshold: 5},
		{ID: "ITM2", Name: "Pan", Quantity: 2, Price: decimal.NewFromInt(1), LowStockThreshold: 5, ExpiryDate: &soon},
		{ID: "ITM3", Name: "Sal", Quantity: 50, Price: decimal.NewFromInt(1), LowStockThreshold: 5},
	}

	c.GenerateDaily(items)

	lines := c.Recent(100)
	require.Len(t, lines, 3, "la entrada previa de hoy se regenera, Sal no produce avisos")
	assert.Contains(t, lines[0], "CRITICAL")
	assert.Contains(t, lines[0], "Leche is out of stock")
	assert.Contains(t, lines[1], "WARNING")
	assert.Contains(t, lines[1], "Pan is running low (Qty: 2)")
	assert.Contains(t, lines[2], "Pan expires soon")
}

// Solo se descartan las entradas cuyo timestamp es de hoy: una notificación
// antigua que menciona la fecha de hoy en su texto debe sobrevivir.
func TestCenter_GenerateDailyConservaMencionesDeFecha(t *testing.T) {
	yesterday := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)
	today := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	c := fixedCenter(yesterday)
	c.Add(LevelInfo, "mantenimiento programado para 2026-03-15")

	c.now = func() time.Time { return today }
	c.GenerateDaily(nil)

	lines := c.Recent(100)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "mantenimiento programado",
		"la fecha dentro del mensaje no debe descartarla")
}

// GenerateDaily es idempotente sobre el mismo snapshot y el mismo día.
func TestCenter_GenerateDailyIdempotente(t *testing.T) {
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	c := fixedCenter(now)
	items := []*entity.Item{
		{ID: "ITM1", Name: "Leche", Quantity: 0, Price: decimal.NewFromInt(1), LowStockThreshold: 5},
	}

	c.GenerateDaily(items)
	c.GenerateDaily(items)

	assert.Len(t, c.Recent(100), 1, "regenerar el mismo día no duplica avisos")
}
