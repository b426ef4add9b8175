package entity

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item representa un artículo del inventario.
// ID y Barcode se asignan en la creación y son inmutables; Quantity, Price y
// el resto de campos se modifican reemplazando el registro completo.
// ExpiryDate nulo significa "no caduca".
type Item struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Description       string          `json:"description"`
	Quantity          int             `json:"quantity"`
	Price             decimal.Decimal `json:"price"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	ExpiryDate        *time.Time      `json:"expiry_date,omitempty"`
	Barcode           string          `json:"barcode"`
	DateAdded         time.Time       `json:"date_added"`
}

// NewItem construye un artículo con ID y código de barras generados.
func NewItem(name, category, description string, quantity int, price decimal.Decimal, lowStockThreshold int) *Item {
	return &Item{
		ID:                newItemID(),
		Name:              name,
		Category:          category,
		Description:       description,
		Quantity:          quantity,
		Price:             price,
		LowStockThreshold: lowStockThreshold,
		Barcode:           newBarcode(),
		DateAdded:         time.Now(),
	}
}

func newItemID() string {
	return "ITM" + strings.ToUpper(uuid.New().String()[:8])
}

func newBarcode() string {
	return fmt.Sprintf("BC%d%03d", time.Now().UnixMilli(), rand.Intn(1000))
}

// DaysUntilExpiry días calendario hasta la caducidad respecto a today.
// Sin fecha de caducidad devuelve (0, false).
func (i *Item) DaysUntilExpiry(today time.Time) (int, bool) {
	if i.ExpiryDate == nil {
		return 0, false
	}
	from := truncateToDate(today)
	to := truncateToDate(*i.ExpiryDate)
	return int(to.Sub(from).Hours() / 24), true
}

// IsExpiring true si caduca dentro de los próximos 7 días, estrictamente en el futuro.
// Un artículo que caduca hoy cuenta como caducado, no como "por caducar".
func (i *Item) IsExpiring(today time.Time) bool {
	days, ok := i.DaysUntilExpiry(today)
	return ok && days > 0 && days <= 7
}

// IsExpired true si la fecha de caducidad es hoy o anterior.
func (i *Item) IsExpired(today time.Time) bool {
	days, ok := i.DaysUntilExpiry(today)
	return ok && days <= 0
}

// IsLowStock true si la cantidad está en o por debajo del umbral configurado.
func (i *Item) IsLowStock() bool {
	return i.Quantity <= i.LowStockThreshold
}

// IsOutOfStock true si no queda ninguna unidad.
func (i *Item) IsOutOfStock() bool {
	return i.Quantity == 0
}

// ExpiryStatus etiqueta legible del estado de caducidad.
func (i *Item) ExpiryStatus(today time.Time) string {
	days, ok := i.DaysUntilExpiry(today)
	if !ok {
		return "No expiry date"
	}
	switch {
	case days < 0:
		return fmt.Sprintf("Expired %d days ago", -days)
	case days == 0:
		return "Expires today"
	default:
		return fmt.Sprintf("Expires in %d days", days)
	}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
