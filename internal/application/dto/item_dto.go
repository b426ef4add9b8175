package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest datos para crear un artículo. ExpiryDate es opcional, en
// formato YYYY-MM-DD; una fecha mal formada se descarta y el artículo queda
// sin caducidad (decisión local y recuperable, nunca fatal).
type CreateItemRequest struct {
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Description       string          `json:"description"`
	Quantity          int             `json:"quantity"`
	Price             decimal.Decimal `json:"price"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	ExpiryDate        string          `json:"expiry_date,omitempty"`
}

// UpdateItemRequest campos modificables; nil significa "sin cambio".
type UpdateItemRequest struct {
	Name              *string          `json:"name"`
	Category          *string          `json:"category"`
	Description       *string          `json:"description"`
	Quantity          *int             `json:"quantity"`
	Price             *decimal.Decimal `json:"price"`
	LowStockThreshold *int             `json:"low_stock_threshold"`
	ExpiryDate        *string          `json:"expiry_date"`
}

// ItemResponse representación de salida de un artículo.
type ItemResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Description       string          `json:"description"`
	Quantity          int             `json:"quantity"`
	Price             decimal.Decimal `json:"price"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	ExpiryDate        *time.Time      `json:"expiry_date,omitempty"`
	ExpiryStatus      string          `json:"expiry_status"`
	Barcode           string          `json:"barcode"`
	DateAdded         time.Time       `json:"date_added"`
}

// ItemListResponse listado de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}

// CategorySummaryResponse número de artículos por categoría; los conteos suman
// el total de la colección.
type CategorySummaryResponse struct {
	Categories map[string]int `json:"categories"`
	Total      int            `json:"total"`
}
