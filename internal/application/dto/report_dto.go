package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/sims-backend/internal/domain/inventory"
)

// AlertsResponse clasificación del snapshot en las cuatro alertas. Un mismo
// artículo puede aparecer en varias listas a la vez.
type AlertsResponse struct {
	LowStock   []ItemResponse `json:"low_stock"`
	OutOfStock []ItemResponse `json:"out_of_stock"`
	Expiring   []ItemResponse `json:"expiring"`
	Expired    []ItemResponse `json:"expired"`
}

// ReorderSuggestionResponse sugerencia de reposición para un artículo.
type ReorderSuggestionResponse struct {
	ItemID    string `json:"item_id"`
	Suggested int    `json:"suggested,omitempty"`
	Adequate  bool   `json:"adequate"`
	Message   string `json:"message"`
}

// AnalyticsResponse agregados del snapshot completo.
type AnalyticsResponse struct {
	TotalItems           int                          `json:"total_items"`
	TotalValue           decimal.Decimal              `json:"total_value"`
	AveragePrice         decimal.Decimal              `json:"average_price"`
	CategoryDistribution map[string]int               `json:"category_distribution"`
	TopValueCategories   []inventory.CategoryValue    `json:"top_value_categories"`
	StockDistribution    inventory.StockDistribution  `json:"stock_distribution"`
	LowStockPercentage   float64                      `json:"low_stock_percentage"`
}

// RecommendationsResponse sugerencias de compra para artículos con stock bajo.
type RecommendationsResponse struct {
	Recommendations []inventory.Recommendation `json:"recommendations"`
}
