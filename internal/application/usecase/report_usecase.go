package usecase

import (
	"fmt"
	"time"

	"github.com/tu-usuario/sims-backend/internal/application/dto"
	"github.com/tu-usuario/sims-backend/internal/domain"
	"github.com/tu-usuario/sims-backend/internal/domain/entity"
	"github.com/tu-usuario/sims-backend/internal/domain/inventory"
	"github.com/tu-usuario/sims-backend/internal/domain/repository"
)

// ReportUseCase reportes derivados del snapshot de inventario. Solo lectura:
// toma el snapshot una vez y delega en los servicios puros de dominio.
type ReportUseCase struct {
	repo repository.ItemRepository
	now  func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ItemRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo, now: time.Now}
}

// Alerts clasifica el snapshot en las cuatro alertas operativas.
func (uc *ReportUseCase) Alerts() (*dto.AlertsResponse, error) {
	items, err := uc.repo.All()
	if err != nil {
		return nil, err
	}
	today := uc.now()
	return &dto.AlertsResponse{
		LowStock:   toItems(inventory.LowStockItems(items)),
		OutOfStock: toItems(inventory.OutOfStockItems(items)),
		Expiring:   toItems(inventory.ExpiringItems(items, today)),
		Expired:    toItems(inventory.ExpiredItems(items, today)),
	}, nil
}

// Reorder sugerencia de reposición para un artículo concreto.
func (uc *ReportUseCase) Reorder(itemID string) (*dto.ReorderSuggestionResponse, error) {
	item, err := uc.repo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if suggested, ok := inventory.ReorderSuggestion(item); ok {
		return &dto.ReorderSuggestionResponse{
			ItemID:    item.ID,
			Suggested: suggested,
			Message:   fmt.Sprintf("Suggested reorder quantity: %d", suggested),
		}, nil
	}
	return &dto.ReorderSuggestionResponse{
		ItemID:   item.ID,
		Adequate: true,
		Message:  "Stock level is adequate",
	}, nil
}

// Analytics agregados completos del inventario, recalculados en cada llamada.
func (uc *ReportUseCase) Analytics() (*dto.AnalyticsResponse, error) {
	items, err := uc.repo.All()
	if err != nil {
		return nil, err
	}
	return &dto.AnalyticsResponse{
		TotalItems:           len(items),
		TotalValue:           inventory.TotalValue(items),
		AveragePrice:         inventory.AveragePrice(items),
		CategoryDistribution: inventory.CategoryDistribution(items),
		TopValueCategories:   inventory.TopValueCategories(items),
		StockDistribution:    inventory.ComputeStockDistribution(items),
		LowStockPercentage:   inventory.LowStockPercentage(items),
	}, nil
}

// Recommendations sugerencias de compra para todos los artículos con stock bajo.
func (uc *ReportUseCase) Recommendations() (*dto.RecommendationsResponse, error) {
	items, err := uc.repo.All()
	if err != nil {
		return nil, err
	}
	return &dto.RecommendationsResponse{
		Recommendations: inventory.PurchaseRecommendations(items),
	}, nil
}

func toItems(items []*entity.Item) []dto.ItemResponse {
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return out
}
