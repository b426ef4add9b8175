package usecase

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/sims-backend/internal/application/dto"
	"github.com/tu-usuario/sims-backend/internal/domain/entity"
	"github.com/tu-usuario/sims-backend/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD y consultas sobre el inventario.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create crea un artículo con ID y código de barras generados y lo persiste.
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	item := entity.NewItem(in.Name, in.Category, in.Description, in.Quantity, in.Price, in.LowStockThreshold)
	if in.ExpiryDate != "" {
		if d, err := time.Parse("2006-01-02", in.ExpiryDate); err == nil {
			item.ExpiryDate = &d
		} else {
			// Fecha mal formada: el campo queda en su valor por defecto (sin caducidad)
			log.Warn().Str("expiry_date", in.ExpiryDate).Msg("fecha de caducidad inválida, se ignora")
		}
	}
	if err := uc.repo.Add(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un artículo por ID; (nil, nil) si no existe.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil || item == nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByBarcode obtiene un artículo por código de barras; (nil, nil) si no existe.
func (uc *ItemUseCase) GetByBarcode(barcode string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByBarcode(barcode)
	if err != nil || item == nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Update aplica los campos presentes y reemplaza el registro completo.
// Devuelve (nil, nil) si el ID no existe.
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	current, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}
	// Copia antes de mutar: el puntero del store no se toca hasta que el
	// Update persista, así un fallo de escritura no deja estado a medias
	clone := *current
	item := &clone
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if in.LowStockThreshold != nil {
		item.LowStockThreshold = *in.LowStockThreshold
	}
	if in.ExpiryDate != nil {
		switch {
		case *in.ExpiryDate == "":
			item.ExpiryDate = nil
		default:
			if d, err := time.Parse("2006-01-02", *in.ExpiryDate); err == nil {
				item.ExpiryDate = &d
			} else {
				// Fecha mal formada: se conserva el valor previo
				log.Warn().Str("expiry_date", *in.ExpiryDate).Msg("fecha de caducidad inválida, se conserva la anterior")
			}
		}
	}
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina un artículo por ID.
func (uc *ItemUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// List devuelve el snapshot completo.
func (uc *ItemUseCase) List() (*dto.ItemListResponse, error) {
	items, err := uc.repo.All()
	if err != nil {
		return nil, err
	}
	return toItemList(items), nil
}

// Search subcadena case-insensitive en nombre o descripción.
func (uc *ItemUseCase) Search(term string) (*dto.ItemListResponse, error) {
	items, err := uc.repo.Search(term)
	if err != nil {
		return nil, err
	}
	return toItemList(items), nil
}

// ByCategory coincidencia exacta de categoría, sin distinguir mayúsculas.
func (uc *ItemUseCase) ByCategory(category string) (*dto.ItemListResponse, error) {
	items, err := uc.repo.ByCategory(category)
	if err != nil {
		return nil, err
	}
	return toItemList(items), nil
}

// Categories valores distintos de categoría.
func (uc *ItemUseCase) Categories() ([]string, error) {
	return uc.repo.Categories()
}

// CategorySummary número de artículos por categoría.
func (uc *ItemUseCase) CategorySummary() (*dto.CategorySummaryResponse, error) {
	summary, err := uc.repo.CategorySummary()
	if err != nil {
		return nil, err
	}
	total := 0
	for _, n := range summary {
		total += n
	}
	return &dto.CategorySummaryResponse{Categories: summary, Total: total}, nil
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:                i.ID,
		Name:              i.Name,
		Category:          i.Category,
		Description:       i.Description,
		Quantity:          i.Quantity,
		Price:             i.Price,
		LowStockThreshold: i.LowStockThreshold,
		ExpiryDate:        i.ExpiryDate,
		ExpiryStatus:      i.ExpiryStatus(time.Now()),
		Barcode:           i.Barcode,
		DateAdded:         i.DateAdded,
	}
}

func toItemList(items []*entity.Item) *dto.ItemListResponse {
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return &dto.ItemListResponse{Items: out, Total: len(out)}
}
