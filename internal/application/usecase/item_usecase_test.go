package usecase

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/sims-backend/internal/application/dto"
	"github.com/tu-usuario/sims-backend/internal/infrastructure/jsonfile"
)

func newTestItemUC(t *testing.T) *ItemUseCase {
	t.Helper()
	repo := jsonfile.NewItemRepository(filepath.Join(t.TempDir(), "items.json"))
	return NewItemUseCase(repo)
}

func createReq(name string) dto.CreateItemRequest {
	return dto.CreateItemRequest{
		Name:              name,
		Category:          "Alimentos",
		Description:       "descripción",
		Quantity:          10,
		Price:             decimal.NewFromFloat(2.50),
		LowStockThreshold: 5,
	}
}

// Create asigna identidad generada: ID con prefijo ITM y código de barras BC.
func TestItemUseCase_CreateGeneraIdentidad(t *testing.T) {
	uc := newTestItemUC(t)

	resp, err := uc.Create(createReq("Leche"))
	require.NoError(t, err)
	assert.Regexp(t, `^ITM[0-9A-F]{8}$`, resp.ID)
	assert.Regexp(t, `^BC\d+$`, resp.Barcode)
	assert.Equal(t, "Leche", resp.Name)
	assert.Equal(t, "No expiry date", resp.ExpiryStatus)
}

// La fecha de caducidad bien formada se aplica; la mal formada se ignora sin
// rechazar la operación.
func TestItemUseCase_CreateFechaDeCaducidad(t *testing.T) {
	uc := newTestItemUC(t)

	in := createReq("Yogur")
	in.ExpiryDate = "2026-04-01"
	resp, err := uc.Create(in)
	require.NoError(t, err)
	require.NotNil(t, resp.ExpiryDate)
	assert.Equal(t, "2026-04-01", resp.ExpiryDate.Format("2006-01-02"))

	bad := createReq("Queso")
	bad.ExpiryDate = "01/04/2026"
	resp, err = uc.Create(bad)
	require.NoError(t, err, "la fecha mal formada no rechaza la creación")
	assert.Nil(t, resp.ExpiryDate, "el campo queda sin caducidad")
}

// Update aplica solo los campos presentes; los ausentes conservan su valor.
func TestItemUseCase_UpdateParcial(t *testing.T) {
	uc := newTestItemUC(t)
	created, err := uc.Create(createReq("Pan"))
	require.NoError(t, err)

	qty := 3
	resp, err := uc.Update(created.ID, dto.UpdateItemRequest{Quantity: &qty})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 3, resp.Quantity)
	assert.Equal(t, "Pan", resp.Name, "los campos ausentes no cambian")
	assert.True(t, resp.Price.Equal(decimal.NewFromFloat(2.50)))
}

// ExpiryDate en Update: cadena vacía limpia la caducidad, mal formada conserva
// la previa.
func TestItemUseCase_UpdateFechaDeCaducidad(t *testing.T) {
	uc := newTestItemUC(t)
	in := createReq("Mantequilla")
	in.ExpiryDate = "2026-04-01"
	created, err := uc.Create(in)
	require.NoError(t, err)

	bad := "no-es-fecha"
	resp, err := uc.Update(created.ID, dto.UpdateItemRequest{ExpiryDate: &bad})
	require.NoError(t, err)
	require.NotNil(t, resp.ExpiryDate, "la fecha mal formada conserva la anterior")

	empty := ""
	resp, err = uc.Update(created.ID, dto.UpdateItemRequest{ExpiryDate: &empty})
	require.NoError(t, err)
	assert.Nil(t, resp.ExpiryDate, "la cadena vacía limpia la caducidad")
}

// Update sobre un ID inexistente devuelve (nil, nil), no error.
func TestItemUseCase_UpdateAusente(t *testing.T) {
	uc := newTestItemUC(t)
	name := "X"
	resp, err := uc.Update("ITM404", dto.UpdateItemRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestItemUseCase_CategorySummaryTotales(t *testing.T) {
	uc := newTestItemUC(t)
	_, err := uc.Create(createReq("A"))
	require.NoError(t, err)
	in := createReq("B")
	in.Category = "Bebidas"
	_, err = uc.Create(in)
	require.NoError(t, err)

	summary, err := uc.CategorySummary()
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Categories["Alimentos"])
	assert.Equal(t, 1, summary.Categories["Bebidas"])
}

// Un Update cuya escritura a disco falla no deja rastro en memoria: el
// artículo conserva sus valores previos al releerlo.
func TestItemUseCase_UpdateFallidoNoMutaEnMemoria(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.json")
	repo := jsonfile.NewItemRepository(path)
	uc := NewItemUseCase(repo)

	created, err := uc.Create(createReq("Harina"))
	require.NoError(t, err)
	require.Equal(t, 10, created.Quantity)

	// Un directorio en la ruta temporal del snapshot hace fallar la escritura
	require.NoError(t, os.Mkdir(path+".tmp", 0o755))

	qty := 99
	_, err = uc.Update(created.ID, dto.UpdateItemRequest{Quantity: &qty})
	require.Error(t, err, "la escritura bloqueada debe propagar el fallo")

	got, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 10, got.Quantity, "la mutación fallida no debe quedar en memoria")

	// Desbloqueada la escritura, el mismo update vuelve a funcionar
	require.NoError(t, os.Remove(path+".tmp"))
	resp, err := uc.Update(created.ID, dto.UpdateItemRequest{Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, 99, resp.Quantity)
}

// El estado de caducidad del DTO refleja la fecha respecto a hoy.
func TestItemUseCase_ExpiryStatusEnRespuesta(t *testing.T) {
	uc := newTestItemUC(t)
	in := createReq("Nata")
	in.ExpiryDate = time.Now().UTC().AddDate(0, 0, 4).Format("2006-01-02")
	resp, err := uc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, "Expires in 4 days", resp.ExpiryStatus)
}
