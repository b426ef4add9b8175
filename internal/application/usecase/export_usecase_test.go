package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/sims-backend/internal/domain/entity"
	"github.com/tu-usuario/sims-backend/internal/infrastructure/export"
	"github.com/tu-usuario/sims-backend/internal/infrastructure/jsonfile"
)

// El export CSV entrega el contenido y archiva una copia con el mismo nombre
// en el directorio de exportaciones.
func TestExportUseCase_CSVArchivaCopia(t *testing.T) {
	dir := t.TempDir()
	repo := jsonfile.NewItemRepository(filepath.Join(dir, "items.json"))
	require.NoError(t, repo.Add(&entity.Item{
		ID: "ITM1", Name: "Leche", Category: "Lácteos", Quantity: 3,
		Price: decimal.NewFromFloat(1.25), LowStockThreshold: 5, Barcode: "BC1",
	}))

	exportDir := filepath.Join(dir, "exports")
	uc := NewExportUseCase(repo, export.NewPDFReportGenerator("SIMS Test"), exportDir)

	name, data, err := uc.CSV()
	require.NoError(t, err)
	assert.Regexp(t, `^inventory_\d{8}_\d{6}\.csv$`, name)
	assert.Contains(t, string(data), "Leche")

	archived, err := os.ReadFile(filepath.Join(exportDir, name))
	require.NoError(t, err)
	assert.Equal(t, data, archived, "la copia archivada es idéntica a la descarga")
}

// Sin directorio configurado no se archiva nada y el export sigue funcionando.
func TestExportUseCase_SinDirectorioDeExportaciones(t *testing.T) {
	dir := t.TempDir()
	repo := jsonfile.NewItemRepository(filepath.Join(dir, "items.json"))
	uc := NewExportUseCase(repo, export.NewPDFReportGenerator("SIMS Test"), "")

	name, data, err := uc.CSV()
	require.NoError(t, err)
	assert.NotEmpty(t, name)
	assert.NotEmpty(t, data)
}
