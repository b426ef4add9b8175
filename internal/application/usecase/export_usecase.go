package usecase

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/sims-backend/internal/domain/repository"
	"github.com/tu-usuario/sims-backend/internal/infrastructure/export"
)

// ExportUseCase exportaciones del inventario (CSV y reporte PDF). Consume el
// snapshot de All(); nunca muta el store. Cada export se entrega al llamador
// y se archiva además una copia en el directorio de exportaciones.
type ExportUseCase struct {
	repo      repository.ItemRepository
	pdf       *export.PDFReportGenerator
	exportDir string
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(repo repository.ItemRepository, pdf *export.PDFReportGenerator, exportDir string) *ExportUseCase {
	return &ExportUseCase{repo: repo, pdf: pdf, exportDir: exportDir}
}

// CSV genera el inventario completo como CSV. Devuelve el nombre de archivo
// con marca de tiempo y el contenido.
func (uc *ExportUseCase) CSV() (string, []byte, error) {
	items, err := uc.repo.All()
	if err != nil {
		return "", nil, err
	}
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, items); err != nil {
		return "", nil, err
	}
	name := "inventory_" + time.Now().Format("20060102_150405") + ".csv"
	uc.archive(name, buf.Bytes())
	return name, buf.Bytes(), nil
}

// PDF genera el reporte PDF del inventario. Devuelve el nombre de archivo con
// marca de tiempo y el contenido.
func (uc *ExportUseCase) PDF() (string, []byte, error) {
	items, err := uc.repo.All()
	if err != nil {
		return "", nil, err
	}
	data, err := uc.pdf.GenerateInventoryPDF(items, time.Now())
	if err != nil {
		return "", nil, err
	}
	name := "inventory_" + time.Now().Format("20060102_150405") + ".pdf"
	uc.archive(name, data)
	return name, data, nil
}

// archive guarda la copia local del export. Best-effort: un fallo de disco no
// impide la descarga.
func (uc *ExportUseCase) archive(name string, data []byte) {
	if uc.exportDir == "" {
		return
	}
	if err := os.MkdirAll(uc.exportDir, 0o755); err != nil {
		log.Warn().Err(err).Msg("no se pudo crear el directorio de exportaciones")
		return
	}
	if err := os.WriteFile(filepath.Join(uc.exportDir, name), data, 0o644); err != nil {
		log.Warn().Err(err).Str("file", name).Msg("no se pudo archivar el export")
	}
}
