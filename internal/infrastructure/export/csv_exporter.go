// Package export genera representaciones externas del inventario: CSV y el
// reporte PDF. Consume snapshots de solo lectura; nunca muta ni persiste.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/tu-usuario/sims-backend/internal/domain/entity"
)

// csvHeader columnas del export, en el orden del reporte clásico.
var csvHeader = []string{
	"ID", "Name", "Category", "Quantity", "Price",
	"Description", "LowStockThreshold", "Barcode", "ExpiryDate",
}

// WriteCSV serializa el snapshot como CSV sobre el writer. La fecha de
// caducidad ausente se emite como cadena vacía.
func WriteCSV(w io.Writer, items []*entity.Item) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("csv: escribir cabecera: %w", err)
	}
	for _, it := range items {
		expiry := ""
		if it.ExpiryDate != nil {
			expiry = it.ExpiryDate.Format("2006-01-02")
		}
		record := []string{
			it.ID,
			it.Name,
			it.Category,
			strconv.Itoa(it.Quantity),
			it.Price.StringFixed(2),
			it.Description,
			strconv.Itoa(it.LowStockThreshold),
			it.Barcode,
			expiry,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("csv: escribir fila %s: %w", it.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv: volcar salida: %w", err)
	}
	return nil
}
