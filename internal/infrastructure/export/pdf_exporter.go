package export

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/sims-backend/internal/domain/entity"
	"github.com/tu-usuario/sims-backend/internal/domain/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// PDFReportGenerator genera el reporte PDF del inventario usando Maroto v2.
type PDFReportGenerator struct {
	AppName string
}

// NewPDFReportGenerator construye el generador.
func NewPDFReportGenerator(appName string) *PDFReportGenerator {
	return &PDFReportGenerator{AppName: appName}
}

// GenerateInventoryPDF genera el reporte y devuelve sus bytes: cabecera con
// totales agregados y una tabla con un renglón por artículo.
func (g *PDFReportGenerator) GenerateInventoryPDF(items []*entity.Item, now time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Inventory Report", true).
		WithAuthor(g.AppName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.AppName, now))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(items))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(items, now) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(appName string, now time.Time) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Inventory Report", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generated: "+now.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
		),
	)
}

func summaryRow(items []*entity.Item) core.Row {
	total := inventory.TotalValue(items)
	dist := inventory.ComputeStockDistribution(items)
	return row.New(12).Add(
		col.New(12).Add(
			text.New("SUMMARY", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Items: %d   |   Total value: $%s   |   Out of stock: %d   |   Low stock: %d",
				len(items), total.StringFixed(2), dist.OutOfStock, dist.LowStock,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Name", 3, align.Left),
		h("Category", 2, align.Left),
		h("Qty", 1, align.Center),
		h("Price", 2, align.Right),
		h("Value", 2, align.Right),
		h("Expiry", 2, align.Center),
	)
}

func tableItemRows(items []*entity.Item, now time.Time) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		expiry := "—"
		if it.ExpiryDate != nil {
			expiry = it.ExpiryDate.Format("2006-01-02")
		}
		value := it.Price.Mul(decimalFromInt(it.Quantity))
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(it.Name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(it.Category, props.Text{Size: 8, Align: align.Left, Top: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", it.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New("$"+it.Price.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New("$"+value.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(expiry, props.Text{Size: 8, Align: align.Center, Top: 1})),
		))
	}
	return result
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
