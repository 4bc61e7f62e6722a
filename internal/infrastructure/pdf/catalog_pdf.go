// Package pdf genera la lista de precios imprimible de una tienda.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda + slug  │  Fecha de emisión    │
//	│  CONTACTO: WhatsApp / Email                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Categoría | Stock | Precio                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR a la tienda pública + total de productos         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/cjstore-api/internal/application/ports"
	"github.com/jhoicas/cjstore-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 37, Green: 99, Blue: 235}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 220, Green: 38, Blue: 38}
)

var _ ports.CatalogPDFRenderer = (*CatalogPDFGenerator)(nil)

// CatalogPDFGenerator implementa ports.CatalogPDFRenderer con Maroto v2.
type CatalogPDFGenerator struct {
	baseURL string
	now     func() time.Time
}

// NewCatalogPDFGenerator construye el generador. baseURL se usa para el QR de la tienda.
func NewCatalogPDFGenerator(baseURL string) *CatalogPDFGenerator {
	return &CatalogPDFGenerator{baseURL: strings.TrimRight(baseURL, "/"), now: time.Now}
}

// Render genera el PDF y devuelve sus bytes. products llega ya filtrado y ordenado.
func (g *CatalogPDFGenerator) Render(store *entity.Store, products []*entity.Product) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Lista de precios - "+store.Name, true).
		WithAuthor(nonEmpty(store.OwnerName, store.Name), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(store, g.now()))
	m.AddRows(contactRow(store))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(products) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Esta tienda aún no tiene productos activos.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	m.AddRows(productRows(products)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(g.storeURL(store), len(products)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *CatalogPDFGenerator) storeURL(store *entity.Store) string {
	return g.baseURL + "/store/" + store.Slug
}

func headerRow(store *entity.Store, issued time.Time) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(store.Name, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("/"+store.Slug, props.Text{Size: 9, Top: 10, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("LISTA DE PRECIOS", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+issued.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func contactRow(store *entity.Store) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("WhatsApp: +%s   |   Email: %s",
				nonEmpty(store.WhatsApp, "-"),
				nonEmpty(store.Email, "-"),
			), props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 6, align.Left),
		h("Categoría", 3, align.Left),
		h("Stock", 1, align.Center),
		h("Precio", 2, align.Right),
	)
}

// productRows una fila por producto. Sin stock se marca en rojo.
func productRows(products []*entity.Product) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		stock := props.Text{Size: 8, Align: align.Center, Top: 1}
		stockLabel := fmt.Sprintf("%d", p.Stock)
		if p.Stock == 0 {
			stock.Color = colorRed
			stockLabel = "Agotado"
		}
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(p.Category, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
			col.New(1).Add(text.New(stockLabel, stock)),
			col.New(2).Add(text.New("Rs. "+formatMoney(p.Price.StringFixed(2)), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

func footerRow(storeURL string, count int) core.Row {
	return row.New(34).Add(
		col.New(3).Add(code.NewQr(storeURL, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Escanea el código para ver la tienda y pedir por WhatsApp.", props.Text{
				Size: 8, Top: 6, Left: 3, Color: colorGray,
			}),
			text.New(storeURL, props.Text{Size: 8, Top: 12, Left: 3, Color: colorPrimary}),
			text.New(fmt.Sprintf("%d productos", count), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 20, Left: 3,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney separa miles con coma en la parte entera: "25000.50" -> "25,000.50".
func formatMoney(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3+len(frac)+2)
	if neg {
		buf = append(buf, '-')
	}
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	if hasFrac {
		buf = append(buf, '.')
		buf = append(buf, frac...)
	}
	return string(buf)
}
