// Package pdf genera la rappresentazione stampabile del report IVA/OSS, una
// riga per paese di destinazione con imponibile, aliquota e imposta dovuta.
package pdf

import (
	"fmt"

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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/application/dto"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/application/usecase"
)

var _ usecase.OSSReportRenderer = (*OSSReportRenderer)(nil)

var (
	colorPrimary = &props.Color{Red: 20, Green: 40, Blue: 80}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// OSSReportRenderer genera il PDF del report OSS con Maroto v2.
type OSSReportRenderer struct {
	printer *message.Printer
}

// NewOSSReportRenderer costruisce il renderer con formattazione numerica
// italiana (punto per le migliaia, virgola per i decimali).
func NewOSSReportRenderer() *OSSReportRenderer {
	return &OSSReportRenderer{printer: message.NewPrinter(language.Italian)}
}

// Render genera il PDF e ne restituisce i byte.
func (g *OSSReportRenderer) Render(report dto.OSSReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Report IVA OSS", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, country := range report.Countries {
		m.AddRows(g.countryRow(country))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generazione documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: titolo e periodo coperto.
func (g *OSSReportRenderer) headerRow(report dto.OSSReportDTO) core.Row {
	period := fmt.Sprintf("Periodo: %s - %s",
		report.PeriodStart.Format("02/01/2006"),
		report.PeriodEnd.Format("02/01/2006"),
	)
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Report IVA OSS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Vendite a distanza intra-UE", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(period, props.Text{
				Size: 9, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(alignment align.Type) props.Text {
		return props.Text{Style: fontstyle.Bold, Size: 8, Align: alignment, Color: colorPrimary}
	}
	return row.New(7).Add(
		col.New(2).Add(text.New("Paese", header(align.Left))),
		col.New(2).Add(text.New("Vendite", header(align.Right))),
		col.New(2).Add(text.New("Resi", header(align.Right))),
		col.New(2).Add(text.New("Imponibile", header(align.Right))),
		col.New(2).Add(text.New("Aliquota", header(align.Right))),
		col.New(2).Add(text.New("IVA dovuta", header(align.Right))),
	)
}

func (g *OSSReportRenderer) countryRow(c dto.CountryVATDTO) core.Row {
	left := props.Text{Size: 8, Align: align.Left}
	right := props.Text{Size: 8, Align: align.Right}
	rate := fmt.Sprintf("%s%%", c.VATRate.String())
	return row.New(6).Add(
		col.New(2).Add(text.New(c.Country, left)),
		col.New(2).Add(text.New(g.amount(c.SalesAmount), right)),
		col.New(2).Add(text.New(g.amount(c.ReturnsAmount), right)),
		col.New(2).Add(text.New(g.amount(c.BaseAmount), right)),
		col.New(2).Add(text.New(rate, right)),
		col.New(2).Add(text.New(g.amount(c.VATAmount), right)),
	)
}

func (g *OSSReportRenderer) totalsRow(report dto.OSSReportDTO) core.Row {
	bold := props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary}
	return row.New(8).Add(
		col.New(6).Add(text.New("Totale", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary})),
		col.New(3).Add(text.New("Imponibile: "+g.amount(report.TotalBase), bold)),
		col.New(3).Add(text.New("IVA: "+g.amount(report.TotalVAT), bold)),
	)
}

// amount formatta un importo in euro con le convenzioni italiane.
func (g *OSSReportRenderer) amount(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return g.printer.Sprintf("€ %.2f", f)
}
