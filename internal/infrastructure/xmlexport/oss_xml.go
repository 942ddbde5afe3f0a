// Package xmlexport serializza il report IVA/OSS in XML per l'inoltro al
// commercialista.
package xmlexport

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/application/dto"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/application/usecase"
)

var _ usecase.OSSReportRenderer = (*OSSXMLRenderer)(nil)

const dateLayout = "2006-01-02"

// OSSXMLRenderer genera il documento XML del report OSS con etree.
type OSSXMLRenderer struct{}

// NewOSSXMLRenderer costruisce il renderer.
func NewOSSXMLRenderer() *OSSXMLRenderer {
	return &OSSXMLRenderer{}
}

// Render genera il documento e ne restituisce i byte indentati.
func (g *OSSXMLRenderer) Render(report dto.OSSReportDTO) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("ReportOSS")
	root.CreateAttr("valuta", "EUR")

	period := root.CreateElement("Periodo")
	period.CreateElement("Inizio").SetText(report.PeriodStart.Format(dateLayout))
	period.CreateElement("Fine").SetText(report.PeriodEnd.Format(dateLayout))

	countries := root.CreateElement("Paesi")
	for _, c := range report.Countries {
		el := countries.CreateElement("Paese")
		el.CreateAttr("codice", c.Country)
		el.CreateElement("Vendite").SetText(c.SalesAmount.StringFixed(2))
		el.CreateElement("Resi").SetText(c.ReturnsAmount.StringFixed(2))
		el.CreateElement("Imponibile").SetText(c.BaseAmount.StringFixed(2))
		el.CreateElement("Aliquota").SetText(c.VATRate.String())
		el.CreateElement("Imposta").SetText(c.VATAmount.StringFixed(2))
		el.CreateElement("NumeroVendite").SetText(fmt.Sprint(c.SalesCount))
		el.CreateElement("NumeroResi").SetText(fmt.Sprint(c.ReturnsCount))
	}

	totals := root.CreateElement("Totali")
	totals.CreateElement("Imponibile").SetText(report.TotalBase.StringFixed(2))
	totals.CreateElement("Imposta").SetText(report.TotalVAT.StringFixed(2))

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializzazione report: %w", err)
	}
	return out, nil
}
