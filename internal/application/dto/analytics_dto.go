package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/analytics"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
)

// MarginNotAvailable etichetta per il margine non calcolabile. Mai zero.
const MarginNotAvailable = "N/D"

// DashboardDTO le metriche aggregate servite al dashboard.
type DashboardDTO struct {
	TotalSales        decimal.Decimal            `json:"totalSales"`
	TotalReturns      decimal.Decimal            `json:"totalReturns"`
	ReturnRate        decimal.Decimal            `json:"returnRate"`
	Margin            *decimal.Decimal           `json:"margin"` // null quando non calcolabile
	MarginLabel       string                     `json:"marginLabel,omitempty"`
	SalesByChannel    map[string]decimal.Decimal `json:"salesByChannel"`
	SalesByBrand      map[string]decimal.Decimal `json:"salesByBrand"`
	SalesByCategory   map[string]decimal.Decimal `json:"salesByCategory"`
	Marketplaces      []MarketplaceDetailDTO     `json:"marketplaces"`
	MarketplaceTotals MarketplaceDetailDTO       `json:"marketplaceTotals"`
	YoY               YoYChangeDTO               `json:"yoy"`
}

// MarketplaceDetailDTO dettaglio di un marketplace al netto dei costi di canale.
type MarketplaceDetailDTO struct {
	Name                  string          `json:"name"`
	GrossSales            decimal.Decimal `json:"grossSales"`
	OrderCount            int             `json:"orderCount"`
	ReturnOrderCount      int             `json:"returnOrderCount"`
	AvgOrderValue         decimal.Decimal `json:"avgOrderValue"`
	TotalCommission       decimal.Decimal `json:"totalCommission"`
	TotalFixedCost        decimal.Decimal `json:"totalFixedCost"`
	TotalReturnCost       decimal.Decimal `json:"totalReturnCost"`
	NetFromChannel        decimal.Decimal `json:"netFromChannel"`
	NetFromChannelPercent decimal.Decimal `json:"netFromChannelPercent"`
}

// YoYChangeDTO variazione anno su anno.
type YoYChangeDTO struct {
	Change decimal.Decimal `json:"change"`
	Type   string          `json:"changeType"`
}

// TransactionDetailDTO riga della lista transazioni di un drill-down.
type TransactionDetailDTO struct {
	Type            string          `json:"type"`
	DocumentType    string          `json:"documentType"`
	DocumentNumber  string          `json:"documentNumber,omitempty"`
	Date            time.Time       `json:"date"`
	Amount          decimal.Decimal `json:"amount"`
	Channel         string          `json:"channel"`
	ChannelSpecific string          `json:"channelSpecific,omitempty"`
	Country         string          `json:"country"`
	Brand           string          `json:"brand,omitempty"`
	OrderReference  string          `json:"orderReference,omitempty"`
}

// BucketDTO un gruppo di drill-down.
type BucketDTO struct {
	Key              string                 `json:"key"`
	SalesAmount      decimal.Decimal        `json:"salesAmount"`
	ReturnsAmount    decimal.Decimal        `json:"returnsAmount"`
	NetAmount        decimal.Decimal        `json:"netAmount"`
	SalesCount       int                    `json:"salesCount"`
	ReturnsCount     int                    `json:"returnsCount"`
	TransactionCount int                    `json:"transactionCount"`
	Transactions     []TransactionDetailDTO `json:"transactions"`
}

// BrandAnalyticsDTO metriche di un singolo brand.
type BrandAnalyticsDTO struct {
	Brand            string          `json:"brand"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	TransactionCount int             `json:"transactionCount"`
	ByCountry        []BrandShareDTO `json:"byCountry"`
	ByMacroChannel   []BrandShareDTO `json:"byMacroChannel"`
	ByChannel        []BrandShareDTO `json:"byChannel"`
}

// BrandShareDTO una quota percentuale della ripartizione del brand.
type BrandShareDTO struct {
	Key     string          `json:"key"`
	Amount  decimal.Decimal `json:"amount"`
	Percent decimal.Decimal `json:"percent"`
}

// CountryVATDTO riga del report OSS per paese.
type CountryVATDTO struct {
	Country       string          `json:"country"`
	SalesAmount   decimal.Decimal `json:"salesAmount"`
	ReturnsAmount decimal.Decimal `json:"returnsAmount"`
	BaseAmount    decimal.Decimal `json:"baseAmount"`
	VATRate       decimal.Decimal `json:"vatRate"`
	VATAmount     decimal.Decimal `json:"vatAmount"`
	SalesCount    int             `json:"salesCount"`
	ReturnsCount  int             `json:"returnsCount"`
}

// OSSReportDTO report OSS completo di un periodo.
type OSSReportDTO struct {
	PeriodStart time.Time       `json:"periodStart"`
	PeriodEnd   time.Time       `json:"periodEnd"`
	Countries   []CountryVATDTO `json:"countries"`
	TotalBase   decimal.Decimal `json:"totalBase"`
	TotalVAT    decimal.Decimal `json:"totalVat"`
}

// FromMetrics mappa le metriche di dominio nel DTO del dashboard.
func FromMetrics(m analytics.DashboardMetrics, yoy analytics.YoYChange) DashboardDTO {
	out := DashboardDTO{
		TotalSales:        m.TotalSales.Round(2),
		TotalReturns:      m.TotalReturns.Round(2),
		ReturnRate:        m.ReturnRate,
		Margin:            m.Margin,
		SalesByChannel:    make(map[string]decimal.Decimal, len(m.SalesByChannel)),
		SalesByBrand:      make(map[string]decimal.Decimal, len(m.SalesByBrand)),
		SalesByCategory:   m.SalesByCategory,
		Marketplaces:      make([]MarketplaceDetailDTO, 0, len(m.Marketplaces)),
		MarketplaceTotals: fromMarketplaceDetail(m.MarketplaceTotals),
		YoY:               YoYChangeDTO{Change: yoy.Change, Type: string(yoy.Type)},
	}
	if m.Margin == nil {
		out.MarginLabel = MarginNotAvailable
	}
	for ch, v := range m.SalesByChannel {
		out.SalesByChannel[string(ch)] = v
	}
	for brand, v := range m.SalesByBrand {
		out.SalesByBrand[DisplayBrand(brand)] = v
	}
	for _, d := range m.Marketplaces {
		out.Marketplaces = append(out.Marketplaces, fromMarketplaceDetail(d))
	}
	return out
}

func fromMarketplaceDetail(d analytics.MarketplaceDetail) MarketplaceDetailDTO {
	return MarketplaceDetailDTO{
		Name:                  d.Name,
		GrossSales:            d.GrossSales,
		OrderCount:            d.OrderCount,
		ReturnOrderCount:      d.ReturnOrderCount,
		AvgOrderValue:         d.AvgOrderValue,
		TotalCommission:       d.TotalCommission,
		TotalFixedCost:        d.TotalFixedCost,
		TotalReturnCost:       d.TotalReturnCost,
		NetFromChannel:        d.NetFromChannel,
		NetFromChannelPercent: d.NetFromChannelPercent,
	}
}

// FromBuckets mappa i bucket di dominio nel DTO, applicando l'etichetta di
// presentazione ai brand vuoti.
func FromBuckets(buckets []analytics.Bucket) []BucketDTO {
	out := make([]BucketDTO, 0, len(buckets))
	for _, b := range buckets {
		dtoB := BucketDTO{
			Key:              b.Key,
			SalesAmount:      b.SalesAmount.Round(2),
			ReturnsAmount:    b.ReturnsAmount.Round(2),
			NetAmount:        b.NetAmount.Round(2),
			SalesCount:       b.SalesCount,
			ReturnsCount:     b.ReturnsCount,
			TransactionCount: b.TransactionCount,
			Transactions:     make([]TransactionDetailDTO, 0, len(b.Transactions)),
		}
		for _, tx := range b.Transactions {
			d := TransactionDetailDTO{
				Type:            string(tx.Type),
				DocumentType:    tx.DocumentType,
				DocumentNumber:  tx.DocumentNumber,
				Date:            tx.Date,
				Amount:          tx.Amount,
				Channel:         tx.Channel,
				ChannelSpecific: tx.ChannelSpecific,
				Country:         tx.Country,
				OrderReference:  tx.OrderReference,
			}
			if tx.Type == analytics.TransactionSale {
				d.Brand = DisplayBrand(tx.Brand)
			}
			dtoB.Transactions = append(dtoB.Transactions, d)
		}
		out = append(out, dtoB)
	}
	return out
}

// FromBrandAnalytics mappa le metriche brand nel DTO.
func FromBrandAnalytics(b analytics.BrandAnalytics) BrandAnalyticsDTO {
	return BrandAnalyticsDTO{
		Brand:            DisplayBrand(b.Brand),
		TotalAmount:      b.TotalAmount.Round(2),
		TransactionCount: b.TransactionCount,
		ByCountry:        fromShares(b.ByCountry),
		ByMacroChannel:   fromShares(b.ByMacroChannel),
		ByChannel:        fromShares(b.ByChannel),
	}
}

func fromShares(shares []analytics.BrandShare) []BrandShareDTO {
	out := make([]BrandShareDTO, 0, len(shares))
	for _, s := range shares {
		out = append(out, BrandShareDTO{Key: s.Key, Amount: s.Amount.Round(2), Percent: s.Percent})
	}
	return out
}

// FromVATReport mappa il report OSS nel DTO con i totali di periodo.
func FromVATReport(period analytics.Period, rows []analytics.CountryVAT) OSSReportDTO {
	out := OSSReportDTO{
		PeriodStart: period.Start,
		PeriodEnd:   period.End,
		Countries:   make([]CountryVATDTO, 0, len(rows)),
	}
	for _, r := range rows {
		out.Countries = append(out.Countries, CountryVATDTO{
			Country:       r.Country,
			SalesAmount:   r.SalesAmount,
			ReturnsAmount: r.ReturnsAmount,
			BaseAmount:    r.BaseAmount,
			VATRate:       r.VATRate,
			VATAmount:     r.VATAmount,
			SalesCount:    r.SalesCount,
			ReturnsCount:  r.ReturnsCount,
		})
		out.TotalBase = out.TotalBase.Add(r.BaseAmount)
		out.TotalVAT = out.TotalVAT.Add(r.VATAmount)
	}
	return out
}

// SaleDTO vista di una vendita nei listati.
type SaleDTO struct {
	ID             string          `json:"id"`
	Date           time.Time       `json:"date"`
	User           string          `json:"user,omitempty"`
	Channel        string          `json:"channel"`
	Marketplace    string          `json:"marketplace,omitempty"`
	Brand          string          `json:"brand"`
	Category       string          `json:"category,omitempty"`
	SKU            string          `json:"sku"`
	ProductID      string          `json:"productId,omitempty"`
	Quantity       int             `json:"quantity"`
	Price          decimal.Decimal `json:"price"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentMethod  string          `json:"paymentMethod,omitempty"`
	Country        string          `json:"country,omitempty"`
	OrderReference string          `json:"orderReference,omitempty"`
	Documento      string          `json:"documento,omitempty"`
	Numero         string          `json:"numero,omitempty"`
}

// FromSale mappa una vendita nel DTO di listato.
func FromSale(s entity.Sale) SaleDTO {
	return SaleDTO{
		ID:             s.ID,
		Date:           s.Date,
		User:           s.User,
		Channel:        string(s.Channel),
		Marketplace:    s.Marketplace,
		Brand:          DisplayBrand(s.Brand),
		Category:       s.Category,
		SKU:            s.SKU,
		ProductID:      s.ProductID,
		Quantity:       s.Quantity,
		Price:          s.Price,
		Amount:         s.Amount,
		PaymentMethod:  s.PaymentMethod,
		Country:        s.Country,
		OrderReference: s.OrderReference,
		Documento:      s.Documento,
		Numero:         s.Numero,
	}
}
