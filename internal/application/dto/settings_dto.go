package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
)

// PaymentMappingRequest corpo di upsert di un mapping metodo → macro-area/canale.
type PaymentMappingRequest struct {
	Method    string `json:"method"`
	MacroArea string `json:"macroArea"`
	Channel   string `json:"channel"`
}

// PaymentMappingDTO vista di un mapping persistito.
type PaymentMappingDTO struct {
	Method    string `json:"method"`
	MacroArea string `json:"macroArea"`
	Channel   string `json:"channel"`
}

// FromPaymentMapping mappa il mapping nel DTO.
func FromPaymentMapping(m entity.PaymentMapping) PaymentMappingDTO {
	return PaymentMappingDTO{
		Method:    m.Method,
		MacroArea: string(m.MacroArea),
		Channel:   string(m.Channel),
	}
}

// ChannelCostRequest corpo di upsert del modello di costo di un metodo.
type ChannelCostRequest struct {
	Method                 string          `json:"method"`
	CommissionPercent      decimal.Decimal `json:"commissionPercent"`
	ExtraCommissionPercent decimal.Decimal `json:"extraCommissionPercent"`
	FixedCost              decimal.Decimal `json:"fixedCost"`
	ReturnCost             decimal.Decimal `json:"returnCost"`
	ApplyOnVatIncluded     bool            `json:"applyOnVatIncluded"`
}

// ChannelCostDTO vista del modello di costo persistito.
type ChannelCostDTO struct {
	Method                 string          `json:"method"`
	CommissionPercent      decimal.Decimal `json:"commissionPercent"`
	ExtraCommissionPercent decimal.Decimal `json:"extraCommissionPercent"`
	FixedCost              decimal.Decimal `json:"fixedCost"`
	ReturnCost             decimal.Decimal `json:"returnCost"`
	ApplyOnVatIncluded     bool            `json:"applyOnVatIncluded"`
}

// FromChannelCost mappa il modello di costo nel DTO.
func FromChannelCost(c entity.ChannelCostSettings) ChannelCostDTO {
	return ChannelCostDTO{
		Method:                 c.Method,
		CommissionPercent:      c.CommissionPercent,
		ExtraCommissionPercent: c.ExtraCommissionPercent,
		FixedCost:              c.FixedCost,
		ReturnCost:             c.ReturnCost,
		ApplyOnVatIncluded:     c.ApplyOnVatIncluded,
	}
}

// FixChannelsRequest corpo della correzione manuale del canale di un gruppo di
// vendite.
type FixChannelsRequest struct {
	IDs     []string `json:"ids"`
	Channel string   `json:"channel"`
}
