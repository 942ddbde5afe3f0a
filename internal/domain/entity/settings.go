package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMapping associa un metodo di pagamento a macro-area e canale.
// Modificabile dall'operatore e persistito separatamente dalle vendite: la
// risoluzione avviene in lettura, quindi un cambio di mapping si riflette su
// tutto lo storico senza riscrivere le righe.
type PaymentMapping struct {
	Method    string
	MacroArea MacroArea
	Channel   Channel // solo ecommerce o marketplace
	UpdatedAt time.Time
}

// ChannelCostSettings modello di costo per metodo di pagamento marketplace.
// Una voce assente equivale a costi zero e ApplyOnVatIncluded = true.
type ChannelCostSettings struct {
	Method                 string
	CommissionPercent      decimal.Decimal
	ExtraCommissionPercent decimal.Decimal
	FixedCost              decimal.Decimal // per ordine
	ReturnCost             decimal.Decimal // per ordine reso, solo marketplace
	ApplyOnVatIncluded     bool            // commissione su lordo (true) o netto IVA (false)
	UpdatedAt              time.Time
}

// DefaultChannelCost la configurazione di costo usata quando manca la voce.
func DefaultChannelCost(method string) ChannelCostSettings {
	return ChannelCostSettings{Method: method, ApplyOnVatIncluded: true}
}

// UserChannelMapping correzione appresa operatore → canale, curata a partire
// dai fix manuali; usata come ultimo fallback in fase di ingestione.
type UserChannelMapping struct {
	User      string
	Channel   Channel
	UpdatedAt time.Time
}
