package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
)

// ReturnDTO vista di un reso nei listati.
type ReturnDTO struct {
	ID             string          `json:"id"`
	SaleID         string          `json:"saleId,omitempty"`
	Date           time.Time       `json:"date"`
	Channel        string          `json:"channel"`
	Marketplace    string          `json:"marketplace,omitempty"`
	Country        string          `json:"country,omitempty"`
	SKU            string          `json:"sku,omitempty"`
	Quantity       int             `json:"quantity"`
	Amount         decimal.Decimal `json:"amount"`
	Reason         string          `json:"reason,omitempty"`
	PaymentMethod  string          `json:"paymentMethod,omitempty"`
	OrderReference string          `json:"orderReference,omitempty"`
}

// FromReturn mappa un reso nel DTO di listato.
func FromReturn(r entity.Return) ReturnDTO {
	return ReturnDTO{
		ID:             r.ID,
		SaleID:         r.SaleID,
		Date:           r.Date,
		Channel:        string(r.Channel),
		Marketplace:    r.Marketplace,
		Country:        r.Country,
		SKU:            r.SKU,
		Quantity:       r.Quantity,
		Amount:         r.Amount,
		Reason:         r.Reason,
		PaymentMethod:  r.PaymentMethod,
		OrderReference: r.OrderReference,
	}
}

// InventoryItemDTO vista di una voce di catalogo nei listati.
type InventoryItemDTO struct {
	SKU           string          `json:"sku"`
	Brand         string          `json:"brand"`
	Category      string          `json:"category,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellPrice     decimal.Decimal `json:"sellPrice"`
	Collection    string          `json:"collection,omitempty"`
}

// FromInventoryItem mappa una voce di catalogo nel DTO di listato.
func FromInventoryItem(it entity.InventoryItem) InventoryItemDTO {
	return InventoryItemDTO{
		SKU:           it.SKU,
		Brand:         it.Brand,
		Category:      it.Category,
		PurchasePrice: it.PurchasePrice,
		SellPrice:     it.SellPrice,
		Collection:    it.Collection,
	}
}
