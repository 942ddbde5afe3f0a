package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem una voce del catalogo prodotti.
// SKU è unico nel catalogo; il matching è insensibile a maiuscole, spazi e
// punteggiatura (vedi normalize). Gli SKU già presenti non vengono mai
// sovrascritti al ri-caricamento, così i retry parziali restano idempotenti.
type InventoryItem struct {
	SKU           string
	Brand         string
	Category      string
	PurchasePrice decimal.Decimal // tasse escluse
	SellPrice     decimal.Decimal // tasse incluse, può essere zero/sconosciuto
	Collection    string          // tag stagione, opzionale
	CreatedAt     time.Time
}
