package dto

// SaleRow una riga grezza del caricamento vendite. I campi numerici e la data
// sono `any` perché le sorgenti alternano numeri JSON, stringhe in formato
// europeo e seriali Excel; la normalizzazione li coercizza con default sicuri.
type SaleRow struct {
	Date           any    `json:"date"`
	User           string `json:"user"`
	Channel        string `json:"channel"`
	SKU            string `json:"sku"`
	ProductID      string `json:"productId"`
	Quantity       any    `json:"quantity"`
	Price          any    `json:"price"`
	Amount         any    `json:"amount"`
	Marketplace    string `json:"marketplace"`
	Brand          string `json:"brand"`
	Category       string `json:"category"`
	PaymentMethod  string `json:"paymentMethod"`
	Area           string `json:"area"`
	Country        string `json:"country"`
	OrderReference string `json:"orderReference"`
	Documento      string `json:"documento"`
	Numero         string `json:"numero"`
	Season         string `json:"season"`
}

// ReturnRow una riga grezza del caricamento resi.
type ReturnRow struct {
	Date           any    `json:"date"`
	SaleID         string `json:"saleId"`
	Channel        string `json:"channel"`
	Marketplace    string `json:"marketplace"`
	Country        string `json:"country"`
	SKU            string `json:"sku"`
	Quantity       any    `json:"quantity"`
	Amount         any    `json:"amount"`
	Reason         string `json:"reason"`
	PaymentMethod  string `json:"paymentMethod"`
	OrderReference string `json:"orderReference"`
}

// InventoryRow una riga grezza del caricamento catalogo.
type InventoryRow struct {
	SKU           string `json:"sku"`
	Category      string `json:"category"`
	Brand         string `json:"brand"`
	PurchasePrice any    `json:"purchasePrice"`
	SellPrice     any    `json:"sellPrice"`
	Collection    string `json:"collection"`
}

// UploadResult esito di un caricamento bulk. Un'operazione batch riporta
// sempre i conteggi parziali: una singola riga sporca non fa mai fallire
// l'intero caricamento.
type UploadResult struct {
	Processed         int      `json:"processed"`
	SkippedDuplicates int      `json:"skippedDuplicates"`
	SkippedInvalid    int      `json:"skippedInvalid"`
	Errors            []string `json:"errors"`
}
