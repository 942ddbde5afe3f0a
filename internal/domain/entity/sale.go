package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale una riga di vendita a livello unità.
// Brand vuoto significa "non riconosciuto": l'etichetta "Unknown" si applica solo
// in fase di presentazione, mai qui.
// Invariante: Amount non è mai negativo per una vendita.
type Sale struct {
	ID             string
	Date           time.Time
	User           string // operatore/commessa, usato per l'inferenza del canale
	Channel        Channel
	Marketplace    string // sotto-canale quando Channel == marketplace
	Brand          string
	Category       string
	SKU            string
	ProductID      string // alias legacy del codice prodotto, popolato in ridondanza
	Quantity       int
	Price          decimal.Decimal // prezzo unitario
	Amount         decimal.Decimal // totale riga, con segno
	PaymentMethod  string
	Area           string
	Country        string // codice ISO maiuscolo
	OrderReference string
	Documento      string // tag tipo documento (es. RICEVUTA, FATTURA)
	Numero         string // numero documento
	Season         string
	CreatedAt      time.Time
}

// Return una riga di reso/rimborso.
// Amount è con segno: negativo per la merce resa, può includere una componente
// positiva per spese di spedizione trattenute. Un totale rimborsi si calcola
// sempre come abs(somma degli importi), mai come somma dei valori assoluti.
type Return struct {
	ID             string
	SaleID         string // back-reference best-effort, non è una foreign key
	Date           time.Time
	Channel        Channel
	Marketplace    string
	Country        string
	SKU            string
	Quantity       int
	Amount         decimal.Decimal
	Reason         string // testo libero; funge anche da tag documento (RESO, NOTA CRED)
	PaymentMethod  string
	OrderReference string
	CreatedAt      time.Time
}
