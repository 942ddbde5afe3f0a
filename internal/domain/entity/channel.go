package entity

// Channel canale di vendita di primo livello.
type Channel string

const (
	ChannelNegozioDonna Channel = "negozio_donna"
	ChannelNegozioUomo  Channel = "negozio_uomo"
	ChannelEcommerce    Channel = "ecommerce"
	ChannelMarketplace  Channel = "marketplace"
	ChannelUnknown      Channel = "unknown"
)

// MacroArea classificazione del metodo di pagamento, distinta dal canale.
type MacroArea string

const (
	MacroAreaMarketplace MacroArea = "Marketplace"
	MacroAreaSito        MacroArea = "Sito"
	MacroAreaAltro       MacroArea = "Altro"
)

// Valid indica se il canale è uno dei quattro valori ammessi.
func (c Channel) Valid() bool {
	switch c {
	case ChannelNegozioDonna, ChannelNegozioUomo, ChannelEcommerce, ChannelMarketplace:
		return true
	}
	return false
}

// IsStore indica se il canale è un negozio fisico. I record dei negozi non hanno
// una dimensione paese/metodo di pagamento significativa e restano fuori dai
// drill-down per paese e per canale online.
func (c Channel) IsStore() bool {
	return c == ChannelNegozioDonna || c == ChannelNegozioUomo
}

// IsOnline indica se il canale è e-commerce o marketplace.
func (c Channel) IsOnline() bool {
	return c == ChannelEcommerce || c == ChannelMarketplace
}

// Valid indica se la macro-area è uno dei tre valori ammessi.
func (m MacroArea) Valid() bool {
	switch m {
	case MacroAreaMarketplace, MacroAreaSito, MacroAreaAltro:
		return true
	}
	return false
}
