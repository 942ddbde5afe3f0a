package channel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/channel"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
)

func classificatore() *channel.Classifier {
	return channel.NewClassifier(
		[]entity.PaymentMapping{
			{Method: "Amazon Pay", MacroArea: entity.MacroAreaMarketplace, Channel: entity.ChannelMarketplace},
			{Method: "Stripe", MacroArea: entity.MacroAreaSito, Channel: entity.ChannelEcommerce},
		},
		[]entity.UserChannelMapping{
			{User: "cassa2", Channel: entity.ChannelNegozioUomo},
		},
	)
}

func TestResolve_MappingPrevaleSoloOnline(t *testing.T) {
	c := classificatore()

	got := c.Resolve(entity.ChannelEcommerce, "Amazon Pay")
	assert.Equal(t, entity.ChannelMarketplace, got, "il mapping rimappa un canale online")

	got = c.Resolve(entity.ChannelNegozioDonna, "Amazon Pay")
	assert.Equal(t, entity.ChannelNegozioDonna, got, "un negozio fisico non viene mai alterato dal mapping")

	got = c.Resolve(entity.ChannelMarketplace, "metodo ignoto")
	assert.Equal(t, entity.ChannelMarketplace, got, "senza mapping resta il canale originale")

	got = c.Resolve(entity.Channel("boh"), "metodo ignoto")
	assert.Equal(t, entity.ChannelUnknown, got)
}

func TestResolve_MetodoCaseInsensitive(t *testing.T) {
	c := classificatore()
	got := c.Resolve(entity.ChannelEcommerce, "  amazon pay ")
	assert.Equal(t, entity.ChannelMarketplace, got)
}

func TestClassifyAtIngest_CatenaDiFallback(t *testing.T) {
	c := classificatore()

	got := c.ClassifyAtIngest(entity.ChannelNegozioDonna, "", "", "", "")
	assert.Equal(t, entity.ChannelNegozioDonna, got, "un canale valido passa invariato")

	got = c.ClassifyAtIngest("", "", "", "RICEVUTA", "42")
	assert.Equal(t, entity.ChannelEcommerce, got, "documento+numero implicano un ordine e-commerce")

	got = c.ClassifyAtIngest("", "", "cassa2", "", "")
	assert.Equal(t, entity.ChannelNegozioUomo, got, "la correzione appresa per l'operatore è il terzo fallback")

	got = c.ClassifyAtIngest("", "", "sconosciuto", "", "")
	assert.Equal(t, entity.ChannelUnknown, got)
}

func TestUnmappedMethods(t *testing.T) {
	c := classificatore()
	vendite := []entity.Sale{
		{PaymentMethod: "Amazon Pay"},
		{PaymentMethod: "Zalando"},
		{PaymentMethod: "zalando "},
		{PaymentMethod: "Contanti"},
		{PaymentMethod: ""},
	}

	got := c.UnmappedMethods(vendite)
	assert.Equal(t, []string{"Contanti", "Zalando"}, got,
		"solo i metodi non mappati, senza duplicati e ordinati")
}

func TestMacroArea(t *testing.T) {
	c := classificatore()

	area, ok := c.MacroArea("Stripe")
	assert.True(t, ok)
	assert.Equal(t, entity.MacroAreaSito, area)

	_, ok = c.MacroArea("Contanti")
	assert.False(t, ok)
}
