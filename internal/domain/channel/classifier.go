// Package channel classifica i metodi di pagamento in macro-aree e canali.
// La tabella dei PaymentMapping è curata dall'operatore; i metodi non mappati
// vengono raccolti e segnalati, mai indovinati.
package channel

import (
	"sort"
	"strings"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
)

// Classifier applica la tabella dei mapping metodo di pagamento → macro-area /
// canale e le correzioni apprese operatore → canale. Immutabile dopo la
// costruzione; va ricostruito a ogni richiesta con le tabelle correnti.
type Classifier struct {
	mappings     map[string]entity.PaymentMapping
	userChannels map[string]entity.Channel
}

// NewClassifier costruisce il classificatore a partire dalle tabelle persistite.
func NewClassifier(mappings []entity.PaymentMapping, userFixes []entity.UserChannelMapping) *Classifier {
	c := &Classifier{
		mappings:     make(map[string]entity.PaymentMapping, len(mappings)),
		userChannels: make(map[string]entity.Channel, len(userFixes)),
	}
	for _, m := range mappings {
		c.mappings[methodKey(m.Method)] = m
	}
	for _, f := range userFixes {
		if f.Channel.Valid() {
			c.userChannels[methodKey(f.User)] = f.Channel
		}
	}
	return c
}

// Resolve risoluzione in lettura: se esiste un mapping per il metodo di
// pagamento, il canale mappato prevale, ma solo per valori ecommerce o
// marketplace. I canali dei negozi fisici non vengono mai alterati da un
// mapping. Applicata uniformemente a ogni lettura, così un cambio di mapping
// vale anche per lo storico senza riscrivere le righe.
func (c *Classifier) Resolve(raw entity.Channel, paymentMethod string) entity.Channel {
	if raw.IsStore() {
		return raw
	}
	if m, ok := c.mappings[methodKey(paymentMethod)]; ok && m.Channel.IsOnline() {
		return m.Channel
	}
	if raw.Valid() {
		return raw
	}
	return entity.ChannelUnknown
}

// ClassifyAtIngest assegna il canale a una riga in ingestione. Catena di
// fallback, dal più al meno affidabile:
//  1. canale dichiarato valido (eventualmente rimappato via Resolve);
//  2. coppia documento/numero tipica degli ordini e-commerce → ecommerce;
//  3. correzione appresa operatore → canale;
//  4. unknown.
func (c *Classifier) ClassifyAtIngest(raw entity.Channel, paymentMethod, user, documento, numero string) entity.Channel {
	if raw.Valid() {
		return c.Resolve(raw, paymentMethod)
	}
	if strings.TrimSpace(documento) != "" && strings.TrimSpace(numero) != "" {
		return entity.ChannelEcommerce
	}
	if ch, ok := c.userChannels[methodKey(user)]; ok {
		return ch
	}
	return entity.ChannelUnknown
}

// MacroArea macro-area del metodo di pagamento; false se il metodo non è mappato.
func (c *Classifier) MacroArea(paymentMethod string) (entity.MacroArea, bool) {
	m, ok := c.mappings[methodKey(paymentMethod)]
	if !ok {
		return "", false
	}
	return m.MacroArea, true
}

// UnmappedMethods i metodi di pagamento presenti nelle vendite ma assenti dalla
// tabella dei mapping, ordinati e senza duplicati. Vanno mostrati all'operatore
// perché richiedono un intervento.
func (c *Classifier) UnmappedMethods(sales []entity.Sale) []string {
	seen := make(map[string]string)
	for _, s := range sales {
		method := strings.TrimSpace(s.PaymentMethod)
		if method == "" {
			continue
		}
		key := methodKey(method)
		if _, mapped := c.mappings[key]; mapped {
			continue
		}
		if _, dup := seen[key]; !dup {
			seen[key] = method
		}
	}
	out := make([]string, 0, len(seen))
	for _, m := range seen {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

func methodKey(method string) string {
	return strings.ToLower(strings.TrimSpace(method))
}
