package usecase

import "context"

// Cache porta di caching read-through per i payload analitici. InvalidateAll
// scarta l'intero contenuto: ogni mutazione dei dati sorgente invalida tutto,
// mai una chiave alla volta.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	InvalidateAll(ctx context.Context) error
}

// cacheGet lettura tollerante: un cache nil o un errore di trasporto valgono
// come miss, mai come fallimento della richiesta.
func cacheGet(ctx context.Context, c Cache, key string, dest any) bool {
	if c == nil {
		return false
	}
	hit, err := c.Get(ctx, key, dest)
	return err == nil && hit
}

func cacheSet(ctx context.Context, c Cache, key string, value any) {
	if c == nil {
		return
	}
	// Errore di scrittura ignorato: il cache è un'ottimizzazione.
	_ = c.Set(ctx, key, value)
}

func cacheInvalidate(ctx context.Context, c Cache) {
	if c == nil {
		return
	}
	_ = c.InvalidateAll(ctx)
}
