package upload

import (
	"context"
	"fmt"
	"time"
)

const (
	// chunkSize righe per singolo insert batch.
	chunkSize = 500
	// maxAttempts tentativi per chunk prima di arrendersi.
	maxAttempts = 3
	// retryBaseDelay attesa base tra i tentativi, raddoppia a ogni fallimento.
	retryBaseDelay = 500 * time.Millisecond
)

// insertChunks inserisce gli elementi a blocchi di chunkSize con retry e
// backoff esponenziale. Un chunk che fallisce dopo tutti i tentativi non
// interrompe i successivi: l'esito riporta quanti elementi sono entrati e gli
// errori dei chunk persi.
func insertChunks[T any](ctx context.Context, items []*T, insert func(context.Context, []*T) error, progress func(done, total int)) (int, []string) {
	total := len(items)
	inserted := 0
	var errs []string
	for start := 0; start < total; start += chunkSize {
		end := start + chunkSize
		if end > total {
			end = total
		}
		chunk := items[start:end]
		if err := insertWithRetry(ctx, chunk, insert); err != nil {
			errs = append(errs, fmt.Sprintf("blocco %d-%d: %v", start, end-1, err))
		} else {
			inserted += len(chunk)
		}
		if progress != nil {
			progress(end, total)
		}
	}
	return inserted, errs
}

func insertWithRetry[T any](ctx context.Context, chunk []*T, insert func(context.Context, []*T) error) error {
	var err error
	delay := retryBaseDelay
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = insert(ctx, chunk); err == nil {
			return nil
		}
		if attempt == maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return err
}
