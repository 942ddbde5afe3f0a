// Package cache adattatore Redis per il caching read-through dei payload
// analitici.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/application/usecase"
	"github.com/ferrarisboutique/dashboard-effe-api/pkg/config"
)

var _ usecase.Cache = (*Redis)(nil)

// epochKey contatore di generazione. Le chiavi dati incorporano l'epoca
// corrente: un INCR invalida tutto senza scansionare il keyspace, e le chiavi
// orfane scadono da sole col TTL.
const epochKey = "analytics:epoch"

// Redis cache su Redis con invalidazione totale a epoche.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// New costruisce l'adattatore e verifica la connessione.
func New(ctx context.Context, cfg config.RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Redis{client: client, ttl: ttl}, nil
}

// Get legge e deserializza il valore della chiave nell'epoca corrente.
func (r *Redis) Get(ctx context.Context, key string, dest any) (bool, error) {
	full, err := r.fullKey(ctx, key)
	if err != nil {
		return false, err
	}
	raw, err := r.client.Get(ctx, full).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Set serializza e memorizza il valore con il TTL configurato.
func (r *Redis) Set(ctx context.Context, key string, value any) error {
	full, err := r.fullKey(ctx, key)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.client.Set(ctx, full, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// InvalidateAll avanza l'epoca: tutte le chiavi esistenti diventano
// irraggiungibili in un'operazione O(1).
func (r *Redis) InvalidateAll(ctx context.Context) error {
	if err := r.client.Incr(ctx, epochKey).Err(); err != nil {
		return fmt.Errorf("incr epoca: %w", err)
	}
	return nil
}

// Close chiude la connessione al server.
func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) fullKey(ctx context.Context, key string) (string, error) {
	epoch, err := r.client.Get(ctx, epochKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("get epoca: %w", err)
	}
	return fmt.Sprintf("analytics:%d:%s", epoch, key), nil
}
