package postgres

import (
	"context"
	"fmt"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/repository"
)

var (
	_ repository.PaymentMappingRepository = (*PaymentMappingRepo)(nil)
	_ repository.ChannelCostRepository    = (*ChannelCostRepo)(nil)
	_ repository.UserChannelRepository    = (*UserChannelRepo)(nil)
)

// PaymentMappingRepo tabella payment_mappings su PostgreSQL.
type PaymentMappingRepo struct {
	q Querier
}

// NewPaymentMappingRepository costruisce l'adattatore.
func NewPaymentMappingRepository(q Querier) *PaymentMappingRepo {
	return &PaymentMappingRepo{q: q}
}

// Upsert crea o aggiorna il mapping di un metodo (chiave: metodo in minuscolo).
func (r *PaymentMappingRepo) Upsert(ctx context.Context, m entity.PaymentMapping) error {
	query := `
		INSERT INTO payment_mappings (method, macro_area, channel, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (lower(method)) DO UPDATE
		SET method = EXCLUDED.method, macro_area = EXCLUDED.macro_area,
		    channel = EXCLUDED.channel, updated_at = EXCLUDED.updated_at`
	if _, err := r.q.Exec(ctx, query, m.Method, string(m.MacroArea), string(m.Channel), m.UpdatedAt); err != nil {
		return fmt.Errorf("upsert mapping pagamento: %w", err)
	}
	return nil
}

// List tutti i mapping, ordinati per metodo.
func (r *PaymentMappingRepo) List(ctx context.Context) ([]entity.PaymentMapping, error) {
	rows, err := r.q.Query(ctx, `SELECT method, macro_area, channel, updated_at FROM payment_mappings ORDER BY method`)
	if err != nil {
		return nil, fmt.Errorf("list mapping pagamento: %w", err)
	}
	defer rows.Close()

	var out []entity.PaymentMapping
	for rows.Next() {
		var m entity.PaymentMapping
		var area, channel string
		if err := rows.Scan(&m.Method, &area, &channel, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan mapping pagamento: %w", err)
		}
		m.MacroArea = entity.MacroArea(area)
		m.Channel = entity.Channel(channel)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterazione mapping pagamento: %w", err)
	}
	return out, nil
}

// Delete rimuove il mapping di un metodo.
func (r *PaymentMappingRepo) Delete(ctx context.Context, method string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM payment_mappings WHERE lower(method) = lower($1)`, method); err != nil {
		return fmt.Errorf("delete mapping pagamento: %w", err)
	}
	return nil
}

// ChannelCostRepo tabella channel_costs su PostgreSQL.
type ChannelCostRepo struct {
	q Querier
}

// NewChannelCostRepository costruisce l'adattatore.
func NewChannelCostRepository(q Querier) *ChannelCostRepo {
	return &ChannelCostRepo{q: q}
}

// Upsert crea o aggiorna il modello di costo di un metodo.
func (r *ChannelCostRepo) Upsert(ctx context.Context, c entity.ChannelCostSettings) error {
	query := `
		INSERT INTO channel_costs (method, commission_percent, extra_commission_percent,
		                           fixed_cost, return_cost, apply_on_vat_included, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (lower(method)) DO UPDATE
		SET method = EXCLUDED.method,
		    commission_percent = EXCLUDED.commission_percent,
		    extra_commission_percent = EXCLUDED.extra_commission_percent,
		    fixed_cost = EXCLUDED.fixed_cost,
		    return_cost = EXCLUDED.return_cost,
		    apply_on_vat_included = EXCLUDED.apply_on_vat_included,
		    updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		c.Method, c.CommissionPercent, c.ExtraCommissionPercent,
		c.FixedCost, c.ReturnCost, c.ApplyOnVatIncluded, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert costo canale: %w", err)
	}
	return nil
}

// List tutti i modelli di costo, ordinati per metodo.
func (r *ChannelCostRepo) List(ctx context.Context) ([]entity.ChannelCostSettings, error) {
	query := `
		SELECT method, commission_percent, extra_commission_percent,
		       fixed_cost, return_cost, apply_on_vat_included, updated_at
		FROM channel_costs ORDER BY method`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list costi canale: %w", err)
	}
	defer rows.Close()

	var out []entity.ChannelCostSettings
	for rows.Next() {
		var c entity.ChannelCostSettings
		err := rows.Scan(&c.Method, &c.CommissionPercent, &c.ExtraCommissionPercent,
			&c.FixedCost, &c.ReturnCost, &c.ApplyOnVatIncluded, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan costo canale: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterazione costi canale: %w", err)
	}
	return out, nil
}

// UserChannelRepo tabella user_channel_mappings su PostgreSQL.
type UserChannelRepo struct {
	q Querier
}

// NewUserChannelRepository costruisce l'adattatore.
func NewUserChannelRepository(q Querier) *UserChannelRepo {
	return &UserChannelRepo{q: q}
}

// Upsert memorizza la correzione appresa per un operatore.
func (r *UserChannelRepo) Upsert(ctx context.Context, m entity.UserChannelMapping) error {
	query := `
		INSERT INTO user_channel_mappings (username, channel, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (lower(username)) DO UPDATE
		SET username = EXCLUDED.username, channel = EXCLUDED.channel, updated_at = now()`
	if _, err := r.q.Exec(ctx, query, m.User, string(m.Channel)); err != nil {
		return fmt.Errorf("upsert correzione operatore: %w", err)
	}
	return nil
}

// List tutte le correzioni apprese.
func (r *UserChannelRepo) List(ctx context.Context) ([]entity.UserChannelMapping, error) {
	rows, err := r.q.Query(ctx, `SELECT username, channel, updated_at FROM user_channel_mappings ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("list correzioni operatore: %w", err)
	}
	defer rows.Close()

	var out []entity.UserChannelMapping
	for rows.Next() {
		var m entity.UserChannelMapping
		var channel string
		if err := rows.Scan(&m.User, &channel, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan correzione operatore: %w", err)
		}
		m.Channel = entity.Channel(channel)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterazione correzioni operatore: %w", err)
	}
	return out, nil
}
