package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/repository"
)

var _ repository.ReturnRepository = (*ReturnRepo)(nil)

const returnColumns = `id, sale_id, date, channel, marketplace, country, sku,
	quantity, amount, reason, payment_method, order_reference, created_at`

// ReturnRepo implementazione del porto ReturnRepository su PostgreSQL (usabile con pool o tx).
type ReturnRepo struct {
	q Querier
}

// NewReturnRepository costruisce l'adattatore di persistenza per i resi.
func NewReturnRepository(q Querier) *ReturnRepo {
	return &ReturnRepo{q: q}
}

// BulkInsert inserisce i resi in un singolo round-trip via pgx.Batch.
func (r *ReturnRepo) BulkInsert(ctx context.Context, returns []*entity.Return) error {
	if len(returns) == 0 {
		return nil
	}
	query := `
		INSERT INTO returns (` + returnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	batch := &pgx.Batch{}
	for _, ret := range returns {
		batch.Queue(query,
			ret.ID, ret.SaleID, ret.Date, string(ret.Channel), ret.Marketplace, ret.Country, ret.SKU,
			ret.Quantity, ret.Amount, ret.Reason, ret.PaymentMethod, ret.OrderReference, ret.CreatedAt,
		)
	}
	results := r.q.SendBatch(ctx, batch)
	defer results.Close()
	for range returns {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert resi: %w", err)
		}
	}
	return nil
}

// ListAll restituisce l'intero dataset paginando fino a esaurimento.
func (r *ReturnRepo) ListAll(ctx context.Context) ([]entity.Return, error) {
	var out []entity.Return
	for offset := 0; ; offset += listPageSize {
		page, _, err := r.listRange(ctx, listPageSize, offset, false)
		if err != nil {
			return nil, err
		}
		out = append(out, page...)
		if len(page) < listPageSize {
			return out, nil
		}
	}
}

// ListPage una pagina di resi ordinata per data decrescente, con il conteggio
// totale.
func (r *ReturnRepo) ListPage(ctx context.Context, limit, offset int) ([]entity.Return, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM returns`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count resi: %w", err)
	}
	page, _, err := r.listRange(ctx, limit, offset, true)
	if err != nil {
		return nil, 0, err
	}
	return page, total, nil
}

func (r *ReturnRepo) listRange(ctx context.Context, limit, offset int, byDateDesc bool) ([]entity.Return, int, error) {
	order := `created_at, id`
	if byDateDesc {
		order = `date DESC, id`
	}
	query := `
		SELECT ` + returnColumns + `
		FROM returns
		ORDER BY ` + order + `
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list resi: %w", err)
	}
	defer rows.Close()

	var out []entity.Return
	for rows.Next() {
		var ret entity.Return
		var channel string
		err := rows.Scan(
			&ret.ID, &ret.SaleID, &ret.Date, &channel, &ret.Marketplace, &ret.Country, &ret.SKU,
			&ret.Quantity, &ret.Amount, &ret.Reason, &ret.PaymentMethod, &ret.OrderReference, &ret.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan reso: %w", err)
		}
		ret.Channel = entity.Channel(channel)
		out = append(out, ret)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterazione resi: %w", err)
	}
	return out, len(out), nil
}

// DeleteByIDs elimina i resi elencati.
func (r *ReturnRepo) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM returns WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("delete resi: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// DeleteAll svuota la tabella resi.
func (r *ReturnRepo) DeleteAll(ctx context.Context) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM returns`)
	if err != nil {
		return 0, fmt.Errorf("delete resi: %w", err)
	}
	return cmd.RowsAffected(), nil
}
