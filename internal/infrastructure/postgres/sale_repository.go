package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// listPageSize dimensione di pagina per le letture a esaurimento.
const listPageSize = 1000

const saleColumns = `id, date, username, channel, marketplace, brand, category, sku,
	product_id, quantity, price, amount, payment_method, area, country,
	order_reference, documento, numero, season, created_at`

// SaleRepo implementazione del porto SaleRepository su PostgreSQL (usabile con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository costruisce l'adattatore di persistenza per le vendite.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// BulkInsert inserisce le vendite in un singolo round-trip via pgx.Batch.
func (r *SaleRepo) BulkInsert(ctx context.Context, sales []*entity.Sale) error {
	if len(sales) == 0 {
		return nil
	}
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

	batch := &pgx.Batch{}
	for _, s := range sales {
		batch.Queue(query,
			s.ID, s.Date, s.User, string(s.Channel), s.Marketplace, s.Brand, s.Category, s.SKU,
			s.ProductID, s.Quantity, s.Price, s.Amount, s.PaymentMethod, s.Area, s.Country,
			s.OrderReference, s.Documento, s.Numero, s.Season, s.CreatedAt,
		)
	}
	results := r.q.SendBatch(ctx, batch)
	defer results.Close()
	for range sales {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert vendite: %w", err)
		}
	}
	return nil
}

// ListAll restituisce l'intero dataset paginando fino a esaurimento.
func (r *SaleRepo) ListAll(ctx context.Context) ([]entity.Sale, error) {
	var out []entity.Sale
	for offset := 0; ; offset += listPageSize {
		page, err := r.listRange(ctx, listPageSize, offset)
		if err != nil {
			return nil, err
		}
		out = append(out, page...)
		if len(page) < listPageSize {
			return out, nil
		}
	}
}

func (r *SaleRepo) listRange(ctx context.Context, limit, offset int) ([]entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vendite: %w", err)
	}
	defer rows.Close()
	return scanSales(rows)
}

// ListPage una pagina di vendite con filtri opzionali, ordinata per data
// decrescente, con il conteggio totale.
func (r *SaleRepo) ListPage(ctx context.Context, limit, offset int, f repository.SaleFilter) ([]entity.Sale, int, error) {
	where, args := saleFilterClause(f)

	var total int
	countQuery := `SELECT count(*) FROM sales` + where
	if err := r.q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count vendite: %w", err)
	}

	query := `
		SELECT ` + saleColumns + `
		FROM sales` + where + `
		ORDER BY date DESC, id
		LIMIT $` + fmt.Sprint(len(args)+1) + ` OFFSET $` + fmt.Sprint(len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list vendite: %w", err)
	}
	defer rows.Close()
	sales, err := scanSales(rows)
	if err != nil {
		return nil, 0, err
	}
	return sales, total, nil
}

func saleFilterClause(f repository.SaleFilter) (string, []any) {
	var conds []string
	var args []any
	if f.Channel != "" {
		args = append(args, f.Channel)
		conds = append(conds, fmt.Sprintf("channel = $%d", len(args)))
	}
	if f.Brand != "" {
		args = append(args, f.Brand)
		conds = append(conds, fmt.Sprintf("lower(brand) = lower($%d)", len(args)))
	}
	if f.Country != "" {
		args = append(args, strings.ToUpper(strings.TrimSpace(f.Country)))
		conds = append(conds, fmt.Sprintf("country = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// UpdateChannelByIDs assegna il canale indicato alle vendite elencate.
func (r *SaleRepo) UpdateChannelByIDs(ctx context.Context, ids []string, ch entity.Channel) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	cmd, err := r.q.Exec(ctx, `UPDATE sales SET channel = $1 WHERE id = ANY($2)`, string(ch), ids)
	if err != nil {
		return 0, fmt.Errorf("update canale vendite: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// DeleteByIDs elimina le vendite elencate.
func (r *SaleRepo) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("delete vendite: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// DeleteAll svuota la tabella vendite.
func (r *SaleRepo) DeleteAll(ctx context.Context) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM sales`)
	if err != nil {
		return 0, fmt.Errorf("delete vendite: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func scanSales(rows pgx.Rows) ([]entity.Sale, error) {
	var out []entity.Sale
	for rows.Next() {
		var s entity.Sale
		var channel string
		err := rows.Scan(
			&s.ID, &s.Date, &s.User, &channel, &s.Marketplace, &s.Brand, &s.Category, &s.SKU,
			&s.ProductID, &s.Quantity, &s.Price, &s.Amount, &s.PaymentMethod, &s.Area, &s.Country,
			&s.OrderReference, &s.Documento, &s.Numero, &s.Season, &s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan vendita: %w", err)
		}
		s.Channel = entity.Channel(channel)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterazione vendite: %w", err)
	}
	return out, nil
}
