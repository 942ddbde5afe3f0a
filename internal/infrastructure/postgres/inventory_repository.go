package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/entity"
	"github.com/ferrarisboutique/dashboard-effe-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const inventoryColumns = `sku, brand, category, purchase_price, sell_price, collection, created_at`

// InventoryRepo implementazione del porto InventoryRepository su PostgreSQL
// (usabile con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository costruisce l'adattatore di persistenza per il catalogo.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// BulkInsertSkipExisting inserisce le voci con ON CONFLICT DO NOTHING sullo
// SKU: le voci già presenti restano intatte. Restituisce quante sono entrate
// davvero.
func (r *InventoryRepo) BulkInsertSkipExisting(ctx context.Context, items []*entity.InventoryItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	query := `
		INSERT INTO inventory_items (` + inventoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (sku) DO NOTHING`

	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(query,
			it.SKU, it.Brand, it.Category, it.PurchasePrice, it.SellPrice, it.Collection, it.CreatedAt,
		)
	}
	results := r.q.SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for range items {
		cmd, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("insert catalogo: %w", err)
		}
		inserted += int(cmd.RowsAffected())
	}
	return inserted, nil
}

// ListAll restituisce l'intero catalogo paginando fino a esaurimento.
func (r *InventoryRepo) ListAll(ctx context.Context) ([]entity.InventoryItem, error) {
	var out []entity.InventoryItem
	for offset := 0; ; offset += listPageSize {
		query := `
			SELECT ` + inventoryColumns + `
			FROM inventory_items
			ORDER BY sku
			LIMIT $1 OFFSET $2`
		rows, err := r.q.Query(ctx, query, listPageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("list catalogo: %w", err)
		}
		page, err := scanInventory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, page...)
		if len(page) < listPageSize {
			return out, nil
		}
	}
}

// ListPage una pagina di catalogo filtrabile per brand e categoria, con il
// conteggio totale.
func (r *InventoryRepo) ListPage(ctx context.Context, limit, offset int, brand, category string) ([]entity.InventoryItem, int, error) {
	var conds []string
	var args []any
	if strings.TrimSpace(brand) != "" {
		args = append(args, strings.TrimSpace(brand))
		conds = append(conds, fmt.Sprintf("lower(brand) = lower($%d)", len(args)))
	}
	if strings.TrimSpace(category) != "" {
		args = append(args, strings.TrimSpace(category))
		conds = append(conds, fmt.Sprintf("lower(category) = lower($%d)", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM inventory_items`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count catalogo: %w", err)
	}

	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory_items` + where + `
		ORDER BY sku
		LIMIT $` + fmt.Sprint(len(args)+1) + ` OFFSET $` + fmt.Sprint(len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list catalogo: %w", err)
	}
	items, err := scanInventory(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// DistinctBrands i brand distinti del catalogo, ordinati.
func (r *InventoryRepo) DistinctBrands(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "brand")
}

// DistinctCategories le categorie distinte del catalogo, ordinate.
func (r *InventoryRepo) DistinctCategories(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "category")
}

func (r *InventoryRepo) distinct(ctx context.Context, column string) ([]string, error) {
	query := fmt.Sprintf(
		`SELECT DISTINCT %s FROM inventory_items WHERE %s <> '' ORDER BY %s`,
		column, column, column,
	)
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", column, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan %s: %w", column, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterazione %s: %w", column, err)
	}
	return out, nil
}

func scanInventory(rows pgx.Rows) ([]entity.InventoryItem, error) {
	defer rows.Close()
	var out []entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		err := rows.Scan(&it.SKU, &it.Brand, &it.Category, &it.PurchasePrice, &it.SellPrice, &it.Collection, &it.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan voce catalogo: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterazione catalogo: %w", err)
	}
	return out, nil
}
