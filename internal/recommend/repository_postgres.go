package recommend

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/menu"
)

var ErrItemNotFound = errors.New("menu item not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetItem(ctx context.Context, itemID string) (*menu.Item, error) {
	var item menu.Item
	err := r.db.QueryRow(ctx, `
		SELECT id, name, category, price
		FROM menu_items
		WHERE id = $1 AND is_active = true
	`, itemID).Scan(&item.ID, &item.Name, &item.Category, &item.Price)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) ActiveByCategories(
	ctx context.Context,
	categories []string,
	excludeID string,
	limit int,
) ([]menu.Item, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, name, category, price
		FROM menu_items
		WHERE is_active = true
		  AND category = ANY($1)
		  AND ($2 = '' OR id <> $2)
		ORDER BY name
		LIMIT $3
	`, categories, excludeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

// --------------------------------------------------
// ORDER HISTORY SIGNALS
// --------------------------------------------------

// FrequentlyBoughtWith counts co-occurrence inside past orders.
func (r *PostgresRepository) FrequentlyBoughtWith(
	ctx context.Context,
	itemID string,
	limit int,
) ([]string, error) {

	rows, err := r.db.Query(ctx, `
		SELECT other.item_id
		FROM order_items anchor
		JOIN order_items other
		  ON other.order_id = anchor.order_id
		 AND other.item_id <> anchor.item_id
		WHERE anchor.item_id = $1
		GROUP BY other.item_id
		ORDER BY COUNT(*) DESC
		LIMIT $2
	`, itemID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanIDs(rows)
}

func (r *PostgresRepository) PopularItemIDs(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT item_id
		FROM order_items
		GROUP BY item_id
		ORDER BY COUNT(*) DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanIDs(rows)
}

func (r *PostgresRepository) ItemsByIDs(ctx context.Context, ids []string) ([]menu.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, name, category, price
		FROM menu_items
		WHERE is_active = true AND id = ANY($1)
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return nil, err
	}

	// Preserve the caller's ranking.
	byID := make(map[string]menu.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	ordered := make([]menu.Item, 0, len(items))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			ordered = append(ordered, item)
		}
	}
	return ordered, nil
}

// --------------------------------------------------
// SCAN HELPERS
// --------------------------------------------------

func scanItems(rows pgx.Rows) ([]menu.Item, error) {
	var items []menu.Item
	for rows.Next() {
		var item menu.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanIDs(rows pgx.Rows) ([]string, error) {
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
