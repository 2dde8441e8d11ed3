package menu

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListActive(ctx context.Context) ([]Item, error) {
	return r.list(ctx, `
		SELECT id, name, category, price, COALESCE(image_url, ''), is_active
		FROM menu_items
		WHERE is_active = true
		ORDER BY name
	`)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]Item, error) {
	return r.list(ctx, `
		SELECT id, name, category, price, COALESCE(image_url, ''), is_active
		FROM menu_items
		ORDER BY name
	`)
}

func (r *PostgresRepository) list(ctx context.Context, query string) ([]Item, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Category,
			&item.Price,
			&item.ImageURL,
			&item.Active,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// --------------------------------------------------
// ORDER HISTORY LOOKUPS (for Bestseller / Favorites)
// --------------------------------------------------

func (r *PostgresRepository) TopOrderedNames(
	ctx context.Context,
	limit int,
) ([]string, error) {

	rows, err := r.db.Query(ctx, `
		SELECT item_name
		FROM order_items
		GROUP BY item_name
		ORDER BY COUNT(*) DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanNames(rows)
}

func (r *PostgresRepository) NamesOrderedByCustomer(
	ctx context.Context,
	customerID string,
) ([]string, error) {

	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT oi.item_name
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.customer_id = $1
	`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanNames(rows)
}

type nameRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanNames(rows nameRows) ([]string, error) {
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
