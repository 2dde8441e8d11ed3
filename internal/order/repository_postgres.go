package order

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrOrderNotFound = errors.New("order not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// CREATE ORDER + ITEMS (single transaction)
// --------------------------------------------------
func (r *PostgresRepository) CreateWithItems(
	ctx context.Context,
	order *Order,
	items []Item,
) error {

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (id, customer_id, customer_name, price, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`,
		order.ID,
		order.CustomerID,
		order.CustomerName,
		order.Price,
		order.Status,
	).Scan(&order.CreatedAt)
	if err != nil {
		return err
	}

	for _, item := range items {
		if _, err := tx.Exec(ctx, `
			INSERT INTO order_items (id, order_id, item_id, item_name, quantity, price)
			VALUES ($1, $2, $3, $4, $5, $6)
		`,
			item.ID,
			item.OrderID,
			item.ItemID,
			item.ItemName,
			item.Quantity,
			item.Price,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) GetByID(ctx context.Context, orderID string) (*Order, error) {
	var o Order
	err := r.db.QueryRow(ctx, `
		SELECT id, customer_id, customer_name, price, status, created_at
		FROM orders
		WHERE UPPER(id) = UPPER($1)
	`, orderID).Scan(
		&o.ID,
		&o.CustomerID,
		&o.CustomerName,
		&o.Price,
		&o.Status,
		&o.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *PostgresRepository) ListByCustomer(ctx context.Context, customerID string) ([]Order, error) {
	return r.list(ctx, `
		SELECT id, customer_id, customer_name, price, status, created_at
		FROM orders
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`, customerID)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]Order, error) {
	return r.list(ctx, `
		SELECT id, customer_id, customer_name, price, status, created_at
		FROM orders
		ORDER BY created_at DESC
	`)
}

func (r *PostgresRepository) CountCompleted(ctx context.Context, customerID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM orders
		WHERE customer_id = $1 AND status = $2
	`, customerID, StatusCompleted).Scan(&count)
	return count, err
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID,
			&o.CustomerID,
			&o.CustomerName,
			&o.Price,
			&o.Status,
			&o.CreatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
