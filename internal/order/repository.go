package order

import "context"

// Repository defines all database operations for orders.
type Repository interface {

	// Insert an order and its items atomically
	CreateWithItems(ctx context.Context, order *Order, items []Item) error

	GetByID(ctx context.Context, orderID string) (*Order, error)

	ListByCustomer(ctx context.Context, customerID string) ([]Order, error)

	// All orders, newest first (admin export)
	ListAll(ctx context.Context) ([]Order, error)

	// Lifetime completed-order count, feeds the pricing engine
	CountCompleted(ctx context.Context, customerID string) (int, error)
}
