package menu

import "context"

// Repository defines all database operations for the menu.
// Service depends ONLY on this interface.
type Repository interface {

	// Active menu rows (base fields only; the service decorates them)
	ListActive(ctx context.Context) ([]Item, error)

	// Every row, active or not (fallback when the menu is misconfigured)
	ListAll(ctx context.Context) ([]Item, error)

	// Most-ordered item names across all orders, best first
	TopOrderedNames(ctx context.Context, limit int) ([]string, error)

	// Distinct item names this customer ordered before
	NamesOrderedByCustomer(ctx context.Context, customerID string) ([]string, error)
}
