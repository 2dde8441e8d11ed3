package cart

import "context"

// Repository defines the cart storage operations. Carts are
// replaced whole on every save, never patched line by line.
type Repository interface {
	Save(ctx context.Context, customerID string, lines []Line) error

	// An absent cart returns an empty slice, not an error.
	Get(ctx context.Context, customerID string) ([]Line, error)

	Clear(ctx context.Context, customerID string) error
}
