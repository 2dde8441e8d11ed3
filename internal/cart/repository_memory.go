package cart

import (
	"context"
	"sync"
)

// --------------------------------------------------
// IN-MEMORY CART REPOSITORY (dev / tests)
// --------------------------------------------------

type MemoryRepository struct {
	mu    sync.RWMutex
	carts map[string][]Line
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{carts: make(map[string][]Line)}
}

func (r *MemoryRepository) Save(ctx context.Context, customerID string, lines []Line) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := make([]Line, len(lines))
	copy(copied, lines)
	r.carts[customerID] = copied
	return nil
}

func (r *MemoryRepository) Get(ctx context.Context, customerID string) ([]Line, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lines, ok := r.carts[customerID]
	if !ok {
		return []Line{}, nil
	}

	copied := make([]Line, len(lines))
	copy(copied, lines)
	return copied, nil
}

func (r *MemoryRepository) Clear(ctx context.Context, customerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, customerID)
	return nil
}
