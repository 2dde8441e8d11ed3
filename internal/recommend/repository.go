package recommend

import (
	"context"

	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/menu"
)

// Repository defines the lookups the recommender needs.
type Repository interface {

	// One active menu item by ID (nil, ErrItemNotFound when missing)
	GetItem(ctx context.Context, itemID string) (*menu.Item, error)

	// Active items in any of the given categories, excluding one ID
	ActiveByCategories(ctx context.Context, categories []string, excludeID string, limit int) ([]menu.Item, error)

	// Item IDs most often co-ordered with itemID, best first
	FrequentlyBoughtWith(ctx context.Context, itemID string, limit int) ([]string, error)

	// Most-ordered item IDs overall, best first
	PopularItemIDs(ctx context.Context, limit int) ([]string, error)

	// Active items matching the given IDs, input order preserved
	ItemsByIDs(ctx context.Context, ids []string) ([]menu.Item, error)
}

// PreferenceReader resolves a customer's dietary preference.
// Owned by the customer package; an empty string means "General".
type PreferenceReader interface {
	DietaryFor(ctx context.Context, email string) (string, error)
}
