package customer

import "context"

// Repository defines preference storage for customers.
type Repository interface {

	// A customer with no saved preferences gets DefaultPreferences.
	PreferencesFor(ctx context.Context, email string) (Preferences, error)

	SavePreferences(ctx context.Context, prefs Preferences) error

	// DietaryFor satisfies the recommendation engine's reader.
	DietaryFor(ctx context.Context, email string) (string, error)
}
