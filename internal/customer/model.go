package customer

// Preferences is what the onboarding survey captured for a
// customer. Missing rows fall back to DefaultPreferences.
type Preferences struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Dietary    string `json:"dietary_preference"`
	MainCourse string `json:"main_course_preference"`
	Sweets     string `json:"sweets_preference"`
}

func DefaultPreferences(email string) Preferences {
	return Preferences{
		Email:   email,
		Name:    "Guest",
		Dietary: "Pure Veg",
	}
}

// Profile is the account screen payload.
type Profile struct {
	Email       string         `json:"email"`
	Name        string         `json:"name"`
	Preferences Preferences    `json:"preferences"`
	OrderCount  int            `json:"order_count"`
	Loyalty     LoyaltyDetails `json:"loyalty"`
}

type LoyaltyDetails struct {
	CurrentTier  string  `json:"current_tier"`
	NextTier     *string `json:"next_tier"`
	OrdersToNext int     `json:"orders_to_next"`
}
