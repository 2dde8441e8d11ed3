package pricing

// --------------------------------------------------
// INPUTS
// --------------------------------------------------

// CartLine is one cart entry as the caller resolved it.
// The engine only cares about category and price.
type CartLine struct {
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// DiscountTier is a spend threshold granting a percentage
// discount on the current order.
type DiscountTier struct {
	Threshold float64 `json:"threshold"`
	Percent   float64 `json:"discount"`
	Code      string  `json:"name"`
}

// LoyaltyTier is a bracket of lifetime order count.
type LoyaltyTier struct {
	Name       string  `json:"tier"`
	MinOrders  int     `json:"min_orders"`
	Multiplier float64 `json:"points_multiplier"`
}

// --------------------------------------------------
// RESULT (serialized as-is to the billing screen)
// --------------------------------------------------

type DiscountApplied struct {
	Name    *string `json:"name"`
	Percent float64 `json:"percent"`
	Amount  float64 `json:"amount"`
}

type RewardPoints struct {
	Earned  int    `json:"earned"`
	Tier    string `json:"tier"`
	Message string `json:"message"`
}

type LoyaltyStatus struct {
	CurrentTier  string  `json:"current_tier"`
	NextTier     *string `json:"next_tier"`
	OrdersToNext int     `json:"orders_to_next"`
}

type Coupon struct {
	Code        string `json:"code"`
	Description string `json:"desc"`
	Status      string `json:"status"`
}

type UpsellNudge struct {
	Show    bool    `json:"show"`
	Message string  `json:"message"`
	Gap     float64 `json:"gap,omitempty"`
}

// ComboDetails is informational only. It never changes the
// payable total; the tier discount is the single price modifier.
type ComboDetails struct {
	Eligible bool   `json:"eligible"`
	Type     string `json:"type"`
	Message  string `json:"msg"`
}

type Result struct {
	Subtotal         float64         `json:"subtotal"`
	DiscountApplied  DiscountApplied `json:"discount_applied"`
	FinalTotal       float64         `json:"final_total"`
	RewardPoints     RewardPoints    `json:"reward_points"`
	LoyaltyStatus    LoyaltyStatus   `json:"loyalty_status"`
	AvailableCoupons []Coupon        `json:"available_coupons"`
	UpsellNudge      UpsellNudge     `json:"upsell_nudge"`
	ComboDetails     *ComboDetails   `json:"combo_details"`
	SavingsSummary   *string         `json:"savings_summary"`
	Error            string          `json:"error,omitempty"`
}
