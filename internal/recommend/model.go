package recommend

import (
	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/menu"
)

// AddOn is one cross-sell candidate for the item detail screen.
type AddOn struct {
	ItemID   string  `json:"Item_ID"`
	ItemName string  `json:"Item_Name"`
	Price    float64 `json:"Current_Price"`
	Category string  `json:"Category,omitempty"`
	Tag      string  `json:"tag,omitempty"`
}

// AddOnResult is the /item-addons response body.
type AddOnResult struct {
	Pitch  string  `json:"ai_pitch"`
	AddOns []AddOn `json:"add_ons"`
}

// ComboOffer is a personalized bundle built around the customer's
// dietary preference, priced below the item sum.
type ComboOffer struct {
	Name            string      `json:"combo_name"`
	Description     string      `json:"description"`
	Items           []menu.Item `json:"items"`
	OriginalPrice   float64     `json:"original_price"`
	ComboPrice      float64     `json:"combo_price"`
	Savings         float64     `json:"savings"`
	DiscountPercent float64     `json:"discount_percent"`
}
